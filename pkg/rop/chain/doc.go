// Package chain provides a fluent wrapper around Outcome[S, F]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome or value
// - Then/Bind: continue with a fallible step
// - Map: transform the successful value (S -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain

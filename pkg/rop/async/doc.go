// Package async provides the suspendable counterparts of the solo
// combinators. A Future is a computation that yields an outcome once awaited
// with a context; combinators compose futures lazily and await them one
// after another on the caller's goroutine. Nothing here starts goroutines
// or runs two futures at the same time.
//
// Use Resolved to feed an outcome that is already known into a suspended
// step, and FromChan to await an outcome produced elsewhere.
//
// Cancellation belongs to the caller: the context is handed to every
// awaited computation, and its error is returned as is.
package async

// Package solo contains single-value, synchronous ROP primitives that operate
// on Outcome[S, F]. These functions form the core building blocks for
// failure-aware pipelines without suspension.
//
// Highlights:
// - Succeed/Fail/Try: construct outcomes
// - Map/MapBoth: transform payloads
// - Bind: sequence fallible steps, short-circuiting on failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Handle/Either/Finally: leave the railway
// - ToFailureSequence/Merge/Aggregate: combine many outcomes into one
package solo

// Package bufpool provides the reusable, weakly-referenced buffer cell that
// drives lazy windowed reads through the file engine (spec §4.A).
//
// A Buffer[T] is an (array, count, capacity) triple: a growable array
// segment with a mutable active length. A Pool[T] holds a single weak
// reference to the most recently released buffer so a later caller needing
// a buffer of sufficient capacity can reuse the same backing array without
// forcing it to stay alive under memory pressure.
//
// Three lazy sequences build on top of the pool: Growing ramps from a small
// initial size to a large steady-state size, FixedSingle yields exactly one
// buffer, and FixedRamp yields an unbounded ramp for callers that don't know
// the total item count up front.
package bufpool

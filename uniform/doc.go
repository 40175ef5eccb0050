// Package uniform implements the uniform-time-stepped file (spec §4.H):
// records are addressed by ordinal position, and ordinals translate to and
// from timestamps via a fixed origin T0 and step Δ, both in 100-nanosecond
// ticks. The subheader persists T0 and Δ, with read support for the legacy
// v1.0 layout (Δ plus a .NET-style DateTime.ToBinary timestamp) alongside
// the current v1.1 layout (Δ plus a raw tick count).
package uniform

// TicksPerDay is the number of 100ns ticks in a day, the unit Δ and T0 are
// expressed in throughout this package.
const TicksPerDay = 24 * 60 * 60 * 10_000_000

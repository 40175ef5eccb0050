// Package typesig builds and verifies the structural fingerprint that
// binds an on-disk file to an in-memory record layout (spec §4.D).
//
// A signature is an ordered list of (depth, typeTag) pairs produced by a
// depth-first walk of a caller-supplied FieldSpec tree — there is no
// reflection here, following the design note that replaces the source's
// reflection-driven activation with an explicit descriptor the caller
// provides at create/open time. Two signatures are equal iff their
// sequences match element-wise, optionally consulting a TypeMap that
// authorizes named remappings instead of a hard mismatch.
package typesig

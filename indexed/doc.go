// Package indexed implements the indexed file (spec §4.I): records carry
// their own monotonic index field, enforced on append, and resolved to
// ordinals by a canonical binary search. Its subheader is the spec's
// default raw-serializer layout — a record-size echo followed by the
// type signature — so opening an indexed file re-verifies the on-disk
// layout against the caller's FieldSpec the same way the file header
// verifies everything else (spec §4.D).
package indexed

// Package engine is the file-engine common path (spec §4.G): the
// open/create lifecycle, the derived record count, and the low-level
// ranged read/write/truncate operations that the uniform and indexed
// addressing layers build on. It knows nothing about what a record means
// — only its fixed byte width and the file's current extent.
package engine

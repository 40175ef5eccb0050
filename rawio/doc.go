// Package rawio is the unbuffered transfer layer beneath the file engine
// (spec §4.E): whole-count stream reads and writes at an explicit file
// offset, plus an optional memory-mapped view for random-access range
// reads without a syscall per access. mebo never touches a file — this
// package is grounded on the mmap-and-track-fd pattern used by
// calvinalkan-agent-task's slotcache, adapted from a single fixed-layout
// cache file to tsfile's append-oriented record file.
package rawio

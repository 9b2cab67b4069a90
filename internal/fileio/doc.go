// Package fileio moves documents between disk and memory.
//
// Files are read whole, their dominant line ending is recorded and the text
// is normalized to "\n" for the editor. Saving writes the text back with the
// recorded line ending through a temporary file and a rename, so a failed
// save never truncates the original.
//
// A Watcher reports writes to the open file made by other programs, and a
// Lock keeps two vicore processes from editing the same file at once.
package fileio

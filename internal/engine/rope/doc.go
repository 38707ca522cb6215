// Package rope provides an immutable rope data structure for efficient text storage and manipulation.
//
// A rope is a tree whose leaf nodes contain text chunks and whose internal nodes
// store aggregated metrics (byte count, newline count). This implementation uses
// a B+ tree variant: every leaf sits at the same depth and nodes are shared
// between versions.
//
// Key features:
//   - O(log n) insertion, deletion, and access operations
//   - Immutable operations return new ropes; originals are never modified
//   - Line indexing via aggregated newline counts ("\n" is the only line break,
//     so a "\r\n" line keeps its "\r")
//   - Old versions are cheap snapshots of earlier text
//
// All offsets are UTF-8 byte offsets. Offsets outside the text, or inside a
// multi-byte sequence, are caller bugs and make the operation panic with an
// *OffsetError.
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 7)             // "world"
//	text := r.String()             // "world"
package rope

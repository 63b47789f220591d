// Package engine implements the stateful core of confkit: a line-oriented
// document editor that scopes key operations to a delimited region of the
// file and walks duplicate keys with a shadow-copy cursor.
//
// # Partition
//
// The document is held as a three-way partition (before, block, after).
// Unisolated, the block is the whole document. Isolate cuts the document
// at an exact-match begin/end marker pair so that the block holds only
// the lines strictly between them; Merge folds the pieces back together.
// All key operations act on the current block only.
//
// # Cursors
//
// Two small state machines drive the "next occurrence" semantics:
//
//   - the isolation cursor remembers the marker pair of the last Isolate
//     call, so an identical consecutive call selects the next region with
//     the same markers;
//   - the find cursor remembers the last searched key plus a shadow copy
//     of the block with matched lines blanked out, so repeated Find calls
//     step through duplicate keys.
//
// Both are plain structs reset by Merge, Reset, or a fresh Isolate —
// there is no hidden global state.
//
// # Matching
//
// Key matching is whitespace-insensitive and deliberately not
// grammar-aware: all whitespace is removed from the line and from the
// composed key template before a prefix comparison. This makes
// indentation irrelevant but can false-positive when a key token appears
// inside another line's value; callers rely on that exact behavior.
package engine

// Package obj reads and writes a minimal OBJ-like plain-text format: vertex
// records ("v x y z"), line records ("l i1 i2 ...") and face records
// ("f i1 i2 ..."), one per line, whitespace-token-separated, with 1-based
// vertex indices. The z coordinate is always written as 0 and accepted as
// any numeric token on read. There is no header, no comments and no
// trailing metadata.
//
// Vertices are deduplicated by exact floating-point equality on write, so a
// write/read round trip reproduces the original line and face vertex lists
// bit for bit.
package obj

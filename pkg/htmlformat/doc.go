// Package htmlformat renders a markup tree into an HTML string.
//
// Format performs one depth-first pass over the tree with a fresh Formatter.
// Output is deterministic: the same tree and Options always produce the same
// bytes. Text, inline code, code blocks and raw HTML are written without
// escaping; escaping text is the job of whoever built the tree.
//
// Malformed input degrades instead of failing: out-of-range table cells and
// cells with non-positive spans are omitted, undecodable attribute payloads
// lose their class, and quotes that do not open with a single-word marker
// stay block quotes.
package htmlformat

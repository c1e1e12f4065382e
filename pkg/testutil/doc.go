// Package testutil provides helpers shared by markhtml tests.
//
// Rendered fragments are checked structurally by parsing them with etree:
// the formatter emits XHTML-style void elements, so every fragment built
// from well-formed raw HTML is also well-formed XML.
package testutil

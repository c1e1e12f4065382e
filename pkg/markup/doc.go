// Package markup defines the document tree rendered by markhtml.
//
// A tree is built once, by the parser adapter or by hand through the NewX
// constructors, and is read-only afterwards. The set of node kinds is closed:
// every kind implements Node through an unexported container, and every kind
// has a dedicated method on Visitor. Adding a kind therefore forces every
// Visitor implementation to handle it before the module compiles again.
package markup

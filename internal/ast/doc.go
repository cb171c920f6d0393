// Package ast defines the syntax tree for the kt subset and the extras
// (comments, blank lines) that hang off its nodes.
//
// Nodes are pointer structs; identity is pointer identity. A parent owns its
// children exclusively. Extras live outside the tree in an ExtrasMap so that
// printing with and without them uses the same nodes.
package ast

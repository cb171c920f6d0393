// Package remap rewrites class references of a kt file through a mapping
// set: imports, type references, annotations and imported names used as
// expressions. Comments and blank lines follow the nodes they belong to.
package remap

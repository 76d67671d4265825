// Package svgpath converts between SVG path data, as found in the d
// attribute of a path element, and [morph.Path].
//
// Parsing supports every command of the path data grammar except elliptical
// arcs, in absolute and relative form and with implicit repetition.
// Shorthand commands (H, V, S, T) are expanded into their full forms.
// Formatting always produces absolute M, L, Q, C and Z commands.
package svgpath

// Package render draws a grid's carved passages for people: ASCII text for
// terminals and an image.Image for PNG export. Renderers only read public
// grid and distance accessors; they never mutate a grid.
//
// ASCII layout, one 3-character body per cell:
//
//	+---+---+
//	| @     |
//	+---+ * +
//	| *   * |
//	+---+---+
//
// Masked cells are filled with '#'. Overlays, in priority order: the
// analysis root '@', path cells '*', then the base-36 weight digit of every
// reached cell when distances are shown.
package render

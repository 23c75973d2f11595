// Package canvas implements drawable shapes and a character-cell rasterizer for them.
//
// A Shape is anything that reports a Color and a finite, restartable sequence of points in
// canvas units. Circle is the built-in outline; Points and Line cover ad-hoc data. A Canvas
// maps shapes onto a cols x rows grid of runes (braille dots, dots, blocks or ASCII) which can
// be written out as ANSI text or handed to a terminal emulator.
package canvas

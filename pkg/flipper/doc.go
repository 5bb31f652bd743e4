/*
Package flipper bit-reverses hexadecimal byte literals inside a line of text.

A byte literal is "0x" followed by exactly two hex digits (either case). Each one
is replaced by "0x" and the two lowercase, zero-padded hex digits of its
bit-reversed value. All other text is copied unchanged.

	flipper.FlipLine("{ 0x01, 0x0F, 0xA5 },") // "{ 0x80, 0xf0, 0xa5 },"
*/
package flipper

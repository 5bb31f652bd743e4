package domain

// Tag markers. Detection is substring containment anywhere in a line.
const (
	StartTag = "byteflip-begin"
	EndTag   = "byteflip-end"
)

// Default file names used when no input or output is configured.
const (
	DefaultInputFile  = "eyeSquare.ino"
	DefaultOutputFile = "flipped.ino"
)

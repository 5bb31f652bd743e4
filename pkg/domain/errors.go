package domain

import "errors"

// ErrOpenInput is returned when the input file cannot be opened for reading.
var ErrOpenInput = errors.New("cannot open input")

// ErrOpenOutput is returned when the output file cannot be created.
var ErrOpenOutput = errors.New("cannot open output")

// ErrSameFile is returned when the output path names the input file.
var ErrSameFile = errors.New("output is the input file")

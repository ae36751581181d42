package model

import "errors"

// Sentinel error kinds for the analysis pipeline.
var (
	// ErrInvalidInput marks a record the pipeline refuses to analyse.
	ErrInvalidInput = errors.New("invalid input")
	// ErrComputation marks any other failure inside the pipeline.
	ErrComputation = errors.New("analysis computation failed")
)

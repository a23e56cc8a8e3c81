package movement

import "errors"

var (
	// ErrShapeMismatch indicates parallel input slices of differing length.
	ErrShapeMismatch = errors.New("movement: parallel inputs must have the same length")
	// ErrEmptyInput indicates a zero-length input where at least one element is required.
	ErrEmptyInput = errors.New("movement: input must contain at least one element")
	// ErrInvalidWeight indicates a negative or NaN weight, or a non-positive total weight.
	ErrInvalidWeight = errors.New("movement: weights must be non-negative with a positive total")
	// ErrInvalidThreshold indicates a negative or NaN gap threshold.
	ErrInvalidThreshold = errors.New("movement: gap threshold must be a non-negative number")
	// ErrUndefinedCentroid indicates the weighted vector sum cancels out, leaving no centroid direction.
	ErrUndefinedCentroid = errors.New("movement: weighted centroid is undefined")
)

package dataset

import "errors"

var (
	// ErrModelNotFound is returned when a model name is not part of the dataset.
	ErrModelNotFound = errors.New("dataset: model not found")
	// ErrRecordNotFound is returned when a record id does not exist.
	ErrRecordNotFound = errors.New("dataset: record not found")
	// ErrAttributeNotFound is returned when an attribute is unknown or is not
	// a one-to-many attribute where one is required.
	ErrAttributeNotFound = errors.New("dataset: attribute not found")
)

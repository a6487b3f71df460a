package conf

import "errors"

var (
	// ErrMissingOutputPath is returned by Validate when no output file is set.
	ErrMissingOutputPath = errors.New("output file is not set")
	// ErrEmptyFieldSelection is returned by Validate when every output field is off.
	ErrEmptyFieldSelection = errors.New("no output field is enabled")
	// ErrUnsatisfiedFieldDependency is returned by Validate when a derived
	// field is enabled without the fields it is computed from.
	ErrUnsatisfiedFieldDependency = errors.New("unsatisfied output field dependency")
	// ErrUnknownFieldName is returned by the loaders when a field list names
	// a field outside the catalogue.
	ErrUnknownFieldName = errors.New("unknown output field")
	// ErrMalformedSource is returned by the loaders when a document or an
	// argument set lacks the output section or cannot be parsed.
	ErrMalformedSource = errors.New("malformed configuration source")
)

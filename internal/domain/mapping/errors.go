package mapping

import "errors"

var (
	// ErrMappingExists is returned when a mapping already exists for a Slide client.
	ErrMappingExists = errors.New("mapping already exists for slide client")

	// ErrMappingNotFound is returned when no mapping exists for a Slide client.
	ErrMappingNotFound = errors.New("client mapping not found")
)

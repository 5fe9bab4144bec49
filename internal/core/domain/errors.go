package domain

import "errors"

var (
	ErrNotFound      = errors.New("park not found")
	ErrItineraryFull = errors.New("trip is full")

	ErrCatalogAccess  = errors.New("unable to access park file")
	ErrEmptyCatalog   = errors.New("empty park file")
	ErrInvalidCatalog = errors.New("invalid park file")
	ErrTripAccess     = errors.New("cannot create trip file")
)

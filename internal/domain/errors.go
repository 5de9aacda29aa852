package domain

import "errors"

var (
	// ErrSelfLoop is returned for a flight whose source and destination are the
	// same airport. Such a leg is never valid.
	ErrSelfLoop = errors.New("flight source and destination are the same airport")

	// ErrUnrelatedFlight is returned when a flight is registered on an airport
	// that is neither its source nor its destination.
	ErrUnrelatedFlight = errors.New("flight does not depart from or arrive at this airport")
)

package risk

import "errors"

var (
	ErrIncompleteObservation = errors.New("incomplete observation")
)

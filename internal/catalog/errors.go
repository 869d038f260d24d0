package catalog

import "errors"

var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrCheckNotFound  = errors.New("check not found")
)

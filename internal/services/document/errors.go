package document

import "errors"

var (
	ErrEmptySlot   = errors.New("document slot has no transaction or type")
	ErrStoreFailed = errors.New("storing document failed")
)

// Issue strings reported on invalid or absent documents.
const (
	IssueNotUploaded = "document not uploaded"
)

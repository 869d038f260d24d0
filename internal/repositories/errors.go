package repositories

import "errors"

var (
	ErrAuditUnavailable    = errors.New("audit history unavailable")
	ErrTransactionNotFound = errors.New("transaction not found")
)

package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists raw evidence bytes keyed by transaction and document
// type, returning the stored location. Implementations overwrite on
// resubmission of the same key but never remove evidence stored under
// a different key.
type Store interface {
	Save(transactionRef, documentType, filename string, data []byte) (string, error)
}

// DiskStore writes evidence under root/<transactionRef>/<documentType><ext>.
type DiskStore struct {
	root string
}

// NewDiskStore creates a disk-backed evidence store rooted at root.
func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Save(transactionRef, documentType, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.root, transactionRef)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create evidence dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(dir, documentType+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write evidence file: %w", err)
	}
	return path, nil
}

package repositories

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"veristate/internal/models"
)

// FileAuditLog stores evaluation records as one JSON document per line
// in a flat file. A mutex serializes appenders so concurrent records
// never interleave; readers reopen the file and never block an
// in-flight append beyond its own write.
type FileAuditLog struct {
	path string

	mu     sync.Mutex
	nextID uint
}

// NewFileAuditLog opens (creating if needed) the backing file and
// resumes the record sequence from its current contents.
func NewFileAuditLog(path string) (*FileAuditLog, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit file: %w", err)
	}
	defer f.Close()

	var count uint
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan audit file: %w", err)
	}

	return &FileAuditLog{path: path, nextID: count}, nil
}

func (l *FileAuditLog) Append(ctx context.Context, record *models.EvaluationRecord) (uint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	record.ID = l.nextID + 1
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	line, err := json.Marshal(record)
	if err != nil {
		return 0, fmt.Errorf("encode evaluation record: %w", err)
	}
	line = append(line, '\n')

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open audit file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return 0, fmt.Errorf("append evaluation record: %w", err)
	}
	if err := f.Sync(); err != nil {
		return 0, fmt.Errorf("sync audit file: %w", err)
	}

	l.nextID++
	return record.ID, nil
}

func (l *FileAuditLog) List(ctx context.Context) ([]models.EvaluationRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuditUnavailable, err)
	}
	defer f.Close()

	var records []models.EvaluationRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4<<20)
	for scanner.Scan() {
		var record models.EvaluationRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return nil, fmt.Errorf("%w: corrupt record: %v", ErrAuditUnavailable, err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuditUnavailable, err)
	}
	return records, nil
}

package document

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"veristate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Upsert(ctx context.Context, doc *models.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	return NewService(NewDiskStore(root), nil, Policy{}, nil), root
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name       string
		slot       Slot
		wantValid  bool
		wantIssues []string
	}{
		{
			name: "valid pdf",
			slot: Slot{
				TransactionRef: "tx-1",
				DocumentType:   "deed",
				Filename:       "deed.pdf",
				Data:           []byte("%PDF-1.4"),
			},
			wantValid: true,
		},
		{
			name: "oversize pdf reports only the size issue",
			slot: Slot{
				TransactionRef: "tx-1",
				DocumentType:   "deed",
				Filename:       "deed.pdf",
				Data:           bytes.Repeat([]byte("a"), 11<<20),
			},
			wantValid:  false,
			wantIssues: []string{"File size exceeds 10MB limit"},
		},
		{
			name: "disallowed extension",
			slot: Slot{
				TransactionRef: "tx-1",
				DocumentType:   "deed",
				Filename:       "deed.exe",
				Data:           []byte("MZ"),
			},
			wantValid:  false,
			wantIssues: []string{`File type ".exe" is not allowed`},
		},
		{
			name: "oversize and disallowed accumulate both issues",
			slot: Slot{
				TransactionRef: "tx-1",
				DocumentType:   "deed",
				Filename:       "deed.exe",
				Data:           bytes.Repeat([]byte("a"), 11<<20),
			},
			wantValid: false,
			wantIssues: []string{
				"File size exceeds 10MB limit",
				`File type ".exe" is not allowed`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			result, err := svc.Verify(context.Background(), tt.slot)
			require.NoError(t, err)

			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.Equal(t, tt.wantIssues, result.Issues)
			assert.Equal(t, int64(len(tt.slot.Data)), result.SizeBytes)
			assert.Equal(t, result.IsValid, len(result.Issues) == 0)
		})
	}
}

func TestVerify_RetainsInvalidFiles(t *testing.T) {
	svc, root := newTestService(t)

	result, err := svc.Verify(context.Background(), Slot{
		TransactionRef: "tx-9",
		DocumentType:   "deed",
		Filename:       "deed.exe",
		Data:           []byte("MZ"),
	})
	require.NoError(t, err)
	assert.False(t, result.IsValid)

	// Evidence is kept on disk even though validation failed.
	assert.Equal(t, filepath.Join(root, "tx-9", "deed.exe"), result.StoredPath)
	_, statErr := os.Stat(result.StoredPath)
	assert.NoError(t, statErr)
}

func TestVerify_RecordsOutcome(t *testing.T) {
	recorder := new(MockRecorder)
	recorder.On("Upsert", mock.Anything, mock.MatchedBy(func(doc *models.Document) bool {
		return doc.TransactionRef == "tx-2" && doc.DocumentType == "title_report" && doc.IsValid
	})).Return(nil)

	svc := NewService(NewDiskStore(t.TempDir()), recorder, Policy{}, nil)
	_, err := svc.Verify(context.Background(), Slot{
		TransactionRef: "tx-2",
		DocumentType:   "title_report",
		Filename:       "report.png",
		Data:           []byte{0x89, 0x50, 0x4e, 0x47},
	})
	require.NoError(t, err)
	recorder.AssertExpectations(t)
}

func TestVerify_EmptySlot(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Verify(context.Background(), Slot{Filename: "deed.pdf"})
	assert.ErrorIs(t, err, ErrEmptySlot)
}

func TestMissing(t *testing.T) {
	result := Missing("deed")
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{"document not uploaded"}, result.Issues)
	assert.Equal(t, "deed", result.DocumentType)
}

func TestDiskStore_OverwriteKeepsOtherEvidence(t *testing.T) {
	root := t.TempDir()
	store := NewDiskStore(root)

	first, err := store.Save("tx-3", "deed", "deed.pdf", []byte("v1"))
	require.NoError(t, err)

	// Resubmitting under a different extension leaves the prior file alone.
	second, err := store.Save("tx-3", "deed", "deed.jpg", []byte("v2"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	_, statErr := os.Stat(first)
	assert.NoError(t, statErr)

	// Resubmitting the same key overwrites in place.
	again, err := store.Save("tx-3", "deed", "deed.pdf", []byte("v3"))
	require.NoError(t, err)
	assert.Equal(t, first, again)
	data, readErr := os.ReadFile(again)
	require.NoError(t, readErr)
	assert.Equal(t, "v3", string(data))
}

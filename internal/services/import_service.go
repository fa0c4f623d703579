package services

import (
	"fmt"
	"io"
	"os"

	"opac/internal/jbisc"
	"opac/internal/resolver"
)

// BatchStore persists one fully resolved import batch. Implemented by
// database.Database.
type BatchStore interface {
	InsertBatch(batch *resolver.Batch) error
}

// ImportResult summarizes one completed import run.
type ImportResult struct {
	BooksImported    int `json:"books_imported"`
	AuthorsCreated   int `json:"authors_created"`
	LocationsCreated int `json:"locations_created"`
	NotesCreated     int `json:"notes_created"`
}

// ImportService runs the full pipeline: read raw records, normalize each
// one, resolve identities across the batch, then hand the batch to the
// store in a single write. Any parse failure aborts the run before
// anything is written.
type ImportService struct {
	store BatchStore
}

// NewImportService creates a new ImportService.
func NewImportService(store BatchStore) *ImportService {
	return &ImportService{store: store}
}

// ParseBatch reads and normalizes the whole export, then resolves
// surrogate keys. It is the write-free front half of an import, also used
// for dry runs.
func ParseBatch(r io.Reader) (*resolver.Batch, error) {
	records, err := jbisc.ReadRecords(r)
	if err != nil {
		return nil, err
	}

	books := make([]*jbisc.Book, 0, len(records))
	for i, record := range records {
		book, err := jbisc.ParseBook(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w\nrecord content:\n%s", i+1, err, record.Source())
		}
		books = append(books, book)
	}

	return resolver.Resolve(books), nil
}

// Import parses the export and writes the resolved batch to the store.
func (s *ImportService) Import(r io.Reader) (ImportResult, error) {
	batch, err := ParseBatch(r)
	if err != nil {
		return ImportResult{}, err
	}

	if err := s.store.InsertBatch(batch); err != nil {
		return ImportResult{}, fmt.Errorf("failed to write batch: %w", err)
	}

	return ImportResult{
		BooksImported:    len(batch.Books),
		AuthorsCreated:   len(batch.Authors),
		LocationsCreated: len(batch.Locations),
		NotesCreated:     len(batch.Notes),
	}, nil
}

// ImportFile opens the export at path and runs Import on it.
func (s *ImportService) ImportFile(path string) (ImportResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to open export file %s: %w", path, err)
	}
	defer file.Close()

	return s.Import(file)
}

package core

// importer.go orchestrates one import: ingest the stream, then persist
// the surviving rows in a single batch.

import (
	"context"
	"io"
)

// Persister stores validated records. The batch is all-or-nothing: a
// backend error means none of the rows were persisted.
type Persister interface {
	InsertBatch(ctx context.Context, def EntityDefinition, records []Record) ([]map[string]any, error)
}

// Importer runs the CSV import pipeline against a Persister.
type Importer struct {
	store Persister
}

// NewImporter returns an Importer backed by store.
func NewImporter(store Persister) *Importer {
	return &Importer{store: store}
}

// Run ingests the CSV stream and persists the valid rows with exactly one
// InsertBatch call. There is no retry and no partial commit.
//
// When no row is valid, Run returns the ImportResult carrying the row
// errors together with ErrNoValidRows so the caller can surface both.
// Structural CSV failures and backend errors return a nil result.
func (imp *Importer) Run(ctx context.Context, r io.Reader, def EntityDefinition) (*ImportResult, error) {
	records, rowErrs, err := Ingest(r, def)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Errors:       len(rowErrs),
		ErrorDetails: rowErrs,
	}

	if len(records) == 0 {
		return result, ErrNoValidRows
	}

	inserted, err := imp.store.InsertBatch(ctx, def, records)
	if err != nil {
		return nil, err
	}

	result.Imported = len(inserted)
	return result, nil
}

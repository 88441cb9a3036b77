package core

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// Importer Tests
// ============================================================================

type fakePersister struct {
	inserted [][]Record
	err      error
}

func (f *fakePersister) InsertBatch(ctx context.Context, def EntityDefinition, records []Record) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inserted = append(f.inserted, records)
	rows := make([]map[string]any, len(records))
	for i, rec := range records {
		rows[i] = map[string]any(rec)
	}
	return rows, nil
}

func TestImporterRunMixedRows(t *testing.T) {
	csv := "name,code\nInformatique,INFO\n,MATH\nPhysique,PHY\n"
	persister := &fakePersister{}

	result, err := NewImporter(persister).Run(context.Background(), strings.NewReader(csv), ingestDef())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}
	if result.Errors != 1 {
		t.Errorf("errors = %d, want 1", result.Errors)
	}
	if len(result.ErrorDetails) != 1 || result.ErrorDetails[0].Line != 2 {
		t.Errorf("error details = %v", result.ErrorDetails)
	}
	if len(persister.inserted) != 1 {
		t.Fatalf("InsertBatch called %d times, want exactly 1", len(persister.inserted))
	}
	if len(persister.inserted[0]) != 2 {
		t.Errorf("batch size = %d, want 2", len(persister.inserted[0]))
	}
}

func TestImporterRunNoValidRows(t *testing.T) {
	csv := "name,code\n,INFO\n,MATH\n"
	persister := &fakePersister{}

	result, err := NewImporter(persister).Run(context.Background(), strings.NewReader(csv), ingestDef())
	if !errors.Is(err, ErrNoValidRows) {
		t.Fatalf("error = %v, want ErrNoValidRows", err)
	}
	if result == nil {
		t.Fatal("result must carry the row errors even on failure")
	}
	if result.Errors != 2 || len(result.ErrorDetails) != 2 {
		t.Errorf("result = %+v", result)
	}
	if len(persister.inserted) != 0 {
		t.Error("nothing should be persisted when no row is valid")
	}
}

func TestImporterRunEmptyFile(t *testing.T) {
	persister := &fakePersister{}

	result, err := NewImporter(persister).Run(context.Background(), strings.NewReader(""), ingestDef())
	if !errors.Is(err, ErrNoValidRows) {
		t.Fatalf("error = %v, want ErrNoValidRows", err)
	}
	if result.Errors != 0 {
		t.Errorf("errors = %d, want 0", result.Errors)
	}
}

func TestImporterRunBackendFailure(t *testing.T) {
	csv := "name,code\nInformatique,INFO\n"
	backendErr := errors.New("connection refused")
	persister := &fakePersister{err: backendErr}

	result, err := NewImporter(persister).Run(context.Background(), strings.NewReader(csv), ingestDef())
	if !errors.Is(err, backendErr) {
		t.Fatalf("error = %v, want backend error", err)
	}
	if result != nil {
		t.Errorf("result should be nil on backend failure, got %+v", result)
	}
}

func TestImporterRunMalformedCSV(t *testing.T) {
	csv := "name,code\n\"Informatique,INFO\n"
	persister := &fakePersister{}

	_, err := NewImporter(persister).Run(context.Background(), strings.NewReader(csv), ingestDef())
	if !errors.Is(err, ErrMalformedCSV) {
		t.Fatalf("error = %v, want ErrMalformedCSV", err)
	}
	if len(persister.inserted) != 0 {
		t.Error("nothing should be persisted for a malformed file")
	}
}

package core

// ingest.go parses an uploaded CSV stream into validated records.
//
// Header matching is order-irrelevant: headers are trimmed and
// lower-cased, columns not in the schema are ignored, and schema fields
// missing from the file simply read as empty. Structural problems
// (unterminated quote, inconsistent column count) abort the whole file.

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Ingest reads the CSV stream, validates every data row, and returns the
// valid records alongside the per-row errors. The returned error is
// non-nil only for structural failures, wrapped in ErrMalformedCSV.
//
// Line numbers in RowError are 1-based and count data rows, not file
// lines: the row right under the header is line 1.
func Ingest(r io.Reader, def EntityDefinition) ([]Record, []RowError, error) {
	reader := csv.NewReader(WrapForStreaming(r))

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	for i, h := range header {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var (
		records []Record
		rowErrs []RowError
		line    int
	)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}

		line++

		raw := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(row) {
				raw[h] = row[i]
			}
		}

		rec, rowErr := ValidateRow(raw, line, def)
		if rowErr != nil {
			rowErrs = append(rowErrs, *rowErr)
			continue
		}
		records = append(records, rec)
	}

	return records, rowErrs, nil
}

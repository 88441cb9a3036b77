package core

// template.go generates the downloadable CSV template for an entity: the
// import header row plus one example row. The header is derived from the
// field specs, so a template filled in and re-uploaded always matches the
// import schema.

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// TemplateCSV renders the entity's import template with a UTF-8 BOM.
func TemplateCSV(def EntityDefinition) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)

	if err := w.Write(def.FieldNames()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if err := w.Write(def.TemplateRow); err != nil {
		return nil, fmt.Errorf("write example row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

package core

// export.go renders database rows as downloadable CSV. Exports carry a
// UTF-8 BOM so spreadsheet tools render accented characters correctly.

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// utf8BOM is prepended to every generated CSV file.
const utf8BOM = "\uFEFF"

// ExportCSV renders rows in the entity's fixed export column order.
// Missing keys and nil values render as empty cells.
func ExportCSV(def EntityDefinition, rows []map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)

	if err := w.Write(def.ExportFields); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(def.ExportFields))
	for _, row := range rows {
		for i, field := range def.ExportFields {
			record[i] = FormatValue(row[field])
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// FormatValue converts a scanned database value to its CSV cell text.
// Floats use the shortest decimal representation, dates the ISO form.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Time:
		return val.Format("2006-01-02")
	case pgtype.Numeric:
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return ""
		}
		return strconv.FormatFloat(f.Float64, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

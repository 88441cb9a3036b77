// Package store provides PostgreSQL persistence for entity records via
// pgx. Queries are generated from the entity schemas, so a single Store
// serves all entity types.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scolarix/referentiel/internal/core"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// Store executes entity queries against a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// New returns a Store backed by pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// InsertBatch persists all records with a single multi-row INSERT and
// returns the inserted rows. The batch is atomic: any failure means no
// row was persisted.
func (s *Store) InsertBatch(ctx context.Context, def core.EntityDefinition, records []core.Record) ([]map[string]any, error) {
	if len(records) == 0 {
		return nil, nil
	}

	cols := def.FieldNames()

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ", def.Info.Table, strings.Join(cols, ", "))

	args := make([]any, 0, len(records)*len(cols))
	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j, col := range cols {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", len(args)+1)
			val, ok := rec[col]
			if !ok {
				val = nil
			}
			args = append(args, val)
		}
		sb.WriteString(")")
	}
	sb.WriteString(" RETURNING *")

	rows, err := s.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", def.Info.Table, err)
	}
	defer rows.Close()

	inserted, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", def.Info.Table, err)
	}
	return inserted, nil
}

// ListAll returns every row of the entity's table, newest first, with
// relation display names joined in as <relation>_name columns.
func (s *Store) ListAll(ctx context.Context, def core.EntityDefinition) ([]map[string]any, error) {
	rows, err := s.pool.Query(ctx, listQuery(def))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", def.Info.Table, err)
	}
	defer rows.Close()

	result, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", def.Info.Table, err)
	}
	return result, nil
}

// GetByID returns one row with its relation display names, or
// ErrNotFound. Non-numeric identifiers cannot match and short-circuit.
func (s *Store) GetByID(ctx context.Context, def core.EntityDefinition, id string) (map[string]any, error) {
	numID, err := strconv.Atoi(id)
	if err != nil {
		return nil, ErrNotFound
	}

	query := listQuery(def)
	query = strings.Replace(query, " ORDER BY", " WHERE t.id = $1 ORDER BY", 1)

	rows, err := s.pool.Query(ctx, query, numID)
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", def.Info.Table, err)
	}
	defer rows.Close()

	result, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", def.Info.Table, err)
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result[0], nil
}

// listQuery builds the denormalizing SELECT for an entity: all base
// columns plus one LEFT JOIN per relation projecting its name column.
func listQuery(def core.EntityDefinition) string {
	var sb strings.Builder
	sb.WriteString("SELECT t.*")

	for i, rel := range def.Relations {
		fmt.Fprintf(&sb, ", r%d.name AS %s", i, rel.NameAs)
	}

	fmt.Fprintf(&sb, " FROM %s t", def.Info.Table)
	for i, rel := range def.Relations {
		fmt.Fprintf(&sb, " LEFT JOIN %s r%d ON r%d.id = t.%s", rel.Table, i, i, rel.FKField)
	}

	sb.WriteString(" ORDER BY t.id DESC")
	return sb.String()
}

// collectRows materializes a result set as maps keyed by column name.
// Driver-specific values are normalized so exports and JSON responses
// see plain Go types.
func collectRows(rows pgx.Rows) ([]map[string]any, error) {
	descs := rows.FieldDescriptions()

	var result []map[string]any
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}

		row := make(map[string]any, len(descs))
		for i, desc := range descs {
			row[desc.Name] = normalizeValue(values[i], desc.DataTypeOID)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// normalizeValue flattens pgx driver types into plain Go values.
func normalizeValue(v any, oid uint32) any {
	switch val := v.(type) {
	case pgtype.Numeric:
		f, err := val.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case time.Time:
		// DATE columns render as plain dates, timestamps keep their time.
		if oid == pgtype.DateOID {
			return val.Format("2006-01-02")
		}
		return val
	default:
		return v
	}
}

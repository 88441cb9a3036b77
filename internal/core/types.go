// Package core implements the entity-agnostic CSV import/export pipeline.
// It has no HTTP or database dependencies beyond the Persister interface
// and can be exercised entirely in-memory.
package core

// FieldType represents the expected data type for a CSV column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInt
	FieldFloat
	FieldBool
	FieldEnum
	FieldEmail
)

// FieldSpec defines the import schema for a single CSV column.
type FieldSpec struct {
	Name       string              // Column header name (lower-case, matches DB column)
	Type       FieldType           // Expected data type
	Required   bool                // Row is rejected when the value is empty or absent
	Positive   bool                // Numeric values must be strictly positive
	Default    any                 // Value stored when an optional field is absent
	EnumValues []string            // Valid values for FieldEnum (exact match)
	Invalid    string              // Message emitted when the value fails its format check
	Normalizer func(string) string // Optional transformation applied after validation
}

// EntityInfo identifies one entity type and its external naming.
type EntityInfo struct {
	Key        string // Route segment: "departments", "etudiants"
	Table      string // Database table name
	FilePrefix string // File name stem for export/template downloads
	Label      string // Display name used in log lines
}

// Relation declares a foreign key whose display name is denormalized into
// list and export rows.
type Relation struct {
	FKField string // Local foreign key column, e.g. "program_id"
	Table   string // Referenced table; its "name" column is projected
	NameAs  string // Alias of the projected name, e.g. "program_name"
	JSONKey string // Nested object key in JSON list responses, e.g. "program"
}

// Messages holds the fixed user-facing wording for one entity.
// The wording is observable API behavior and must not be reworded.
type Messages struct {
	Required        string // Combined message naming all required fields
	NoneValid       string // No row qualified for persistence
	ImportedFmt     string // fmt verb %d receives the persisted row count
	NotFound        string // Lookup by id missed
	NothingToExport string // Empty export, for entities that treat it as an error
}

// EntityDefinition contains everything needed to run the CSV pipeline and
// the CRUD endpoints for one entity type.
type EntityDefinition struct {
	Info         EntityInfo
	Fields       []FieldSpec // Import schema; order defines the template header
	ExportFields []string    // Export column order, includes relation name columns
	Relations    []Relation
	Messages     Messages
	TemplateRow  []string // One example row, aligned with Fields

	// EmptyExportHeaderOnly selects the empty-export behavior: when true the
	// export endpoint returns a header-only CSV, otherwise it reports an
	// error. Both behaviors exist in the API surface and are kept as-is.
	EmptyExportHeaderOnly bool
}

// FieldNames returns the import column names in schema order.
func (d EntityDefinition) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// Record is a validated, typed row keyed by field name. Only fields that
// passed validation (or carry a schema default) are present.
type Record map[string]any

// RowError describes one rejected CSV row. Line numbers are 1-based and
// count data rows only, excluding the header.
type RowError struct {
	Line    int               `json:"line"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

// ImportResult is the outcome of one import request. Every data row of the
// file is accounted for: Imported + Errors equals the number of non-empty
// data rows.
type ImportResult struct {
	Imported     int        `json:"imported"`
	Errors       int        `json:"errors"`
	ErrorDetails []RowError `json:"errorDetails"`
}

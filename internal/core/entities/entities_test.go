package entities

import (
	"bytes"
	"slices"
	"testing"

	"github.com/scolarix/referentiel/internal/core"
)

// ============================================================================
// Registration Tests
// ============================================================================

var allKeys = []string{
	"departments", "enseignants", "etudiants", "groups",
	"levels", "programs", "room-types", "rooms", "subjects",
}

func TestAllEntitiesRegistered(t *testing.T) {
	if got := core.Count(); got != len(allKeys) {
		t.Fatalf("registered entities = %d, want %d", got, len(allKeys))
	}

	for _, key := range allKeys {
		if _, ok := core.Get(key); !ok {
			t.Errorf("entity %q not registered", key)
		}
	}
}

func TestDefinitionsAreComplete(t *testing.T) {
	for _, def := range core.All() {
		t.Run(def.Info.Key, func(t *testing.T) {
			if def.Info.Table == "" || def.Info.FilePrefix == "" {
				t.Error("table and file prefix must be set")
			}
			if len(def.Fields) == 0 {
				t.Error("no field specs")
			}
			if len(def.ExportFields) == 0 {
				t.Error("no export fields")
			}
			if len(def.TemplateRow) != len(def.Fields) {
				t.Errorf("template row has %d cells for %d fields", len(def.TemplateRow), len(def.Fields))
			}
			if def.Messages.Required == "" || def.Messages.NoneValid == "" ||
				def.Messages.ImportedFmt == "" || def.Messages.NotFound == "" {
				t.Error("user-facing messages incomplete")
			}
			if !def.EmptyExportHeaderOnly && def.Messages.NothingToExport == "" {
				t.Error("entities reporting empty exports need a message for it")
			}
		})
	}
}

func TestImportHeaderIsSubsetOfExportFields(t *testing.T) {
	// Every importable column must come back in exports, so a filled-in
	// export can be re-imported without editing headers.
	for _, def := range core.All() {
		t.Run(def.Info.Key, func(t *testing.T) {
			for _, name := range def.FieldNames() {
				if !slices.Contains(def.ExportFields, name) {
					t.Errorf("import field %q missing from export fields", name)
				}
			}
		})
	}
}

func TestRelationsProjectIntoExports(t *testing.T) {
	// subjects joins relations for the JSON API only; its export stays flat.
	flatExportOnly := map[string]bool{"subjects": true, "levels": true}

	for _, def := range core.All() {
		if flatExportOnly[def.Info.Key] {
			continue
		}
		t.Run(def.Info.Key, func(t *testing.T) {
			for _, rel := range def.Relations {
				if !slices.Contains(def.ExportFields, rel.NameAs) {
					t.Errorf("relation column %q missing from export fields", rel.NameAs)
				}
			}
		})
	}
}

func TestTemplateRowsPassValidation(t *testing.T) {
	for _, def := range core.All() {
		t.Run(def.Info.Key, func(t *testing.T) {
			data, err := core.TemplateCSV(def)
			if err != nil {
				t.Fatalf("template generation: %v", err)
			}

			records, rowErrs, err := core.Ingest(bytes.NewReader(data), def)
			if err != nil {
				t.Fatalf("template ingest: %v", err)
			}
			if len(rowErrs) != 0 {
				t.Fatalf("template example row rejected: %v", rowErrs)
			}
			if len(records) != 1 {
				t.Fatalf("records = %d, want 1", len(records))
			}
		})
	}
}

func TestStudentStatutValues(t *testing.T) {
	def, ok := core.Get("etudiants")
	if !ok {
		t.Fatal("etudiants not registered")
	}

	var statut core.FieldSpec
	for _, f := range def.Fields {
		if f.Name == "statut" {
			statut = f
		}
	}

	want := []string{"actif", "inactif", "diplome", "suspendu"}
	if !slices.Equal(statut.EnumValues, want) {
		t.Errorf("statut values = %v, want %v", statut.EnumValues, want)
	}
	if statut.Default != "actif" {
		t.Errorf("statut default = %v, want actif", statut.Default)
	}
}

func TestTeacherGradeHasNoDefault(t *testing.T) {
	def, ok := core.Get("enseignants")
	if !ok {
		t.Fatal("enseignants not registered")
	}

	for _, f := range def.Fields {
		if f.Name == "grade" {
			if f.Default != nil {
				t.Errorf("grade must have no default, got %v", f.Default)
			}
			if !slices.Contains(f.EnumValues, "Professeur") {
				t.Errorf("grade values = %v", f.EnumValues)
			}
			if slices.Contains(f.EnumValues, "Doyen") {
				t.Error("Doyen is not a valid grade")
			}
			return
		}
	}
	t.Fatal("grade field not found")
}

func TestPersonEntitiesExportHeaderOnlyWhenEmpty(t *testing.T) {
	for _, def := range core.All() {
		headerOnly := def.Info.Key == "etudiants" || def.Info.Key == "enseignants"
		if def.EmptyExportHeaderOnly != headerOnly {
			t.Errorf("%s: EmptyExportHeaderOnly = %v, want %v",
				def.Info.Key, def.EmptyExportHeaderOnly, headerOnly)
		}
	}
}

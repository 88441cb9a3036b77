package entities

// academic.go registers the academic structure entities: departments,
// programs, levels, subjects and student groups.

import (
	"github.com/scolarix/referentiel/internal/core"
)

func init() {
	registerDepartments()
	registerPrograms()
	registerLevels()
	registerSubjects()
	registerGroups()
}

func registerDepartments() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "departments",
			Table:      "departments",
			FilePrefix: "departments",
			Label:      "département",
		},
		Fields: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "code", Type: core.FieldText},
			{Name: "description", Type: core.FieldText},
		},
		ExportFields: []string{"name", "code", "description"},
		Messages: core.Messages{
			Required:        "Nom requis",
			NoneValid:       "Aucun département valide trouvé",
			ImportedFmt:     "%d département(s) importé(s) avec succès",
			NotFound:        "Département non trouvé",
			NothingToExport: "Aucun département à exporter",
		},
		TemplateRow: []string{"Informatique", "INFO", "Département d'Informatique"},
	})
}

func registerPrograms() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "programs",
			Table:      "programs",
			FilePrefix: "programs",
			Label:      "programme",
		},
		Fields: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "code", Type: core.FieldText},
			{Name: "department_id", Type: core.FieldInt, Required: true, Invalid: "department_id invalide"},
			{Name: "duration_years", Type: core.FieldInt, Default: 3},
			{Name: "description", Type: core.FieldText},
		},
		ExportFields: []string{"name", "code", "department_id", "department_name", "duration_years", "description"},
		Relations: []core.Relation{
			{FKField: "department_id", Table: "departments", NameAs: "department_name", JSONKey: "department"},
		},
		Messages: core.Messages{
			Required:        "Nom et department_id requis",
			NoneValid:       "Aucun programme valide trouvé",
			ImportedFmt:     "%d programme(s) importé(s) avec succès",
			NotFound:        "Programme non trouvé",
			NothingToExport: "Aucun programme à exporter",
		},
		TemplateRow: []string{"Licence Informatique", "LIC-INFO", "1", "3", "Licence en Informatique"},
	})
}

func registerLevels() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "levels",
			Table:      "levels",
			FilePrefix: "levels",
			Label:      "niveau",
		},
		Fields: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "program_id", Type: core.FieldInt, Required: true, Invalid: "program_id invalide"},
			{Name: "year", Type: core.FieldInt, Required: true, Invalid: "year invalide"},
			{Name: "semester", Type: core.FieldInt},
		},
		ExportFields: []string{"name", "program_id", "year", "semester"},
		Relations: []core.Relation{
			{FKField: "program_id", Table: "programs", NameAs: "program_name", JSONKey: "program"},
		},
		Messages: core.Messages{
			Required:        "Nom, program_id et year requis",
			NoneValid:       "Aucun niveau valide trouvé",
			ImportedFmt:     "%d niveau(x) importé(s) avec succès",
			NotFound:        "Niveau non trouvé",
			NothingToExport: "Aucun niveau à exporter",
		},
		TemplateRow: []string{"L1 Informatique", "1", "1", "1"},
	})
}

func registerSubjects() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "subjects",
			Table:      "subjects",
			FilePrefix: "subjects",
			Label:      "matière",
		},
		Fields: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "code", Type: core.FieldText},
			{Name: "credits", Type: core.FieldInt, Default: 3},
			{Name: "coefficient", Type: core.FieldFloat, Default: 1.0},
			{Name: "department_id", Type: core.FieldInt},
			{Name: "level_id", Type: core.FieldInt},
			{Name: "is_mandatory", Type: core.FieldBool},
			{Name: "description", Type: core.FieldText},
		},
		ExportFields: []string{"name", "code", "credits", "coefficient", "department_id", "level_id", "is_mandatory", "description"},
		Relations: []core.Relation{
			{FKField: "department_id", Table: "departments", NameAs: "department_name", JSONKey: "department"},
			{FKField: "level_id", Table: "levels", NameAs: "level_name", JSONKey: "level"},
		},
		Messages: core.Messages{
			Required:        "Nom requis",
			NoneValid:       "Aucune matière valide trouvée",
			ImportedFmt:     "%d matière(s) importée(s) avec succès",
			NotFound:        "Matière non trouvée",
			NothingToExport: "Aucune matière à exporter",
		},
		TemplateRow: []string{"Algorithmique", "ALGO", "6", "2.0", "1", "1", "true", "Cours d'algorithmique"},
	})
}

func registerGroups() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "groups",
			Table:      "groups",
			FilePrefix: "groups",
			Label:      "groupe",
		},
		Fields: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "code", Type: core.FieldText},
			{Name: "level_id", Type: core.FieldInt, Required: true, Invalid: "level_id invalide"},
			{Name: "capacity", Type: core.FieldInt, Default: 30},
			{Name: "current_students", Type: core.FieldInt, Default: 0},
			{Name: "description", Type: core.FieldText},
		},
		ExportFields: []string{"name", "code", "level_id", "level_name", "capacity", "current_students", "description"},
		Relations: []core.Relation{
			{FKField: "level_id", Table: "levels", NameAs: "level_name", JSONKey: "level"},
		},
		Messages: core.Messages{
			Required:        "Nom et level_id requis",
			NoneValid:       "Aucun groupe valide trouvé",
			ImportedFmt:     "%d groupe(s) importé(s) avec succès",
			NotFound:        "Groupe non trouvé",
			NothingToExport: "Aucun groupe à exporter",
		},
		TemplateRow: []string{"Groupe A", "GA", "1", "30", "25", "Groupe de TD"},
	})
}

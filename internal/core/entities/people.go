package entities

// people.go registers the person entities: students and teachers. Both
// keep their French route keys, and both return a header-only CSV when
// an export finds no rows.

import (
	"github.com/scolarix/referentiel/internal/core"
)

func init() {
	registerStudents()
	registerTeachers()
}

func registerStudents() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "etudiants",
			Table:      "etudiants",
			FilePrefix: "etudiants",
			Label:      "étudiant",
		},
		Fields: []core.FieldSpec{
			{Name: "code", Type: core.FieldText, Required: true},
			{Name: "nom", Type: core.FieldText, Required: true},
			{Name: "prenom", Type: core.FieldText, Required: true},
			{Name: "email", Type: core.FieldEmail, Required: true, Invalid: "Email invalide", Normalizer: normalizeEmail},
			{Name: "telephone", Type: core.FieldText},
			{Name: "date_naissance", Type: core.FieldText},
			{Name: "adresse", Type: core.FieldText},
			{Name: "program_id", Type: core.FieldInt},
			{Name: "level_id", Type: core.FieldInt},
			{Name: "group_id", Type: core.FieldInt},
			{Name: "annee_admission", Type: core.FieldInt},
			{
				Name:       "statut",
				Type:       core.FieldEnum,
				EnumValues: []string{"actif", "inactif", "diplome", "suspendu"},
				Default:    "actif",
				Invalid:    "Statut invalide (actif, inactif, diplome, suspendu)",
			},
		},
		ExportFields: []string{
			"code", "nom", "prenom", "email", "telephone", "date_naissance",
			"adresse", "program_id", "program_name", "level_id", "level_name",
			"group_id", "group_name", "annee_admission", "statut",
		},
		Relations: []core.Relation{
			{FKField: "program_id", Table: "programs", NameAs: "program_name", JSONKey: "program"},
			{FKField: "level_id", Table: "levels", NameAs: "level_name", JSONKey: "level"},
			{FKField: "group_id", Table: "groups", NameAs: "group_name", JSONKey: "group"},
		},
		Messages: core.Messages{
			Required:    "Champs manquants (code, nom, prenom, email requis)",
			NoneValid:   "Aucun étudiant valide trouvé dans le fichier CSV",
			ImportedFmt: "%d étudiant(s) importé(s) avec succès",
			NotFound:    "Étudiant non trouvé",
		},
		TemplateRow: []string{
			"ETU001", "Dupont", "Jean", "jean.dupont@example.com",
			"+33612345678", "2000-05-15", "123 Rue Example Paris",
			"1", "1", "1", "2023", "actif",
		},
		EmptyExportHeaderOnly: true,
	})
}

func registerTeachers() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "enseignants",
			Table:      "enseignants",
			FilePrefix: "enseignants",
			Label:      "enseignant",
		},
		Fields: []core.FieldSpec{
			{Name: "code", Type: core.FieldText, Required: true},
			{Name: "nom", Type: core.FieldText, Required: true},
			{Name: "prenom", Type: core.FieldText, Required: true},
			{Name: "email", Type: core.FieldEmail, Required: true, Invalid: "Email invalide", Normalizer: normalizeEmail},
			{Name: "telephone", Type: core.FieldText},
			{Name: "specialite", Type: core.FieldText},
			{
				Name:       "grade",
				Type:       core.FieldEnum,
				EnumValues: []string{"Professeur", "Maitre de conferences", "Assistant", "Charge de cours", "Vacataire"},
				Invalid:    "Grade invalide (Professeur, Maitre de conferences, Assistant, Charge de cours, Vacataire)",
			},
			{Name: "department_id", Type: core.FieldInt},
			{Name: "date_embauche", Type: core.FieldText},
			{
				Name:       "statut",
				Type:       core.FieldEnum,
				EnumValues: []string{"actif", "inactif", "retraite", "conge"},
				Default:    "actif",
				Invalid:    "Statut invalide (actif, inactif, retraite, conge)",
			},
			{Name: "bureau", Type: core.FieldText},
		},
		ExportFields: []string{
			"code", "nom", "prenom", "email", "telephone", "specialite",
			"grade", "department_id", "department_name", "date_embauche",
			"statut", "bureau",
		},
		Relations: []core.Relation{
			{FKField: "department_id", Table: "departments", NameAs: "department_name", JSONKey: "department"},
		},
		Messages: core.Messages{
			Required:    "Champs manquants (code, nom, prenom, email requis)",
			NoneValid:   "Aucun enseignant valide trouvé dans le fichier CSV",
			ImportedFmt: "%d enseignant(s) importé(s) avec succès",
			NotFound:    "Enseignant non trouvé",
		},
		TemplateRow: []string{
			"ENS001", "Durand", "Marie", "marie.durand@example.com",
			"+33612345678", "Informatique", "Professeur", "1",
			"2015-09-01", "actif", "B201",
		},
		EmptyExportHeaderOnly: true,
	})
}

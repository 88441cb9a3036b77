package entities

// rooms.go registers the physical infrastructure entities: room types
// and rooms.

import (
	"github.com/scolarix/referentiel/internal/core"
)

func init() {
	registerRoomTypes()
	registerRooms()
}

func registerRoomTypes() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "room-types",
			Table:      "room_types",
			FilePrefix: "room_types",
			Label:      "type de salle",
		},
		Fields: []core.FieldSpec{
			{Name: "name", Type: core.FieldText, Required: true},
			{Name: "description", Type: core.FieldText},
		},
		ExportFields: []string{"name", "description"},
		Messages: core.Messages{
			Required:        "Nom requis",
			NoneValid:       "Aucun type de salle valide trouvé",
			ImportedFmt:     "%d type(s) de salle importé(s) avec succès",
			NotFound:        "Type de salle non trouvé",
			NothingToExport: "Aucun type de salle à exporter",
		},
		TemplateRow: []string{"Amphithéâtre", "Grande salle pour cours magistraux"},
	})
}

func registerRooms() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:        "rooms",
			Table:      "rooms",
			FilePrefix: "rooms",
			Label:      "salle",
		},
		Fields: []core.FieldSpec{
			{Name: "code", Type: core.FieldText, Required: true},
			{Name: "name", Type: core.FieldText},
			{Name: "capacity", Type: core.FieldInt, Required: true, Positive: true, Invalid: "Capacité invalide"},
			{Name: "room_type_id", Type: core.FieldInt},
			{Name: "building", Type: core.FieldText},
			{Name: "floor", Type: core.FieldInt},
			{Name: "has_projector", Type: core.FieldBool},
			{Name: "has_computers", Type: core.FieldBool},
			{Name: "description", Type: core.FieldText},
		},
		ExportFields: []string{"code", "name", "capacity", "room_type_id", "room_type_name", "building", "floor", "has_projector", "has_computers", "description"},
		Relations: []core.Relation{
			{FKField: "room_type_id", Table: "room_types", NameAs: "room_type_name", JSONKey: "room_type"},
		},
		Messages: core.Messages{
			Required:        "Code et capacité requis",
			NoneValid:       "Aucune salle valide trouvée",
			ImportedFmt:     "%d salle(s) importée(s) avec succès",
			NotFound:        "Salle non trouvée",
			NothingToExport: "Aucune salle à exporter",
		},
		TemplateRow: []string{"A101", "Salle TP", "30", "1", "Bâtiment A", "1", "true", "true", "Salle de travaux pratiques"},
	})
}

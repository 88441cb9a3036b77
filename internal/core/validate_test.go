package core

import (
	"testing"
)

// ============================================================================
// ValidateRow Tests
// ============================================================================

func roomDef() EntityDefinition {
	return EntityDefinition{
		Info: EntityInfo{Key: "rooms", Table: "rooms"},
		Fields: []FieldSpec{
			{Name: "code", Type: FieldText, Required: true},
			{Name: "name", Type: FieldText},
			{Name: "capacity", Type: FieldInt, Required: true, Positive: true, Invalid: "Capacité invalide"},
			{Name: "room_type_id", Type: FieldInt},
			{Name: "floor", Type: FieldInt},
			{Name: "has_projector", Type: FieldBool},
		},
		Messages: Messages{Required: "Code et capacité requis"},
	}
}

func personDef() EntityDefinition {
	return EntityDefinition{
		Info: EntityInfo{Key: "etudiants", Table: "etudiants"},
		Fields: []FieldSpec{
			{Name: "code", Type: FieldText, Required: true},
			{Name: "nom", Type: FieldText, Required: true},
			{Name: "email", Type: FieldEmail, Required: true, Invalid: "Email invalide", Normalizer: func(s string) string { return "lc:" + s }},
			{
				Name:       "statut",
				Type:       FieldEnum,
				EnumValues: []string{"actif", "inactif"},
				Default:    "actif",
				Invalid:    "Statut invalide (actif, inactif)",
			},
		},
		Messages: Messages{Required: "Champs manquants (code, nom, email requis)"},
	}
}

func TestValidateRowRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]string
		wantMsg string
	}{
		{
			name:    "all required missing",
			raw:     map[string]string{"name": "Salle TP"},
			wantMsg: "Code et capacité requis",
		},
		{
			name:    "one required missing",
			raw:     map[string]string{"code": "A101"},
			wantMsg: "Code et capacité requis",
		},
		{
			name:    "whitespace-only counts as missing",
			raw:     map[string]string{"code": "A101", "capacity": "   "},
			wantMsg: "Code et capacité requis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, rowErr := ValidateRow(tt.raw, 1, roomDef())
			if rec != nil {
				t.Fatalf("expected rejection, got record %v", rec)
			}
			if rowErr == nil {
				t.Fatal("expected row error, got nil")
			}
			if rowErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", rowErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateRowErrorCarriesLineAndData(t *testing.T) {
	raw := map[string]string{"name": "Salle TP"}
	_, rowErr := ValidateRow(raw, 7, roomDef())
	if rowErr == nil {
		t.Fatal("expected row error")
	}
	if rowErr.Line != 7 {
		t.Errorf("line = %d, want 7", rowErr.Line)
	}
	if rowErr.Data["name"] != "Salle TP" {
		t.Errorf("data not preserved: %v", rowErr.Data)
	}
}

func TestValidateRowRequiredNumeric(t *testing.T) {
	tests := []struct {
		name     string
		capacity string
		wantMsg  string
	}{
		{name: "not a number", capacity: "beaucoup", wantMsg: "Capacité invalide"},
		{name: "zero rejected", capacity: "0", wantMsg: "Capacité invalide"},
		{name: "negative rejected", capacity: "-5", wantMsg: "Capacité invalide"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]string{"code": "A101", "capacity": tt.capacity}
			_, rowErr := ValidateRow(raw, 1, roomDef())
			if rowErr == nil {
				t.Fatal("expected row error")
			}
			if rowErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", rowErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateRowOptionalNumericInvalidTreatedAsAbsent(t *testing.T) {
	raw := map[string]string{"code": "A101", "capacity": "30", "floor": "rez-de-chaussée"}
	rec, rowErr := ValidateRow(raw, 1, roomDef())
	if rowErr != nil {
		t.Fatalf("unexpected row error: %v", rowErr)
	}
	if _, present := rec["floor"]; present {
		t.Errorf("invalid optional numeric should be omitted, got %v", rec["floor"])
	}
}

func TestValidateRowBooleanCoercion(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{value: "true", want: true},
		{value: "1", want: true},
		{value: "false", want: false},
		{value: "0", want: false},
		{value: "TRUE", want: false},
		{value: "oui", want: false},
		{value: "", want: false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			raw := map[string]string{"code": "A101", "capacity": "30", "has_projector": tt.value}
			rec, rowErr := ValidateRow(raw, 1, roomDef())
			if rowErr != nil {
				t.Fatalf("unexpected row error: %v", rowErr)
			}
			if rec["has_projector"] != tt.want {
				t.Errorf("has_projector = %v, want %v", rec["has_projector"], tt.want)
			}
		})
	}
}

func TestValidateRowEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "jean.dupont@example.com", wantErr: false},
		{name: "missing tld", email: "jean@mail", wantErr: true},
		{name: "missing at", email: "jean.mail.com", wantErr: true},
		{name: "space inside", email: "jean dupont@mail.com", wantErr: true},
		{name: "subdomain ok", email: "jean@etu.univ.fr", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]string{"code": "ETU001", "nom": "Dupont", "email": tt.email}
			rec, rowErr := ValidateRow(raw, 1, personDef())
			if tt.wantErr {
				if rowErr == nil {
					t.Fatal("expected rejection")
				}
				if rowErr.Message != "Email invalide" {
					t.Errorf("message = %q, want %q", rowErr.Message, "Email invalide")
				}
				return
			}
			if rowErr != nil {
				t.Fatalf("unexpected row error: %v", rowErr)
			}
			if rec["email"] != "lc:"+tt.email {
				t.Errorf("normalizer not applied: %v", rec["email"])
			}
		})
	}
}

func TestValidateRowEnum(t *testing.T) {
	tests := []struct {
		name    string
		statut  string
		wantErr bool
		want    any
	}{
		{name: "valid value", statut: "inactif", want: "inactif"},
		{name: "empty gets default", statut: "", want: "actif"},
		{name: "unknown rejected", statut: "parti", wantErr: true},
		{name: "case mismatch rejected", statut: "Actif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]string{
				"code": "ETU001", "nom": "Dupont",
				"email": "jean@mail.com", "statut": tt.statut,
			}
			rec, rowErr := ValidateRow(raw, 1, personDef())
			if tt.wantErr {
				if rowErr == nil {
					t.Fatal("expected rejection")
				}
				if rowErr.Message != "Statut invalide (actif, inactif)" {
					t.Errorf("message = %q", rowErr.Message)
				}
				return
			}
			if rowErr != nil {
				t.Fatalf("unexpected row error: %v", rowErr)
			}
			if rec["statut"] != tt.want {
				t.Errorf("statut = %v, want %v", rec["statut"], tt.want)
			}
		})
	}
}

func TestValidateRowDefaultsAndOmission(t *testing.T) {
	def := EntityDefinition{
		Fields: []FieldSpec{
			{Name: "name", Type: FieldText, Required: true},
			{Name: "duration_years", Type: FieldInt, Default: 3},
			{Name: "coefficient", Type: FieldFloat, Default: 1.0},
			{Name: "description", Type: FieldText},
		},
		Messages: Messages{Required: "Nom requis"},
	}

	rec, rowErr := ValidateRow(map[string]string{"name": "Licence"}, 1, def)
	if rowErr != nil {
		t.Fatalf("unexpected row error: %v", rowErr)
	}
	if rec["duration_years"] != 3 {
		t.Errorf("duration_years = %v, want 3", rec["duration_years"])
	}
	if rec["coefficient"] != 1.0 {
		t.Errorf("coefficient = %v, want 1.0", rec["coefficient"])
	}
	if _, present := rec["description"]; present {
		t.Error("empty optional without default should be omitted")
	}
}

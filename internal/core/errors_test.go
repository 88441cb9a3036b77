package core

import (
	"errors"
	"testing"
)

// ============================================================================
// MapError Tests
// ============================================================================

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "duplicate key maps correctly",
			err:         errors.New(`ERROR: duplicate key value violates unique constraint "departments_pkey"`),
			wantCode:    "DB001",
			wantMessage: "Un enregistrement avec cet identifiant existe déjà",
		},
		{
			name:        "unique constraint maps correctly",
			err:         errors.New("ERROR: unique constraint violated"),
			wantCode:    "DB002",
			wantMessage: "Cette valeur doit être unique mais existe déjà",
		},
		{
			name:        "foreign key maps correctly",
			err:         errors.New("insert into programs: violates foreign key constraint"),
			wantCode:    "DB003",
			wantMessage: "L'enregistrement référencé n'existe pas",
		},
		{
			name:        "not null maps correctly",
			err:         errors.New(`null value in column "name" violates not-null constraint`),
			wantCode:    "DB004",
			wantMessage: "Un champ obligatoire est vide",
		},
		{
			name:        "connection refused maps correctly",
			err:         errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"),
			wantCode:    "DB010",
			wantMessage: "Impossible de se connecter à la base de données",
		},
		{
			name:        "connection reset maps correctly",
			err:         errors.New("read tcp 127.0.0.1:5432: connection reset by peer"),
			wantCode:    "DB011",
			wantMessage: "La connexion à la base de données a été interrompue",
		},
		{
			name:        "deadlock maps correctly",
			err:         errors.New("ERROR: deadlock detected"),
			wantCode:    "DB012",
			wantMessage: "La base de données est occupée, veuillez réessayer",
		},
		{
			name:        "context canceled maps correctly",
			err:         errors.New("context canceled"),
			wantCode:    "REQ001",
			wantMessage: "La requête a été annulée",
		},
		{
			name:        "deadline exceeded maps correctly",
			err:         errors.New("context deadline exceeded"),
			wantCode:    "REQ002",
			wantMessage: "La requête a expiré",
		},
		{
			name:        "malformed csv maps correctly",
			err:         errors.New("invalid csv structure: record on line 3: wrong number of fields"),
			wantCode:    "FILE001",
			wantMessage: "Fichier CSV invalide",
		},
		{
			name:        "unknown error falls back to generic",
			err:         errors.New("something inexplicable"),
			wantCode:    "ERR000",
			wantMessage: "Une erreur est survenue sur le serveur",
		},
		{
			name:        "matching is case insensitive",
			err:         errors.New("DIAL TCP: CONNECTION REFUSED"),
			wantCode:    "DB010",
			wantMessage: "Impossible de se connecter à la base de données",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", msg.Code, tt.wantCode)
			}
			if msg.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", msg.Message, tt.wantMessage)
			}
		})
	}
}

// Specific patterns must win over general ones, so order in the table
// matters.
func TestMapErrorFirstMatchWins(t *testing.T) {
	err := errors.New("duplicate key value violates unique constraint")
	if got := MapError(err).Code; got != "DB001" {
		t.Errorf("code = %q, want DB001", got)
	}
}

// ============================================================================
// IsUserFacing Tests
// ============================================================================

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "known pattern", err: errors.New("duplicate key"), want: true},
		{name: "connectivity pattern", err: errors.New("connection refused"), want: true},
		{name: "unmatched error", err: errors.New("mystery failure"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserFacing(tt.err); got != tt.want {
				t.Errorf("IsUserFacing = %v, want %v", got, tt.want)
			}
		})
	}
}

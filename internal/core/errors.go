package core

// errors.go maps technical errors to the French user-facing messages the
// API exposes. Patterns are matched case-insensitively with
// strings.Contains; the first match wins, so specific patterns come
// before general ones. Codes let support staff find the original error
// in the logs.

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the import pipeline.
var (
	// ErrNoValidRows is returned when every data row failed validation.
	// The accompanying ImportResult still carries the per-row details.
	ErrNoValidRows = errors.New("no valid rows")

	// ErrMalformedCSV wraps csv.ParseError and friends: the file structure
	// itself is broken (unterminated quote, inconsistent column count).
	ErrMalformedCSV = errors.New("invalid csv structure")
)

// UserMessage is the user-facing rendition of a technical error.
type UserMessage struct {
	Message string // What happened, in the API's language
	Code    string // Reference code for support
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Database constraints
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "Un enregistrement avec cet identifiant existe déjà",
			Code:    "DB001",
		},
	},
	{
		pattern: "unique constraint",
		msg: UserMessage{
			Message: "Cette valeur doit être unique mais existe déjà",
			Code:    "DB002",
		},
	},
	{
		pattern: "violates unique",
		msg: UserMessage{
			Message: "Cette valeur doit être unique mais existe déjà",
			Code:    "DB002",
		},
	},
	{
		pattern: "foreign key constraint",
		msg: UserMessage{
			Message: "L'enregistrement référencé n'existe pas",
			Code:    "DB003",
		},
	},
	{
		pattern: "violates foreign key",
		msg: UserMessage{
			Message: "L'enregistrement référencé n'existe pas",
			Code:    "DB003",
		},
	},
	{
		pattern: "not-null constraint",
		msg: UserMessage{
			Message: "Un champ obligatoire est vide",
			Code:    "DB004",
		},
	},

	// Database connectivity
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Impossible de se connecter à la base de données",
			Code:    "DB010",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "La connexion à la base de données a été interrompue",
			Code:    "DB011",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "La base de données est occupée, veuillez réessayer",
			Code:    "DB012",
		},
	},

	// Request lifecycle
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "La requête a été annulée",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "La requête a expiré",
			Code:    "REQ002",
		},
	},

	// File structure
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "Fichier CSV invalide",
			Code:    "FILE001",
		},
	},
}

// defaultMessage covers errors no pattern recognizes. The handler logs
// the technical error; the client only sees this.
var defaultMessage = UserMessage{
	Message: "Une erreur est survenue sur le serveur",
	Code:    "ERR000",
}

// MapError converts a technical error to its user-facing message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// IsUserFacing reports whether err matched a known pattern, as opposed to
// falling through to the generic ERR000 message.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

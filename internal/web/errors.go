package web

// errors.go holds the JSON response envelopes and the helpers that write
// them. All responses carry a success flag; error messages are the
// user-facing French strings, never raw technical errors.

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/scolarix/referentiel/internal/core"
	"github.com/scolarix/referentiel/internal/logging"
)

type errorResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []core.RowError `json:"errors,omitempty"`
	Code    string          `json:"code,omitempty"`
}

type listResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []map[string]any `json:"data"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type importResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *core.ImportResult `json:"data"`
}

// respondJSON encodes v and writes it with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// respondError writes a plain error envelope.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Success: false, Message: message})
}

// respondStoreError maps a persistence error to the API response.
// Postgres constraint violations are client mistakes (bad foreign key,
// duplicate value) and come back as 400; anything else is a 500. Every
// error goes through core.MapError so connectivity and lifecycle
// failures surface their mapped message instead of the generic one.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	msg := core.MapError(err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		logger.Warn("database constraint rejected request",
			"pg_code", pgErr.Code,
			"code", msg.Code,
			"error", err,
		)
		respondJSON(w, http.StatusBadRequest, errorResponse{
			Success: false,
			Message: msg.Message,
			Code:    msg.Code,
		})
		return
	}

	logger.Error("storage failure", "code", msg.Code, "error", err)
	if core.IsUserFacing(err) {
		respondJSON(w, http.StatusInternalServerError, errorResponse{
			Success: false,
			Message: msg.Message,
			Code:    msg.Code,
		})
		return
	}
	respondError(w, http.StatusInternalServerError, msg.Message)
}

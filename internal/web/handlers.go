package web

// handlers.go implements the five endpoints every entity exposes:
// import, export, template download, list, and get by id. Handlers are
// generic over the entity definition; the router binds one closure per
// entity and endpoint.

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/scolarix/referentiel/internal/core"
	"github.com/scolarix/referentiel/internal/logging"
	"github.com/scolarix/referentiel/internal/store"
)

// handleImport accepts a multipart CSV upload, runs the import pipeline,
// and reports the per-row outcome.
func (s *Server) handleImport(def core.EntityDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := logging.WithFields(r.Context(),
			"import_id", uuid.NewString(),
			"entity", def.Info.Key,
		)

		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)

		if err := r.ParseMultipartForm(s.cfg.Upload.MaxFileSize); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				logger.Warn("upload rejected, file too large")
				respondError(w, http.StatusBadRequest,
					fmt.Sprintf("Le fichier est trop volumineux. Taille maximale: %dMB",
						s.cfg.Upload.MaxFileSize/(1024*1024)))
				return
			}
			logger.Warn("multipart parse failed", "error", err)
			respondError(w, http.StatusBadRequest, "Aucun fichier fourni")
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.Warn("no file in request", "error", err)
			respondError(w, http.StatusBadRequest, "Aucun fichier fourni")
			return
		}
		defer file.Close()

		logger.Info("import started", "filename", header.Filename, "size", header.Size)

		result, err := s.importer.Run(r.Context(), file, def)
		if err != nil {
			switch {
			case errors.Is(err, core.ErrNoValidRows):
				logger.Warn("import had no valid rows", "errors", result.Errors)
				respondJSON(w, http.StatusBadRequest, errorResponse{
					Success: false,
					Message: def.Messages.NoneValid,
					Errors:  result.ErrorDetails,
				})
			case errors.Is(err, core.ErrMalformedCSV):
				logger.Warn("import rejected malformed csv", "error", err)
				respondError(w, http.StatusBadRequest, "Fichier CSV invalide")
			default:
				respondStoreError(w, r, err)
			}
			return
		}

		logger.Info("import finished", "imported", result.Imported, "errors", result.Errors)

		respondJSON(w, http.StatusOK, importResponse{
			Success: true,
			Message: fmt.Sprintf(def.Messages.ImportedFmt, result.Imported),
			Data:    result,
		})
	}
}

// handleExport streams the entity's rows as a CSV download. When there
// is nothing to export, person entities get a header-only file and the
// reference entities get a 404 explaining why.
func (s *Server) handleExport(def core.EntityDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := s.store.ListAll(r.Context(), def)
		if err != nil {
			respondStoreError(w, r, err)
			return
		}

		if len(rows) == 0 && !def.EmptyExportHeaderOnly {
			respondError(w, http.StatusNotFound, def.Messages.NothingToExport)
			return
		}

		data, err := core.ExportCSV(def, rows)
		if err != nil {
			respondStoreError(w, r, err)
			return
		}

		filename := fmt.Sprintf("%s_%d.csv", def.Info.FilePrefix, time.Now().UnixMilli())
		writeCSV(w, filename, data)
	}
}

// handleTemplate serves the entity's import template.
func (s *Server) handleTemplate(def core.EntityDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := core.TemplateCSV(def)
		if err != nil {
			respondStoreError(w, r, err)
			return
		}

		filename := fmt.Sprintf("template_%s.csv", def.Info.FilePrefix)
		writeCSV(w, filename, data)
	}
}

// handleList returns all rows as JSON, with relation display names
// folded into nested objects.
func (s *Server) handleList(def core.EntityDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := s.store.ListAll(r.Context(), def)
		if err != nil {
			respondStoreError(w, r, err)
			return
		}

		data := make([]map[string]any, len(rows))
		for i, row := range rows {
			data[i] = nestRelations(def, row)
		}

		respondJSON(w, http.StatusOK, listResponse{
			Success: true,
			Count:   len(data),
			Data:    data,
		})
	}
}

// handleGetByID returns a single row or the entity's not-found message.
func (s *Server) handleGetByID(def core.EntityDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		row, err := s.store.GetByID(r.Context(), def, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, def.Messages.NotFound)
				return
			}
			respondStoreError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, dataResponse{Success: true, Data: nestRelations(def, row)})
	}
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// nestRelations rewrites the flat joined columns of a row into nested
// objects: program_id + program_name become program: {id, name}. The
// flat *_name alias is removed; a null foreign key yields a null object.
func nestRelations(def core.EntityDefinition, row map[string]any) map[string]any {
	if len(def.Relations) == 0 {
		return row
	}

	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = v
	}

	for _, rel := range def.Relations {
		name := out[rel.NameAs]
		delete(out, rel.NameAs)

		if id, ok := out[rel.FKField]; ok && id != nil {
			out[rel.JSONKey] = map[string]any{"id": id, "name": name}
		} else {
			out[rel.JSONKey] = nil
		}
	}

	return out
}

// writeCSV sends a generated CSV file as an attachment.
func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

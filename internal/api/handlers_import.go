// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package api

import (
	"errors"
	"net/http"
	"time"

	movieimport "github.com/tomtom215/moviesoup/internal/import"
	"github.com/tomtom215/moviesoup/internal/logging"
)

// StartImport handles POST /api/v1/movies/import
//
// @Summary Start a TMDB CSV import
// @Description Replaces every stored movie with the TMDB CSV files in import.data_dir. Runs in the background; poll /movies/import/status. Only available when server.debug is set.
// @Tags Import
// @Produce json
// @Success 202 {object} models.APIResponse{data=movieimport.ProgressSummary} "Import started"
// @Failure 403 {object} models.APIResponse "Debug mode is off"
// @Failure 409 {object} models.APIResponse "Import already running"
// @Failure 503 {object} models.APIResponse "Importer not configured"
// @Router /movies/import [post]
func (h *Handler) StartImport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.importAllowed(w, r) {
		return
	}

	if err := h.importer.Start(r.Context(), importTimeout); err != nil {
		if errors.Is(err, movieimport.ErrImportRunning) {
			respondError(w, r, http.StatusConflict, ErrCodeConflict, err.Error(), nil)
			return
		}
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "failed to start import", err)
		return
	}

	logging.Ctx(r.Context()).Info().Msg("Import started")
	respondSuccess(w, http.StatusAccepted, h.importer.GetStats().ToSummary(true), start, false)
}

// StopImport handles DELETE /api/v1/movies/import
//
// @Summary Cancel the running import
// @Description Cancels the running import; its transaction is rolled back and stored movies are left unchanged. Only available when server.debug is set.
// @Tags Import
// @Produce json
// @Success 200 {object} models.APIResponse "Import canceled"
// @Failure 403 {object} models.APIResponse "Debug mode is off"
// @Failure 409 {object} models.APIResponse "No import running"
// @Router /movies/import [delete]
func (h *Handler) StopImport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.importAllowed(w, r) {
		return
	}

	if err := h.importer.Stop(); err != nil {
		respondError(w, r, http.StatusConflict, ErrCodeConflict, err.Error(), nil)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]string{"message": "import canceled"}, start, false)
}

// ImportStatus handles GET /api/v1/movies/import/status
//
// @Summary Import progress
// @Description Reports the running import, or the last one (persisted across restarts when import.progress_path is set).
// @Tags Import
// @Produce json
// @Success 200 {object} models.APIResponse{data=movieimport.ProgressSummary} "Import status"
// @Failure 503 {object} models.APIResponse "Importer not configured"
// @Router /movies/import/status [get]
func (h *Handler) ImportStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.importer == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "importer not configured", nil)
		return
	}

	running := h.importer.IsRunning()
	respondSuccess(w, http.StatusOK, h.importer.GetStats().ToSummary(running), start, false)
}

// importAllowed writes the rejection and returns false unless imports may
// be controlled over HTTP.
func (h *Handler) importAllowed(w http.ResponseWriter, r *http.Request) bool {
	if !h.config.Server.Debug {
		respondError(w, r, http.StatusForbidden, ErrCodeForbidden, "import is only available in debug mode", nil)
		return false
	}
	if h.importer == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "importer not configured", nil)
		return false
	}
	return true
}

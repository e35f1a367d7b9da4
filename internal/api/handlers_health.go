// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/moviesoup/internal/models"
)

// healthCheckTimeout bounds the database checks of the health endpoints.
const healthCheckTimeout = 2 * time.Second

// Health handles health check requests
//
// @Summary Get service health
// @Description Reports database connectivity, the number of stored movies and uptime. Always 200; status is "degraded" when the database is unreachable.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, h.healthStatus(r.Context()), start, false)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Liveness probe
// @Description Returns 200 while the process is alive, regardless of dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, start, false)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
//
// @Summary Readiness probe
// @Description Returns 200 when the database answers, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	status := h.healthStatus(r.Context())
	if !status.DatabaseConnected {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "database not reachable", nil)
		return
	}
	respondSuccess(w, http.StatusOK, status, start, false)
}

func (h *Handler) healthStatus(ctx context.Context) models.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	status := models.HealthStatus{
		Status:    "healthy",
		Version:   Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now(),
	}

	if h.movies == nil || h.movies.Ping(ctx) != nil {
		status.Status = "degraded"
		return status
	}
	status.DatabaseConnected = true

	if count, err := h.movies.CountMovies(ctx); err == nil {
		status.MovieCount = count
	} else {
		status.Status = "degraded"
	}
	return status
}

// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package movieimport

import (
	"time"
)

// Import sources.
const (
	SourceTMDB   = "tmdb-csv"
	SourceSQLite = "sqlite"
)

// ImportStats holds statistics about an import operation.
type ImportStats struct {
	// Source is SourceTMDB or SourceSQLite.
	Source string `json:"source"`

	// TotalRecords is the number of joined source rows.
	TotalRecords int64 `json:"total_records"`

	// Processed is the number of rows examined (including skipped).
	Processed int64 `json:"processed"`

	// Imported is the number of movies written to the store.
	Imported int64 `json:"imported"`

	// Skipped is the number of rows dropped by the cleaning rules: missing
	// features, too few votes, duplicate ids or a null soup.
	Skipped int64 `json:"skipped"`

	// Errors is the number of rows that could not be parsed.
	Errors int64 `json:"errors"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// LastError is the message of the import failure, if any.
	LastError string `json:"last_error,omitempty"`
}

// Duration returns the duration of the import operation.
func (s *ImportStats) Duration() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Progress returns the import progress as a percentage (0-100).
func (s *ImportStats) Progress() float64 {
	if s.TotalRecords == 0 {
		return 0
	}
	return float64(s.Processed) / float64(s.TotalRecords) * 100
}

// RecordsPerSecond returns the processing rate.
func (s *ImportStats) RecordsPerSecond() float64 {
	duration := s.Duration().Seconds()
	if duration == 0 {
		return 0
	}
	return float64(s.Processed) / duration
}

// ProgressSummary is the status view of an import served by the API.
type ProgressSummary struct {
	Status         string    `json:"status"`
	Source         string    `json:"source,omitempty"`
	Progress       float64   `json:"progress"`
	TotalRecords   int64     `json:"total_records"`
	Processed      int64     `json:"processed"`
	Imported       int64     `json:"imported"`
	Skipped        int64     `json:"skipped"`
	Errors         int64     `json:"errors"`
	RecordsPerSec  float64   `json:"records_per_second"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	StartTime      time.Time `json:"start_time"`
	LastError      string    `json:"last_error,omitempty"`
}

// ToSummary converts ImportStats to a ProgressSummary with calculated fields.
func (s *ImportStats) ToSummary(running bool) *ProgressSummary {
	summary := &ProgressSummary{
		Source:         s.Source,
		Progress:       s.Progress(),
		TotalRecords:   s.TotalRecords,
		Processed:      s.Processed,
		Imported:       s.Imported,
		Skipped:        s.Skipped,
		Errors:         s.Errors,
		RecordsPerSec:  s.RecordsPerSecond(),
		ElapsedSeconds: s.Duration().Seconds(),
		StartTime:      s.StartTime,
		LastError:      s.LastError,
	}

	switch {
	case running:
		summary.Status = "running"
	case s.StartTime.IsZero():
		summary.Status = "idle"
	case s.LastError != "":
		summary.Status = "failed"
	default:
		summary.Status = "completed"
	}

	return summary
}

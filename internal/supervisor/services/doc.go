// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Package services provides suture.Service wrappers for server components.

Each wrapper implements Serve(ctx context.Context) error and fmt.Stringer:

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - ImportService: optional import at start, cancels running imports on shutdown
  - CatalogStatsService: samples the stored movie count into a gauge

Serve returns ctx.Err() on a clean shutdown so suture does not restart the
service, and a wrapped error on failure so it does.
*/
package services

// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Package supervisor provides process supervision for the MovieSoup server
using suture v4.

The tree has two layers:

	RootSupervisor ("moviesoup")
	├── DataSupervisor ("data-layer")
	│   ├── ImportService (import auto-start, cancel on shutdown)
	│   └── CatalogStatsService (movies_stored gauge)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are logged
through sutureslog into the zerolog-backed slog logger from
logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewImportService(importer, cfg.Import.AutoStart))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)

The suture.Service wrappers live in the services subpackage.
*/
package supervisor

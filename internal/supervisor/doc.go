// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package supervisor provides process supervision for the advisory server using
suture v4.

The tree separates the memo warmer from the HTTP server so that a failing
warmer is restarted on its own while requests keep being served:

	RootSupervisor ("emkulima")
	├── AdvisorySupervisor ("advisory-layer")
	│   └── WarmerService (if WARMER_ENABLED)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's failure threshold, decay and
backoff (see TreeConfig). Supervisor events are logged through sutureslog,
which cmd/server bridges to zerolog with logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logger), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, timeout, logger))
	tree.AddAdvisoryService(services.NewWarmerService(svc, warmerCfg, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)

See the services subpackage for the service wrappers.
*/
package supervisor

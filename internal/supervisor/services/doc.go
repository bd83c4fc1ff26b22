// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package services provides suture.Service wrappers for the long-running parts
of the advisory server.

  - HTTPServerService: runs an *http.Server and shuts it down gracefully when
    its context is canceled
  - WarmerService: rebuilds the advice memo for every region and farm size on
    an interval, paced by a token-bucket limiter

Both services return ctx.Err() on shutdown so the supervisor treats the stop
as intentional and does not restart them.
*/
package services

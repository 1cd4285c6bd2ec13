// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the handlers or
	// the HTTP address are missing.
	errNoServersAreCreated = errors.New("no servers are created")

	// errNoServersToRun is returned by run when the server was built
	// without a transport.
	errNoServersToRun = errors.New("no servers to run")
)

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ pattern routing.

# Routes

	GET  /health             → health check
	POST /slack/command      → slash command dispatcher
	POST /slack/interactive  → dialog submissions and button presses
	GET  /                   → version banner

Both Slack endpoints run behind signature verification and request logging.
*/
package router

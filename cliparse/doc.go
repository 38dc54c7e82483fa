// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables.

CLI flags take precedence over environment variables:

	-p / PORT:                    server port (default 3318)
	-d / DATABASE_URL:            database connection string (required)
	-t / DATABASE_TYPE:           sqlite or postgres (default sqlite)
	-bot-token / SLACK_BOT_TOKEN: Slack bot OAuth token (required)
	-signing-secret / SLACK_SIGNING_SECRET: request signing secret (required)

Secrets should come from the environment in production; the flags exist for
local development.
*/
package cliparse

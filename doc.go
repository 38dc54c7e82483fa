// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Planning Poker Slack bot.

Planning Poker runs estimation sessions inside a Slack channel: an organiser
starts a session with a title, participants and a set of allowed scores, each
participant votes by pressing a button, and the results are revealed once
everyone has voted (or when the organiser finishes the session early).

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=planningpoker.db SLACK_BOT_TOKEN=xoxb-... SLACK_SIGNING_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..." -t postgres -bot-token xoxb-... -signing-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or sqlite file path
  - SLACK_BOT_TOKEN (-bot-token): Slack bot user OAuth token
  - SLACK_SIGNING_SECRET (-signing-secret): Secret for verifying Slack requests

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: Slash command and interactivity dispatchers
  - session: Pure session state machine (creation, vote application, completion)
  - view: Block Kit rendering of sessions, results, and the setup modal
  - store: Session and channel-defaults persistence with expiry
  - slackapi: Messaging gateway over the Slack Web API
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging, signature verification, JSON helpers
  - models: Domain types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

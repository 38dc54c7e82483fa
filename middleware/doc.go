// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Middleware

  - WithLogging: logs request start/completion with method, path, duration
  - VerifySlackSignature: validates the X-Slack-Signature header against the
    signing secret before any Slack payload is trusted; restores the body
    for downstream form parsing

# Helpers

  - JSONResponse: writes a JSON response with status code
  - ErrorResponse: writes a models.ErrorResponse with a generic message

User-facing error messages stay generic; the underlying cause is always
logged via slog.
*/
package middleware

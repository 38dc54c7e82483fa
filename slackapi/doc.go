// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slackapi is the messaging gateway to Slack.

The Gateway interface covers the narrow surface the dispatchers use: post,
update and delete channel messages, ephemeral messages, modal dialogs, and
response_url webhooks. Client implements it over github.com/slack-go/slack
with a single reusable Web API client constructed once in main and injected
into the handlers — no per-call client construction or re-authentication.

Tests substitute testutil.FakeGateway to record calls and inject transport
failures.
*/
package slackapi

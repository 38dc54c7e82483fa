// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the Slack-facing dispatchers.

# Handler Types

Each handler is a struct with store and gateway dependencies:

  - CommandHandler: the /planningpoker slash command
  - InteractiveHandler: dialog submissions and vote button presses

Handlers are created via constructor functions that accept *sql.DB, a
slackapi.Gateway and Config:

	command := handlers.NewCommandHandler(db, gateway, cfg)

# Command Grammar

Case-sensitive, whitespace-trimmed:

	help        usage text, no state change
	list        live sessions for this channel, numbered 0..N-1
	show <n>    re-post the session at list position n
	cancel <n>  delete the session and its message, post a notice
	finish <n>  reveal results, then delete the session
	<anything>  open the setup dialog with the text as initial title

An out-of-range n gets "Number must be between 0 and N-1" and changes
nothing. List positions are recomputed from a fresh scan on every command,
so they are not stable identifiers across concurrent changes.

# Voting

A score button press carries "<sessionID>:<score>" in its action id. Votes
from non-participants are rejected with an ephemeral notice and no state
change. When the last participant votes, the session is deleted first and
the message is then updated to the results view, so completion fires at
most once; a duplicate vote racing past that point sees "session no longer
exists".

# Failure Policy

Message deletions during show/cancel are best-effort: the message may have
been removed in the Slack UI already, so failures are logged and swallowed.
A finish that cannot locate its message keeps the session state and tells
the user to re-show it. Everything else reports a deliberately generic
error while the cause goes to the logs.
*/
package handlers

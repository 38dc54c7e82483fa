// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package view renders sessions into Slack Block Kit blocks.

All functions are pure: the same Session value always produces the same
blocks, and participants and scores render in entity order.

# Views

  - ActiveBlocks: voting in progress. Shows who has voted (checkmark) without
    revealing any chosen score, plus one button per distinct score, chunked
    five to a row to respect Slack's per-block element limit.
  - ResultBlocks: the tally. Each participant's vote, or "did not vote" when
    the organiser finished the session early.
  - ListBlocks: numbered list of live sessions for the list command.
  - ModalRequest: the setup dialog, pre-filled from channel defaults.

# Button Wiring

Each score button's action id is "<sessionID>:<score>" and its value is the
score, so the interactivity dispatcher can recover both without any state
lookup. Button rows use block id "voting_buttons:<n>".
*/
package view

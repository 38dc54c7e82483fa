// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package view

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/session"
)

// Slack allows at most 5 elements per actions block, so score buttons are
// chunked into batches of 5.
const buttonsPerRow = 5

// ActiveTitle is the fallback text for an active session message.
func ActiveTitle(s *models.Session) string {
	return "Planning Poker: " + s.Title
}

// ResultTitle is the fallback text for a results message.
func ResultTitle(s *models.Session) string {
	return "Results for " + s.Title
}

// ActiveBlocks renders a session that is still collecting votes: heading,
// title, per-participant voted/not-voted status, and one button per distinct
// score. Vote values are never shown while voting is open.
func ActiveBlocks(s *models.Session) []slack.Block {
	blocks := []slack.Block{
		markdownSection("overall_heading", fmt.Sprintf("<@%s> has started a planning poker session.", s.OrganiserUserID)),
		markdownSection("title", fmt.Sprintf("Title: *%s*", s.Title)),
		markdownSection("votes_heading", "Votes:"),
		voteStatusContext(s),
	}

	for i, chunk := range scoreRows(s.Scores) {
		elements := make([]slack.BlockElement, 0, len(chunk))
		for _, score := range chunk {
			text := slack.NewTextBlockObject(slack.PlainTextType, score, true, false)
			// The action id carries both the session and the score so the
			// dispatcher can recover them without extra lookups.
			button := slack.NewButtonBlockElement(s.SessionID+":"+score, score, text)
			elements = append(elements, button)
		}
		blocks = append(blocks, slack.NewActionBlock(fmt.Sprintf("voting_buttons:%d", i), elements...))
	}

	return blocks
}

// ResultBlocks renders the final tally: each participant's vote, or an
// explicit "did not vote" for abstainers when the session was finished early.
func ResultBlocks(s *models.Session) []slack.Block {
	lines := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		if vote, ok := s.Votes[p]; ok {
			lines = append(lines, fmt.Sprintf("<@%s>: %s", p, vote))
		} else {
			lines = append(lines, fmt.Sprintf("<@%s> did not vote", p))
		}
	}

	return []slack.Block{
		markdownSection("overall_heading", fmt.Sprintf("<@%s>'s planning poker session has finished.", s.OrganiserUserID)),
		markdownSection("title", fmt.Sprintf("Title: *%s*", s.Title)),
		markdownSection("votes_heading", "Votes:"),
		slack.NewContextBlock("votes", slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false)),
	}
}

// ListBlocks renders one line per live session, numbered by list position.
func ListBlocks(sessions []models.Session) []slack.Block {
	blocks := make([]slack.Block, 0, len(sessions))
	for i, s := range sessions {
		blocks = append(blocks, markdownSection("", fmt.Sprintf("%d: %s", i, s.Title)))
	}
	return blocks
}

func voteStatusContext(s *models.Session) slack.Block {
	lines := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		if session.HasVoted(s, p) {
			lines = append(lines, fmt.Sprintf("<@%s>: :white_check_mark:", p))
		} else {
			lines = append(lines, fmt.Sprintf("<@%s>: not yet voted", p))
		}
	}
	return slack.NewContextBlock("votes", slack.NewTextBlockObject(slack.MarkdownType, strings.Join(lines, "\n"), false, false))
}

// scoreRows collapses duplicate scores, preserving first-seen order, then
// chunks the remainder into rows of buttonsPerRow. Duplicate rows are
// suppressed as well.
func scoreRows(scores []string) [][]string {
	seen := make(map[string]bool, len(scores))
	distinct := make([]string, 0, len(scores))
	for _, score := range scores {
		if seen[score] {
			continue
		}
		seen[score] = true
		distinct = append(distinct, score)
	}

	var rows [][]string
	seenRows := map[string]bool{}
	for start := 0; start < len(distinct); start += buttonsPerRow {
		end := start + buttonsPerRow
		if end > len(distinct) {
			end = len(distinct)
		}
		row := distinct[start:end]
		key := strings.Join(row, "\x00")
		if seenRows[key] {
			continue
		}
		seenRows[key] = true
		rows = append(rows, row)
	}

	return rows
}

func markdownSection(blockID, text string) *slack.SectionBlock {
	textObj := slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
	if blockID == "" {
		return slack.NewSectionBlock(textObj, nil, nil)
	}
	return slack.NewSectionBlock(textObj, nil, nil, slack.SectionBlockOptionBlockID(blockID))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/planning-poker/cliparse"
	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/slackapi"
	"github.com/danielhkuo/planning-poker/store"
	"github.com/danielhkuo/planning-poker/view"
)

const usage = "Usage: /planningpoker [help] | [session name] | [list|show <id>|cancel <id>|finish <id>]"

// genericError is deliberately vague; the real cause goes to the logs only.
const genericError = "There was an error - check the logs"

var (
	showRe   = regexp.MustCompile(`^show\s+(\d+)$`)
	cancelRe = regexp.MustCompile(`^cancel\s+(\d+)$`)
	finishRe = regexp.MustCompile(`^finish\s+(\d+)$`)
)

// CommandHandler dispatches the /planningpoker slash command.
type CommandHandler struct {
	sessions *store.SessionStore
	defaults *store.DefaultsStore
	gateway  slackapi.Gateway
	cfg      cliparse.Config
}

func NewCommandHandler(db *sql.DB, gateway slackapi.Gateway, cfg cliparse.Config) *CommandHandler {
	return &CommandHandler{
		sessions: store.NewSessionStore(db),
		defaults: store.NewDefaultsStore(db),
		gateway:  gateway,
		cfg:      cfg,
	}
}

// HandleCommand handles POST /slack/command
func (h *CommandHandler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		slog.Error("failed to parse slash command", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid slash command payload")
		return
	}

	text := strings.TrimSpace(cmd.Text)

	switch {
	case text == "help":
		h.help(cmd)
	case text == "list":
		h.list(cmd)
	case showRe.MatchString(text):
		h.show(cmd, argIndex(showRe, text))
	case cancelRe.MatchString(text):
		h.cancel(cmd, argIndex(cancelRe, text))
	case finishRe.MatchString(text):
		h.finish(cmd, argIndex(finishRe, text))
	default:
		h.openSetupModal(cmd, text)
	}

	// Slack only needs the 200 ack; all user-visible output went through the
	// gateway above.
	w.WriteHeader(http.StatusOK)
}

func (h *CommandHandler) help(cmd slack.SlashCommand) {
	blocks := []slack.Block{
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, usage, false, false), nil, nil),
	}
	if err := h.gateway.PostResponse(cmd.ResponseURL, "ephemeral", usage, blocks); err != nil {
		slog.Error("failed to post help text", "error", err)
	}
}

func (h *CommandHandler) list(cmd slack.SlashCommand) {
	sessions, err := h.channelSessions(cmd.ChannelID)
	if err != nil {
		slog.Error("failed to list sessions", "error", err, "channel_id", cmd.ChannelID)
		h.reportError(cmd)
		return
	}

	if len(sessions) == 0 {
		if err := h.gateway.PostResponse(cmd.ResponseURL, "ephemeral", "No Active Planning Poker sessions", nil); err != nil {
			slog.Error("failed to post empty session list", "error", err)
		}
		return
	}

	if err := h.gateway.PostResponse(cmd.ResponseURL, "ephemeral", "Active Planning Poker sessions", view.ListBlocks(sessions)); err != nil {
		slog.Error("failed to post session list", "error", err)
	}
}

func (h *CommandHandler) show(cmd slack.SlashCommand, index int) {
	s, ok := h.sessionAt(cmd, index)
	if !ok {
		return
	}

	// Delete the old message so we don't end up with a duplicate. Someone
	// might have deleted it in the Slack UI already, so failure is only
	// worth a log line.
	if err := h.gateway.DeleteMessage(s.ChannelID, s.MessageTS); err != nil {
		slog.Warn("failed to delete old session message", "error", err, "session_id", s.SessionID)
	}

	// Post a fresh message, which becomes the newest message in the channel
	if err := showSession(h.gateway, h.sessions, s); err != nil {
		slog.Error("failed to show session", "error", err, "session_id", s.SessionID)
		h.reportError(cmd)
	}
}

func (h *CommandHandler) cancel(cmd slack.SlashCommand, index int) {
	s, ok := h.sessionAt(cmd, index)
	if !ok {
		return
	}

	// Best-effort, as in show: the message may already be gone.
	if err := h.gateway.DeleteMessage(s.ChannelID, s.MessageTS); err != nil {
		slog.Warn("failed to delete cancelled session message", "error", err, "session_id", s.SessionID)
	}

	if err := h.sessions.Delete(s.SessionID); err != nil {
		slog.Error("failed to delete session", "error", err, "session_id", s.SessionID)
		h.reportError(cmd)
		return
	}

	slog.Info("session cancelled", "session_id", s.SessionID, "user", cmd.UserID)

	notice := fmt.Sprintf("<@%s> cancelled the session %s", cmd.UserID, s.Title)
	if _, err := h.gateway.PostMessage(cmd.ChannelID, notice, nil); err != nil {
		slog.Error("failed to post cancellation notice", "error", err, "session_id", s.SessionID)
	}
}

func (h *CommandHandler) finish(cmd slack.SlashCommand, index int) {
	s, ok := h.sessionAt(cmd, index)
	if !ok {
		return
	}

	// Not gated on completeness: finishing early shows "did not vote" for
	// the stragglers.
	if _, err := h.gateway.UpdateMessage(s.ChannelID, s.MessageTS, view.ResultTitle(s), view.ResultBlocks(s)); err != nil {
		// Keep the state so the user can recreate the message and retry.
		slog.Warn("failed to update message with results", "error", err, "session_id", s.SessionID)
		ephemeral := "Could not find the original message to show the results.\nTry `/planningpoker show` to recreate it."
		if err := h.gateway.PostEphemeral(cmd.ChannelID, cmd.UserID, ephemeral); err != nil {
			slog.Error("failed to post finish error", "error", err, "session_id", s.SessionID)
		}
		return
	}

	if err := h.sessions.Delete(s.SessionID); err != nil {
		slog.Error("failed to delete finished session", "error", err, "session_id", s.SessionID)
		h.reportError(cmd)
		return
	}

	slog.Info("session finished", "session_id", s.SessionID, "user", cmd.UserID)
}

// openSetupModal is the default action: any other text becomes the initial
// title of a new session's setup dialog.
func (h *CommandHandler) openSetupModal(cmd slack.SlashCommand, title string) {
	defaults, err := h.defaults.Get(cmd.ChannelID)
	if err != nil {
		slog.Error("failed to load channel defaults", "error", err, "channel_id", cmd.ChannelID)
		h.reportFailure(cmd, "Failed to create Planning Poker session")
		return
	}
	if defaults == nil {
		defaults = &models.ChannelDefaults{
			ChannelID:    cmd.ChannelID,
			Participants: []string{cmd.UserID},
			Scores:       models.DefaultScores,
		}
	}
	// The modal's private metadata must name the channel the command came
	// from, whatever the stored record says.
	defaults.ChannelID = cmd.ChannelID

	if err := h.gateway.OpenView(cmd.TriggerID, view.ModalRequest(title, *defaults)); err != nil {
		slog.Error("failed to open setup modal", "error", err, "channel_id", cmd.ChannelID)
		h.reportFailure(cmd, "Failed to create Planning Poker session")
	}
}

// sessionAt resolves a list position for the command's channel. On a bad
// index it posts the range error itself and returns ok=false.
func (h *CommandHandler) sessionAt(cmd slack.SlashCommand, index int) (*models.Session, bool) {
	sessions, err := h.channelSessions(cmd.ChannelID)
	if err != nil {
		slog.Error("failed to list sessions", "error", err, "channel_id", cmd.ChannelID)
		h.reportError(cmd)
		return nil, false
	}

	if index < 0 || index > len(sessions)-1 {
		msg := fmt.Sprintf("Number must be between 0 and %d", len(sessions)-1)
		if err := h.gateway.PostResponse(cmd.ResponseURL, "ephemeral", msg, nil); err != nil {
			slog.Error("failed to post range error", "error", err)
		}
		return nil, false
	}

	return &sessions[index], true
}

// channelSessions returns the live sessions for a channel, in store scan
// order. The list position a user sees is just an index into this slice.
func (h *CommandHandler) channelSessions(channelID string) ([]models.Session, error) {
	all, err := h.sessions.ListAll()
	if err != nil {
		return nil, err
	}
	var sessions []models.Session
	for _, s := range all {
		if s.ChannelID == channelID {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

func (h *CommandHandler) reportError(cmd slack.SlashCommand) {
	h.reportFailure(cmd, genericError)
}

func (h *CommandHandler) reportFailure(cmd slack.SlashCommand, text string) {
	if err := h.gateway.PostResponse(cmd.ResponseURL, "ephemeral", text, nil); err != nil {
		slog.Error("failed to post error response", "error", err)
	}
}

func argIndex(re *regexp.Regexp, text string) int {
	// The regexp only matches with a digit group, so Atoi cannot fail.
	n, _ := strconv.Atoi(re.FindStringSubmatch(text)[1])
	return n
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/planning-poker/cliparse"
	"github.com/danielhkuo/planning-poker/middleware"
	"github.com/danielhkuo/planning-poker/models"
	"github.com/danielhkuo/planning-poker/session"
	"github.com/danielhkuo/planning-poker/slackapi"
	"github.com/danielhkuo/planning-poker/store"
	"github.com/danielhkuo/planning-poker/view"
)

var votingButtonRe = regexp.MustCompile(`^voting_buttons:\d+$`)

// InteractiveHandler dispatches Slack interactivity payloads: setup dialog
// submissions and vote button presses.
type InteractiveHandler struct {
	sessions *store.SessionStore
	defaults *store.DefaultsStore
	gateway  slackapi.Gateway
	cfg      cliparse.Config
}

func NewInteractiveHandler(db *sql.DB, gateway slackapi.Gateway, cfg cliparse.Config) *InteractiveHandler {
	return &InteractiveHandler{
		sessions: store.NewSessionStore(db),
		defaults: store.NewDefaultsStore(db),
		gateway:  gateway,
		cfg:      cfg,
	}
}

// HandleInteraction handles POST /slack/interactive
func (h *InteractiveHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	payload := r.FormValue("payload")
	if payload == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing payload")
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		slog.Error("failed to parse interaction payload", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	var err error
	switch callback.Type {
	case slack.InteractionTypeViewSubmission:
		err = h.handleViewSubmission(&callback)
	case slack.InteractionTypeBlockActions:
		err = h.handleBlockAction(&callback)
	}

	if err != nil {
		slog.Error("interaction handling failed", "type", callback.Type, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, genericError)
		return
	}

	// Empty 200 tells Slack to close the dialog if this was a view submission.
	w.WriteHeader(http.StatusOK)
}

// handleViewSubmission creates a session from the setup dialog and remembers
// the submitted participants/scores as the channel's new defaults.
func (h *InteractiveHandler) handleViewSubmission(callback *slack.InteractionCallback) error {
	if callback.View.CallbackID != view.ModalCallbackID || callback.View.State == nil {
		return nil
	}

	values := callback.View.State.Values
	title := values[view.TitleBlockID][view.TitleActionID].Value
	participants := values[view.ParticipantsBlockID][view.ParticipantsActionID].SelectedUsers
	scores := strings.Fields(values[view.ScoresBlockID][view.ScoresActionID].Value)

	// An incomplete dialog produces no session and no message. Silent by
	// policy: erroring here would leave the user in a confusing half-open
	// dialog flow.
	if len(participants) == 0 || len(scores) == 0 {
		return nil
	}

	channelID := callback.View.PrivateMetadata

	if err := h.defaults.Put(models.ChannelDefaults{
		ChannelID:    channelID,
		Participants: participants,
		Scores:       scores,
	}); err != nil {
		return err
	}

	s, err := session.New(title, callback.User.ID, channelID, participants, scores)
	if err != nil {
		// Emptiness was checked above; anything else is unexpected.
		return err
	}

	slog.Info("session created", "session_id", s.SessionID, "channel_id", channelID, "organiser", callback.User.ID)

	return showSession(h.gateway, h.sessions, s)
}

// handleBlockAction applies a vote from a score button press.
func (h *InteractiveHandler) handleBlockAction(callback *slack.InteractionCallback) error {
	if len(callback.ActionCallback.BlockActions) == 0 {
		return nil
	}
	action := callback.ActionCallback.BlockActions[0]
	if action.Type != "button" || !votingButtonRe.MatchString(action.BlockID) {
		return nil
	}

	// The action id is "<sessionID>:<score>"; the score also rides in the
	// button value, which is authoritative.
	sessionID, _, ok := strings.Cut(action.ActionID, ":")
	if !ok {
		return nil
	}
	vote := action.Value
	voterID := callback.User.ID

	s, err := h.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	if s == nil {
		// A stale button: the session completed, was cancelled, or expired.
		// Tell the actor, touch nothing.
		slog.Info("vote for missing session", "session_id", sessionID, "user", voterID)
		return h.gateway.PostEphemeral(callback.Channel.ID, voterID, "This session no longer exists")
	}

	if err := session.ApplyVote(s, voterID, vote); err != nil {
		if errors.Is(err, session.ErrNotParticipant) {
			slog.Info("vote from non-participant", "session_id", sessionID, "user", voterID)
			return h.gateway.PostEphemeral(callback.Channel.ID, voterID, "You are not a participant in this session")
		}
		return err
	}

	ts, err := h.gateway.UpdateMessage(s.ChannelID, s.MessageTS, view.ActiveTitle(s), view.ActiveBlocks(s))
	if err != nil {
		return err
	}
	s.MessageTS = ts
	if err := h.sessions.Put(s); err != nil {
		return err
	}

	slog.Info("vote recorded", "session_id", sessionID, "user", voterID)

	if session.IsComplete(s) {
		// Delete before revealing so completion fires at most once; a racing
		// vote now sees "session no longer exists" instead of re-triggering.
		if err := h.sessions.Delete(s.SessionID); err != nil {
			return err
		}
		if _, err := h.gateway.UpdateMessage(s.ChannelID, s.MessageTS, view.ResultTitle(s), view.ResultBlocks(s)); err != nil {
			return err
		}
		slog.Info("session complete", "session_id", sessionID)
	}

	return nil
}

// showSession posts the active view as a fresh message and persists the
// session with the new message timestamp.
func showSession(gateway slackapi.Gateway, sessions *store.SessionStore, s *models.Session) error {
	ts, err := gateway.PostMessage(s.ChannelID, view.ActiveTitle(s), view.ActiveBlocks(s))
	if err != nil {
		return err
	}
	s.MessageTS = ts
	return sessions.Put(s)
}

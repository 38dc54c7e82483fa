package view

import (
	"reflect"
	"strings"
	"testing"

	"github.com/slack-go/slack"

	"github.com/danielhkuo/planning-poker/models"
)

func testSession() *models.Session {
	return &models.Session{
		SessionID:       "sess-1",
		Title:           "Sprint 42",
		OrganiserUserID: "U0",
		ChannelID:       "C1",
		Participants:    []string{"U1", "U2", "U3"},
		Scores:          []string{"1", "2", "3"},
		Votes:           map[string]string{"U1": "2"},
	}
}

func actionBlocks(blocks []slack.Block) []*slack.ActionBlock {
	var actions []*slack.ActionBlock
	for _, b := range blocks {
		if ab, ok := b.(*slack.ActionBlock); ok {
			actions = append(actions, ab)
		}
	}
	return actions
}

func contextText(t *testing.T, blocks []slack.Block) string {
	t.Helper()
	for _, b := range blocks {
		cb, ok := b.(*slack.ContextBlock)
		if !ok {
			continue
		}
		for _, el := range cb.ContextElements.Elements {
			if text, ok := el.(*slack.TextBlockObject); ok {
				return text.Text
			}
		}
	}
	t.Fatal("no context block found")
	return ""
}

func TestActiveBlocksVoteStatus(t *testing.T) {
	s := testSession()
	blocks := ActiveBlocks(s)

	status := contextText(t, blocks)
	lines := strings.Split(status, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 status lines, got %d: %q", len(lines), status)
	}

	if lines[0] != "<@U1>: :white_check_mark:" {
		t.Errorf("voted participant line wrong: %q", lines[0])
	}
	if lines[1] != "<@U2>: not yet voted" {
		t.Errorf("unvoted participant line wrong: %q", lines[1])
	}

	// The chosen score must never leak while voting is open
	if strings.Contains(status, "2:") || strings.Contains(lines[0], " 2") {
		t.Errorf("active view leaks vote value: %q", lines[0])
	}
}

func TestActiveBlocksButtonWiring(t *testing.T) {
	s := testSession()
	blocks := ActiveBlocks(s)

	actions := actionBlocks(blocks)
	if len(actions) != 1 {
		t.Fatalf("expected 1 actions block for 3 scores, got %d", len(actions))
	}
	if actions[0].BlockID != "voting_buttons:0" {
		t.Errorf("unexpected block id %q", actions[0].BlockID)
	}

	elements := actions[0].Elements.ElementSet
	if len(elements) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(elements))
	}

	for i, el := range elements {
		button, ok := el.(*slack.ButtonBlockElement)
		if !ok {
			t.Fatalf("element %d is not a button", i)
		}
		want := s.Scores[i]
		if button.Value != want {
			t.Errorf("button %d value: expected %q, got %q", i, want, button.Value)
		}
		if button.ActionID != "sess-1:"+want {
			t.Errorf("button %d action id: expected %q, got %q", i, "sess-1:"+want, button.ActionID)
		}
	}
}

func TestActiveBlocksChunksScores(t *testing.T) {
	s := testSession()
	s.Scores = []string{"0", "1", "2", "3", "5", "8", "13", "21", "34", "55", "89", "144"}

	actions := actionBlocks(ActiveBlocks(s))
	if len(actions) != 3 {
		t.Fatalf("expected 3 button rows for 12 scores, got %d", len(actions))
	}

	sizes := []int{len(actions[0].Elements.ElementSet), len(actions[1].Elements.ElementSet), len(actions[2].Elements.ElementSet)}
	if sizes[0] != 5 || sizes[1] != 5 || sizes[2] != 2 {
		t.Errorf("expected row sizes 5,5,2, got %v", sizes)
	}

	// Original order preserved across rows
	var got []string
	for _, ab := range actions {
		for _, el := range ab.Elements.ElementSet {
			got = append(got, el.(*slack.ButtonBlockElement).Value)
		}
	}
	if !reflect.DeepEqual(got, s.Scores) {
		t.Errorf("expected score order %v, got %v", s.Scores, got)
	}
}

func TestActiveBlocksCollapsesDuplicateScores(t *testing.T) {
	s := testSession()
	s.Scores = []string{"1", "1", "2"}

	actions := actionBlocks(ActiveBlocks(s))
	if len(actions) != 1 {
		t.Fatalf("expected 1 button row, got %d", len(actions))
	}

	elements := actions[0].Elements.ElementSet
	if len(elements) != 2 {
		t.Fatalf("expected 2 distinct buttons for [1 1 2], got %d", len(elements))
	}
	if elements[0].(*slack.ButtonBlockElement).Value != "1" || elements[1].(*slack.ButtonBlockElement).Value != "2" {
		t.Error("duplicate collapse changed score order")
	}
}

func TestActiveBlocksDeterministic(t *testing.T) {
	s := testSession()
	first := ActiveBlocks(s)
	second := ActiveBlocks(s)
	if !reflect.DeepEqual(first, second) {
		t.Error("rendering the same session twice produced different blocks")
	}
}

func TestResultBlocks(t *testing.T) {
	s := testSession()
	s.Votes = map[string]string{"U1": "2", "U3": "1"}

	blocks := ResultBlocks(s)
	votes := contextText(t, blocks)
	lines := strings.Split(votes, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 result lines, got %d", len(lines))
	}

	if lines[0] != "<@U1>: 2" {
		t.Errorf("expected recorded vote line, got %q", lines[0])
	}
	if lines[1] != "<@U2> did not vote" {
		t.Errorf("expected abstainer line, got %q", lines[1])
	}
	if lines[2] != "<@U3>: 1" {
		t.Errorf("expected recorded vote line, got %q", lines[2])
	}

	if len(actionBlocks(blocks)) != 0 {
		t.Error("result view must not contain voting buttons")
	}
}

func TestListBlocks(t *testing.T) {
	sessions := []models.Session{
		{SessionID: "a", Title: "First"},
		{SessionID: "b", Title: "Second"},
	}

	blocks := ListBlocks(sessions)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 list blocks, got %d", len(blocks))
	}

	first, ok := blocks[0].(*slack.SectionBlock)
	if !ok {
		t.Fatal("list block is not a section")
	}
	if first.Text.Text != "0: First" {
		t.Errorf("expected numbered line, got %q", first.Text.Text)
	}
	second := blocks[1].(*slack.SectionBlock)
	if second.Text.Text != "1: Second" {
		t.Errorf("expected numbered line, got %q", second.Text.Text)
	}
}

func TestModalRequest(t *testing.T) {
	defaults := models.ChannelDefaults{
		ChannelID:    "C1",
		Participants: []string{"U1", "U2"},
		Scores:       []string{"1", "2", "3"},
	}

	modal := ModalRequest("Sprint 42", defaults)

	if modal.CallbackID != ModalCallbackID {
		t.Errorf("unexpected callback id %q", modal.CallbackID)
	}
	if modal.PrivateMetadata != "C1" {
		t.Errorf("expected channel id in private metadata, got %q", modal.PrivateMetadata)
	}

	blocks := modal.Blocks.BlockSet
	if len(blocks) != 3 {
		t.Fatalf("expected 3 input blocks, got %d", len(blocks))
	}

	titleBlock := blocks[0].(*slack.InputBlock)
	titleInput := titleBlock.Element.(*slack.PlainTextInputBlockElement)
	if titleInput.InitialValue != "Sprint 42" {
		t.Errorf("title not pre-filled: %q", titleInput.InitialValue)
	}

	participantsBlock := blocks[1].(*slack.InputBlock)
	participantsInput := participantsBlock.Element.(*slack.MultiSelectBlockElement)
	if !reflect.DeepEqual(participantsInput.InitialUsers, defaults.Participants) {
		t.Errorf("participants not pre-filled: %v", participantsInput.InitialUsers)
	}

	scoresBlock := blocks[2].(*slack.InputBlock)
	scoresInput := scoresBlock.Element.(*slack.PlainTextInputBlockElement)
	if scoresInput.InitialValue != "1 2 3" {
		t.Errorf("scores not pre-filled: %q", scoresInput.InitialValue)
	}
}

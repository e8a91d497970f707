package session

import (
	"testing"

	"github.com/bporterfield/watch-claude-think/pkg/models"
)

func TestDeduperFiltersRepeats(t *testing.T) {
	d := NewDeduper()

	first := []models.Message{
		{ID: "msg_01", BlockIndex: 0, Kind: models.KindThinking, Text: "a"},
		{ID: "msg_01", BlockIndex: 1, Kind: models.KindText, Text: "b"},
	}
	if got := d.Filter(first); len(got) != 2 {
		t.Fatalf("first pass kept %d fragments, want 2", len(got))
	}

	// The CLI rewrites the record with an extra block; only the new block
	// may surface.
	second := []models.Message{
		{ID: "msg_01", BlockIndex: 0, Kind: models.KindThinking, Text: "a"},
		{ID: "msg_01", BlockIndex: 1, Kind: models.KindText, Text: "b"},
		{ID: "msg_01", BlockIndex: 2, Kind: models.KindToolUse, ToolName: "Bash"},
	}
	got := d.Filter(second)
	if len(got) != 1 || got[0].BlockIndex != 2 {
		t.Fatalf("second pass = %+v, want only block 2", got)
	}
}

func TestDeduperDistinguishesMessages(t *testing.T) {
	d := NewDeduper()
	d.Filter([]models.Message{{ID: "msg_01", BlockIndex: 0}})

	got := d.Filter([]models.Message{{ID: "msg_02", BlockIndex: 0}})
	if len(got) != 1 {
		t.Errorf("same block index on a new message was suppressed")
	}
}

func TestDeduperReset(t *testing.T) {
	d := NewDeduper()
	msgs := []models.Message{{ID: "msg_01", BlockIndex: 0}}
	d.Filter(msgs)
	d.Reset()

	if got := d.Filter(msgs); len(got) != 1 {
		t.Error("fragment suppressed after reset")
	}
}

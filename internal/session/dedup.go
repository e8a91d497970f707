package session

import "github.com/bporterfield/watch-claude-think/pkg/models"

// Deduper suppresses fragments already shown. Claude Code rewrites assistant
// records as blocks stream in, so the same message UUID and block index can
// appear on several lines; only the first sighting is displayed.
type Deduper struct {
	seen map[string]bool
}

// NewDeduper creates an empty deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]bool)}
}

// Filter returns the messages not seen before, marking them seen.
func (d *Deduper) Filter(msgs []models.Message) []models.Message {
	var fresh []models.Message
	for _, m := range msgs {
		key := m.Key()
		if d.seen[key] {
			continue
		}
		d.seen[key] = true
		fresh = append(fresh, m)
	}
	return fresh
}

// Reset forgets all seen fragments. Used when a log file is truncated and the
// transcript is replayed from the start.
func (d *Deduper) Reset() {
	d.seen = make(map[string]bool)
}

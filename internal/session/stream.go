package session

import (
	"github.com/bporterfield/watch-claude-think/pkg/models"
)

// Stream combines tailing, parsing, deduplication, and naming for one session
// log. Each Poll returns the new display fragments since the previous poll.
// Not safe for concurrent use.
type Stream struct {
	tailer *Tailer
	dedup  *Deduper
	namer  *Namer

	total int
}

// NewStream creates a stream over the session log at path, positioned at the
// start of the file so the first poll replays the existing transcript.
func NewStream(path string) *Stream {
	return &Stream{
		tailer: NewTailer(path),
		dedup:  NewDeduper(),
		namer:  &Namer{},
	}
}

// Poll reads newly appended lines and returns the fresh fragments in log
// order. Lines that fail to parse are skipped; a watch outlives individual
// malformed records.
func (s *Stream) Poll() ([]models.Message, error) {
	lines, truncated, err := s.tailer.Next()
	if err != nil {
		return nil, err
	}
	if truncated {
		// Rewound to the start: the replay must not be suppressed.
		s.dedup.Reset()
	}

	var fresh []models.Message
	for _, line := range lines {
		res, err := ParseLine(line)
		if err != nil {
			continue
		}
		s.namer.Observe(res)
		fresh = append(fresh, s.dedup.Filter(res.Messages)...)
	}
	s.total += len(fresh)
	return fresh, nil
}

// Name returns the session name derived so far, or "".
func (s *Stream) Name() string { return s.namer.Name() }

// Total returns the number of fragments emitted since the stream started.
func (s *Stream) Total() int { return s.total }

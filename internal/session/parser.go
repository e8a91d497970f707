// Package session reads Claude Code session logs: append-only JSONL files
// where each line is one conversation record. The package parses raw lines
// into message fragments, tails a growing file from a byte offset, suppresses
// duplicate fragments, and derives a human-readable session name.
package session

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/bporterfield/watch-claude-think/pkg/models"
)

// rawRecord is the subset of one JSONL line we care about. Unknown fields are
// ignored so new record types in the log format never break parsing.
type rawRecord struct {
	Type      string     `json:"type"`
	UUID      string     `json:"uuid"`
	SessionID string     `json:"sessionId"`
	Timestamp time.Time  `json:"timestamp"`
	Summary   string     `json:"summary"`
	IsMeta    bool       `json:"isMeta"`
	Message   rawMessage `json:"message"`
	Content   string     `json:"content"`
	CWD       string     `json:"cwd"`
}

type rawMessage struct {
	ID      string          `json:"id"`
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
}

// rawBlock is one content block inside an assistant or user message. The
// content field is either a plain string or an array of these.
type rawBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Thinking string `json:"thinking"`
	Name     string `json:"name"`
}

// LineResult is what one JSONL line yields: zero or more message fragments,
// and possibly a session summary.
type LineResult struct {
	Messages []models.Message
	// Summary is non-empty when the line is a summary record. Summaries
	// name the session but are never displayed as transcript content.
	Summary string
	// CWD is the working directory recorded on the line, when present.
	CWD string
}

// ParseLine parses a single JSONL line. Blank lines and records of no
// interest yield an empty result with a nil error. A malformed line returns
// the unmarshal error; callers skip the line and keep tailing, because one
// bad line must never kill a watch.
func ParseLine(line []byte) (LineResult, error) {
	if len(strings.TrimSpace(string(line))) == 0 {
		return LineResult{}, nil
	}

	var rec rawRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return LineResult{}, err
	}

	res := LineResult{CWD: rec.CWD}
	switch rec.Type {
	case "summary":
		res.Summary = rec.Summary
	case "user":
		if rec.IsMeta {
			break
		}
		res.Messages = userMessages(rec)
	case "assistant":
		res.Messages = assistantMessages(rec)
	case "system":
		if text := strings.TrimSpace(rec.Content); text != "" {
			res.Messages = []models.Message{{
				ID:        recordID(rec),
				Kind:      models.KindSystem,
				Text:      text,
				Timestamp: rec.Timestamp,
				SessionID: rec.SessionID,
			}}
		}
	}
	return res, nil
}

// userMessages extracts the human prompt from a user record. Tool results are
// also delivered as user-role records; those carry block arrays without text
// and are dropped here.
func userMessages(rec rawRecord) []models.Message {
	text := ""
	if len(rec.Message.Content) > 0 {
		// Content is either a bare string or an array of blocks.
		var s string
		if err := json.Unmarshal(rec.Message.Content, &s); err == nil {
			text = s
		} else {
			var blocks []rawBlock
			if err := json.Unmarshal(rec.Message.Content, &blocks); err == nil {
				var parts []string
				for _, b := range blocks {
					if b.Type == "text" && strings.TrimSpace(b.Text) != "" {
						parts = append(parts, b.Text)
					}
				}
				text = strings.Join(parts, "\n")
			}
		}
	}
	text = strings.TrimSpace(text)
	if text == "" || isToolResultEcho(text) {
		return nil
	}
	return []models.Message{{
		ID:        recordID(rec),
		Kind:      models.KindUserPrompt,
		Text:      text,
		Timestamp: rec.Timestamp,
		SessionID: rec.SessionID,
	}}
}

// assistantMessages splits an assistant record into per-block fragments so
// thinking, text, and tool use render independently as they stream in.
func assistantMessages(rec rawRecord) []models.Message {
	var blocks []rawBlock
	if err := json.Unmarshal(rec.Message.Content, &blocks); err != nil {
		return nil
	}

	id := rec.Message.ID
	if id == "" {
		id = recordID(rec)
	}

	var msgs []models.Message
	for i, b := range blocks {
		msg := models.Message{
			ID:         id,
			BlockIndex: i,
			Timestamp:  rec.Timestamp,
			SessionID:  rec.SessionID,
		}
		switch b.Type {
		case "thinking":
			if strings.TrimSpace(b.Thinking) == "" {
				continue
			}
			msg.Kind = models.KindThinking
			msg.Text = b.Thinking
		case "text":
			if strings.TrimSpace(b.Text) == "" {
				continue
			}
			msg.Kind = models.KindText
			msg.Text = b.Text
		case "tool_use":
			msg.Kind = models.KindToolUse
			msg.ToolName = b.Name
		default:
			continue
		}
		msgs = append(msgs, msg)
	}
	return msgs
}

// isToolResultEcho recognizes the synthetic user records the CLI writes after
// tool calls. They carry bracketed markers instead of human text.
func isToolResultEcho(text string) bool {
	return strings.HasPrefix(text, "[Request interrupted") ||
		strings.HasPrefix(text, "<command-name>") ||
		strings.HasPrefix(text, "<local-command-stdout>")
}

func recordID(rec rawRecord) string {
	if rec.UUID != "" {
		return rec.UUID
	}
	return rec.Message.ID
}

package models

import (
	"fmt"
	"time"
)

// MessageKind classifies a fragment extracted from a session log.
type MessageKind string

const (
	// KindThinking is an assistant thinking block.
	KindThinking MessageKind = "thinking"
	// KindText is an assistant text block.
	KindText MessageKind = "text"
	// KindUserPrompt is a message typed by the human user.
	KindUserPrompt MessageKind = "user_prompt"
	// KindToolUse is an assistant tool invocation.
	KindToolUse MessageKind = "tool_use"
	// KindSystem is a system record (init, compaction, and similar).
	KindSystem MessageKind = "system"
)

// Valid returns true if the kind is a known value.
func (k MessageKind) Valid() bool {
	switch k {
	case KindThinking, KindText, KindUserPrompt, KindToolUse, KindSystem:
		return true
	default:
		return false
	}
}

// Message is one display fragment extracted from a session log record.
// A single log record can yield several messages (one per content block).
type Message struct {
	// ID is the UUID of the log record the fragment came from.
	ID string `json:"id"`
	// BlockIndex is the content-block position within the record.
	BlockIndex int `json:"block_index"`
	// Kind classifies the fragment.
	Kind MessageKind `json:"kind"`
	// Text is the display text of the fragment.
	Text string `json:"text"`
	// ToolName is set for tool_use fragments.
	ToolName string `json:"tool_name,omitempty"`
	// Timestamp is when the record was written, used only for ordering
	// on the producer side.
	Timestamp time.Time `json:"timestamp"`
	// SessionID is the session the fragment belongs to.
	SessionID string `json:"session_id,omitempty"`
}

// Key returns the deduplication key for this fragment. Claude rewrites
// messages across streaming checkpoints, so the same record UUID and block
// index can appear more than once in a log file.
func (m *Message) Key() string {
	return fmt.Sprintf("%s:%d", m.ID, m.BlockIndex)
}

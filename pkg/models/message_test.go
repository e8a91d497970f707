package models

import "testing"

func TestMessageKindValid(t *testing.T) {
	valid := []MessageKind{KindThinking, KindText, KindUserPrompt, KindToolUse, KindSystem}
	for _, k := range valid {
		if !k.Valid() {
			t.Errorf("%q reported invalid", k)
		}
	}
	if MessageKind("bogus").Valid() {
		t.Error("unknown kind reported valid")
	}
	if MessageKind("").Valid() {
		t.Error("empty kind reported valid")
	}
}

func TestMessageKey(t *testing.T) {
	a := Message{ID: "msg_01", BlockIndex: 0}
	b := Message{ID: "msg_01", BlockIndex: 1}
	c := Message{ID: "msg_02", BlockIndex: 0}

	if a.Key() == b.Key() {
		t.Error("different blocks share a key")
	}
	if a.Key() == c.Key() {
		t.Error("different messages share a key")
	}
	if a.Key() != (&Message{ID: "msg_01", BlockIndex: 0}).Key() {
		t.Error("identical fragments have different keys")
	}
}

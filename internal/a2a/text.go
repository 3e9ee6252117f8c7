package a2a

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractText is the single place where message text is read. It tries, in
// order:
//
//  1. all text parts, joined with newlines;
//  2. a string "text" field of the first data part;
//  3. the empty string.
func ExtractText(msg Message) string {
	var texts []string
	for _, p := range msg.Parts {
		if p.Kind == PartKindText && p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	if len(texts) > 0 {
		return strings.Join(texts, "\n")
	}
	for _, p := range msg.Parts {
		if p.Kind != PartKindData {
			continue
		}
		if s, ok := p.Data["text"].(string); ok {
			return s
		}
		break
	}
	return ""
}

// ExtractData decodes the first data part of msg into v. It reports false
// when the message carries no data part.
func ExtractData(msg Message, v any) (bool, error) {
	for _, p := range msg.Parts {
		if p.Kind != PartKindData || p.Data == nil {
			continue
		}
		raw, err := json.Marshal(p.Data)
		if err != nil {
			return true, fmt.Errorf("re-encode data part: %w", err)
		}
		if err := json.Unmarshal(raw, v); err != nil {
			return true, fmt.Errorf("decode data part: %w", err)
		}
		return true, nil
	}
	return false, nil
}

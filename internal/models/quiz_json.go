package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON accepts any JSON scalar where text is expected. Numbers and
// booleans keep their literal spelling ("3", "true"), null becomes "".
func (q *QuizItem) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw struct {
		Question      json.RawMessage            `json:"question"`
		Options       map[string]json.RawMessage `json:"options"`
		CorrectAnswer json.RawMessage            `json:"correct_answer"`
		Explanation   json.RawMessage            `json:"explanation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var item QuizItem
	var err error
	if item.Question, err = scalarText(raw.Question); err != nil {
		return fmt.Errorf("question: %w", err)
	}
	if item.CorrectAnswer, err = scalarText(raw.CorrectAnswer); err != nil {
		return fmt.Errorf("correct_answer: %w", err)
	}
	if item.Explanation, err = scalarText(raw.Explanation); err != nil {
		return fmt.Errorf("explanation: %w", err)
	}
	if raw.Options != nil {
		item.Options = make(map[string]string, len(raw.Options))
		for label, v := range raw.Options {
			if item.Options[label], err = scalarText(v); err != nil {
				return fmt.Errorf("options[%s]: %w", label, err)
			}
		}
	}

	*q = item
	return nil
}

// scalarText renders a raw JSON value as display text. Objects and arrays
// are kept as their compact JSON.
func scalarText(v json.RawMessage) (string, error) {
	v = bytes.TrimSpace(v)
	switch {
	case len(v) == 0, bytes.Equal(v, []byte("null")):
		return "", nil
	case v[0] == '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return "", err
		}
		return s, nil
	case v[0] == '{', v[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, v); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return string(v), nil
	}
}

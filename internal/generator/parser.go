package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

var (
	// ErrEmptyReply means the model answered without any text payload.
	ErrEmptyReply = errors.New("model reply has no text content")
	// ErrUnexpectedFormat means the cleaned reply is not a JSON array.
	ErrUnexpectedFormat = errors.New("unexpected reply format")
)

// ParseQuizReply turns the raw model text into quiz items. Surrounding
// whitespace and markdown code fences are removed first, and the cleaned text
// must open a JSON array. The items are returned exactly as decoded.
func ParseQuizReply(raw string) ([]models.QuizItem, error) {
	cleaned := stripCodeFences(raw)

	if !strings.HasPrefix(cleaned, "[") {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedFormat, preview(cleaned, 200))
	}

	var items []models.QuizItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON reply: %w", err)
	}
	if items == nil {
		items = []models.QuizItem{}
	}

	return items, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func preview(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// CheckQuizItems reports, without rejecting anything, where the items drift
// from what was asked for: a different question count, option labels other
// than A-D, or a correct_answer that is not one of the labels.
func CheckQuizItems(items []models.QuizItem, requested int) []string {
	var warnings []string

	if len(items) != requested {
		warnings = append(warnings, fmt.Sprintf("requested %d questions, got %d", requested, len(items)))
	}

	for i, item := range items {
		qNum := i + 1

		if !hasExactLabels(item.Options) {
			warnings = append(warnings, fmt.Sprintf("question %d: option labels %v, expected %v", qNum, sortedKeys(item.Options), models.OptionLabels))
		}
		if _, ok := item.Options[item.CorrectAnswer]; !ok {
			warnings = append(warnings, fmt.Sprintf("question %d: correct_answer %q is not an option label", qNum, item.CorrectAnswer))
		}
		if strings.TrimSpace(item.Question) == "" {
			warnings = append(warnings, fmt.Sprintf("question %d: empty question text", qNum))
		}
	}

	return warnings
}

func hasExactLabels(options map[string]string) bool {
	if len(options) != len(models.OptionLabels) {
		return false
	}
	for _, label := range models.OptionLabels {
		if _, ok := options[label]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

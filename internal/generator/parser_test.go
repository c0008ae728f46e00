package generator

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

func validItems(count int) []models.QuizItem {
	labels := models.OptionLabels
	items := make([]models.QuizItem, count)
	for i := 0; i < count; i++ {
		items[i] = models.QuizItem{
			Question: "Which planet is known as the Red Planet?",
			Options: map[string]string{
				"A": "Venus",
				"B": "Mars",
				"C": "Jupiter",
				"D": "Mercury",
			},
			CorrectAnswer: labels[i%len(labels)],
			Explanation:   "Iron oxide on the surface gives Mars its red color.",
		}
	}
	return items
}

func validReplyJSON(count int) string {
	data, _ := json.Marshal(validItems(count))
	return string(data)
}

func TestParseQuizReply_ValidJSON(t *testing.T) {
	items, err := ParseQuizReply(validReplyJSON(4))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if !reflect.DeepEqual(items, validItems(4)) {
		t.Errorf("decoded items differ from input:\n got: %+v\nwant: %+v", items, validItems(4))
	}
}

func TestParseQuizReply_MarkdownFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"json fence", "```json\n" + validReplyJSON(3) + "\n```"},
		{"bare fence", "```\n" + validReplyJSON(3) + "\n```"},
		{"surrounding whitespace", "\n\t  " + validReplyJSON(3) + "  \n"},
		{"fence with outer whitespace", "  \n```json" + validReplyJSON(3) + "```\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseQuizReply(tt.input)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if !reflect.DeepEqual(items, validItems(3)) {
				t.Errorf("decoded items differ from input: %+v", items)
			}
		})
	}
}

func TestParseQuizReply_NotAnArray(t *testing.T) {
	tests := []string{
		`{"questions": []}`,
		"Sure! Here is your quiz:\n" + validReplyJSON(1),
		"",
		"   ",
		"```json\n```",
	}

	for _, input := range tests {
		items, err := ParseQuizReply(input)
		if err == nil {
			t.Errorf("input %q: expected error, got items %+v", input, items)
			continue
		}
		if !errors.Is(err, ErrUnexpectedFormat) {
			t.Errorf("input %q: expected ErrUnexpectedFormat, got: %v", input, err)
		}
		if items != nil {
			t.Errorf("input %q: expected nil items on failure", input)
		}
	}
}

func TestParseQuizReply_MalformedJSON(t *testing.T) {
	_, err := ParseQuizReply(`[{"question": "unterminated"`)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}

	// Starts with "[" so it must be a decode error, not a format error
	if errors.Is(err, ErrUnexpectedFormat) {
		t.Fatal("expected decode error, not ErrUnexpectedFormat")
	}
}

func TestParseQuizReply_WrongElementType(t *testing.T) {
	if _, err := ParseQuizReply(`[1, 2, 3]`); err == nil {
		t.Fatal("expected error for array of numbers")
	}
}

func TestParseQuizReply_EmptyArray(t *testing.T) {
	items, err := ParseQuizReply("```json\n[]\n```")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", items)
	}
}

func TestParseQuizReply_LenientShape(t *testing.T) {
	// Three options and an answer outside them still decode unchanged
	input := `[{"question":"Q","options":{"A":"1","B":"2","C":"3"},"correct_answer":"E","explanation":"x"}]`

	items, err := ParseQuizReply(input)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(items) != 1 || len(items[0].Options) != 3 || items[0].CorrectAnswer != "E" {
		t.Errorf("item should be returned as decoded, got %+v", items)
	}
}

func TestParseQuizReply_NumericOptions(t *testing.T) {
	input := "```json\n" + `[{"question":"2+2?","options":{"A":3,"B":4,"C":5,"D":6},"correct_answer":"B","explanation":"2+2 is 4."}]` + "\n```"

	items, err := ParseQuizReply(input)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := []models.QuizItem{{
		Question:      "2+2?",
		Options:       map[string]string{"A": "3", "B": "4", "C": "5", "D": "6"},
		CorrectAnswer: "B",
		Explanation:   "2+2 is 4.",
	}}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("expected %+v, got %+v", want, items)
	}
	if warnings := CheckQuizItems(items, 1); len(warnings) != 0 {
		t.Errorf("numeric options should pass the drift checks, got %v", warnings)
	}
}

func TestCheckQuizItems(t *testing.T) {
	good := validItems(2)
	if warnings := CheckQuizItems(good, 2); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}

	bad := validItems(2)
	bad[0].CorrectAnswer = "E"
	bad[1].Options = map[string]string{"A": "x", "B": "y", "C": "z", "E": "w"}

	warnings := CheckQuizItems(bad, 3)
	want := []string{
		"requested 3 questions, got 2",
		"question 1: correct_answer \"E\"",
		"question 2: option labels",
	}
	for _, w := range want {
		found := false
		for _, got := range warnings {
			if strings.Contains(got, w) {
				found = true
			}
		}
		if !found {
			t.Errorf("expected a warning containing %q, got %v", w, warnings)
		}
	}
}

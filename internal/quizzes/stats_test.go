package quizzes

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

func doc(id string, data map[string]interface{}) models.QuizDocument {
	return models.QuizDocument{ID: id, Data: data}
}

func TestAggregateStats_Empty(t *testing.T) {
	stats, err := AggregateStats(nil)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if stats.TotalQuizzes != 0 || stats.CorrectAnswers != 0 || stats.WrongAnswers != 0 {
		t.Errorf("expected zero totals, got %+v", stats)
	}
	if stats.DailyStats == nil || len(stats.DailyStats) != 0 {
		t.Errorf("expected empty non-nil daily_stats, got %#v", stats.DailyStats)
	}
	if stats.QuizzesList == nil || len(stats.QuizzesList) != 0 {
		t.Errorf("expected empty non-nil quizzes_list, got %#v", stats.QuizzesList)
	}

	data, _ := json.Marshal(stats)
	if !strings.Contains(string(data), `"daily_stats":{}`) || !strings.Contains(string(data), `"quizzes_list":[]`) {
		t.Errorf("empty collections should encode as {} and [], got %s", data)
	}
}

func TestAggregateStats_SameDay(t *testing.T) {
	docs := []models.QuizDocument{
		doc("q1", map[string]interface{}{"timestamp": "2024-01-02T10:00", "correct_answers": int64(3), "wrong_answers": int64(1)}),
		doc("q2", map[string]interface{}{"timestamp": "2024-01-02T09:00", "correct_answers": int64(2), "wrong_answers": int64(0)}),
	}

	stats, err := AggregateStats(docs)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if stats.TotalQuizzes != 2 {
		t.Errorf("expected total_quizzes 2, got %d", stats.TotalQuizzes)
	}
	if stats.CorrectAnswers != 5 {
		t.Errorf("expected correct_answers 5, got %d", stats.CorrectAnswers)
	}
	if stats.WrongAnswers != 1 {
		t.Errorf("expected wrong_answers 1, got %d", stats.WrongAnswers)
	}
	if !reflect.DeepEqual(stats.DailyStats, map[string]int{"2024-01-02": 2}) {
		t.Errorf("unexpected daily_stats %v", stats.DailyStats)
	}
	if len(stats.QuizzesList) != 2 || stats.QuizzesList[0].QuizID != "q1" || stats.QuizzesList[1].QuizID != "q2" {
		t.Errorf("expected order [q1 q2], got %+v", stats.QuizzesList)
	}
}

func TestAggregateStats_SortAndBuckets(t *testing.T) {
	docs := []models.QuizDocument{
		doc("old", map[string]interface{}{"timestamp": "2023-12-31T23:59:59", "correct_answers": 1, "wrong_answers": 4, "score": 20.0, "num_questions": 5}),
		doc("new", map[string]interface{}{"timestamp": "2024-03-01T08:00:00", "correct_answers": 5, "wrong_answers": 0, "score": 100.0, "num_questions": 5}),
		doc("mid", map[string]interface{}{"timestamp": "2024-01-15T12:00:00", "correct_answers": 3, "wrong_answers": 2, "score": 60.0, "num_questions": 5}),
		doc("mid2", map[string]interface{}{"timestamp": "2024-01-15T07:30:00", "correct_answers": 2, "wrong_answers": 3, "score": 40.0, "num_questions": 5}),
	}

	stats, err := AggregateStats(docs)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if stats.CorrectAnswers != 11 || stats.WrongAnswers != 9 {
		t.Errorf("unexpected sums correct=%d wrong=%d", stats.CorrectAnswers, stats.WrongAnswers)
	}

	wantDaily := map[string]int{"2023-12-31": 1, "2024-03-01": 1, "2024-01-15": 2}
	if !reflect.DeepEqual(stats.DailyStats, wantDaily) {
		t.Errorf("expected daily_stats %v, got %v", wantDaily, stats.DailyStats)
	}

	var order []string
	for _, q := range stats.QuizzesList {
		order = append(order, q.QuizID)
	}
	if !reflect.DeepEqual(order, []string{"new", "mid", "mid2", "old"}) {
		t.Errorf("expected newest first, got %v", order)
	}

	first := stats.QuizzesList[0]
	want := models.QuizRecord{QuizID: "new", Score: 100, NumQuestions: 5, CorrectAnswers: 5, WrongAnswers: 0, Timestamp: "2024-03-01T08:00:00"}
	if first != want {
		t.Errorf("expected record %+v, got %+v", want, first)
	}
}

func TestAggregateStats_MissingFields(t *testing.T) {
	docs := []models.QuizDocument{
		doc("bare", map[string]interface{}{}),
		doc("dated", map[string]interface{}{"timestamp": "2024-05-05T00:00:00Z", "correct_answers": 2}),
		doc("nodate", map[string]interface{}{"wrong_answers": 1}),
	}

	stats, err := AggregateStats(docs)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if stats.TotalQuizzes != 3 || stats.CorrectAnswers != 2 || stats.WrongAnswers != 1 {
		t.Errorf("unexpected totals %+v", stats)
	}
	if stats.DailyStats["unknown"] != 2 || stats.DailyStats["2024-05-05"] != 1 {
		t.Errorf("unexpected daily_stats %v", stats.DailyStats)
	}

	// "N/A" sorts above ISO dates; equal keys keep their input order
	var order []string
	for _, q := range stats.QuizzesList {
		order = append(order, q.QuizID)
		if q.QuizID != "dated" && q.Timestamp != "N/A" {
			t.Errorf("quiz %s: expected timestamp N/A, got %q", q.QuizID, q.Timestamp)
		}
		if q.QuizID == "bare" && (q.Score != 0 || q.NumQuestions != 0) {
			t.Errorf("absent score/num_questions should be 0, got %+v", q)
		}
	}
	if !reflect.DeepEqual(order, []string{"bare", "nodate", "dated"}) {
		t.Errorf("unexpected order %v", order)
	}
}

func TestAggregateStats_TimestampWithoutT(t *testing.T) {
	stats, err := AggregateStats([]models.QuizDocument{
		doc("a", map[string]interface{}{"timestamp": "2024-01-02 10:00"}),
		doc("b", map[string]interface{}{"timestamp": ""}),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stats.DailyStats["2024-01-02 10:00"] != 1 || stats.DailyStats[""] != 1 {
		t.Errorf("whole timestamp should be the key when there is no T, got %v", stats.DailyStats)
	}
}

func TestAggregateStats_NativeTimestamp(t *testing.T) {
	ts := time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC)
	stats, err := AggregateStats([]models.QuizDocument{
		doc("a", map[string]interface{}{"timestamp": ts, "correct_answers": 1}),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stats.DailyStats["2024-02-29"] != 1 {
		t.Errorf("expected 2024-02-29 bucket, got %v", stats.DailyStats)
	}
	if stats.QuizzesList[0].Timestamp != "2024-02-29T18:30:00Z" {
		t.Errorf("unexpected rendered timestamp %q", stats.QuizzesList[0].Timestamp)
	}
}

func TestAggregateStats_NumericKinds(t *testing.T) {
	stats, err := AggregateStats([]models.QuizDocument{
		doc("a", map[string]interface{}{"correct_answers": int32(2), "wrong_answers": float64(1)}),
		doc("b", map[string]interface{}{"correct_answers": json.Number("4"), "wrong_answers": nil}),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stats.CorrectAnswers != 6 || stats.WrongAnswers != 1 {
		t.Errorf("unexpected sums correct=%d wrong=%d", stats.CorrectAnswers, stats.WrongAnswers)
	}
}

func TestAggregateStats_BoolAndFractionalCounts(t *testing.T) {
	stats, err := AggregateStats([]models.QuizDocument{
		doc("a", map[string]interface{}{"correct_answers": true, "wrong_answers": false}),
		doc("b", map[string]interface{}{"correct_answers": 2.5, "wrong_answers": true}),
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if stats.CorrectAnswers != 3 || stats.WrongAnswers != 1 {
		t.Errorf("expected correct=3 wrong=1, got correct=%d wrong=%d", stats.CorrectAnswers, stats.WrongAnswers)
	}
	if stats.QuizzesList[0].CorrectAnswers != 1 || stats.QuizzesList[1].CorrectAnswers != 2 {
		t.Errorf("unexpected per-quiz counts %+v", stats.QuizzesList)
	}
}

func TestAggregateStats_NonNumericCount(t *testing.T) {
	_, err := AggregateStats([]models.QuizDocument{
		doc("ok", map[string]interface{}{"correct_answers": 1}),
		doc("broken", map[string]interface{}{"correct_answers": "three"}),
	})
	if err == nil {
		t.Fatal("expected error for non-numeric correct_answers")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the quiz, got: %v", err)
	}
}

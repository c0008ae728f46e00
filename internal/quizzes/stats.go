package quizzes

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

const (
	unknownDate      = "unknown"
	missingTimestamp = "N/A"
)

// AggregateStats folds a user's quiz documents into UserStats. Dates are the
// text before the first "T" of the timestamp, and quizzes_list is ordered by
// timestamp string, newest first. Timestamps are compared as plain strings.
func AggregateStats(docs []models.QuizDocument) (*models.UserStats, error) {
	stats := &models.UserStats{
		TotalQuizzes: len(docs),
		DailyStats:   make(map[string]int),
		QuizzesList:  make([]models.QuizRecord, 0, len(docs)),
	}

	for _, doc := range docs {
		correct, err := countField(doc.Data, models.FieldCorrectAnswers)
		if err != nil {
			return nil, fmt.Errorf("quiz %s: %w", doc.ID, err)
		}
		wrong, err := countField(doc.Data, models.FieldWrongAnswers)
		if err != nil {
			return nil, fmt.Errorf("quiz %s: %w", doc.ID, err)
		}

		stats.CorrectAnswers += correct
		stats.WrongAnswers += wrong

		record := models.QuizRecord{
			QuizID:         doc.ID,
			Score:          lenientNumber(doc.Data, models.FieldScore),
			NumQuestions:   int(lenientNumber(doc.Data, models.FieldNumQuestions)),
			CorrectAnswers: correct,
			WrongAnswers:   wrong,
			Timestamp:      missingTimestamp,
		}

		date := unknownDate
		if ts, ok := timestampField(doc.Data); ok {
			date, _, _ = strings.Cut(ts, "T")
			record.Timestamp = ts
		}
		stats.DailyStats[date]++

		stats.QuizzesList = append(stats.QuizzesList, record)
	}

	sort.SliceStable(stats.QuizzesList, func(i, j int) bool {
		return stats.QuizzesList[i].Timestamp > stats.QuizzesList[j].Timestamp
	})

	return stats, nil
}

// countField reads an answer counter. Absent or null is zero, a bool counts
// as 0 or 1 and a fraction is truncated toward zero. Anything else fails the
// whole aggregation.
func countField(data map[string]interface{}, key string) (int, error) {
	v, ok := data[key]
	if !ok || v == nil {
		return 0, nil
	}
	n, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("field %q has non-numeric value %v", key, v)
	}
	return int(n), nil
}

func lenientNumber(data map[string]interface{}, key string) float64 {
	n, _ := toFloat(data[key])
	return n
}

func timestampField(data map[string]interface{}) (string, bool) {
	v, ok := data[models.FieldTimestamp]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case time.Time:
		return t.UTC().Format(time.RFC3339), true
	default:
		return fmt.Sprint(t), true
	}
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

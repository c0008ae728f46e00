package quizzes

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

// PostgresStore reads quiz results from the quiz_results table.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListQuizzes(ctx context.Context, userID string) ([]models.QuizDocument, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT quiz_id, score, num_questions, correct_answers, wrong_answers, "timestamp"
		 FROM quiz_results WHERE user_id = $1
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var docs []models.QuizDocument
	for rows.Next() {
		var r quizRow
		if err := rows.Scan(&r.QuizID, &r.Score, &r.NumQuestions, &r.CorrectAnswers, &r.WrongAnswers, &r.Timestamp); err != nil {
			return nil, fmt.Errorf("scan quiz row: %w", err)
		}
		docs = append(docs, r.document())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quiz rows: %w", err)
	}
	return docs, nil
}

type quizRow struct {
	QuizID         string
	Score          sql.NullFloat64
	NumQuestions   sql.NullInt64
	CorrectAnswers sql.NullInt64
	WrongAnswers   sql.NullInt64
	Timestamp      sql.NullString
}

// document maps NULL columns to absent fields, the same way a document
// store reports a field that was never written.
func (r quizRow) document() models.QuizDocument {
	data := make(map[string]interface{})
	if r.Score.Valid {
		data[models.FieldScore] = r.Score.Float64
	}
	if r.NumQuestions.Valid {
		data[models.FieldNumQuestions] = r.NumQuestions.Int64
	}
	if r.CorrectAnswers.Valid {
		data[models.FieldCorrectAnswers] = r.CorrectAnswers.Int64
	}
	if r.WrongAnswers.Valid {
		data[models.FieldWrongAnswers] = r.WrongAnswers.Int64
	}
	if r.Timestamp.Valid {
		data[models.FieldTimestamp] = r.Timestamp.String
	}
	return models.QuizDocument{ID: r.QuizID, Data: data}
}

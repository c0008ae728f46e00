package quizzes

import (
	"context"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

// QuizSource lists every stored quiz result of one user. There is no
// pagination; the whole history is read on each call.
type QuizSource interface {
	ListQuizzes(ctx context.Context, userID string) ([]models.QuizDocument, error)
}

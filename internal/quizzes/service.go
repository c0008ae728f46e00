package quizzes

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sumanraj-P/quizgenie-api/internal/generator"
	"github.com/Sumanraj-P/quizgenie-api/internal/logger"
	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

// ErrNoQuestions is returned when the model produced an empty quiz.
var ErrNoQuestions = errors.New("generated quiz has no questions")

type Service struct {
	generator *generator.Generator
	source    QuizSource
	log       *logger.Logger
}

func NewService(gen *generator.Generator, source QuizSource, log *logger.Logger) *Service {
	return &Service{generator: gen, source: source, log: log.With("component", "quizzes")}
}

// GenerateQuiz returns the generated items, or an error when there is
// nothing usable to hand back.
func (s *Service) GenerateQuiz(ctx context.Context, topic string, difficulty models.Difficulty, numQuestions int) ([]models.QuizItem, error) {
	items, err := s.generator.GenerateQuiz(ctx, topic, difficulty, numQuestions)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoQuestions
	}
	return items, nil
}

// GetUserStats reads the user's whole quiz history and aggregates it.
func (s *Service) GetUserStats(ctx context.Context, userID string) (*models.UserStats, error) {
	docs, err := s.source.ListQuizzes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read quizzes: %w", err)
	}

	stats, err := AggregateStats(docs)
	if err != nil {
		return nil, fmt.Errorf("aggregate stats: %w", err)
	}
	return stats, nil
}

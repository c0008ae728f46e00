package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// OptionLabels are the choice labels every generated question is asked to use.
var OptionLabels = []string{"A", "B", "C", "D"}

type QuizItem struct {
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// ── API Request/Response Types ────────────────────────────

type QuizRequest struct {
	UserID       string     `json:"user_id" validate:"required"`
	Topic        string     `json:"topic" validate:"required"`
	Difficulty   Difficulty `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	NumQuestions int        `json:"num_questions" validate:"required,gt=0"`
}

// QuizQuery is the query-string form used by GET /quiz.
type QuizQuery struct {
	Topic        string     `json:"topic" validate:"required"`
	Difficulty   Difficulty `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	NumQuestions int        `json:"num_questions" validate:"required,gt=0"`
}

type GenerateQuizResponse struct {
	UserID   string     `json:"user_id"`
	QuizData []QuizItem `json:"quiz_data"`
}

type QuizPayload struct {
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Questions  []QuizItem `json:"questions"`
}

type QuizResponse struct {
	Status  string       `json:"status"`
	Quiz    *QuizPayload `json:"quiz,omitempty"`
	Message string       `json:"message,omitempty"`
}

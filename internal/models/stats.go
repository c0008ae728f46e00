package models

// QuizDocument is a stored quiz result exactly as a store adapter returned it.
// Fields missing from the stored document are missing from Data.
type QuizDocument struct {
	ID   string
	Data map[string]interface{}
}

// Field names of a stored quiz document.
const (
	FieldScore          = "score"
	FieldNumQuestions   = "num_questions"
	FieldCorrectAnswers = "correct_answers"
	FieldWrongAnswers   = "wrong_answers"
	FieldTimestamp      = "timestamp"
)

type QuizRecord struct {
	QuizID         string  `json:"quiz_id"`
	Score          float64 `json:"score"`
	NumQuestions   int     `json:"num_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	WrongAnswers   int     `json:"wrong_answers"`
	Timestamp      string  `json:"timestamp"`
}

type UserStats struct {
	TotalQuizzes   int            `json:"total_quizzes"`
	CorrectAnswers int            `json:"correct_answers"`
	WrongAnswers   int            `json:"wrong_answers"`
	DailyStats     map[string]int `json:"daily_stats"`
	QuizzesList    []QuizRecord   `json:"quizzes_list"`
}

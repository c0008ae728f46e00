package quizzes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Sumanraj-P/quizgenie-api/internal/logger"
	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

type Handler struct {
	service *Service
	log     *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, log: log.With("component", "handler")}
}

// RegisterRoutes registers every public endpoint on r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/generate-quiz", h.GenerateQuiz).Methods("POST")
	r.HandleFunc("/quiz", h.GetQuiz).Methods("GET")
	h.RegisterStatsRoutes(r)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "QuizGenie API is running!"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: validationMessage(err)})
		return
	}

	items, err := h.service.GenerateQuiz(r.Context(), req.Topic, req.Difficulty, req.NumQuestions)
	if err != nil {
		h.log.Error("GenerateQuiz failed", "user_id", req.UserID, "topic", req.Topic, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate quiz."})
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateQuizResponse{
		UserID:   req.UserID,
		QuizData: items,
	})
}

// GetQuiz generates a quiz from query parameters without storing it. A
// generation failure is reported in the body with status 200.
func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	numQuestions, err := strconv.Atoi(query.Get("num_questions"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "num_questions must be an integer"})
		return
	}

	q := models.QuizQuery{
		Topic:        query.Get("topic"),
		Difficulty:   models.Difficulty(query.Get("difficulty")),
		NumQuestions: numQuestions,
	}
	if err := validate.Struct(q); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: validationMessage(err)})
		return
	}

	items, err := h.service.GenerateQuiz(r.Context(), q.Topic, q.Difficulty, q.NumQuestions)
	if err != nil {
		h.log.Error("GetQuiz failed", "topic", q.Topic, "error", err)
		writeJSON(w, http.StatusOK, models.QuizResponse{Status: "error", Message: "Failed to generate quiz"})
		return
	}

	writeJSON(w, http.StatusOK, models.QuizResponse{
		Status: "success",
		Quiz: &models.QuizPayload{
			Topic:      q.Topic,
			Difficulty: q.Difficulty,
			Questions:  items,
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

package quizzes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sumanraj-P/quizgenie-api/internal/models"
)

// RegisterStatsRoutes registers both stats paths; they behave identically.
func (h *Handler) RegisterStatsRoutes(r *mux.Router) {
	r.HandleFunc("/user-stats/{user_id}", h.GetUserStats).Methods("GET")
	r.HandleFunc("/user/stats/{user_id}", h.GetUserStats).Methods("GET")
}

func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	stats, err := h.service.GetUserStats(r.Context(), userID)
	if err != nil {
		h.log.Error("GetUserStats failed", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch user statistics."})
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

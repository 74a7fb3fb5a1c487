package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"career-compass-backend/internal/models"
)

// AssessmentStore is the subset of repository.AssessmentRepo the assessment
// handlers use.
type AssessmentStore interface {
	FindByEmail(ctx context.Context, email string) (models.Assessment, error)
	Upsert(ctx context.Context, assessment models.Assessment) error
}

type AssessmentHandler struct {
	assessments AssessmentStore
}

func NewAssessmentHandler(assessments AssessmentStore) *AssessmentHandler {
	return &AssessmentHandler{
		assessments: assessments,
	}
}

// --- POST /api/assessment/save ---

func (h *AssessmentHandler) Save(w http.ResponseWriter, r *http.Request) {
	if h.assessments == nil {
		writeDatabaseNotConnected(w)
		return
	}

	// Numbers stay json.Number so large integers round-trip exactly.
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var assessment models.Assessment
	if err := dec.Decode(&assessment); err != nil || assessment == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if assessment.UserEmail() == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user.email is required"})
		return
	}

	if err := h.assessments.Upsert(r.Context(), assessment); err != nil {
		log.Printf("Error saving assessment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Assessment saved successfully",
	})
}

// --- GET /api/assessment/latest ---

func (h *AssessmentHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	if h.assessments == nil {
		writeDatabaseNotConnected(w)
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email is required"})
		return
	}

	assessment, err := h.assessments.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Error finding assessment: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if assessment == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "No assessment found"})
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

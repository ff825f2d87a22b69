package services

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"

	"fsnd_platform/trivia/schema"
	"fsnd_platform/utils"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// ErrNoQuestionsLeft is reported when every candidate question has already
// been played. Callers should treat it as the end of the quiz, not a fault.
var ErrNoQuestionsLeft = errors.New("no questions left to choose from")

type QuizService struct {
	db *gorm.DB
}

func (s *QuizService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", s.Play)

	return r
}

type playQuizRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      uint   `json:"quiz_category"`
}

type playQuizResponse struct {
	Question questionResponse `json:"question"`
}

// Play draws a uniformly random question that has not been asked yet,
// optionally restricted to one category. Category id 0 means draw from all
// categories.
func (s *QuizService) Play(w http.ResponseWriter, r *http.Request) {
	var params playQuizRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	question, err := pickQuestion(s.db, params.QuizCategory, params.PreviousQuestions)
	if err != nil {
		http.Error(w, fmt.Sprintf("error picking question: %v", err), utils.GetResponseCode(err))
		return
	}

	utils.WriteJsonResponse(w, playQuizResponse{Question: formatQuestions([]schema.Question{question})[0]})
}

func pickQuestion(db *gorm.DB, categoryId uint, previous []uint) (schema.Question, error) {
	query := db.Order("id")
	if categoryId != schema.AllCategories {
		query = query.Where("category_id = ?", categoryId)
	}

	var candidates []schema.Question
	result := query.Find(&candidates)
	if result.Error != nil {
		slog.Error("sql error listing quiz candidates", "category_id", categoryId, "error", result.Error)
		return schema.Question{}, utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
	}

	excluded := make(map[uint]struct{}, len(previous))
	for _, id := range previous {
		excluded[id] = struct{}{}
	}

	remaining := make([]schema.Question, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := excluded[candidate.Id]; !ok {
			remaining = append(remaining, candidate)
		}
	}

	if len(remaining) == 0 {
		return schema.Question{}, utils.CodedError(ErrNoQuestionsLeft, http.StatusNotFound)
	}

	return remaining[rand.Intn(len(remaining))], nil
}

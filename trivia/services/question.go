package services

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fsnd_platform/trivia/schema"
	"fsnd_platform/utils"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func (s *QuestionService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.List)
	r.Post("/", s.Create)
	r.Post("/search", s.Search)
	r.Delete("/{question_id}", s.Delete)

	return r
}

type questionListResponse struct {
	TotalQuestions int64              `json:"total_questions"`
	Questions      []questionResponse `json:"questions"`
	Categories     map[uint]string    `json:"categories"`
}

// List returns one fixed-size page of questions, 1-indexed via the page
// query parameter. A page past the end reports not found.
func (s *QuestionService) List(w http.ResponseWriter, r *http.Request) {
	page, err := utils.QueryParamInt(r, "page", 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var questions []schema.Question
	result := s.db.Order("id").Find(&questions)
	if result.Error != nil {
		slog.Error("sql error listing questions", "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	pageItems := paginate(questions, page, QuestionsPerPage)
	if len(pageItems) == 0 {
		http.Error(w, fmt.Sprintf("no questions found for page %v", page), http.StatusNotFound)
		return
	}

	types, err := categoryTypes(s.db)
	if err != nil {
		http.Error(w, err.Error(), utils.GetResponseCode(err))
		return
	}

	utils.WriteJsonResponse(w, questionListResponse{
		TotalQuestions: int64(len(questions)),
		Questions:      formatQuestions(pageItems),
		Categories:     types,
	})
}

type createQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

type createQuestionResponse struct {
	Id uint `json:"id"`
}

func (s *QuestionService) Create(w http.ResponseWriter, r *http.Request) {
	var params createQuestionRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	if params.Question == "" || params.Answer == "" || params.Difficulty < 1 || params.Category == schema.AllCategories {
		http.Error(w, "question, answer, category, and a positive difficulty must be specified", http.StatusBadRequest)
		return
	}

	newQuestion := schema.Question{
		QuestionText: params.Question,
		AnswerText:   params.Answer,
		Difficulty:   params.Difficulty,
		CategoryId:   params.Category,
	}

	err := s.db.Transaction(func(txn *gorm.DB) error {
		if _, err := schema.GetCategory(params.Category, txn); err != nil {
			if errors.Is(err, schema.ErrCategoryNotFound) {
				return utils.CodedError(err, http.StatusNotFound)
			}
			return utils.CodedError(err, http.StatusInternalServerError)
		}

		result := txn.Create(&newQuestion)
		if result.Error != nil {
			slog.Error("sql error creating question", "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		return nil
	})

	if err != nil {
		http.Error(w, fmt.Sprintf("error creating question: %v", err), utils.GetResponseCode(err))
		return
	}

	slog.Info("question created", "question_id", newQuestion.Id, "category_id", newQuestion.CategoryId)

	utils.WriteJsonResponse(w, createQuestionResponse{Id: newQuestion.Id})
}

type searchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type searchQuestionsResponse struct {
	TotalQuestions int                `json:"total_questions"`
	Questions      []questionResponse `json:"questions"`
}

// Search matches the term as a case insensitive substring of question text.
// Zero matches is a valid empty result, not an error.
func (s *QuestionService) Search(w http.ResponseWriter, r *http.Request) {
	var params searchQuestionsRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	var questions []schema.Question
	result := s.db.Order("id").Find(&questions, "lower(question) LIKE ?", "%"+strings.ToLower(params.SearchTerm)+"%")
	if result.Error != nil {
		slog.Error("sql error searching questions", "term", params.SearchTerm, "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	utils.WriteJsonResponse(w, searchQuestionsResponse{
		TotalQuestions: len(questions),
		Questions:      formatQuestions(questions),
	})
}

type deleteQuestionResponse struct {
	Id uint `json:"id"`
}

func (s *QuestionService) Delete(w http.ResponseWriter, r *http.Request) {
	questionId, err := utils.URLParamInt(r, "question_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = s.db.Transaction(func(txn *gorm.DB) error {
		if _, err := schema.GetQuestion(uint(questionId), txn); err != nil {
			if errors.Is(err, schema.ErrQuestionNotFound) {
				return utils.CodedError(err, http.StatusNotFound)
			}
			return utils.CodedError(err, http.StatusInternalServerError)
		}

		result := txn.Delete(&schema.Question{}, "id = ?", questionId)
		if result.Error != nil {
			slog.Error("sql error deleting question", "question_id", questionId, "error", result.Error)
			return utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
		}

		return nil
	})

	if err != nil {
		http.Error(w, fmt.Sprintf("error deleting question: %v", err), utils.GetResponseCode(err))
		return
	}

	slog.Info("question deleted", "question_id", questionId)

	utils.WriteJsonResponse(w, deleteQuestionResponse{Id: uint(questionId)})
}

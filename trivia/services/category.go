package services

import (
	"log/slog"
	"net/http"

	"fsnd_platform/trivia/schema"
	"fsnd_platform/utils"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func (s *CategoryService) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", s.List)
	r.Post("/", s.Create)
	r.Get("/{category_id}/questions", s.Questions)

	return r
}

type categoryListResponse struct {
	Categories map[uint]string `json:"categories"`
}

func (s *CategoryService) List(w http.ResponseWriter, r *http.Request) {
	types, err := categoryTypes(s.db)
	if err != nil {
		http.Error(w, err.Error(), utils.GetResponseCode(err))
		return
	}

	if len(types) == 0 {
		http.Error(w, "no categories found", http.StatusNotFound)
		return
	}

	utils.WriteJsonResponse(w, categoryListResponse{Categories: types})
}

type createCategoryRequest struct {
	Type string `json:"type"`
}

type createCategoryResponse struct {
	Id uint `json:"id"`
}

func (s *CategoryService) Create(w http.ResponseWriter, r *http.Request) {
	var params createCategoryRequest
	if !utils.ParseRequestBody(w, r, &params) {
		return
	}

	if params.Type == "" {
		http.Error(w, "category type must be specified", http.StatusBadRequest)
		return
	}

	newCategory := schema.Category{Type: params.Type}

	result := s.db.Create(&newCategory)
	if result.Error != nil {
		slog.Error("sql error creating category", "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("category created", "category_id", newCategory.Id, "type", newCategory.Type)

	utils.WriteJsonResponse(w, createCategoryResponse{Id: newCategory.Id})
}

type categoryQuestionsResponse struct {
	TotalQuestions  int                `json:"total_questions"`
	Questions       []questionResponse `json:"questions"`
	CurrentCategory uint               `json:"current_category"`
}

// Questions lists every question in the category.
func (s *CategoryService) Questions(w http.ResponseWriter, r *http.Request) {
	categoryId, err := utils.URLParamInt(r, "category_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var questions []schema.Question
	result := s.db.Order("id").Find(&questions, "category_id = ?", categoryId)
	if result.Error != nil {
		slog.Error("sql error listing questions by category", "category_id", categoryId, "error", result.Error)
		http.Error(w, schema.ErrDbAccessFailed.Error(), http.StatusInternalServerError)
		return
	}

	if len(questions) == 0 {
		http.Error(w, "no questions found for category", http.StatusNotFound)
		return
	}

	utils.WriteJsonResponse(w, categoryQuestionsResponse{
		TotalQuestions:  len(questions),
		Questions:       formatQuestions(questions),
		CurrentCategory: uint(categoryId),
	})
}

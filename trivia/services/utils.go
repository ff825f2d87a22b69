package services

import (
	"log/slog"
	"net/http"

	"fsnd_platform/trivia/schema"
	"fsnd_platform/utils"

	"gorm.io/gorm"
)

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// paginate returns the 1-indexed page of items. A page past the end of the
// list is an empty slice, not an error.
func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}

	end := min(start+pageSize, len(items))
	return items[start:end]
}

// categoryTypes returns the id -> type mapping of every stored category.
func categoryTypes(db *gorm.DB) (map[uint]string, error) {
	var categories []schema.Category
	result := db.Order("id").Find(&categories)
	if result.Error != nil {
		slog.Error("sql error listing categories", "error", result.Error)
		return nil, utils.CodedError(schema.ErrDbAccessFailed, http.StatusInternalServerError)
	}

	types := make(map[uint]string, len(categories))
	for _, category := range categories {
		types[category.Id] = category.Type
	}
	return types, nil
}

type questionResponse struct {
	Id         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

func formatQuestions(questions []schema.Question) []questionResponse {
	formatted := make([]questionResponse, 0, len(questions))
	for _, question := range questions {
		formatted = append(formatted, questionResponse{
			Id:         question.Id,
			Question:   question.QuestionText,
			Answer:     question.AnswerText,
			Difficulty: question.Difficulty,
			Category:   question.CategoryId,
		})
	}
	return formatted
}

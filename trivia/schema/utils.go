package schema

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrDbAccessFailed   = errors.New("db access failed")
)

func GetCategory(categoryId uint, db *gorm.DB) (Category, error) {
	var category Category

	result := db.First(&category, "id = ?", categoryId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return category, ErrCategoryNotFound
		}
		slog.Error("sql error in get category", "category_id", categoryId, "error", result.Error)
		return category, ErrDbAccessFailed
	}

	return category, nil
}

func GetQuestion(questionId uint, db *gorm.DB) (Question, error) {
	var question Question

	result := db.First(&question, "id = ?", questionId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return question, ErrQuestionNotFound
		}
		slog.Error("sql error in get question", "question_id", questionId, "error", result.Error)
		return question, ErrDbAccessFailed
	}

	return question, nil
}

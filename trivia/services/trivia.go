package services

import (
	"log"
	"net/http"
	"os"

	"fsnd_platform/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

// Trivia bundles the category, question, and quiz services over a shared
// database handle.
type Trivia struct {
	category CategoryService
	question QuestionService
	quiz     QuizService
}

func NewTrivia(db *gorm.DB) Trivia {
	return Trivia{
		category: CategoryService{db: db},
		question: QuestionService{db: db},
		quiz:     QuizService{db: db},
	}
}

func (t *Trivia) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger: log.New(os.Stderr, "", log.LstdFlags), NoColor: false,
	}))

	r.Mount("/categories", t.category.Routes())
	r.Mount("/questions", t.question.Routes())
	r.Mount("/quizzes", t.quiz.Routes())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccess(w)
	})

	return r
}

package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

type httpTestRequest struct {
	api http.Handler

	method   string
	endpoint string
	json     interface{}
	body     io.Reader
}

func newHttpTestRequest(api http.Handler, method, endpoint string) *httpTestRequest {
	return &httpTestRequest{
		api:      api,
		method:   method,
		endpoint: endpoint,
		json:     nil,
		body:     nil,
	}
}

func (r *httpTestRequest) Json(data interface{}) *httpTestRequest {
	r.json = data
	return r
}

var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// response body will be parsed into result, passing nil indicates that no result is returned.
func (r *httpTestRequest) Do(result interface{}) error {
	if r.json != nil {
		body := new(bytes.Buffer)
		err := json.NewEncoder(body).Encode(r.json)
		if err != nil {
			return fmt.Errorf("error encoding json body for endpoint %v: %w", r.endpoint, err)
		}
		r.body = body
	}

	req := httptest.NewRequest(r.method, r.endpoint, r.body)

	w := httptest.NewRecorder()

	r.api.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		switch res.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusBadRequest:
			return ErrBadRequest
		}
		return fmt.Errorf("%v request to endpoint %v returned status %d, content '%v'", r.method, r.endpoint, res.StatusCode, w.Body.String())
	}

	if result != nil {
		err := json.NewDecoder(res.Body).Decode(result)
		if err != nil {
			return fmt.Errorf("error parsing %v response from endpoint %v: %w", r.method, r.endpoint, err)
		}
	}

	return nil
}

type client struct {
	api chi.Router
}

func (c *client) Get(endpoint string) *httpTestRequest {
	return newHttpTestRequest(c.api, "GET", endpoint)
}

func (c *client) Post(endpoint string) *httpTestRequest {
	return newHttpTestRequest(c.api, "POST", endpoint)
}

func (c *client) Delete(endpoint string) *httpTestRequest {
	return newHttpTestRequest(c.api, "DELETE", endpoint)
}

type questionParams struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

type question struct {
	Id         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   uint   `json:"category"`
}

type questionPage struct {
	TotalQuestions int64           `json:"total_questions"`
	Questions      []question      `json:"questions"`
	Categories     map[uint]string `json:"categories"`
}

type categoryQuestions struct {
	TotalQuestions  int        `json:"total_questions"`
	Questions       []question `json:"questions"`
	CurrentCategory uint       `json:"current_category"`
}

type searchResults struct {
	TotalQuestions int        `json:"total_questions"`
	Questions      []question `json:"questions"`
}

func (c *client) createCategory(categoryType string) (uint, error) {
	var res struct {
		Id uint `json:"id"`
	}
	err := c.Post("/categories/").Json(map[string]string{"type": categoryType}).Do(&res)
	return res.Id, err
}

func (c *client) listCategories() (map[uint]string, error) {
	var res struct {
		Categories map[uint]string `json:"categories"`
	}
	err := c.Get("/categories/").Do(&res)
	return res.Categories, err
}

func (c *client) categoryQuestions(categoryId uint) (categoryQuestions, error) {
	var res categoryQuestions
	err := c.Get(fmt.Sprintf("/categories/%v/questions", categoryId)).Do(&res)
	return res, err
}

func (c *client) createQuestion(params questionParams) (uint, error) {
	var res struct {
		Id uint `json:"id"`
	}
	err := c.Post("/questions/").Json(params).Do(&res)
	return res.Id, err
}

func (c *client) listQuestions(page int) (questionPage, error) {
	var res questionPage
	err := c.Get(fmt.Sprintf("/questions/?page=%d", page)).Do(&res)
	return res, err
}

func (c *client) searchQuestions(term string) (searchResults, error) {
	var res searchResults
	err := c.Post("/questions/search").Json(map[string]string{"searchTerm": term}).Do(&res)
	return res, err
}

func (c *client) deleteQuestion(id uint) error {
	return c.Delete(fmt.Sprintf("/questions/%v", id)).Do(nil)
}

func (c *client) playQuiz(categoryId uint, previous []uint) (question, error) {
	var res struct {
		Question question `json:"question"`
	}
	err := c.Post("/quizzes/").Json(map[string]interface{}{
		"previous_questions": previous,
		"quiz_category":      categoryId,
	}).Do(&res)
	return res.Question, err
}

package tests

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionCreateAndDelete(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	ids := env.seedCategories(t, "Entertainment")

	questionId, err := c.createQuestion(testQuestion("What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", "Apollo 13", ids[0]))
	require.NoError(t, err)

	page, err := c.listQuestions(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalQuestions)

	require.NoError(t, c.deleteQuestion(questionId))

	_, err = c.listQuestions(1)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = c.deleteQuestion(questionId)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQuestionCreateValidation(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	ids := env.seedCategories(t, "Science")

	invalid := []questionParams{
		testQuestion("", "Blood", ids[0]),
		testQuestion("Hematology is a branch of medicine involving the study of what?", "", ids[0]),
		{Question: "What?", Answer: "That", Difficulty: 0, Category: ids[0]},
		{Question: "What?", Answer: "That", Difficulty: 2, Category: 0},
	}

	for _, params := range invalid {
		_, err := c.createQuestion(params)
		assert.True(t, errors.Is(err, ErrBadRequest))
	}

	_, err := c.createQuestion(testQuestion("What?", "That", ids[0]+100))
	assert.True(t, errors.Is(err, ErrNotFound))

	page, err := c.listQuestions(1)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Empty(t, page.Questions)
}

func TestQuestionPagination(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	ids := env.seedCategories(t, "Science")

	created := make([]uint, 0, 30)
	for i := 0; i < 30; i++ {
		id, err := c.createQuestion(testQuestion(fmt.Sprintf("question %d", i), fmt.Sprintf("answer %d", i), ids[0]))
		require.NoError(t, err)
		created = append(created, id)
	}

	page, err := c.listQuestions(2)
	require.NoError(t, err)
	assert.Equal(t, int64(30), page.TotalQuestions)
	require.Len(t, page.Questions, 10)
	for i, q := range page.Questions {
		assert.Equal(t, created[10+i], q.Id)
	}
	assert.Equal(t, "Science", page.Categories[ids[0]])

	page, err = c.listQuestions(3)
	require.NoError(t, err)
	assert.Len(t, page.Questions, 10)

	_, err = c.listQuestions(4)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = c.listQuestions(0)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQuestionSearch(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	ids := env.seedCategories(t, "Art")

	_, err := c.createQuestion(testQuestion("Which Dutch graphic artist was a creator of optical illusions?", "Escher", ids[0]))
	require.NoError(t, err)
	_, err = c.createQuestion(testQuestion("La Giaconda is better known as what?", "Mona Lisa", ids[0]))
	require.NoError(t, err)

	for _, term := range []string{"artist", "ARTIST", "ArTiSt"} {
		res, err := c.searchQuestions(term)
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalQuestions)
		require.Len(t, res.Questions, 1)
		assert.Equal(t, "Escher", res.Questions[0].Answer)
	}

	res, err := c.searchQuestions("")
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalQuestions)

	res, err = c.searchQuestions("no such question")
	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalQuestions)
	assert.Empty(t, res.Questions)
}

package tests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizSkipsPreviousQuestions(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	ids := env.seedCategories(t, "Science")

	questionIds := make([]uint, 0, 3)
	for _, text := range []string{"first", "second", "third"} {
		id, err := c.createQuestion(testQuestion(text, "answer", ids[0]))
		require.NoError(t, err)
		questionIds = append(questionIds, id)
	}

	// With all but one question excluded the draw is deterministic.
	for i := 0; i < 10; i++ {
		q, err := c.playQuiz(0, questionIds[:2])
		require.NoError(t, err)
		assert.Equal(t, questionIds[2], q.Id)
		assert.Equal(t, "third", q.Question)
	}

	picked, err := c.playQuiz(0, nil)
	require.NoError(t, err)
	assert.Contains(t, questionIds, picked.Id)
}

func TestQuizExhausted(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	ids := env.seedCategories(t, "Science")

	questionIds := make([]uint, 0, 2)
	for _, text := range []string{"first", "second"} {
		id, err := c.createQuestion(testQuestion(text, "answer", ids[0]))
		require.NoError(t, err)
		questionIds = append(questionIds, id)
	}

	_, err := c.playQuiz(0, questionIds)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQuizNoQuestions(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	_, err := c.playQuiz(0, nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestQuizCategoryFilter(t *testing.T) {
	env := setupTestEnv(t)
	c := env.newClient()

	ids := env.seedCategories(t, "Science", "History")

	scienceId, err := c.createQuestion(testQuestion("science question", "answer", ids[0]))
	require.NoError(t, err)
	historyId, err := c.createQuestion(testQuestion("history question", "answer", ids[1]))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		q, err := c.playQuiz(ids[1], nil)
		require.NoError(t, err)
		assert.Equal(t, historyId, q.Id)
		assert.Equal(t, ids[1], q.Category)
	}

	// Excluding the only question in the category ends the quiz even though
	// other categories still have questions.
	_, err = c.playQuiz(ids[1], []uint{historyId})
	assert.True(t, errors.Is(err, ErrNotFound))

	// Category 0 draws from every category.
	seen := map[uint]bool{}
	for i := 0; i < 50; i++ {
		q, err := c.playQuiz(0, nil)
		require.NoError(t, err)
		seen[q.Id] = true
	}
	assert.True(t, seen[scienceId])
	assert.True(t, seen[historyId])
}

package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomhall/projex/internal/models"
)

func TestOrder(t *testing.T) {
	assert.Equal(t, []models.Status{
		models.StatusToDo,
		models.StatusInProgress,
		models.StatusReview,
		models.StatusQA,
		models.StatusDone,
	}, Order)
}

func TestNormalizeUnknown(t *testing.T) {
	assert.Equal(t, models.StatusToDo, Normalize(""))
	assert.Equal(t, models.StatusToDo, Normalize(models.Status("archived")))
	assert.Equal(t, models.StatusQA, Normalize(models.StatusQA))
}

func TestNextAndPrevBounds(t *testing.T) {
	next, ok := Next(models.StatusToDo)
	assert.True(t, ok)
	assert.Equal(t, models.StatusInProgress, next)

	_, ok = Next(models.StatusDone)
	assert.False(t, ok, "done is the last column")

	prev, ok := Prev(models.StatusDone)
	assert.True(t, ok)
	assert.Equal(t, models.StatusQA, prev)

	_, ok = Prev(models.StatusToDo)
	assert.False(t, ok, "to-do is the first column")
}

func TestWalkFullBoard(t *testing.T) {
	s := models.StatusToDo
	steps := 0
	for {
		next, ok := Next(s)
		if !ok {
			break
		}
		s = next
		steps++
	}
	assert.Equal(t, models.StatusDone, s)
	assert.Equal(t, len(Order)-1, steps)
}

func TestValid(t *testing.T) {
	for _, s := range Order {
		assert.True(t, Valid(s), string(s))
	}
	assert.False(t, Valid(""))
	assert.False(t, Valid(models.Status("archived")))
}

func TestCompletes(t *testing.T) {
	assert.True(t, Completes(models.StatusDone))
	for _, s := range Order[:len(Order)-1] {
		assert.False(t, Completes(s), string(s))
	}
}

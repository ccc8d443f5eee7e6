package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/workflow"
)

func TestGroupByStatusInitializesEveryBucket(t *testing.T) {
	buckets := GroupByStatus(nil)

	require.Len(t, buckets, len(workflow.Order))
	for _, status := range workflow.Order {
		bucket, ok := buckets[status]
		assert.True(t, ok, string(status))
		assert.NotNil(t, bucket)
		assert.Empty(t, bucket)
	}
}

func TestGroupByStatusBucketsAndOrder(t *testing.T) {
	tasks := []models.Task{
		{Title: "newest qa", Status: models.StatusQA},
		{Title: "older qa", Status: models.StatusQA},
		{Title: "doing", Status: models.StatusInProgress},
	}

	buckets := GroupByStatus(tasks)

	qa := buckets[models.StatusQA]
	require.Len(t, qa, 2)
	assert.Equal(t, "newest qa", qa[0].Title, "input order is preserved within a bucket")
	assert.Equal(t, "older qa", qa[1].Title)
	assert.Len(t, buckets[models.StatusInProgress], 1)
	assert.Empty(t, buckets[models.StatusDone])
}

func TestGroupByStatusLegacyEmptyStatus(t *testing.T) {
	tasks := []models.Task{
		{Title: "no status"},
		{Title: "junk status", Status: models.Status("blocked")},
	}

	buckets := GroupByStatus(tasks)
	assert.Len(t, buckets[models.StatusToDo], 2)
}

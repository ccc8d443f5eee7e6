package derive

import (
	"github.com/tomhall/projex/internal/models"
	"github.com/tomhall/projex/internal/workflow"
)

// GroupByStatus partitions tasks into the five kanban buckets. Legacy
// tasks without a status land in the to-do bucket. Within a bucket the
// input order (newest first) is preserved.
func GroupByStatus(tasks []models.Task) map[models.Status][]models.Task {
	buckets := make(map[models.Status][]models.Task, len(workflow.Order))
	for _, status := range workflow.Order {
		buckets[status] = []models.Task{}
	}
	for _, t := range tasks {
		status := workflow.Normalize(t.Status)
		buckets[status] = append(buckets[status], t)
	}
	return buckets
}

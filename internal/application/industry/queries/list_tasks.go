package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
)

// ListTasksQuery lists stored tasks, newest first
type ListTasksQuery struct{}

// TaskDocumentDTO describes a stored task without its body
type TaskDocumentDTO struct {
	ID        string
	Name      string
	Kind      string
	UpdatedAt time.Time
}

// ListTasksResponse carries the stored tasks
type ListTasksResponse struct {
	Tasks []TaskDocumentDTO
}

// ListTasksHandler handles ListTasksQuery
type ListTasksHandler struct {
	tasks *services.TaskService
}

// NewListTasksHandler creates a new ListTasksHandler
func NewListTasksHandler(tasks *services.TaskService) *ListTasksHandler {
	return &ListTasksHandler{tasks: tasks}
}

// Handle executes the list tasks query
func (h *ListTasksHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ListTasksQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListTasksQuery")
	}

	docs, err := h.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := make([]TaskDocumentDTO, 0, len(docs))
	for _, doc := range docs {
		out = append(out, TaskDocumentDTO{
			ID:        doc.ID,
			Name:      doc.Name,
			Kind:      string(doc.Kind),
			UpdatedAt: doc.UpdatedAt,
		})
	}
	return &ListTasksResponse{Tasks: out}, nil
}

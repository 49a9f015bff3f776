package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
)

// ShowTaskQuery summarizes a task read from a file or, when ID is set, from storage
type ShowTaskQuery struct {
	Path string
	ID   string
}

// ShowTaskResponse carries the task summary
type ShowTaskResponse struct {
	Name    string
	Task    industry.Task
	Summary services.Summary
}

// ShowTaskHandler handles ShowTaskQuery
type ShowTaskHandler struct {
	tasks *services.TaskService
}

// NewShowTaskHandler creates a new ShowTaskHandler
func NewShowTaskHandler(tasks *services.TaskService) *ShowTaskHandler {
	return &ShowTaskHandler{tasks: tasks}
}

// Handle executes the show task query
func (h *ShowTaskHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ShowTaskQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ShowTaskQuery")
	}

	if query.ID != "" {
		task, doc, err := h.tasks.Restore(ctx, query.ID)
		if err != nil {
			return nil, err
		}
		return &ShowTaskResponse{Name: doc.Name, Task: task, Summary: h.tasks.Summarize(task)}, nil
	}

	if query.Path == "" {
		return nil, fmt.Errorf("either a task file or a stored task ID is required")
	}
	task, err := h.tasks.ImportFile(ctx, query.Path)
	if err != nil {
		return nil, err
	}
	return &ShowTaskResponse{Name: query.Path, Task: task, Summary: h.tasks.Summarize(task)}, nil
}

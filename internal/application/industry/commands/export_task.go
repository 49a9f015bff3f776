package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
)

// ExportTaskCommand writes a stored task to a file
type ExportTaskCommand struct {
	ID   string
	Path string
}

// ExportTaskResponse reports where the task was written
type ExportTaskResponse struct {
	Path string
}

// ExportTaskHandler handles ExportTaskCommand
type ExportTaskHandler struct {
	tasks *services.TaskService
}

// NewExportTaskHandler creates a new ExportTaskHandler
func NewExportTaskHandler(tasks *services.TaskService) *ExportTaskHandler {
	return &ExportTaskHandler{tasks: tasks}
}

// Handle executes the export task command
func (h *ExportTaskHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ExportTaskCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ExportTaskCommand")
	}

	task, _, err := h.tasks.Restore(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := h.tasks.ExportFile(ctx, task, cmd.Path); err != nil {
		return nil, err
	}
	return &ExportTaskResponse{Path: cmd.Path}, nil
}

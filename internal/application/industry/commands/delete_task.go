package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
)

// DeleteTaskCommand removes a stored task
type DeleteTaskCommand struct {
	ID string
}

// DeleteTaskResponse is returned once the task is gone
type DeleteTaskResponse struct {
	ID string
}

// DeleteTaskHandler handles DeleteTaskCommand
type DeleteTaskHandler struct {
	tasks *services.TaskService
}

// NewDeleteTaskHandler creates a new DeleteTaskHandler
func NewDeleteTaskHandler(tasks *services.TaskService) *DeleteTaskHandler {
	return &DeleteTaskHandler{tasks: tasks}
}

// Handle executes the delete task command
func (h *DeleteTaskHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteTaskCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteTaskCommand")
	}
	if err := h.tasks.Delete(ctx, cmd.ID); err != nil {
		return nil, err
	}
	return &DeleteTaskResponse{ID: cmd.ID}, nil
}

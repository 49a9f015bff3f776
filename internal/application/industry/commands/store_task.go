package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
)

// StoreTaskCommand imports a task file and stores it as a new document
type StoreTaskCommand struct {
	Path string
	Name string // defaults to the file name without extension
}

// StoreTaskResponse carries the stored document
type StoreTaskResponse struct {
	Document *industry.Document
}

// StoreTaskHandler handles StoreTaskCommand
type StoreTaskHandler struct {
	tasks *services.TaskService
}

// NewStoreTaskHandler creates a new StoreTaskHandler
func NewStoreTaskHandler(tasks *services.TaskService) *StoreTaskHandler {
	return &StoreTaskHandler{tasks: tasks}
}

// Handle executes the store task command
func (h *StoreTaskHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StoreTaskCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *StoreTaskCommand")
	}

	task, err := h.tasks.ImportFile(ctx, cmd.Path)
	if err != nil {
		return nil, err
	}

	name := cmd.Name
	if name == "" {
		base := filepath.Base(cmd.Path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	doc, err := h.tasks.Store(ctx, name, task)
	if err != nil {
		return nil, fmt.Errorf("failed to store task: %w", err)
	}
	return &StoreTaskResponse{Document: doc}, nil
}

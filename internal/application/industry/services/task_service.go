// Package services converts tasks between their domain, text and stored forms.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/andrescamacho/eveindustry-go/internal/application/common"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
)

// RecordName is the root name of an encoded task record
const RecordName = "task"

// ErrUnexpectedRecord is returned when a decoded record is not a task
var ErrUnexpectedRecord = errors.New("record is not a task")

// TaskObserver follows tasks materialized by the service
type TaskObserver interface {
	industry.Listener
	RecordTaskLoaded(task industry.Task)
}

// TaskService loads, saves and stores tasks against one data provider
type TaskService struct {
	provider  industry.DataProvider
	codec     common.RecordCodec
	documents industry.DocumentRepository
	observers []TaskObserver
}

// NewTaskService creates a task service. documents may be nil when tasks
// are only read from and written to files.
func NewTaskService(
	provider industry.DataProvider,
	codec common.RecordCodec,
	documents industry.DocumentRepository,
	observers ...TaskObserver,
) *TaskService {
	return &TaskService{
		provider:  provider,
		codec:     codec,
		documents: documents,
		observers: observers,
	}
}

// Provider returns the data provider tasks are loaded against
func (s *TaskService) Provider() industry.DataProvider {
	return s.provider
}

// Decode builds a task from its encoded record
func (s *TaskService) Decode(ctx context.Context, data []byte) (industry.Task, error) {
	name, rec, err := s.codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode task record: %w", err)
	}
	if name != RecordName {
		return nil, fmt.Errorf("%w: root is %q", ErrUnexpectedRecord, name)
	}

	task, err := industry.Load(s.provider, rec)
	if err != nil {
		return nil, err
	}
	s.attach(task)

	common.LoggerFromContext(ctx).Log("DEBUG", "task loaded", map[string]interface{}{
		"kind":     string(task.Kind()),
		"produced": len(task.ProducedMaterials()),
		"required": len(task.RequiredMaterials()),
	})
	return task, nil
}

// Encode writes task as an encoded record
func (s *TaskService) Encode(task industry.Task) ([]byte, error) {
	data, err := s.codec.Encode(RecordName, industry.Save(task))
	if err != nil {
		return nil, fmt.Errorf("failed to encode task record: %w", err)
	}
	return data, nil
}

// ImportFile loads a task from an encoded record file
func (s *TaskService) ImportFile(ctx context.Context, path string) (industry.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	task, err := s.Decode(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return task, nil
}

// ExportFile writes task to path as an encoded record
func (s *TaskService) ExportFile(ctx context.Context, task industry.Task, path string) error {
	data, err := s.Encode(task)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write task file: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "task exported", map[string]interface{}{
		"kind": string(task.Kind()),
		"path": path,
	})
	return nil
}

// Store persists task as a new document named name
func (s *TaskService) Store(ctx context.Context, name string, task industry.Task) (*industry.Document, error) {
	if err := s.requireDocuments(); err != nil {
		return nil, err
	}
	data, err := s.Encode(task)
	if err != nil {
		return nil, err
	}

	doc := &industry.Document{Name: name, Kind: task.Kind(), Body: data}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Log("INFO", "task stored", map[string]interface{}{
		"id":   doc.ID,
		"name": doc.Name,
		"kind": string(doc.Kind),
	})
	return doc, nil
}

// Replace overwrites the stored document id with task
func (s *TaskService) Replace(ctx context.Context, id string, task industry.Task) (*industry.Document, error) {
	if err := s.requireDocuments(); err != nil {
		return nil, err
	}
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	data, err := s.Encode(task)
	if err != nil {
		return nil, err
	}

	doc.Kind = task.Kind()
	doc.Body = data
	if err := s.documents.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Restore loads the task held by document id
func (s *TaskService) Restore(ctx context.Context, id string) (industry.Task, *industry.Document, error) {
	if err := s.requireDocuments(); err != nil {
		return nil, nil, err
	}
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	task, err := s.Decode(ctx, doc.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("document %s: %w", id, err)
	}
	return task, doc, nil
}

// List returns every stored document, newest first
func (s *TaskService) List(ctx context.Context) ([]*industry.Document, error) {
	if err := s.requireDocuments(); err != nil {
		return nil, err
	}
	return s.documents.FindAll(ctx)
}

// Delete removes document id
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.requireDocuments(); err != nil {
		return err
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return err
	}
	common.LoggerFromContext(ctx).Log("INFO", "task deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *TaskService) attach(task industry.Task) {
	for _, o := range s.observers {
		task.RegisterListener(o)
		o.RecordTaskLoaded(task)
	}
}

func (s *TaskService) requireDocuments() error {
	if s.documents == nil {
		return fmt.Errorf("%w: document repository not configured", industry.ErrIllegalState)
	}
	return nil
}

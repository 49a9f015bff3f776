package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
)

// GormTaskDocumentRepository implements industry.DocumentRepository using GORM
type GormTaskDocumentRepository struct {
	db *gorm.DB
}

// NewGormTaskDocumentRepository creates a new GORM task document repository
func NewGormTaskDocumentRepository(db *gorm.DB) *GormTaskDocumentRepository {
	return &GormTaskDocumentRepository{db: db}
}

// Create persists a new document, assigning an ID and timestamps when unset
func (r *GormTaskDocumentRepository) Create(ctx context.Context, doc *industry.Document) error {
	now := time.Now().UTC()
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	model := documentToModel(doc)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to create task document: %w", err)
	}
	return nil
}

// Update replaces the name, kind and body of an existing document
func (r *GormTaskDocumentRepository) Update(ctx context.Context, doc *industry.Document) error {
	doc.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&TaskDocumentModel{}).
		Where("id = ?", doc.ID).
		Updates(map[string]interface{}{
			"name":       doc.Name,
			"kind":       string(doc.Kind),
			"body":       string(doc.Body),
			"updated_at": doc.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update task document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", industry.ErrDocumentNotFound, doc.ID)
	}
	return nil
}

// FindByID retrieves a document by ID
func (r *GormTaskDocumentRepository) FindByID(ctx context.Context, id string) (*industry.Document, error) {
	var model TaskDocumentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", industry.ErrDocumentNotFound, id)
		}
		return nil, fmt.Errorf("failed to find task document: %w", result.Error)
	}
	return modelToDocument(&model), nil
}

// FindAll retrieves every document, most recently updated first
func (r *GormTaskDocumentRepository) FindAll(ctx context.Context) ([]*industry.Document, error) {
	var models []TaskDocumentModel
	if err := r.db.WithContext(ctx).Order("updated_at DESC, id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list task documents: %w", err)
	}

	docs := make([]*industry.Document, 0, len(models))
	for i := range models {
		docs = append(docs, modelToDocument(&models[i]))
	}
	return docs, nil
}

// Delete removes a document
func (r *GormTaskDocumentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TaskDocumentModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete task document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", industry.ErrDocumentNotFound, id)
	}
	return nil
}

func modelToDocument(model *TaskDocumentModel) *industry.Document {
	return &industry.Document{
		ID:        model.ID,
		Name:      model.Name,
		Kind:      industry.Kind(model.Kind),
		Body:      []byte(model.Body),
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func documentToModel(doc *industry.Document) TaskDocumentModel {
	return TaskDocumentModel{
		ID:        doc.ID,
		Name:      doc.Name,
		Kind:      string(doc.Kind),
		Body:      string(doc.Body),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

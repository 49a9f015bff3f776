package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/adapters/persistence"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/test/helpers"
)

func TestTaskDocumentRepository_CreateAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTaskDocumentRepository(db)
	doc := &industry.Document{
		Name: "Rifter line",
		Kind: industry.KindManufacturing,
		Body: []byte("task:\n  type: manufacturing\n"),
	}

	// Act
	err := repo.Create(context.Background(), doc)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, doc.ID)
	assert.False(t, doc.CreatedAt.IsZero())

	found, err := repo.FindByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.Name, found.Name)
	assert.Equal(t, industry.KindManufacturing, found.Kind)
	assert.Equal(t, doc.Body, found.Body)
}

func TestTaskDocumentRepository_Update(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTaskDocumentRepository(db)
	doc := &industry.Document{Name: "draft", Kind: industry.KindGroup, Body: []byte("task: {}\n")}
	require.NoError(t, repo.Create(context.Background(), doc))

	// Act
	doc.Name = "final"
	doc.Body = []byte("task:\n  type: group\n")
	err := repo.Update(context.Background(), doc)

	// Assert
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", found.Name)
	assert.Equal(t, doc.Body, found.Body)
}

func TestTaskDocumentRepository_FindAllAndDelete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTaskDocumentRepository(db)
	first := &industry.Document{Name: "first", Kind: industry.KindPlanet, Body: []byte("a")}
	second := &industry.Document{Name: "second", Kind: industry.KindReaction, Body: []byte("b")}
	require.NoError(t, repo.Create(context.Background(), first))
	require.NoError(t, repo.Create(context.Background(), second))

	// Act
	err := repo.Delete(context.Background(), first.ID)

	// Assert
	require.NoError(t, err)
	docs, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, second.ID, docs[0].ID)
}

func TestTaskDocumentRepository_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormTaskDocumentRepository(db)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, industry.ErrDocumentNotFound)

	err = repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, industry.ErrDocumentNotFound)

	err = repo.Update(context.Background(), &industry.Document{ID: "missing"})
	assert.ErrorIs(t, err, industry.ErrDocumentNotFound)
}

package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/adapters/persistence"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
	"github.com/andrescamacho/eveindustry-go/test/helpers"
)

func TestItemRepository_SaveAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormItemRepository(db)
	item := shared.Item{ID: 34, Name: "Tritanium", GroupID: 18}

	// Act
	err := repo.Save(context.Background(), item)

	// Assert
	require.NoError(t, err)
	found, err := repo.FindByID(context.Background(), 34)
	require.NoError(t, err)
	assert.Equal(t, item, found)
}

func TestItemRepository_SaveUpdatesExisting(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormItemRepository(db)
	require.NoError(t, repo.Save(context.Background(), shared.Item{ID: 34, Name: "Trit"}))

	// Act
	err := repo.Save(context.Background(), shared.Item{ID: 34, Name: "Tritanium", GroupID: 18})

	// Assert
	require.NoError(t, err)
	items, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Tritanium", items[0].Name)
}

func TestItemRepository_FindAllOrdersByID(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormItemRepository(db)
	for _, item := range []shared.Item{{ID: 587, Name: "Rifter"}, {ID: 34, Name: "Tritanium"}, {ID: 35, Name: "Pyerite"}} {
		require.NoError(t, repo.Save(context.Background(), item))
	}

	items, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int{34, 35, 587}, []int{items[0].ID, items[1].ID, items[2].ID})
}

func TestItemRepository_NotFound(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormItemRepository(db)

	// Act
	_, err := repo.FindByID(context.Background(), 999)

	// Assert
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

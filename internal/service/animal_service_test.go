package service

import (
	"testing"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnimalFixture(t *testing.T) (AnimalService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAnimalService(
		repository.NewAnimalRepository(db),
		repository.NewPhotoRepository(db),
		repository.NewFavoriteRepository(db),
		repository.NewAnimalTypeRepository(db),
		repository.NewHabitatRepository(db),
		repository.NewTestRepository(db),
	)
	return svc, db
}

func TestAnimalCreateChecksReferences(t *testing.T) {
	svc, db := newAnimalFixture(t)

	missing := uint(42)
	_, err := svc.Create(dto.AnimalCreateRequest{Name: "Lion", Description: "big cat", AnimalTypeID: &missing})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	cats := model.AnimalType{Name: "Cats"}
	require.NoError(t, db.Create(&cats).Error)

	created, err := svc.Create(dto.AnimalCreateRequest{Name: "Lion", Description: "big cat", AnimalTypeID: &cats.ID})
	require.NoError(t, err)
	assert.Equal(t, "Lion", created.Name)
	require.NotNil(t, created.AnimalTypeID)
	assert.Equal(t, cats.ID, *created.AnimalTypeID)
}

func TestAnimalPartialUpdate(t *testing.T) {
	svc, db := newAnimalFixture(t)

	preview := "prev-1"
	animal := model.Animal{Name: "Lion", Description: "big cat", PreviewID: &preview}
	require.NoError(t, db.Create(&animal).Error)

	newName := "Lioness"
	updated, err := svc.Update(animal.ID, dto.AnimalUpdateRequest{Name: &newName})
	require.NoError(t, err)

	// Absent fields keep their stored values.
	assert.Equal(t, "Lioness", updated.Name)
	assert.Equal(t, "big cat", updated.Description)
	require.NotNil(t, updated.PreviewID)
	assert.Equal(t, "prev-1", *updated.PreviewID)
}

func TestAnimalDetailIncludesLookupsAndPhotos(t *testing.T) {
	svc, db := newAnimalFixture(t)

	cats := model.AnimalType{Name: "Cats"}
	savanna := model.Habitat{Name: "Savanna"}
	require.NoError(t, db.Create(&cats).Error)
	require.NoError(t, db.Create(&savanna).Error)

	animal := model.Animal{Name: "Lion", Description: "big cat", AnimalTypeID: &cats.ID, HabitatID: &savanna.ID}
	require.NoError(t, db.Create(&animal).Error)
	require.NoError(t, db.Create(&model.AnimalPhoto{AnimalID: animal.ID, PhotoID: "ph-1"}).Error)

	detail, err := svc.GetByID(animal.ID)
	require.NoError(t, err)

	require.NotNil(t, detail.AnimalType)
	assert.Equal(t, "Cats", detail.AnimalType.Name)
	require.NotNil(t, detail.Habitat)
	assert.Equal(t, "Savanna", detail.Habitat.Name)
	require.Len(t, detail.Photos, 1)
	assert.Equal(t, "ph-1", detail.Photos[0].PhotoID)
}

func TestFavoritesLifecycle(t *testing.T) {
	svc, db := newAnimalFixture(t)

	animal := model.Animal{Name: "Lion", Description: "big cat"}
	require.NoError(t, db.Create(&animal).Error)
	user := model.User{Login: "visitor", Email: "v@zoo.example", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	fav, err := svc.AddFavorite(user.ID, animal.ID)
	require.NoError(t, err)
	assert.Equal(t, animal.ID, fav.AnimalID)

	again, err := svc.AddFavorite(user.ID, animal.ID)
	require.NoError(t, err)
	assert.Equal(t, fav.ID, again.ID)

	isFavorite, err := svc.IsFavorite(user.ID, animal.ID)
	require.NoError(t, err)
	assert.True(t, isFavorite)

	favorites, err := svc.ListFavorites(user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Lion", favorites[0].Name)

	require.NoError(t, svc.RemoveFavorite(user.ID, animal.ID))
	favorites, err = svc.ListFavorites(user.ID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	err = svc.RemoveFavorite(user.ID, animal.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package service

import (
	"testing"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLookupCRUD(t *testing.T) {
	db := newTestDB(t)
	svc := NewHabitatService(repository.NewHabitatRepository(db))

	created, err := svc.Create(dto.LookupCreateRequest{Name: "Savanna"})
	require.NoError(t, err)
	assert.Equal(t, "Savanna", created.Name)

	_, err = svc.Create(dto.LookupCreateRequest{Name: "Savanna"})
	assert.ErrorIs(t, err, ErrDuplicateName)

	updated, err := svc.Update(created.ID, dto.LookupCreateRequest{Name: "Grassland"})
	require.NoError(t, err)
	assert.Equal(t, "Grassland", updated.Name)

	rows, err := svc.List(0, 100)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

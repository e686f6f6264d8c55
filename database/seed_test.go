package database

import (
	"testing"

	"github.com/lshigami/Zooracle/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.QuestionType{}, &model.AnimalType{}, &model.Habitat{}))
	return db
}

func TestSeedLookupTables(t *testing.T) {
	db := newSeedDB(t)

	require.NoError(t, SeedLookupTables(db))

	// Grading branches on question type IDs 1..3 in seed order.
	var types []model.QuestionType
	require.NoError(t, db.Order("id ASC").Find(&types).Error)
	require.Len(t, types, 3)
	assert.Equal(t, model.QuestionTypeFreeText, types[0].ID)
	assert.Equal(t, model.QuestionTypeSingleChoice, types[1].ID)
	assert.Equal(t, model.QuestionTypeMultiChoice, types[2].ID)

	var animalTypes, habitats int64
	require.NoError(t, db.Model(&model.AnimalType{}).Count(&animalTypes).Error)
	require.NoError(t, db.Model(&model.Habitat{}).Count(&habitats).Error)
	assert.Equal(t, int64(5), animalTypes)
	assert.Equal(t, int64(5), habitats)
}

func TestSeedLookupTablesIdempotent(t *testing.T) {
	db := newSeedDB(t)

	require.NoError(t, SeedLookupTables(db))
	require.NoError(t, SeedLookupTables(db))

	var types int64
	require.NoError(t, db.Model(&model.QuestionType{}).Count(&types).Error)
	assert.Equal(t, int64(3), types)
}

func TestSeedKeepsExistingRows(t *testing.T) {
	db := newSeedDB(t)
	require.NoError(t, db.Create(&model.Habitat{Name: "Custom"}).Error)

	require.NoError(t, SeedLookupTables(db))

	var habitats int64
	require.NoError(t, db.Model(&model.Habitat{}).Count(&habitats).Error)
	assert.Equal(t, int64(1), habitats)
}

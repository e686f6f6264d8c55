package repository

import (
	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

// The three lookup tables (animal types, habitats, question types) share
// one CRUD shape; lookupRepository provides it generically and each typed
// repository is an instantiation.
type LookupRepository[T any] interface {
	Create(row *T) error
	FindByID(id uint) (*T, error)
	FindByName(name string) (*T, error)
	FindAll(skip, limit int) ([]T, error)
	Update(row *T) error
	Delete(id uint) error
}

type lookupRepository[T any] struct {
	db *gorm.DB
}

type (
	AnimalTypeRepository   = LookupRepository[model.AnimalType]
	HabitatRepository      = LookupRepository[model.Habitat]
	QuestionTypeRepository = LookupRepository[model.QuestionType]
)

func NewAnimalTypeRepository(db *gorm.DB) AnimalTypeRepository {
	return &lookupRepository[model.AnimalType]{db: db}
}

func NewHabitatRepository(db *gorm.DB) HabitatRepository {
	return &lookupRepository[model.Habitat]{db: db}
}

func NewQuestionTypeRepository(db *gorm.DB) QuestionTypeRepository {
	return &lookupRepository[model.QuestionType]{db: db}
}

func (r *lookupRepository[T]) Create(row *T) error {
	return r.db.Create(row).Error
}

func (r *lookupRepository[T]) FindByID(id uint) (*T, error) {
	var row T
	if err := r.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *lookupRepository[T]) FindByName(name string) (*T, error) {
	var row T
	if err := r.db.Where("name = ?", name).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *lookupRepository[T]) FindAll(skip, limit int) ([]T, error) {
	var rows []T
	if err := r.db.Order("id ASC").Offset(skip).Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *lookupRepository[T]) Update(row *T) error {
	return r.db.Save(row).Error
}

func (r *lookupRepository[T]) Delete(id uint) error {
	var row T
	return r.db.Delete(&row, id).Error
}

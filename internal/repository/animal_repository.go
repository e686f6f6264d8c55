package repository

import (
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

type AnimalRepository interface {
	Create(animal *model.Animal) error
	FindByID(id uint) (*model.Animal, error)
	FindByIDWithDetails(id uint) (*model.Animal, error)
	FindByIDs(ids []uint) ([]model.Animal, error)
	// List applies the catalog filter. userID is the authenticated caller,
	// nil for anonymous requests; favorites_only is ignored without it.
	List(filter dto.AnimalFilter, userID *uint) ([]model.Animal, error)
	Update(animal *model.Animal) error
}

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) Create(animal *model.Animal) error {
	return r.db.Create(animal).Error
}

func (r *animalRepository) FindByID(id uint) (*model.Animal, error) {
	var animal model.Animal
	if err := r.db.First(&animal, id).Error; err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) FindByIDWithDetails(id uint) (*model.Animal, error) {
	var animal model.Animal
	err := r.db.
		Preload("AnimalType").
		Preload("Habitat").
		Preload("Photos").
		First(&animal, id).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) FindByIDs(ids []uint) ([]model.Animal, error) {
	var animals []model.Animal
	if len(ids) == 0 {
		return animals, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) List(filter dto.AnimalFilter, userID *uint) ([]model.Animal, error) {
	query := r.db.Model(&model.Animal{})

	if filter.Search != "" {
		query = query.Where("LOWER(animals.name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}
	if filter.AnimalTypeID != 0 {
		query = query.Where("animal_type_id = ?", filter.AnimalTypeID)
	}
	if filter.HabitatID != 0 {
		query = query.Where("habitat_id = ?", filter.HabitatID)
	}

	// Anonymous callers may still send favorites_only; it is a no-op then.
	if filter.FavoritesOnly && userID != nil {
		sub := r.db.Model(&model.FavoriteAnimal{}).
			Select("animal_id").
			Where("user_id = ?", *userID)
		query = query.Where("animals.id IN (?)", sub)
	}

	sortBy := filter.SortBy
	if sortBy != "name" {
		sortBy = "id"
	}
	direction := "asc"
	if filter.SortOrder == "desc" {
		direction = "desc"
	}
	query = query.Order("animals." + sortBy + " " + direction)

	limit := filter.Limit
	if limit <= 0 {
		limit = 10000
	}

	var animals []model.Animal
	if err := query.Offset(filter.Skip).Limit(limit).Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepository) Update(animal *model.Animal) error {
	return r.db.Save(animal).Error
}

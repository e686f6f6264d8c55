package repository

import (
	"errors"

	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(favorite *model.FavoriteAnimal) error
	Find(userID, animalID uint) (*model.FavoriteAnimal, error)
	ListByUser(userID uint) ([]model.FavoriteAnimal, error)
	Delete(id uint) error
	Exists(userID, animalID uint) (bool, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(favorite *model.FavoriteAnimal) error {
	return r.db.Create(favorite).Error
}

func (r *favoriteRepository) Find(userID, animalID uint) (*model.FavoriteAnimal, error) {
	var favorite model.FavoriteAnimal
	err := r.db.Where("user_id = ? AND animal_id = ?", userID, animalID).First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListByUser(userID uint) ([]model.FavoriteAnimal, error) {
	var favorites []model.FavoriteAnimal
	if err := r.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) Delete(id uint) error {
	return r.db.Delete(&model.FavoriteAnimal{}, id).Error
}

func (r *favoriteRepository) Exists(userID, animalID uint) (bool, error) {
	_, err := r.Find(userID, animalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

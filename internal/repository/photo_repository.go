package repository

import (
	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

type PhotoRepository interface {
	Create(photo *model.AnimalPhoto) error
	FindByAnimal(animalID uint) ([]model.AnimalPhoto, error)
	// FindByPhotoID looks the photo up by its opaque object id within one
	// animal, matching the route shape /animals/:id/photos/:photo_id.
	FindByPhotoID(animalID uint, photoID string) (*model.AnimalPhoto, error)
	Delete(id uint) error
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(photo *model.AnimalPhoto) error {
	return r.db.Create(photo).Error
}

func (r *photoRepository) FindByAnimal(animalID uint) ([]model.AnimalPhoto, error) {
	var photos []model.AnimalPhoto
	if err := r.db.Where("animal_id = ?", animalID).Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *photoRepository) FindByPhotoID(animalID uint, photoID string) (*model.AnimalPhoto, error) {
	var photo model.AnimalPhoto
	err := r.db.Where("animal_id = ? AND photo_id = ?", animalID, photoID).First(&photo).Error
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) Delete(id uint) error {
	return r.db.Delete(&model.AnimalPhoto{}, id).Error
}

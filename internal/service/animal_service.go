package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnimalService covers the animal catalog: CRUD, gallery photos and
// per-user favorites. Deletion lives in DeletionService because of its
// cross-entity cascade.
type AnimalService interface {
	Create(req dto.AnimalCreateRequest) (*dto.AnimalResponse, error)
	GetByID(id uint) (*dto.AnimalDetailResponse, error)
	List(filter dto.AnimalFilter, userID *uint) ([]dto.AnimalResponse, error)
	Update(id uint, req dto.AnimalUpdateRequest) (*dto.AnimalResponse, error)

	AddPhoto(animalID uint, req dto.AnimalPhotoCreateRequest) (*dto.AnimalPhotoResponse, error)
	ListPhotos(animalID uint) ([]dto.AnimalPhotoResponse, error)

	AddFavorite(userID, animalID uint) (*dto.FavoriteResponse, error)
	RemoveFavorite(userID, animalID uint) error
	ListFavorites(userID uint) ([]dto.AnimalResponse, error)
	IsFavorite(userID, animalID uint) (bool, error)
}

type animalService struct {
	animalRepo   repository.AnimalRepository
	photoRepo    repository.PhotoRepository
	favoriteRepo repository.FavoriteRepository
	typeRepo     repository.AnimalTypeRepository
	habitatRepo  repository.HabitatRepository
	testRepo     repository.TestRepository
}

func NewAnimalService(
	animalRepo repository.AnimalRepository,
	photoRepo repository.PhotoRepository,
	favoriteRepo repository.FavoriteRepository,
	typeRepo repository.AnimalTypeRepository,
	habitatRepo repository.HabitatRepository,
	testRepo repository.TestRepository,
) AnimalService {
	return &animalService{
		animalRepo:   animalRepo,
		photoRepo:    photoRepo,
		favoriteRepo: favoriteRepo,
		typeRepo:     typeRepo,
		habitatRepo:  habitatRepo,
		testRepo:     testRepo,
	}
}

func (s *animalService) Create(req dto.AnimalCreateRequest) (*dto.AnimalResponse, error) {
	if err := s.checkReferences(req.AnimalTypeID, req.HabitatID, req.TestID); err != nil {
		return nil, err
	}

	animal := model.Animal{
		Name:         req.Name,
		AnimalTypeID: req.AnimalTypeID,
		HabitatID:    req.HabitatID,
		Description:  req.Description,
		PreviewID:    req.PreviewID,
		VideoID:      req.VideoID,
		TestID:       req.TestID,
	}
	if err := s.animalRepo.Create(&animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	log.Info().Uint("animalID", animal.ID).Str("name", animal.Name).Msg("Animal created")
	return animalToResponse(&animal), nil
}

func (s *animalService) GetByID(id uint) (*dto.AnimalDetailResponse, error) {
	animal, err := s.animalRepo.FindByIDWithDetails(id)
	if err != nil {
		return nil, err
	}

	resp := dto.AnimalDetailResponse{AnimalResponse: *animalToResponse(animal)}
	if animal.AnimalType != nil {
		resp.AnimalType = &dto.LookupResponse{ID: animal.AnimalType.ID, Name: animal.AnimalType.Name}
	}
	if animal.Habitat != nil {
		resp.Habitat = &dto.LookupResponse{ID: animal.Habitat.ID, Name: animal.Habitat.Name}
	}
	for _, photo := range animal.Photos {
		resp.Photos = append(resp.Photos, dto.AnimalPhotoResponse{
			ID:       photo.ID,
			AnimalID: photo.AnimalID,
			PhotoID:  photo.PhotoID,
		})
	}
	return &resp, nil
}

func (s *animalService) List(filter dto.AnimalFilter, userID *uint) ([]dto.AnimalResponse, error) {
	animals, err := s.animalRepo.List(filter, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	return animalsToResponses(animals), nil
}

func (s *animalService) Update(id uint, req dto.AnimalUpdateRequest) (*dto.AnimalResponse, error) {
	animal, err := s.animalRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(req.AnimalTypeID, req.HabitatID, req.TestID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		animal.Name = *req.Name
	}
	if req.AnimalTypeID != nil {
		animal.AnimalTypeID = req.AnimalTypeID
	}
	if req.HabitatID != nil {
		animal.HabitatID = req.HabitatID
	}
	if req.Description != nil {
		animal.Description = *req.Description
	}
	if req.PreviewID != nil {
		animal.PreviewID = req.PreviewID
	}
	if req.VideoID != nil {
		animal.VideoID = req.VideoID
	}
	if req.TestID != nil {
		animal.TestID = req.TestID
	}

	if err := s.animalRepo.Update(animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}
	return animalToResponse(animal), nil
}

func (s *animalService) checkReferences(animalTypeID, habitatID, testID *uint) error {
	if animalTypeID != nil {
		if _, err := s.typeRepo.FindByID(*animalTypeID); err != nil {
			return fmt.Errorf("animal type %d: %w", *animalTypeID, err)
		}
	}
	if habitatID != nil {
		if _, err := s.habitatRepo.FindByID(*habitatID); err != nil {
			return fmt.Errorf("habitat %d: %w", *habitatID, err)
		}
	}
	if testID != nil {
		if _, err := s.testRepo.FindByID(*testID); err != nil {
			return fmt.Errorf("test %d: %w", *testID, err)
		}
	}
	return nil
}

func (s *animalService) AddPhoto(animalID uint, req dto.AnimalPhotoCreateRequest) (*dto.AnimalPhotoResponse, error) {
	if _, err := s.animalRepo.FindByID(animalID); err != nil {
		return nil, err
	}
	photo := model.AnimalPhoto{AnimalID: animalID, PhotoID: req.PhotoID}
	if err := s.photoRepo.Create(&photo); err != nil {
		return nil, fmt.Errorf("failed to add photo: %w", err)
	}
	return &dto.AnimalPhotoResponse{ID: photo.ID, AnimalID: photo.AnimalID, PhotoID: photo.PhotoID}, nil
}

func (s *animalService) ListPhotos(animalID uint) ([]dto.AnimalPhotoResponse, error) {
	if _, err := s.animalRepo.FindByID(animalID); err != nil {
		return nil, err
	}
	photos, err := s.photoRepo.FindByAnimal(animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	out := make([]dto.AnimalPhotoResponse, 0, len(photos))
	for _, photo := range photos {
		out = append(out, dto.AnimalPhotoResponse{
			ID:       photo.ID,
			AnimalID: photo.AnimalID,
			PhotoID:  photo.PhotoID,
		})
	}
	return out, nil
}

func (s *animalService) AddFavorite(userID, animalID uint) (*dto.FavoriteResponse, error) {
	if _, err := s.animalRepo.FindByID(animalID); err != nil {
		return nil, err
	}
	if existing, err := s.favoriteRepo.Find(userID, animalID); err == nil {
		return &dto.FavoriteResponse{ID: existing.ID, UserID: userID, AnimalID: animalID}, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check favorite: %w", err)
	}

	favorite := model.FavoriteAnimal{UserID: userID, AnimalID: animalID}
	if err := s.favoriteRepo.Create(&favorite); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	return &dto.FavoriteResponse{ID: favorite.ID, UserID: userID, AnimalID: animalID}, nil
}

func (s *animalService) RemoveFavorite(userID, animalID uint) error {
	favorite, err := s.favoriteRepo.Find(userID, animalID)
	if err != nil {
		return err
	}
	return s.favoriteRepo.Delete(favorite.ID)
}

func (s *animalService) ListFavorites(userID uint) ([]dto.AnimalResponse, error) {
	favorites, err := s.favoriteRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	ids := make([]uint, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.AnimalID)
	}
	animals, err := s.animalRepo.FindByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite animals: %w", err)
	}
	return animalsToResponses(animals), nil
}

func (s *animalService) IsFavorite(userID, animalID uint) (bool, error) {
	return s.favoriteRepo.Exists(userID, animalID)
}

func animalToResponse(animal *model.Animal) *dto.AnimalResponse {
	var resp dto.AnimalResponse
	if err := copier.Copy(&resp, animal); err != nil {
		log.Error().Err(err).Msg("Failed to map animal")
	}
	return &resp
}

func animalsToResponses(animals []model.Animal) []dto.AnimalResponse {
	out := make([]dto.AnimalResponse, 0, len(animals))
	for i := range animals {
		out = append(out, *animalToResponse(&animals[i]))
	}
	return out
}

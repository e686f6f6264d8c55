package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"gorm.io/gorm"
)

// LookupService is the shared CRUD surface of the three name tables. Each
// instantiation pairs a repository with accessors for the model's fields,
// keeping the generic code free of reflection.
type LookupService[T any] interface {
	Create(req dto.LookupCreateRequest) (*dto.LookupResponse, error)
	GetByID(id uint) (*dto.LookupResponse, error)
	List(skip, limit int) ([]dto.LookupResponse, error)
	Update(id uint, req dto.LookupCreateRequest) (*dto.LookupResponse, error)
	Delete(id uint) error
}

type lookupService[T any] struct {
	repo    repository.LookupRepository[T]
	make    func(name string) T
	extract func(row *T) dto.LookupResponse
	rename  func(row *T, name string)
}

type (
	AnimalTypeService   = LookupService[model.AnimalType]
	HabitatService      = LookupService[model.Habitat]
	QuestionTypeService = LookupService[model.QuestionType]
)

func NewAnimalTypeService(repo repository.AnimalTypeRepository) AnimalTypeService {
	return &lookupService[model.AnimalType]{
		repo:    repo,
		make:    func(name string) model.AnimalType { return model.AnimalType{Name: name} },
		extract: func(row *model.AnimalType) dto.LookupResponse { return dto.LookupResponse{ID: row.ID, Name: row.Name} },
		rename:  func(row *model.AnimalType, name string) { row.Name = name },
	}
}

func NewHabitatService(repo repository.HabitatRepository) HabitatService {
	return &lookupService[model.Habitat]{
		repo:    repo,
		make:    func(name string) model.Habitat { return model.Habitat{Name: name} },
		extract: func(row *model.Habitat) dto.LookupResponse { return dto.LookupResponse{ID: row.ID, Name: row.Name} },
		rename:  func(row *model.Habitat, name string) { row.Name = name },
	}
}

func NewQuestionTypeService(repo repository.QuestionTypeRepository) QuestionTypeService {
	return &lookupService[model.QuestionType]{
		repo: repo,
		make: func(name string) model.QuestionType { return model.QuestionType{Name: name} },
		extract: func(row *model.QuestionType) dto.LookupResponse {
			return dto.LookupResponse{ID: row.ID, Name: row.Name}
		},
		rename: func(row *model.QuestionType, name string) { row.Name = name },
	}
}

func (s *lookupService[T]) Create(req dto.LookupCreateRequest) (*dto.LookupResponse, error) {
	if _, err := s.repo.FindByName(req.Name); err == nil {
		return nil, ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check name: %w", err)
	}

	row := s.make(req.Name)
	if err := s.repo.Create(&row); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	resp := s.extract(&row)
	return &resp, nil
}

func (s *lookupService[T]) GetByID(id uint) (*dto.LookupResponse, error) {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := s.extract(row)
	return &resp, nil
}

func (s *lookupService[T]) List(skip, limit int) ([]dto.LookupResponse, error) {
	rows, err := s.repo.FindAll(skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	out := make([]dto.LookupResponse, 0, len(rows))
	for i := range rows {
		out = append(out, s.extract(&rows[i]))
	}
	return out, nil
}

func (s *lookupService[T]) Update(id uint, req dto.LookupCreateRequest) (*dto.LookupResponse, error) {
	row, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	s.rename(row, req.Name)
	if err := s.repo.Update(row); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	resp := s.extract(row)
	return &resp, nil
}

func (s *lookupService[T]) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

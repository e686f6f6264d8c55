package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/Zooracle/internal/dto"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/lshigami/Zooracle/internal/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DeletionService removes entities whose rows reference each other without
// database-level cascades. Each delete builds an ordered plan of steps,
// children before parents, and runs the whole plan in one transaction.
// Object storage cleanup happens after commit and is best effort: a failed
// removal never rolls the database back.
type DeletionService interface {
	DeleteAnimal(ctx context.Context, animalID uint) (*dto.DeleteAnimalResponse, error)
	DeleteTest(ctx context.Context, testID uint) error
	DeleteQuestion(ctx context.Context, questionID uint) error
	DeletePhoto(ctx context.Context, animalID uint, photoID string) ([]string, []string, error)
}

type deletionStep struct {
	name string
	run  func(tx *gorm.DB) error
}

type deletionService struct {
	db        *gorm.DB
	testRepo  repository.TestRepository
	photoRepo repository.PhotoRepository
	store     storage.ObjectStorage
}

func NewDeletionService(
	db *gorm.DB,
	testRepo repository.TestRepository,
	photoRepo repository.PhotoRepository,
	store storage.ObjectStorage,
) DeletionService {
	return &deletionService{db: db, testRepo: testRepo, photoRepo: photoRepo, store: store}
}

func (s *deletionService) DeleteAnimal(ctx context.Context, animalID uint) (*dto.DeleteAnimalResponse, error) {
	var animal model.Animal
	if err := s.db.Preload("Photos").First(&animal, animalID).Error; err != nil {
		return nil, err
	}

	plan := []deletionStep{}
	if animal.TestID != nil {
		steps, err := s.testPlan(*animal.TestID)
		if err != nil {
			return nil, err
		}
		plan = append(plan, steps...)
	}
	plan = append(plan,
		deletionStep{"favorites", func(tx *gorm.DB) error {
			return tx.Where("animal_id = ?", animalID).Delete(&model.FavoriteAnimal{}).Error
		}},
		deletionStep{"photos", func(tx *gorm.DB) error {
			return tx.Where("animal_id = ?", animalID).Delete(&model.AnimalPhoto{}).Error
		}},
		deletionStep{"animal", func(tx *gorm.DB) error {
			return tx.Delete(&model.Animal{}, animalID).Error
		}},
	)
	if err := s.runPlan(plan); err != nil {
		return nil, err
	}

	keys := animalObjectKeys(&animal)
	removed, failed := s.cleanupObjects(ctx, keys)

	log.Info().Uint("animalID", animalID).
		Int("removedKeys", len(removed)).Int("failedKeys", len(failed)).
		Msg("Animal deleted")
	return &dto.DeleteAnimalResponse{
		Message:     fmt.Sprintf("Animal %d deleted", animalID),
		RemovedKeys: removed,
		FailedKeys:  failed,
	}, nil
}

func (s *deletionService) DeleteTest(ctx context.Context, testID uint) error {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		return err
	}
	plan, err := s.testPlan(testID)
	if err != nil {
		return err
	}
	if err := s.runPlan(plan); err != nil {
		return err
	}
	log.Info().Uint("testID", testID).Msg("Test deleted")
	return nil
}

// testPlan builds the steps that remove a test and everything hanging off
// it: scores first, then per-question answer links, options and the link
// row, then the question itself, finally the test. Questions still linked
// to another test keep their rows; only the link to this test goes.
func (s *deletionService) testPlan(testID uint) ([]deletionStep, error) {
	links, err := s.testRepo.LinksByTest(testID)
	if err != nil {
		return nil, fmt.Errorf("failed to load test questions: %w", err)
	}

	plan := []deletionStep{
		{"test scores", func(tx *gorm.DB) error {
			return tx.Where("test_id = ?", testID).Delete(&model.TestScore{}).Error
		}},
	}
	for _, link := range links {
		questionID := link.QuestionID
		linkID := link.ID

		shared, err := s.testRepo.CountLinksForQuestion(questionID, &testID)
		if err != nil {
			return nil, fmt.Errorf("failed to count question links: %w", err)
		}
		if shared > 0 {
			plan = append(plan, deletionStep{"shared question link", func(tx *gorm.DB) error {
				return tx.Delete(&model.TestQuestion{}, linkID).Error
			}})
			continue
		}
		plan = append(plan, questionPlan(questionID)...)
		plan = append(plan, deletionStep{"test question link", func(tx *gorm.DB) error {
			return tx.Delete(&model.TestQuestion{}, linkID).Error
		}})
	}
	plan = append(plan, deletionStep{"test", func(tx *gorm.DB) error {
		return tx.Delete(&model.Test{}, testID).Error
	}})
	return plan, nil
}

func (s *deletionService) DeleteQuestion(ctx context.Context, questionID uint) error {
	var question model.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		return err
	}
	plan := questionPlan(questionID)
	plan = append(plan,
		deletionStep{"test question links", func(tx *gorm.DB) error {
			return tx.Where("question_id = ?", questionID).Delete(&model.TestQuestion{}).Error
		}},
	)
	if err := s.runPlan(plan); err != nil {
		return err
	}
	log.Info().Uint("questionID", questionID).Msg("Question deleted")
	return nil
}

// questionPlan removes a question's answer links, its options and the
// question row. The options belong to this question only, so they go with
// it.
func questionPlan(questionID uint) []deletionStep {
	return []deletionStep{
		{"answer options", func(tx *gorm.DB) error {
			sub := tx.Model(&model.QuestionAnswer{}).
				Select("answer_id").
				Where("question_id = ?", questionID)
			return tx.Where("id IN (?)", sub).Delete(&model.AnswerOption{}).Error
		}},
		{"answer links", func(tx *gorm.DB) error {
			return tx.Where("question_id = ?", questionID).Delete(&model.QuestionAnswer{}).Error
		}},
		{"question", func(tx *gorm.DB) error {
			return tx.Delete(&model.Question{}, questionID).Error
		}},
	}
}

func (s *deletionService) DeletePhoto(ctx context.Context, animalID uint, photoID string) ([]string, []string, error) {
	photo, err := s.photoRepo.FindByPhotoID(animalID, photoID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.photoRepo.Delete(photo.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to delete photo: %w", err)
	}
	removed, failed := s.cleanupObjects(ctx, imageKeys(photoID))
	return removed, failed, nil
}

func (s *deletionService) runPlan(plan []deletionStep) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, step := range plan {
			if err := step.run(tx); err != nil {
				return fmt.Errorf("failed to delete %s: %w", step.name, err)
			}
		}
		return nil
	})
}

// cleanupObjects probes every candidate key and removes the ones that
// exist. Keys that fail to remove are reported back to the caller instead
// of failing the request.
func (s *deletionService) cleanupObjects(ctx context.Context, keys []string) (removed, failed []string) {
	removed = []string{}
	failed = []string{}
	for _, key := range keys {
		reader, _, err := s.store.Fetch(ctx, key)
		if err != nil {
			if !errors.Is(err, storage.ErrObjectNotFound) {
				log.Warn().Err(err).Str("key", key).Msg("Failed to probe object")
				failed = append(failed, key)
			}
			continue
		}
		reader.Close()
		if err := s.store.Remove(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to remove object")
			failed = append(failed, key)
			continue
		}
		removed = append(removed, key)
	}
	return removed, failed
}

// animalObjectKeys enumerates every storage key an animal's media may live
// under. File IDs are stored without category or extension, so candidates
// are generated the same way the download probe walks them.
func animalObjectKeys(animal *model.Animal) []string {
	var keys []string
	if animal.PreviewID != nil {
		keys = append(keys, imageKeys(*animal.PreviewID)...)
	}
	if animal.VideoID != nil {
		keys = append(keys, videoKeys(*animal.VideoID)...)
	}
	for _, photo := range animal.Photos {
		keys = append(keys, imageKeys(photo.PhotoID)...)
	}
	return keys
}

func imageKeys(fileID string) []string {
	keys := make([]string, 0, len(storage.Categories)*len(storage.ImageExtensions))
	for _, category := range storage.Categories {
		for _, ext := range storage.ImageExtensions {
			keys = append(keys, category+"/"+fileID+ext)
		}
	}
	return keys
}

func videoKeys(fileID string) []string {
	keys := make([]string, 0, len(storage.VideoExtensions)*2)
	for _, ext := range storage.VideoExtensions {
		keys = append(keys, "videos/"+fileID+ext)
	}
	for _, ext := range storage.VideoExtensions {
		keys = append(keys, "images/"+fileID+ext)
	}
	return keys
}

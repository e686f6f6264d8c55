package repository

import (
	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	Create(score *model.TestScore) error
	ListByUser(userID uint) ([]model.TestScore, error)
	ListByTest(testID uint) ([]model.TestScore, error)
	// LatestByUserAndTest returns the most recent submission.
	LatestByUserAndTest(userID, testID uint) (*model.TestScore, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Create(score *model.TestScore) error {
	return r.db.Create(score).Error
}

func (r *scoreRepository) ListByUser(userID uint) ([]model.TestScore, error) {
	var scores []model.TestScore
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *scoreRepository) ListByTest(testID uint) ([]model.TestScore, error) {
	var scores []model.TestScore
	if err := r.db.Where("test_id = ?", testID).Order("date DESC").Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *scoreRepository) LatestByUserAndTest(userID, testID uint) (*model.TestScore, error) {
	var score model.TestScore
	err := r.db.Where("user_id = ? AND test_id = ?", userID, testID).
		Order("date DESC").
		First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

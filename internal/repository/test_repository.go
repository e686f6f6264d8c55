package repository

import (
	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByID(id uint) (*model.Test, error)
	FindAll(skip, limit int) ([]model.Test, error)
	Update(test *model.Test) error

	AddLink(link *model.TestQuestion) error
	FindLink(testID, questionID uint) (*model.TestQuestion, error)
	LinksByTest(testID uint) ([]model.TestQuestion, error)
	DeleteLink(id uint) error
	// CountLinksForQuestion counts tests still referencing the question,
	// optionally excluding one test (the one being cascaded away).
	CountLinksForQuestion(questionID uint, excludeTestID *uint) (int64, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	return r.db.Create(test).Error
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAll(skip, limit int) ([]model.Test, error) {
	var tests []model.Test
	if err := r.db.Order("id ASC").Offset(skip).Limit(limit).Find(&tests).Error; err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) Update(test *model.Test) error {
	return r.db.Save(test).Error
}

func (r *testRepository) AddLink(link *model.TestQuestion) error {
	return r.db.Create(link).Error
}

func (r *testRepository) FindLink(testID, questionID uint) (*model.TestQuestion, error) {
	var link model.TestQuestion
	err := r.db.Where("test_id = ? AND question_id = ?", testID, questionID).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *testRepository) LinksByTest(testID uint) ([]model.TestQuestion, error) {
	var links []model.TestQuestion
	if err := r.db.Where("test_id = ?", testID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *testRepository) DeleteLink(id uint) error {
	return r.db.Delete(&model.TestQuestion{}, id).Error
}

func (r *testRepository) CountLinksForQuestion(questionID uint, excludeTestID *uint) (int64, error) {
	query := r.db.Model(&model.TestQuestion{}).Where("question_id = ?", questionID)
	if excludeTestID != nil {
		query = query.Where("test_id <> ?", *excludeTestID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

package repository

import (
	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll(skip, limit int, questionTypeID *uint) ([]model.Question, error)
	Update(question *model.Question) error

	CreateOption(option *model.AnswerOption) error
	FindOption(id uint) (*model.AnswerOption, error)
	FindOptionsByIDs(ids []uint) ([]model.AnswerOption, error)
	UpdateOption(option *model.AnswerOption) error
	DeleteOption(id uint) error

	CreateLink(link *model.QuestionAnswer) error
	LinksByQuestion(questionID uint) ([]model.QuestionAnswer, error)
	DeleteLink(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll(skip, limit int, questionTypeID *uint) ([]model.Question, error) {
	query := r.db.Model(&model.Question{})
	if questionTypeID != nil {
		query = query.Where("question_type_id = ?", *questionTypeID)
	}
	var questions []model.Question
	if err := query.Order("id ASC").Offset(skip).Limit(limit).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) CreateOption(option *model.AnswerOption) error {
	return r.db.Create(option).Error
}

func (r *questionRepository) FindOption(id uint) (*model.AnswerOption, error) {
	var option model.AnswerOption
	if err := r.db.First(&option, id).Error; err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *questionRepository) FindOptionsByIDs(ids []uint) ([]model.AnswerOption, error) {
	var options []model.AnswerOption
	if len(ids) == 0 {
		return options, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *questionRepository) UpdateOption(option *model.AnswerOption) error {
	return r.db.Save(option).Error
}

func (r *questionRepository) DeleteOption(id uint) error {
	return r.db.Delete(&model.AnswerOption{}, id).Error
}

func (r *questionRepository) CreateLink(link *model.QuestionAnswer) error {
	return r.db.Create(link).Error
}

func (r *questionRepository) LinksByQuestion(questionID uint) ([]model.QuestionAnswer, error) {
	var links []model.QuestionAnswer
	if err := r.db.Where("question_id = ?", questionID).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *questionRepository) DeleteLink(id uint) error {
	return r.db.Delete(&model.QuestionAnswer{}, id).Error
}

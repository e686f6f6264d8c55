package repository

import (
	"github.com/lshigami/Zooracle/internal/model"
	"gorm.io/gorm"
)

type ResetTokenRepository interface {
	Create(token *model.PasswordResetToken) error
	FindByToken(token string) (*model.PasswordResetToken, error)
}

type resetTokenRepository struct {
	db *gorm.DB
}

func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepository{db: db}
}

func (r *resetTokenRepository) Create(token *model.PasswordResetToken) error {
	return r.db.Create(token).Error
}

func (r *resetTokenRepository) FindByToken(token string) (*model.PasswordResetToken, error) {
	var row model.PasswordResetToken
	if err := r.db.Where("token = ?", token).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

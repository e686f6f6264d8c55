package database

import (
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Lookup rows inserted on first start. Admins can extend these through the
// regular CRUD endpoints afterwards.
var (
	defaultQuestionTypes = []string{"Свободный ответ", "Один вариант", "Несколько вариантов"}
	defaultAnimalTypes   = []string{"Млекопитающие", "Птицы", "Рептилии", "Рыбы", "Насекомые"}
	defaultHabitats      = []string{"Лес", "Степь", "Пустыня", "Горы", "Водоём"}
)

// SeedLookupTables populates the lookup tables when they are empty.
// Question type IDs matter: grading branches on type 1/2/3 in seed order.
func SeedLookupTables(db *gorm.DB) error {
	if err := seedQuestionTypes(db); err != nil {
		return err
	}

	var typeCount int64
	if err := db.Model(&model.AnimalType{}).Count(&typeCount).Error; err != nil {
		return err
	}
	if typeCount == 0 {
		for _, name := range defaultAnimalTypes {
			if err := db.Create(&model.AnimalType{Name: name}).Error; err != nil {
				return err
			}
		}
		log.Info().Int("count", len(defaultAnimalTypes)).Msg("Seeded animal types")
	}

	var habitatCount int64
	if err := db.Model(&model.Habitat{}).Count(&habitatCount).Error; err != nil {
		return err
	}
	if habitatCount == 0 {
		for _, name := range defaultHabitats {
			if err := db.Create(&model.Habitat{Name: name}).Error; err != nil {
				return err
			}
		}
		log.Info().Int("count", len(defaultHabitats)).Msg("Seeded habitats")
	}

	return nil
}

func seedQuestionTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.QuestionType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, name := range defaultQuestionTypes {
		if err := db.Create(&model.QuestionType{Name: name}).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(defaultQuestionTypes)).Msg("Seeded question types")
	return nil
}

package model

type Animal struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	Name         string  `json:"name" gorm:"not null"`
	AnimalTypeID *uint   `json:"animal_type_id" gorm:"index"`
	HabitatID    *uint   `json:"habitat_id" gorm:"index"`
	Description  string  `json:"description" gorm:"type:text;not null"`
	PreviewID    *string `json:"preview_id,omitempty"` // object-store id, extension not recorded
	VideoID      *string `json:"video_id,omitempty"`
	TestID       *uint   `json:"test_id,omitempty" gorm:"index"`

	AnimalType *AnimalType `json:"animal_type,omitempty" gorm:"foreignKey:AnimalTypeID"`
	Habitat    *Habitat    `json:"habitat,omitempty" gorm:"foreignKey:HabitatID"`

	// Rows owned by the animal; the database cascades them with the row.
	Photos    []AnimalPhoto    `json:"photos,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
	Favorites []FavoriteAnimal `json:"-" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
}

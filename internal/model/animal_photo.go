package model

type AnimalPhoto struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	AnimalID uint   `json:"animal_id" gorm:"not null;index"`
	PhotoID  string `json:"photo_id" gorm:"not null"` // object-store id stem
}

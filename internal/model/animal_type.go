package model

type AnimalType struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

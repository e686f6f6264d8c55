package model

type FavoriteAnimal struct {
	ID       uint `gorm:"primarykey" json:"id"`
	UserID   uint `json:"user_id" gorm:"not null;index:idx_favorite_user_animal,unique"`
	AnimalID uint `json:"animal_id" gorm:"not null;index:idx_favorite_user_animal,unique"`
}

package model

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Login    string `json:"login" gorm:"not null;uniqueIndex"`
	Email    string `json:"email" gorm:"not null;uniqueIndex"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash
	IsAdmin  bool   `json:"is_admin" gorm:"not null;default:false"`

	FavoriteAnimals []FavoriteAnimal     `json:"-" gorm:"foreignKey:UserID"`
	TestScores      []TestScore          `json:"-" gorm:"foreignKey:UserID"`
	ResetTokens     []PasswordResetToken `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

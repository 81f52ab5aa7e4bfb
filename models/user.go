package models

// User is a registrable account. Guests never log in; accounts exist so a
// registry owner can be identified for draft previews and inline editing.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(150);not null"`
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsEnabled    bool   `gorm:"default:true;index"`
}

package models

type User struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone"`

	// Связи
	Address *Address `gorm:"foreignKey:UserID" json:"address,omitempty"`
	Posts   []Post   `gorm:"foreignKey:UserID" json:"-"`
}

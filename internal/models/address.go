package models

type Address struct {
	ID      string `gorm:"primaryKey" json:"id"`
	UserID  string `gorm:"uniqueIndex;not null" json:"user_id"`
	Street  string `json:"street"`
	State   string `json:"state"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

package model

// User is an admin account that can authenticate against the API.
type User struct {
	BaseModel
	Username     string `gorm:"size:60;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:120;not null" json:"-"`
	Role         string `gorm:"size:20;default:admin" json:"role"`
}

func (User) TableName() string {
	return "users"
}

package model

// Brand (marca) is a lookup category with a unique short code used when
// deriving internal reference codes.
type Brand struct {
	BaseModel
	Name      string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	ShortCode string `gorm:"size:10;uniqueIndex;not null" json:"shortCode"`
}

func (Brand) TableName() string {
	return "brands"
}

package model

// Line (linha) has the same shape and lifecycle as Brand.
type Line struct {
	BaseModel
	Name      string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	ShortCode string `gorm:"size:10;uniqueIndex;not null" json:"shortCode"`
}

func (Line) TableName() string {
	return "lines"
}

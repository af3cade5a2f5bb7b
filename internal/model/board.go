package model

import (
	"gorm.io/datatypes"
)

// PriceOrigin records how a thickness price was obtained.
type PriceOrigin string

const (
	PriceOriginManual PriceOrigin = "manual"
	PriceOriginAI     PriceOrigin = "ai"
)

// Thickness is one thickness variant of a board with its own pricing and
// derived reference code. It has no identity outside its parent board; the
// whole list is stored as a single JSON column so that writes stay
// single-row atomic.
type Thickness struct {
	InternalRef   string      `json:"internalRef"`
	ThicknessMm   float64     `json:"thicknessMm"`
	WorkshopPrice float64     `json:"workshopPrice"`
	CounterPrice  float64     `json:"counterPrice"`
	PriceOrigin   PriceOrigin `json:"priceOrigin"`
}

// Board (chapa) is a catalog entry for one MDF board pattern under a brand.
type Board struct {
	BaseModel

	// --- identity ---
	BrandName string `gorm:"size:120;index;not null" json:"brandName"`
	Name      string `gorm:"size:200;index;not null" json:"name"`
	LineName  string `gorm:"size:120" json:"lineName,omitempty"`

	// --- descriptive attributes ---
	Texture           string `gorm:"size:120" json:"texture,omitempty"`
	Finish            string `gorm:"size:120" json:"finish,omitempty"`
	StandardDimension string `gorm:"size:120" json:"standardDimension,omitempty"`
	Description       string `gorm:"type:text" json:"description,omitempty"`
	ColorCombinations string `gorm:"type:text" json:"colorCombinations,omitempty"`

	// --- edge tape pricing ---
	EdgeTapePricePerRoll float64 `gorm:"default:0" json:"edgeTapePricePerRoll"`
	EdgeTapeRollLength   float64 `gorm:"default:0" json:"edgeTapeRollLength"`

	ImageURL string `gorm:"size:512" json:"imageUrl,omitempty"`

	Thicknesses datatypes.JSONSlice[Thickness] `json:"thicknesses"`
}

func (Board) TableName() string {
	return "boards"
}

// FindThickness returns the index of the thickness with the given internal
// reference, or -1.
func (b *Board) FindThickness(internalRef string) int {
	for i, t := range b.Thicknesses {
		if t.InternalRef == internalRef {
			return i
		}
	}
	return -1
}

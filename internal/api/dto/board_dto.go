package dto

// ==================== requests ====================

// ThicknessReq is one thickness entry as submitted by the client. The
// internal reference is never accepted from the caller, it is always
// derived server-side.
type ThicknessReq struct {
	ThicknessMm   float64 `json:"thicknessMm" binding:"required"`
	WorkshopPrice float64 `json:"workshopPrice"`
	CounterPrice  float64 `json:"counterPrice"`
	PriceOrigin   string  `json:"priceOrigin"` // "manual" | "ai", defaults to manual
}

// CreateBoardReq creates a board. On multipart submissions the thickness
// list arrives as JSON text in the "thicknesses" form field and the image as
// file field "imagem".
type CreateBoardReq struct {
	BrandName            string  `form:"brandName" json:"brandName" binding:"required"`
	Name                 string  `form:"name" json:"name" binding:"required"`
	LineName             string  `form:"lineName" json:"lineName"`
	Texture              string  `form:"texture" json:"texture"`
	Finish               string  `form:"finish" json:"finish"`
	StandardDimension    string  `form:"standardDimension" json:"standardDimension"`
	Description          string  `form:"description" json:"description"`
	ColorCombinations    string  `form:"colorCombinations" json:"colorCombinations"`
	EdgeTapePricePerRoll float64 `form:"edgeTapePricePerRoll" json:"edgeTapePricePerRoll"`
	EdgeTapeRollLength   float64 `form:"edgeTapeRollLength" json:"edgeTapeRollLength"`

	Thicknesses []ThicknessReq `form:"-" json:"thicknesses"`
}

// UpdateBoardReq merges the supplied fields into an existing board. Nil
// pointers leave the current value untouched; a non-nil thickness list
// replaces the whole stored list and every entry gets a fresh reference.
type UpdateBoardReq struct {
	BrandName            *string  `form:"brandName" json:"brandName"`
	Name                 *string  `form:"name" json:"name"`
	LineName             *string  `form:"lineName" json:"lineName"`
	Texture              *string  `form:"texture" json:"texture"`
	Finish               *string  `form:"finish" json:"finish"`
	StandardDimension    *string  `form:"standardDimension" json:"standardDimension"`
	Description          *string  `form:"description" json:"description"`
	ColorCombinations    *string  `form:"colorCombinations" json:"colorCombinations"`
	EdgeTapePricePerRoll *float64 `form:"edgeTapePricePerRoll" json:"edgeTapePricePerRoll"`
	EdgeTapeRollLength   *float64 `form:"edgeTapeRollLength" json:"edgeTapeRollLength"`

	Thicknesses []ThicknessReq `form:"-" json:"thicknesses"`
}

// ImageUpload carries a decoded multipart image through the service layer.
type ImageUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

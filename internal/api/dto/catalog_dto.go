package dto

// CreateBrandReq creates a brand (marca).
type CreateBrandReq struct {
	Name      string `json:"name" binding:"required"`
	ShortCode string `json:"shortCode" binding:"required"`
}

// CreateLineReq creates a line (linha).
type CreateLineReq struct {
	Name      string `json:"name" binding:"required"`
	ShortCode string `json:"shortCode" binding:"required"`
}

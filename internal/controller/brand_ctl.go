package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mdf_gestor/internal/api/dto"
	"mdf_gestor/internal/service"
)

type BrandController struct {
	brandService *service.BrandService
}

func NewBrandController(brandService *service.BrandService) *BrandController {
	return &BrandController{brandService: brandService}
}

// GetBrands lists all brands ordered by name.
// @Summary List brands
// @Tags Marcas
// @Produce json
// @Success 200 {array} model.Brand
// @Router /api/marcas [get]
func (ctl *BrandController) GetBrands(c *gin.Context) {
	brands, err := ctl.brandService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, "Erro ao buscar marcas", err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// CreateBrand registers a brand.
// @Summary Create a brand
// @Tags Marcas
// @Accept json
// @Produce json
// @Param body body dto.CreateBrandReq true "brand"
// @Success 201 {object} model.Brand
// @Failure 400 {object} map[string]string
// @Router /api/marcas [post]
func (ctl *BrandController) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "Erro ao criar marca.", err)
		return
	}

	brand, err := ctl.brandService.Create(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, "Erro ao criar marca.", err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

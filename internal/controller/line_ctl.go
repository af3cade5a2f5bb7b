package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mdf_gestor/internal/api/dto"
	"mdf_gestor/internal/service"
)

type LineController struct {
	lineService *service.LineService
}

func NewLineController(lineService *service.LineService) *LineController {
	return &LineController{lineService: lineService}
}

// GetLines lists all lines ordered by name.
// @Summary List lines
// @Tags Linhas
// @Produce json
// @Success 200 {array} model.Line
// @Router /api/linhas [get]
func (ctl *LineController) GetLines(c *gin.Context) {
	lines, err := ctl.lineService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, "Erro ao buscar linhas", err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// CreateLine registers a line.
// @Summary Create a line
// @Tags Linhas
// @Accept json
// @Produce json
// @Param body body dto.CreateLineReq true "line"
// @Success 201 {object} model.Line
// @Failure 400 {object} map[string]string
// @Router /api/linhas [post]
func (ctl *LineController) CreateLine(c *gin.Context) {
	var req dto.CreateLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "Erro ao criar linha.", err)
		return
	}

	line, err := ctl.lineService.Create(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, "Erro ao criar linha.", err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

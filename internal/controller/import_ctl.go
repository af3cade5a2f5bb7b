package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mdf_gestor/internal/service"
)

type ImportController struct {
	importService *service.ImportService
}

func NewImportController(importService *service.ImportService) *ImportController {
	return &ImportController{importService: importService}
}

// DownloadTemplate serves the empty XLSX import template.
// @Summary Download the board import template
// @Tags Chapas
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200
// @Router /api/chapas/template [get]
func (ctl *ImportController) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="template_cadastro_chapas.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := ctl.importService.WriteTemplate(c.Writer); err != nil {
		abortWithError(c, "Erro ao gerar template", err)
	}
}

// ImportBoards creates one board per spreadsheet row; rows fail
// independently.
// @Summary Import boards from an XLSX upload
// @Tags Chapas
// @Accept mpfd
// @Produce json
// @Param planilha formData file true "filled-in template"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string
// @Router /api/chapas/importar [post]
func (ctl *ImportController) ImportBoards(c *gin.Context) {
	file, err := c.FormFile("planilha")
	if err != nil {
		abortBadRequest(c, "Erro ao importar planilha", fmt.Errorf("missing planilha file field: %w", err))
		return
	}

	src, err := file.Open()
	if err != nil {
		abortBadRequest(c, "Erro ao importar planilha", err)
		return
	}
	defer src.Close()

	result, err := ctl.importService.Import(c.Request.Context(), src)
	if err != nil {
		abortWithError(c, "Erro ao importar planilha", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

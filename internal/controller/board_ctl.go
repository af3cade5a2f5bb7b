package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mdf_gestor/internal/api/dto"
	"mdf_gestor/internal/service"
)

type BoardController struct {
	boardService *service.BoardService
}

func NewBoardController(boardService *service.BoardService) *BoardController {
	return &BoardController{boardService: boardService}
}

// ==================== CRUD ====================

// CreateBoard registers a board.
// @Summary Create a board (chapa)
// @Tags Chapas
// @Accept mpfd
// @Produce json
// @Param imagem formData file false "board image"
// @Param thicknesses formData string true "thickness list as JSON"
// @Success 201 {object} model.Board
// @Failure 400 {object} map[string]string
// @Router /api/chapas [post]
func (ctl *BoardController) CreateBoard(c *gin.Context) {
	req, err := ctl.bindCreate(c)
	if err != nil {
		abortBadRequest(c, "Erro ao cadastrar chapa", err)
		return
	}

	image, err := readImage(c)
	if err != nil {
		abortBadRequest(c, "Erro ao cadastrar chapa", err)
		return
	}

	board, err := ctl.boardService.Create(c.Request.Context(), req, image)
	if err != nil {
		abortWithError(c, "Erro ao cadastrar chapa", err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

// GetBoards lists boards, optionally filtered by brand.
// @Summary List boards ordered by name
// @Tags Chapas
// @Produce json
// @Param marca query string false "filter by brand name"
// @Success 200 {array} model.Board
// @Router /api/chapas [get]
func (ctl *BoardController) GetBoards(c *gin.Context) {
	boards, err := ctl.boardService.List(c.Request.Context(), c.Query("marca"))
	if err != nil {
		abortWithError(c, "Erro ao buscar chapas", err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// GetBoard fetches one board.
// @Summary Get a board by id
// @Tags Chapas
// @Produce json
// @Param id path int true "board id"
// @Success 200 {object} model.Board
// @Failure 404 {object} map[string]string
// @Router /api/chapas/{id} [get]
func (ctl *BoardController) GetBoard(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		abortBadRequest(c, "Chapa não encontrada", err)
		return
	}

	board, err := ctl.boardService.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "Chapa não encontrada", err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// UpdateBoard merges the submitted fields into a board.
// @Summary Update a board
// @Tags Chapas
// @Accept mpfd
// @Produce json
// @Param id path int true "board id"
// @Success 200 {object} model.Board
// @Failure 404 {object} map[string]string
// @Router /api/chapas/{id} [put]
func (ctl *BoardController) UpdateBoard(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		abortBadRequest(c, "Chapa não encontrada", err)
		return
	}

	req, err := ctl.bindUpdate(c)
	if err != nil {
		abortBadRequest(c, "Erro ao atualizar chapa", err)
		return
	}

	image, err := readImage(c)
	if err != nil {
		abortBadRequest(c, "Erro ao atualizar chapa", err)
		return
	}

	board, err := ctl.boardService.Update(c.Request.Context(), id, req, image)
	if err != nil {
		abortWithError(c, "Erro ao atualizar chapa", err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// DeleteBoard deletes a whole board, or a single embedded thickness when
// the refEspessura query parameter is present.
// @Summary Delete a board or one of its thicknesses
// @Tags Chapas
// @Produce json
// @Param id path int true "board id"
// @Param refEspessura query string false "internal reference of the thickness to remove"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/chapas/{id} [delete]
func (ctl *BoardController) DeleteBoard(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		abortBadRequest(c, "Chapa não encontrada", err)
		return
	}

	ctx := c.Request.Context()
	if ref := c.Query("refEspessura"); ref != "" {
		if err := ctl.boardService.DeleteThickness(ctx, id, ref); err != nil {
			abortWithError(c, "Espessura não encontrada", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Espessura removida com sucesso."})
		return
	}

	if err := ctl.boardService.Delete(ctx, id); err != nil {
		abortWithError(c, "Chapa não encontrada", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chapa excluída com sucesso."})
}

// SuggestPrices fills the board's thickness prices from the pricing model.
// @Summary Suggest prices for a board's thicknesses
// @Tags Chapas
// @Produce json
// @Param id path int true "board id"
// @Success 200 {object} model.Board
// @Failure 404 {object} map[string]string
// @Router /api/chapas/{id}/precos/sugerir [post]
func (ctl *BoardController) SuggestPrices(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		abortBadRequest(c, "Chapa não encontrada", err)
		return
	}

	board, err := ctl.boardService.SuggestPrices(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, "Erro ao sugerir preços", err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// ==================== binding helpers ====================

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", service.ErrNotFound, c.Param("id"))
	}
	return id, nil
}

func isFormRequest(c *gin.Context) bool {
	ct := c.ContentType()
	return strings.HasPrefix(ct, "multipart/form-data") ||
		ct == "application/x-www-form-urlencoded"
}

// bindCreate accepts the browser's multipart form (thicknesses serialized as
// JSON text) as well as a plain JSON body.
func (ctl *BoardController) bindCreate(c *gin.Context) (*dto.CreateBoardReq, error) {
	var req dto.CreateBoardReq
	if !isFormRequest(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}
	if raw := c.PostForm("thicknesses"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Thicknesses); err != nil {
			return nil, fmt.Errorf("invalid thicknesses payload: %w", err)
		}
	}
	return &req, nil
}

func (ctl *BoardController) bindUpdate(c *gin.Context) (*dto.UpdateBoardReq, error) {
	var req dto.UpdateBoardReq
	if !isFormRequest(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := c.ShouldBind(&req); err != nil {
		return nil, err
	}
	if raw := c.PostForm("thicknesses"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Thicknesses); err != nil {
			return nil, fmt.Errorf("invalid thicknesses payload: %w", err)
		}
	}
	return &req, nil
}

// readImage decodes the optional "imagem" file field. A missing field is not
// an error.
func readImage(c *gin.Context) (*dto.ImageUpload, error) {
	if !isFormRequest(c) {
		return nil, nil
	}
	file, err := c.FormFile("imagem")
	if err != nil {
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	return &dto.ImageUpload{
		Data:        data,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
	}, nil
}

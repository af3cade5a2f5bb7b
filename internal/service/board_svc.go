package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mdf_gestor/internal/api/dto"
	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
)

// BoardService owns the catalog rules around boards and their embedded
// thickness list: at least one thickness at creation, server-side reference
// derivation on every thickness write, whole-list replacement on update and
// single-entry removal on targeted delete.
type BoardService struct {
	boardRepo repository.BoardRepository
	refCodes  *RefCodeService
	storage   StorageProvider
	pricing   *PriceService
}

func NewBoardService(boardRepo repository.BoardRepository, refCodes *RefCodeService, storage StorageProvider, pricing *PriceService) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		refCodes:  refCodes,
		storage:   storage,
		pricing:   pricing,
	}
}

// ==================== CRUD ====================

// Create validates the thickness list, derives every internal reference and
// persists the board. The optional image is uploaded before the database
// write; nothing is persisted when validation fails.
func (s *BoardService) Create(ctx context.Context, req *dto.CreateBoardReq, image *dto.ImageUpload) (*model.Board, error) {
	if len(req.Thicknesses) == 0 {
		return nil, fmt.Errorf("%w: at least one thickness is required", ErrValidation)
	}

	thicknesses, err := s.buildThicknesses(ctx, req.BrandName, req.LineName, req.Name, req.Thicknesses)
	if err != nil {
		return nil, err
	}

	board := &model.Board{
		BrandName:            req.BrandName,
		Name:                 req.Name,
		LineName:             req.LineName,
		Texture:              req.Texture,
		Finish:               req.Finish,
		StandardDimension:    req.StandardDimension,
		Description:          req.Description,
		ColorCombinations:    req.ColorCombinations,
		EdgeTapePricePerRoll: req.EdgeTapePricePerRoll,
		EdgeTapeRollLength:   req.EdgeTapeRollLength,
		Thicknesses:          thicknesses,
	}

	if image != nil {
		url, err := s.storage.Upload(ctx, image.Data, image.Filename, image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("%w: image upload: %v", ErrPersistence, err)
		}
		board.ImageURL = url
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, mapStoreError(err)
	}
	return board, nil
}

// List returns boards ordered by name ascending, optionally filtered by
// brand name.
func (s *BoardService) List(ctx context.Context, brandName string) ([]model.Board, error) {
	boards, err := s.boardRepo.List(ctx, repository.BoardFilter{BrandName: brandName})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return boards, nil
}

func (s *BoardService) Get(ctx context.Context, id int64) (*model.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return board, nil
}

// Update merges the supplied fields into the stored board. A supplied
// thickness list replaces the stored list entirely and every entry gets a
// freshly derived reference against the post-merge brand/line/name.
func (s *BoardService) Update(ctx context.Context, id int64, req *dto.UpdateBoardReq, image *dto.ImageUpload) (*model.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&board.BrandName, req.BrandName)
	applyString(&board.Name, req.Name)
	applyString(&board.LineName, req.LineName)
	applyString(&board.Texture, req.Texture)
	applyString(&board.Finish, req.Finish)
	applyString(&board.StandardDimension, req.StandardDimension)
	applyString(&board.Description, req.Description)
	applyString(&board.ColorCombinations, req.ColorCombinations)
	if req.EdgeTapePricePerRoll != nil {
		board.EdgeTapePricePerRoll = *req.EdgeTapePricePerRoll
	}
	if req.EdgeTapeRollLength != nil {
		board.EdgeTapeRollLength = *req.EdgeTapeRollLength
	}

	if req.Thicknesses != nil {
		thicknesses, err := s.buildThicknesses(ctx, board.BrandName, board.LineName, board.Name, req.Thicknesses)
		if err != nil {
			return nil, err
		}
		board.Thicknesses = thicknesses
	}

	if image != nil {
		url, err := s.storage.Upload(ctx, image.Data, image.Filename, image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("%w: image upload: %v", ErrPersistence, err)
		}
		board.ImageURL = url
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, mapStoreError(err)
	}
	return board, nil
}

// Delete removes the whole board.
func (s *BoardService) Delete(ctx context.Context, id int64) error {
	rows, err := s.boardRepo.Delete(ctx, id)
	if err != nil {
		return mapStoreError(err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: board %d", ErrNotFound, id)
	}
	return nil
}

// DeleteThickness pulls a single embedded thickness out of the board's
// list. Siblings stay untouched and removing the last entry does not delete
// the board itself.
func (s *BoardService) DeleteThickness(ctx context.Context, id int64, internalRef string) error {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return mapStoreError(err)
	}

	idx := board.FindThickness(internalRef)
	if idx < 0 {
		return fmt.Errorf("%w: thickness %s", ErrNotFound, internalRef)
	}

	board.Thicknesses = append(board.Thicknesses[:idx], board.Thicknesses[idx+1:]...)
	if err := s.boardRepo.Update(ctx, board); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// ==================== price suggestion ====================

// SuggestPrices asks the configured pricing endpoint for workshop/counter
// prices and stores matching suggestions with origin "ai". References are
// untouched: prices never feed the derivation.
func (s *BoardService) SuggestPrices(ctx context.Context, id int64) (*model.Board, error) {
	board, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}

	suggestions, err := s.pricing.Suggest(ctx, board)
	if err != nil {
		return nil, err
	}

	byThickness := make(map[float64]PriceSuggestion, len(suggestions))
	for _, sug := range suggestions {
		byThickness[sug.ThicknessMm] = sug
	}

	matched := false
	for i, t := range board.Thicknesses {
		sug, ok := byThickness[t.ThicknessMm]
		if !ok {
			continue
		}
		board.Thicknesses[i].WorkshopPrice = sug.WorkshopPrice
		board.Thicknesses[i].CounterPrice = sug.CounterPrice
		board.Thicknesses[i].PriceOrigin = model.PriceOriginAI
		matched = true
	}
	if !matched {
		return nil, fmt.Errorf("%w: no suggestion matched the board's thicknesses", ErrValidation)
	}

	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, mapStoreError(err)
	}
	return board, nil
}

// ==================== helpers ====================

func (s *BoardService) buildThicknesses(ctx context.Context, brandName, lineName, boardName string, reqs []dto.ThicknessReq) ([]model.Thickness, error) {
	thicknesses := make([]model.Thickness, 0, len(reqs))
	for _, req := range reqs {
		origin, err := parsePriceOrigin(req.PriceOrigin)
		if err != nil {
			return nil, err
		}
		thicknesses = append(thicknesses, model.Thickness{
			InternalRef:   s.refCodes.Generate(ctx, brandName, req.ThicknessMm, lineName, boardName),
			ThicknessMm:   req.ThicknessMm,
			WorkshopPrice: req.WorkshopPrice,
			CounterPrice:  req.CounterPrice,
			PriceOrigin:   origin,
		})
	}
	return thicknesses, nil
}

func parsePriceOrigin(origin string) (model.PriceOrigin, error) {
	switch origin {
	case "":
		return model.PriceOriginManual, nil
	case string(model.PriceOriginManual):
		return model.PriceOriginManual, nil
	case string(model.PriceOriginAI):
		return model.PriceOriginAI, nil
	default:
		return "", fmt.Errorf("%w: invalid priceOrigin %q", ErrValidation, origin)
	}
}

// mapStoreError folds gorm errors into the service taxonomy.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}

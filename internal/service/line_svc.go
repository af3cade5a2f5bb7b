package service

import (
	"context"

	"mdf_gestor/internal/api/dto"
	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
)

// LineService mirrors BrandService for the line lookup table.
type LineService struct {
	lineRepo repository.LineRepository
}

func NewLineService(lineRepo repository.LineRepository) *LineService {
	return &LineService{lineRepo: lineRepo}
}

func (s *LineService) Create(ctx context.Context, req *dto.CreateLineReq) (*model.Line, error) {
	line := &model.Line{
		Name:      req.Name,
		ShortCode: req.ShortCode,
	}
	if err := s.lineRepo.Create(ctx, line); err != nil {
		return nil, mapStoreError(err)
	}
	return line, nil
}

func (s *LineService) List(ctx context.Context) ([]model.Line, error) {
	lines, err := s.lineRepo.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return lines, nil
}

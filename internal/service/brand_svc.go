package service

import (
	"context"

	"mdf_gestor/internal/api/dto"
	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
)

// BrandService is plain lookup-table CRUD; uniqueness of name and shortCode
// is enforced by the store's unique indexes.
type BrandService struct {
	brandRepo repository.BrandRepository
}

func NewBrandService(brandRepo repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

func (s *BrandService) Create(ctx context.Context, req *dto.CreateBrandReq) (*model.Brand, error) {
	brand := &model.Brand{
		Name:      req.Name,
		ShortCode: req.ShortCode,
	}
	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, mapStoreError(err)
	}
	return brand, nil
}

func (s *BrandService) List(ctx context.Context) ([]model.Brand, error) {
	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return brands, nil
}

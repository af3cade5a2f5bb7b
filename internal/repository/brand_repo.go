package repository

import (
	"context"

	"gorm.io/gorm"

	"mdf_gestor/internal/model"
)

// BrandRepository is the persistence boundary for brands.
type BrandRepository interface {
	Create(ctx context.Context, brand *model.Brand) error
	GetByName(ctx context.Context, name string) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
}

type brandRepo struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepo{db: db}
}

func (r *brandRepo) Create(ctx context.Context, brand *model.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepo) GetByName(ctx context.Context, name string) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepo) List(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&brands).Error
	return brands, err
}

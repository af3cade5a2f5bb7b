package repository

import (
	"context"

	"gorm.io/gorm"

	"mdf_gestor/internal/model"
)

// LineRepository is the persistence boundary for product lines.
type LineRepository interface {
	Create(ctx context.Context, line *model.Line) error
	GetByName(ctx context.Context, name string) (*model.Line, error)
	List(ctx context.Context) ([]model.Line, error)
}

type lineRepo struct {
	db *gorm.DB
}

func NewLineRepository(db *gorm.DB) LineRepository {
	return &lineRepo{db: db}
}

func (r *lineRepo) Create(ctx context.Context, line *model.Line) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *lineRepo) GetByName(ctx context.Context, name string) (*model.Line, error) {
	var line model.Line
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *lineRepo) List(ctx context.Context) ([]model.Line, error) {
	var lines []model.Line
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&lines).Error
	return lines, err
}

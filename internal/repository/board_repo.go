package repository

import (
	"context"

	"gorm.io/gorm"

	"mdf_gestor/internal/model"
)

// ==================== interface ====================

// BoardRepository is the persistence boundary for catalog boards.
type BoardRepository interface {
	Create(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id int64) (*model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context, filter BoardFilter) ([]model.Board, error)
	ListImageURLs(ctx context.Context) ([]string, error)
}

// BoardFilter narrows board listings.
type BoardFilter struct {
	BrandName string
}

// ==================== implementation ====================

type boardRepo struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepo{db: db}
}

func (r *boardRepo) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepo) GetByID(ctx context.Context, id int64) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).First(&board, id).Error
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepo) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// Delete removes the whole board row. Returns the number of rows deleted so
// callers can distinguish a missing id.
func (r *boardRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Board{}, id)
	return res.RowsAffected, res.Error
}

func (r *boardRepo) List(ctx context.Context, filter BoardFilter) ([]model.Board, error) {
	var boards []model.Board

	query := r.db.WithContext(ctx).Model(&model.Board{})
	if filter.BrandName != "" {
		query = query.Where("brand_name = ?", filter.BrandName)
	}

	err := query.Order("name ASC").Find(&boards).Error
	return boards, err
}

func (r *boardRepo) ListImageURLs(ctx context.Context) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).
		Model(&model.Board{}).
		Where("image_url <> ''").
		Pluck("image_url", &urls).Error
	return urls, err
}

package product

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	types "github.com/zeon9405/unikraft/internal/domain"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type CategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, categories []*types.ProductCategory) ([]*types.ProductCategory, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.ProductCategory, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type categoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{db: db, log: repoLog}
}

func (cr *categoryRepo) Create(ctx context.Context, tx *gorm.DB, categories []*types.ProductCategory) ([]*types.ProductCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if len(categories) == 0 {
		return []*types.ProductCategory{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&categories).Error; err != nil {
		return nil, mapStoreError(err)
	}
	return categories, nil
}

func (cr *categoryRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.ProductCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.ProductCategory
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %q: %w", name, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (cr *categoryRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.ProductCategory{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

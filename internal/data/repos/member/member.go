package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/zeon9405/unikraft/internal/domain"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type MemberRepo interface {
	Create(ctx context.Context, tx *gorm.DB, members []*types.Member) ([]*types.Member, error)
	GetByID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) (*types.Member, error)
	GetByLoginID(ctx context.Context, tx *gorm.DB, loginID string) (*types.Member, error)
	LoginIDExists(ctx context.Context, tx *gorm.DB, loginID string) (bool, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error
}

type memberRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMemberRepo(db *gorm.DB, baseLog *logger.Logger) MemberRepo {
	repoLog := baseLog.With("repo", "MemberRepo")
	return &memberRepo{db: db, log: repoLog}
}

func (mr *memberRepo) Create(ctx context.Context, tx *gorm.DB, members []*types.Member) ([]*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if len(members) == 0 {
		return []*types.Member{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (mr *memberRepo) GetByID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) (*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var result types.Member
	if err := transaction.WithContext(ctx).
		Where("id = ?", memberID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %s: %w", memberID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (mr *memberRepo) GetByLoginID(ctx context.Context, tx *gorm.DB, loginID string) (*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var result types.Member
	if err := transaction.WithContext(ctx).
		Where("login_id = ?", loginID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("member %q: %w", loginID, pkgerrors.ErrNotFound)
		}
		return nil, err
	}
	return &result, nil
}

func (mr *memberRepo) LoginIDExists(ctx context.Context, tx *gorm.DB, loginID string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Member{}).
		Where("login_id = ?", loginID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (mr *memberRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Member{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (mr *memberRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Member{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes the member row only. The member service deletes the cart
// (and its items) in the same transaction; orders are a durable record and
// deliberately survive.
func (mr *memberRepo) Delete(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	result := transaction.WithContext(ctx).
		Where("id = ?", memberID).
		Delete(&types.Member{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("member %s: %w", memberID, pkgerrors.ErrNotFound)
	}
	return nil
}

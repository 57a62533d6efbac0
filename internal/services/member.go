package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	cartrepo "github.com/zeon9405/unikraft/internal/data/repos/cart"
	memberrepo "github.com/zeon9405/unikraft/internal/data/repos/member"
	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/ctxutil"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

type MemberService interface {
	GetMe(ctx context.Context) (*types.Member, error)
	DeleteMe(ctx context.Context) error
}

type memberService struct {
	db         *gorm.DB
	log        *logger.Logger
	memberRepo memberrepo.MemberRepo
	cartRepo   cartrepo.CartRepo
}

func NewMemberService(db *gorm.DB, log *logger.Logger, memberRepo memberrepo.MemberRepo, cartRepo cartrepo.CartRepo) MemberService {
	serviceLog := log.With("service", "MemberService")
	return &memberService{db: db, log: serviceLog, memberRepo: memberRepo, cartRepo: cartRepo}
}

func (ms *memberService) GetMe(ctx context.Context) (*types.Member, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	return ms.memberRepo.GetByID(ctx, nil, rd.MemberID)
}

// DeleteMe removes the member and their cart with its items in one
// transaction. Orders are kept: they are the shop's durable ledger.
func (ms *memberService) DeleteMe(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil {
		return pkgerrors.ErrUnauthorized
	}
	if err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ms.cartRepo.DeleteByMemberID(ctx, tx, rd.MemberID); err != nil {
			return fmt.Errorf("delete cart: %w", err)
		}
		if err := ms.memberRepo.Delete(ctx, tx, rd.MemberID); err != nil {
			return fmt.Errorf("delete member: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	ms.log.Info("member deleted", "member_id", rd.MemberID.String())
	return nil
}

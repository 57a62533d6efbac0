package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	cartrepo "github.com/zeon9405/unikraft/internal/data/repos/cart"
	memberrepo "github.com/zeon9405/unikraft/internal/data/repos/member"
	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/pkg/ctxutil"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
	"github.com/zeon9405/unikraft/internal/pkg/logger"
)

// AuthService is the identity gate: it turns credentials into tokens and
// tokens into a verified member identity on the request context. Nothing
// downstream ever sees a credential.
type AuthService interface {
	SignUp(ctx context.Context, loginID, email, password, name string) (uuid.UUID, error)
	Login(ctx context.Context, loginID, password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	memberRepo   memberrepo.MemberRepo
	cartRepo     cartrepo.CartRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	memberRepo memberrepo.MemberRepo,
	cartRepo cartrepo.CartRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		memberRepo:   memberRepo,
		cartRepo:     cartRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

// SignUp creates the member together with their cart: the 1:1 pairing is
// established in one transaction and never revisited.
func (as *authService) SignUp(ctx context.Context, loginID, email, password, name string) (uuid.UUID, error) {
	loginID = strings.TrimSpace(loginID)
	email = strings.TrimSpace(email)
	if loginID == "" || email == "" || password == "" {
		return uuid.Nil, fmt.Errorf("login id, email and password are required: %w", pkgerrors.ErrUnauthorized)
	}

	exists, err := as.memberRepo.LoginIDExists(ctx, nil, loginID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check login id: %w", err)
	}
	if exists {
		return uuid.Nil, fmt.Errorf("login id %q: %w", loginID, pkgerrors.ErrDuplicateCredential)
	}
	exists, err = as.memberRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return uuid.Nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return uuid.Nil, fmt.Errorf("email %q: %w", email, pkgerrors.ErrDuplicateCredential)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	m := types.NewMember(loginID, email, string(hashed), name)
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.memberRepo.Create(ctx, tx, []*types.Member{m}); err != nil {
			return fmt.Errorf("create member: %w", err)
		}
		if _, err := as.cartRepo.Create(ctx, tx, types.NewCart(m.ID)); err != nil {
			return fmt.Errorf("create cart: %w", err)
		}
		return nil
	}); err != nil {
		return uuid.Nil, err
	}

	as.log.Info("member signed up", "member_id", m.ID.String())
	return m.ID, nil
}

func (as *authService) Login(ctx context.Context, loginID, password string) (string, error) {
	m, err := as.memberRepo.GetByLoginID(ctx, nil, strings.TrimSpace(loginID))
	if err != nil {
		return "", fmt.Errorf("unknown login id: %w", pkgerrors.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("wrong password: %w", pkgerrors.ErrUnauthorized)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       m.LoginID,
		"member_id": m.ID.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(as.accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !parsed.Valid {
		return ctx, fmt.Errorf("invalid token: %w", pkgerrors.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, fmt.Errorf("invalid claims: %w", pkgerrors.ErrUnauthorized)
	}
	loginID, _ := claims["sub"].(string)
	rawMemberID, _ := claims["member_id"].(string)
	memberID, err := uuid.Parse(rawMemberID)
	if err != nil || loginID == "" {
		return ctx, fmt.Errorf("invalid subject: %w", pkgerrors.ErrUnauthorized)
	}

	return ctxutil.WithRequestData(ctx, &ctxutil.RequestData{
		MemberID: memberID,
		LoginID:  loginID,
	}), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/zeon9405/unikraft/internal/pkg/ctxutil"
	pkgerrors "github.com/zeon9405/unikraft/internal/pkg/errors"
)

func TestSignUpLoginRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	memberID, err := env.auth.SignUp(ctx, "alice", "alice@example.com", "secret99", "Alice")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	token, err := env.auth.Login(ctx, "alice", "secret99")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	authed, err := env.auth.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := ctxutil.GetRequestData(authed)
	if rd == nil || rd.MemberID != memberID || rd.LoginID != "alice" {
		t.Fatalf("unexpected request data: %+v", rd)
	}

	me, err := env.member.GetMe(authed)
	if err != nil {
		t.Fatalf("GetMe: %v", err)
	}
	if me.LoginID != "alice" || me.Email != "alice@example.com" {
		t.Fatalf("unexpected member: %+v", me)
	}
	if me.Password == "secret99" {
		t.Fatalf("password stored in plain text")
	}
}

func TestSignUpCreatesCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := env.signUpMember(t, "bob")

	cart, err := env.cart.GetCart(ctx)
	if err != nil {
		t.Fatalf("GetCart right after signup: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("new cart must be empty, got %d items", len(cart.Items))
	}
}

func TestSignUpRejectsDuplicates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.SignUp(ctx, "carol", "carol@example.com", "pw123456", "Carol"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := env.auth.SignUp(ctx, "carol", "other@example.com", "pw123456", "Carol"); !errors.Is(err, pkgerrors.ErrDuplicateCredential) {
		t.Fatalf("duplicate login id: expected ErrDuplicateCredential, got %v", err)
	}
	if _, err := env.auth.SignUp(ctx, "carol2", "carol@example.com", "pw123456", "Carol"); !errors.Is(err, pkgerrors.ErrDuplicateCredential) {
		t.Fatalf("duplicate email: expected ErrDuplicateCredential, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.SignUp(ctx, "dave", "dave@example.com", "pw123456", "Dave"); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	if _, err := env.auth.Login(ctx, "dave", "wrong"); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("wrong password: expected ErrUnauthorized, got %v", err)
	}
	if _, err := env.auth.Login(ctx, "nobody", "pw123456"); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("unknown login: expected ErrUnauthorized, got %v", err)
	}
}

func TestSetContextFromTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.auth.SetContextFromToken(context.Background(), "not-a-token"); !errors.Is(err, pkgerrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

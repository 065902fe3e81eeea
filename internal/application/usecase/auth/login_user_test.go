package auth

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/bookmate/backend/internal/domain/error"
)

func TestLoginUser(t *testing.T) {
	repo := newMemoryUserRepo()
	registerUC := newRegisterUseCase(repo)
	loginUC := NewLoginUserUseCase(repo, plainPasswordService{}, staticTokenService{})

	registered, err := registerUC.Execute(context.Background(), RegisterUserInput{
		Email: "owner@example.com", Name: "Owner", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		out, err := loginUC.Execute(context.Background(), LoginUserInput{
			Email:    "Owner@Example.com",
			Password: "correct horse",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID != registered.User.ID {
			t.Error("logged in as a different user")
		}
		if out.AccessToken == "" {
			t.Error("expected an access token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := loginUC.Execute(context.Background(), LoginUserInput{
			Email:    "owner@example.com",
			Password: "wrong horse",
		})
		assertInvalidCredentials(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := loginUC.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "correct horse",
		})
		assertInvalidCredentials(t, err)
	})
}

func assertInvalidCredentials(t *testing.T, err error) {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidCredentials {
		t.Errorf("error = %v, want invalid credentials", err)
	}
}

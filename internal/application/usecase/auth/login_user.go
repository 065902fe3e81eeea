package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/bookmate/backend/internal/application/adapter"
	"github.com/bookmate/backend/internal/domain/entity"
	domainerror "github.com/bookmate/backend/internal/domain/error"
)

// LoginUserInput represents the login request.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the authenticated user and access token.
type LoginUserOutput struct {
	User        *entity.User
	AccessToken string
}

// LoginUserUseCase handles user login.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute authenticates the user and issues an access token. Wrong email and
// wrong password are deliberately indistinguishable to the caller.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, invalidCredentials()
	}

	if err := uc.passwordService.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := uc.tokenService.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{User: user, AccessToken: token}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}

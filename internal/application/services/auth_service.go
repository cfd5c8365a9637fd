package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	"library-service/internal/application/mapper"
	"library-service/internal/application/query"
	"library-service/internal/domain/entities"
	"library-service/internal/domain/repositories"
	apperrors "library-service/internal/errors"
	"library-service/internal/infrastructure"
)

type AuthService struct {
	userRepo        repositories.UserRepository
	jwtService      *infrastructure.JWTService
	revocationStore repositories.RevocationStore
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtService *infrastructure.JWTService,
	revocationStore repositories.RevocationStore,
) interfaces.AuthService {
	return &AuthService{
		userRepo:        userRepo,
		jwtService:      jwtService,
		revocationStore: revocationStore,
	}
}

func (s *AuthService) Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	newUser := entities.NewUser(registerCommand.Name, registerCommand.Email, registerCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, newUser.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to register user", err)
	}
	if existingUser != nil {
		return nil, apperrors.Conflict("email already registered")
	}

	createdUser, err := s.userRepo.Create(ctx, validatedUser)
	if err != nil {
		return nil, apperrors.Internal("failed to register user", err)
	}

	return &command.RegisterUserCommandResult{
		Result: mapper.NewUserResultFromEntity(createdUser),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, loginCommand.Email)
	if err != nil {
		return nil, apperrors.Internal("failed to log in", err)
	}
	if user == nil {
		return nil, apperrors.Unauthenticated("invalid credentials")
	}

	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, apperrors.Unauthenticated("invalid credentials")
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.Id, user.Role)
	if err != nil {
		return nil, apperrors.Internal("failed to issue tokens", err)
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(user.Id, user.Role)
	if err != nil {
		return nil, apperrors.Internal("failed to issue tokens", err)
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.Id); err != nil {
		log.Printf("failed to record last login for %s: %v", user.Id, err)
	}
	user.TouchLastLogin()

	return &command.LoginUserCommandResult{
		User:         mapper.NewUserResultFromEntity(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh mints a new access token. The refresh token must verify and
// must not have been revoked by a logout.
func (s *AuthService) Refresh(ctx context.Context, refreshCommand *command.RefreshTokenCommand) (*command.RefreshTokenCommandResult, error) {
	claims, err := s.jwtService.VerifyRefreshToken(refreshCommand.RefreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.revocationStore.IsRevoked(ctx, refreshCommand.RefreshToken)
	if err != nil {
		return nil, apperrors.Internal("failed to check token revocation", err)
	}
	if revoked {
		return nil, apperrors.Unauthenticated("refresh token has been revoked")
	}

	userId, err := uuid.Parse(claims.UserId)
	if err != nil {
		return nil, apperrors.Unauthenticated("invalid token subject").WithCause(err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(userId, claims.Role)
	if err != nil {
		return nil, apperrors.Internal("failed to issue access token", err)
	}

	return &command.RefreshTokenCommandResult{AccessToken: accessToken}, nil
}

// Logout revokes the refresh token for its remaining life. Revoking an
// already-revoked token succeeds.
func (s *AuthService) Logout(ctx context.Context, logoutCommand *command.LogoutCommand) error {
	claims, err := s.jwtService.VerifyRefreshToken(logoutCommand.RefreshToken)
	if err != nil {
		return err
	}

	if err := s.revocationStore.Revoke(ctx, logoutCommand.RefreshToken, claims.RemainingLife()); err != nil {
		return apperrors.Internal("failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) FindUserById(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	return &query.UserQueryResult{Result: mapper.NewUserResultFromEntity(user)}, nil
}

func (s *AuthService) UpdateUser(ctx context.Context, id uuid.UUID, updateCommand *command.UpdateUserCommand, actorRole string) (*command.UpdateUserCommandResult, error) {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to fetch user", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("user not found")
	}

	if updateCommand.Role != "" && updateCommand.Role != user.Role {
		if actorRole != entities.RoleAdmin {
			return nil, apperrors.Forbidden("only admins may change roles")
		}
		user.Role = updateCommand.Role
	}

	if err := user.UpdateProfile(updateCommand.Name, updateCommand.Email); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if updateCommand.Password != "" {
		user.Password = updateCommand.Password
		if err := user.HashPassword(); err != nil {
			return nil, apperrors.Internal("failed to update password", err)
		}
	}

	validatedUser, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	updatedUser, err := s.userRepo.Update(ctx, validatedUser)
	if err != nil {
		return nil, apperrors.Internal("failed to update user", err)
	}

	return &command.UpdateUserCommandResult{
		Result: mapper.NewUserResultFromEntity(updatedUser),
	}, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return apperrors.Internal("failed to fetch user", err)
	}
	if user == nil {
		return apperrors.NotFound("user not found")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return apperrors.Internal("failed to delete user", err)
	}
	return nil
}

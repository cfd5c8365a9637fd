package interfaces

import (
	"context"

	"github.com/google/uuid"

	"library-service/internal/application/command"
	"library-service/internal/application/query"
)

type AuthService interface {
	Register(ctx context.Context, registerCommand *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	Login(ctx context.Context, loginCommand *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	Refresh(ctx context.Context, refreshCommand *command.RefreshTokenCommand) (*command.RefreshTokenCommandResult, error)
	Logout(ctx context.Context, logoutCommand *command.LogoutCommand) error
	FindUserById(ctx context.Context, id uuid.UUID) (*query.UserQueryResult, error)
	UpdateUser(ctx context.Context, id uuid.UUID, updateCommand *command.UpdateUserCommand, actorRole string) (*command.UpdateUserCommandResult, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

package command

import "library-service/internal/application/common"

type UpdateUserCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateUserCommandResult struct {
	Result *common.UserResult `json:"result"`
}

package command

type RefreshTokenCommand struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshTokenCommandResult struct {
	AccessToken string `json:"accessToken"`
}

type LogoutCommand struct {
	RefreshToken string `json:"refreshToken"`
}

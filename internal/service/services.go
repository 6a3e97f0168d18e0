package service

import (
	"github.com/avolkov/spl-token-api/internal/logger"
)

type Services struct {
	KeypairService KeypairService
	TokenService   TokenService
}

func NewServices(logger *logger.Logger) *Services {
	return &Services{
		KeypairService: NewKeypairService(logger),
		TokenService:   NewTokenService(logger),
	}
}

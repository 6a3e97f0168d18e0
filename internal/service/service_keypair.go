package service

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/avolkov/spl-token-api/internal/logger"
	"github.com/avolkov/spl-token-api/models"
)

// seedLength is the number of bytes exported as the secret. The raw Ed25519
// private key is 64 bytes: the 32-byte seed followed by the 32-byte public
// key. Only the seed is returned; callers re-derive the rest on import.
const seedLength = 32

type keypairService struct {
	logger *logger.Logger
}

func NewKeypairService(logger *logger.Logger) KeypairService {
	return &keypairService{
		logger: logger,
	}
}

func (s *keypairService) GenerateKeypair(ctx context.Context) (models.Keypair, error) {
	privateKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return models.Keypair{}, err
	}

	// The secret never goes into the log, only the public half does.
	keypair := models.Keypair{
		Pubkey: privateKey.PublicKey().String(),
		Secret: base58.Encode(privateKey[:seedLength]),
	}

	logger.FromContext(ctx).Debug().Str("pubkey", keypair.Pubkey).Msg("generated new keypair")

	return keypair, nil
}

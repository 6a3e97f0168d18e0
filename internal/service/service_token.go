package service

import (
	"context"
	"encoding/base64"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/avolkov/spl-token-api/internal/logger"
	"github.com/avolkov/spl-token-api/models"
)

type tokenService struct {
	logger *logger.Logger
}

func NewTokenService(logger *logger.Logger) TokenService {
	return &tokenService{
		logger: logger,
	}
}

func (s *tokenService) BuildInitializeMint(ctx context.Context, mintAuthority, mint solana.PublicKey, decimals uint8) (models.Instruction, error) {
	// Freeze authority stays unset on purpose: mints created through this
	// API are never freezable.
	ix, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(mintAuthority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("initialize mint instruction construction failed")
		return models.Instruction{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("mint", mint.String()).
		Uint8("decimals", decimals).
		Msg("built initialize mint instruction")

	return instructionResponse(ix)
}

func (s *tokenService) BuildMintTo(ctx context.Context, mint, destination, authority solana.PublicKey, amount uint64) (models.Instruction, error) {
	ix, err := token.NewMintToInstructionBuilder().
		SetAmount(amount).
		SetMintAccount(mint).
		SetDestinationAccount(destination).
		SetAuthorityAccount(authority). // no multisig signers
		ValidateAndBuild()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("mint to instruction construction failed")
		return models.Instruction{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("mint", mint.String()).
		Uint64("amount", amount).
		Msg("built mint to instruction")

	return instructionResponse(ix)
}

// instructionResponse reshapes a built SDK instruction into the wire model:
// base58 program and account addresses, signer/writable flags in account
// order, and the serialized payload as base64.
func instructionResponse(ix solana.Instruction) (models.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return models.Instruction{}, err
	}

	sdkAccounts := ix.Accounts()
	accounts := make([]models.AccountMeta, 0, len(sdkAccounts))
	for _, account := range sdkAccounts {
		accounts = append(accounts, models.AccountMeta{
			Pubkey:     account.PublicKey.String(),
			IsSigner:   account.IsSigner,
			IsWritable: account.IsWritable,
		})
	}

	return models.Instruction{
		ProgramID:       ix.ProgramID().String(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(data),
	}, nil
}

package service

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"github.com/avolkov/spl-token-api/models"
)

// KeypairService produces fresh Ed25519 keypairs. Generated secrets are
// returned to the caller once and never retained or logged.
type KeypairService interface {
	GenerateKeypair(ctx context.Context) (models.Keypair, error)
}

// TokenService assembles SPL token-program instructions from validated
// addresses. It performs no signing and no submission; the serialized
// instruction is handed back for the caller to place into a transaction.
type TokenService interface {
	// BuildInitializeMint assembles the initialize-mint instruction.
	// No freeze authority is ever set.
	BuildInitializeMint(ctx context.Context, mintAuthority, mint solana.PublicKey, decimals uint8) (models.Instruction, error)

	// BuildMintTo assembles the mint-to instruction. Multisig co-signers
	// are not supported; the authority is the sole signer.
	BuildMintTo(ctx context.Context, mint, destination, authority solana.PublicKey, amount uint64) (models.Instruction, error)
}

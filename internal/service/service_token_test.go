package service

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/spl-token-api/internal/logger"
)

// Well-known addresses reused as fixtures; any valid 32-byte base58 value
// would do.
var (
	testMint        = solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	testAuthority   = solana.MustPublicKeyFromBase58("11111111111111111111111111111111")
	testDestination = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")
)

func decodeInstructionData(t *testing.T, encoded string) []byte {
	t.Helper()

	data, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	return data
}

// ─────────────────────────────────────────────
// BuildInitializeMint
// ─────────────────────────────────────────────

func TestBuildInitializeMint_ProgramID(t *testing.T) {
	svc := NewTokenService(logger.Nop())

	ix, err := svc.BuildInitializeMint(context.Background(), testAuthority, testMint, 9)

	require.NoError(t, err)
	assert.Equal(t, solana.TokenProgramID.String(), ix.ProgramID)
}

func TestBuildInitializeMint_AccountLayout(t *testing.T) {
	svc := NewTokenService(logger.Nop())

	ix, err := svc.BuildInitializeMint(context.Background(), testAuthority, testMint, 9)

	require.NoError(t, err)
	require.Len(t, ix.Accounts, 2)

	// the mint account comes first and is the only writable account
	assert.Equal(t, testMint.String(), ix.Accounts[0].Pubkey)
	assert.True(t, ix.Accounts[0].IsWritable)
	assert.False(t, ix.Accounts[0].IsSigner)

	// the rent sysvar is read-only and never signs
	assert.Equal(t, solana.SysVarRentPubkey.String(), ix.Accounts[1].Pubkey)
	assert.False(t, ix.Accounts[1].IsWritable)
	assert.False(t, ix.Accounts[1].IsSigner)
}

func TestBuildInitializeMint_InstructionData(t *testing.T) {
	svc := NewTokenService(logger.Nop())

	ix, err := svc.BuildInitializeMint(context.Background(), testAuthority, testMint, 6)
	require.NoError(t, err)

	data := decodeInstructionData(t, ix.InstructionData)
	// first byte is the token program's InitializeMint discriminator
	assert.EqualValues(t, 0, data[0])
}

func TestBuildInitializeMint_DecimalsPassedThrough(t *testing.T) {
	svc := NewTokenService(logger.Nop())

	// no upper bound is enforced locally; the token program rejects
	// out-of-range values at execution time, not here
	_, err := svc.BuildInitializeMint(context.Background(), testAuthority, testMint, 255)

	assert.NoError(t, err)
}

// ─────────────────────────────────────────────
// BuildMintTo
// ─────────────────────────────────────────────

func TestBuildMintTo_ProgramID(t *testing.T) {
	svc := NewTokenService(logger.Nop())

	ix, err := svc.BuildMintTo(context.Background(), testMint, testDestination, testAuthority, 1_000_000)

	require.NoError(t, err)
	assert.Equal(t, solana.TokenProgramID.String(), ix.ProgramID)
}

func TestBuildMintTo_AccountLayout(t *testing.T) {
	svc := NewTokenService(logger.Nop())

	ix, err := svc.BuildMintTo(context.Background(), testMint, testDestination, testAuthority, 42)

	require.NoError(t, err)
	require.Len(t, ix.Accounts, 3)

	assert.Equal(t, testMint.String(), ix.Accounts[0].Pubkey)
	assert.True(t, ix.Accounts[0].IsWritable)
	assert.False(t, ix.Accounts[0].IsSigner)

	assert.Equal(t, testDestination.String(), ix.Accounts[1].Pubkey)
	assert.True(t, ix.Accounts[1].IsWritable)
	assert.False(t, ix.Accounts[1].IsSigner)

	// the authority is the sole signer since multisig is unsupported
	assert.Equal(t, testAuthority.String(), ix.Accounts[2].Pubkey)
	assert.False(t, ix.Accounts[2].IsWritable)
	assert.True(t, ix.Accounts[2].IsSigner)
}

func TestBuildMintTo_InstructionData(t *testing.T) {
	const amount = uint64(123_456_789)

	svc := NewTokenService(logger.Nop())

	ix, err := svc.BuildMintTo(context.Background(), testMint, testDestination, testAuthority, amount)
	require.NoError(t, err)

	data := decodeInstructionData(t, ix.InstructionData)
	// discriminator byte followed by the amount as little-endian u64
	require.Len(t, data, 9)
	assert.EqualValues(t, 7, data[0])
	assert.Equal(t, amount, binary.LittleEndian.Uint64(data[1:]))
}

func TestBuildMintTo_ZeroAmountAccepted(t *testing.T) {
	svc := NewTokenService(logger.Nop())

	ix, err := svc.BuildMintTo(context.Background(), testMint, testDestination, testAuthority, 0)

	require.NoError(t, err)
	data := decodeInstructionData(t, ix.InstructionData)
	require.Len(t, data, 9)
	assert.Equal(t, uint64(0), binary.LittleEndian.Uint64(data[1:]))
}

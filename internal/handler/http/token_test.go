package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/spl-token-api/models"
)

const (
	validMint        = "So11111111111111111111111111111111111111112"
	validAuthority   = "11111111111111111111111111111111"
	validDestination = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

func decodeInstruction(t *testing.T, env envelope) models.Instruction {
	t.Helper()

	var instruction models.Instruction
	require.NoError(t, json.Unmarshal(env.Data, &instruction))
	return instruction
}

// ─────────────────────────────────────────────
// POST /token/create
// ─────────────────────────────────────────────

func TestCreateToken_Success(t *testing.T) {
	router := newTestHandler(t).Init()

	rec, env := doJSON(t, router, http.MethodPost, "/token/create",
		`{"mintAuthority":"`+validAuthority+`","mint":"`+validMint+`","decimals":9}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	instruction := decodeInstruction(t, env)
	assert.NotEmpty(t, instruction.ProgramID)
	assert.Len(t, instruction.Accounts, 2)

	payload, err := base64.StdEncoding.DecodeString(instruction.InstructionData)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestCreateToken_InvalidMint(t *testing.T) {
	router := newTestHandler(t).Init()

	rec, env := doJSON(t, router, http.MethodPost, "/token/create",
		`{"mintAuthority":"`+validAuthority+`","mint":"not-base58!","decimals":9}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid base58 string for mint.", env.Error)
	assert.Nil(t, env.Data)
}

func TestCreateToken_InvalidMintAuthorityWinsOverInvalidMint(t *testing.T) {
	router := newTestHandler(t).Init()

	// both fields are malformed; only the first checked field is reported
	rec, env := doJSON(t, router, http.MethodPost, "/token/create",
		`{"mintAuthority":"also-not-base58!","mint":"not-base58!","decimals":9}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid base58 string for mintAuthority.", env.Error)
}

func TestCreateToken_MalformedJSON(t *testing.T) {
	router := newTestHandler(t).Init()

	rec, env := doJSON(t, router, http.MethodPost, "/token/create", `{"mint":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid JSON body", env.Error)
}

// ─────────────────────────────────────────────
// POST /token/mint
// ─────────────────────────────────────────────

func TestMintToken_Success(t *testing.T) {
	router := newTestHandler(t).Init()

	rec, env := doJSON(t, router, http.MethodPost, "/token/mint",
		`{"mint":"`+validMint+`","destination":"`+validDestination+`","authority":"`+validAuthority+`","amount":1000000}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	instruction := decodeInstruction(t, env)
	assert.Len(t, instruction.Accounts, 3)

	payload, err := base64.StdEncoding.DecodeString(instruction.InstructionData)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestMintToken_ZeroAmountAccepted(t *testing.T) {
	router := newTestHandler(t).Init()

	rec, env := doJSON(t, router, http.MethodPost, "/token/mint",
		`{"mint":"`+validMint+`","destination":"`+validDestination+`","authority":"`+validAuthority+`","amount":0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestMintToken_InvalidFields(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "invalid mint",
			body:      `{"mint":"bad!","destination":"` + validDestination + `","authority":"` + validAuthority + `","amount":1}`,
			wantError: "Invalid base58 string for mint.",
		},
		{
			name:      "invalid destination",
			body:      `{"mint":"` + validMint + `","destination":"bad!","authority":"` + validAuthority + `","amount":1}`,
			wantError: "Invalid base58 string for destination.",
		},
		{
			name:      "invalid authority",
			body:      `{"mint":"` + validMint + `","destination":"` + validDestination + `","authority":"bad!","amount":1}`,
			wantError: "Invalid base58 string for authority.",
		},
	}

	router := newTestHandler(t).Init()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, router, http.MethodPost, "/token/mint", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}

func TestMintToken_FirstInvalidFieldWins(t *testing.T) {
	router := newTestHandler(t).Init()

	// every address is malformed; mint is checked first
	rec, env := doJSON(t, router, http.MethodPost, "/token/mint",
		`{"mint":"bad!","destination":"bad!","authority":"bad!","amount":1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid base58 string for mint.", env.Error)
}

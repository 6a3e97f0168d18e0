package http

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/spl-token-api/internal/logger"
	"github.com/avolkov/spl-token-api/internal/utils"
	"github.com/avolkov/spl-token-api/internal/validators"
	"github.com/avolkov/spl-token-api/models"
)

func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON body")
		utils.WriteJSON(w, models.Failure("invalid JSON body"), http.StatusBadRequest)
		return
	}

	mintAuthority, err := validators.Address("mintAuthority", req.MintAuthority)
	if err != nil {
		log.Err(err).Msg("mint authority address rejected")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	mint, err := validators.Address("mint", req.Mint)
	if err != nil {
		log.Err(err).Msg("mint address rejected")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	instruction, err := h.services.TokenService.BuildInitializeMint(ctx, mintAuthority, mint, req.Decimals)
	if err != nil {
		log.Err(err).Msg("initialize mint instruction not built")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.Success(instruction), http.StatusOK)
}

func (h *Handler) mintToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MintTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON body")
		utils.WriteJSON(w, models.Failure("invalid JSON body"), http.StatusBadRequest)
		return
	}

	// Addresses are checked in request order; the first malformed field
	// is reported and the rest are not inspected.
	mint, err := validators.Address("mint", req.Mint)
	if err != nil {
		log.Err(err).Msg("mint address rejected")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	destination, err := validators.Address("destination", req.Destination)
	if err != nil {
		log.Err(err).Msg("destination address rejected")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	authority, err := validators.Address("authority", req.Authority)
	if err != nil {
		log.Err(err).Msg("authority address rejected")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	instruction, err := h.services.TokenService.BuildMintTo(ctx, mint, destination, authority, req.Amount)
	if err != nil {
		log.Err(err).Msg("mint to instruction not built")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.Success(instruction), http.StatusOK)
}

package http

import (
	"net/http"

	"github.com/avolkov/spl-token-api/internal/logger"
	"github.com/avolkov/spl-token-api/internal/utils"
	"github.com/avolkov/spl-token-api/models"
)

func (h *Handler) generateKeypair(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The request body carries no parameters and is ignored.
	keypair, err := h.services.KeypairService.GenerateKeypair(ctx)
	if err != nil {
		log.Err(err).Msg("keypair generation failed")
		utils.WriteJSON(w, models.Failure(err.Error()), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.Success(keypair), http.StatusOK)
}

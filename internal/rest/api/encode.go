package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/encodemessage"
	"github.com/sergeii/enigma/internal/rest/model"
	"github.com/sergeii/enigma/internal/settings"
)

// Encode runs a message through a freshly assembled machine.
// The same endpoint decrypts: feeding a ciphertext back
// with identical settings restores the original message
func (a *API) Encode(c *gin.Context) {
	var form model.EncodeRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}

	cfg := settings.Default()
	if form.Rotors != nil {
		cfg.Rotors = *form.Rotors
	}
	if form.Positions != nil {
		cfg.Positions = *form.Positions
	}
	if form.Rings != nil {
		cfg.Rings = *form.Rings
	}
	cfg.Pairs = form.Plugboard

	result, err := a.encodeMessage.Execute(c, encodemessage.NewRequest(form.Message, cfg))
	if err != nil {
		// the engine has no runtime failure modes:
		// anything that goes wrong here is a bad configuration
		a.logger.Info().Err(err).Msg("Rejected encode request")
		c.JSON(http.StatusBadRequest, Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.EncodeResponse{
		Ciphertext: result.Ciphertext,
		Letters:    result.Letters,
	})
}

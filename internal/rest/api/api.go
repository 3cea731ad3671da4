package api

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/usecases/encodemessage"
)

type API struct {
	encodeMessage encodemessage.UseCase
	clock         clockwork.Clock
	started       time.Time
	logger        *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	encodeMessageUseCase encodemessage.UseCase,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) *API {
	return &API{
		encodeMessage: encodeMessageUseCase,
		clock:         clock,
		started:       clock.Now(),
		logger:        logger,
	}
}

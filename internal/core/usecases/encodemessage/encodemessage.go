package encodemessage

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/settings"
	"github.com/sergeii/enigma/pkg/enigma/alphabet"
	"github.com/sergeii/enigma/pkg/enigma/machine"
)

var ErrInvalidSettings = errors.New("invalid machine settings")

type UseCase struct {
	validate  *validator.Validate
	clock     clockwork.Clock
	collector *metrics.Collector
	logger    *zerolog.Logger
}

type Request struct {
	Message  string
	Settings settings.Settings
}

type Result struct {
	Ciphertext string
	Letters    int
}

func New(
	validate *validator.Validate,
	clock clockwork.Clock,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		validate:  validate,
		clock:     clock,
		collector: collector,
		logger:    logger,
	}
}

func NewRequest(message string, cfg settings.Settings) Request {
	return Request{
		Message:  message,
		Settings: cfg,
	}
}

// Execute runs a message through a machine assembled for this request alone.
// A fresh machine per message is the only safe unit of work:
// rotor positions mutate with every enciphered letter
func (uc UseCase) Execute(_ context.Context, req Request) (Result, error) {
	if err := uc.validate.Struct(req.Settings); err != nil {
		uc.collector.EncodeFailures.WithLabelValues("settings").Inc()
		uc.logger.Debug().Err(err).Msg("Rejected invalid machine settings")
		return Result{}, ErrInvalidSettings
	}

	if req.Settings.HasDuplicateRotors() {
		// historical machines mounted three distinct wheels;
		// a repeated wheel is permitted but worth pointing out
		uc.logger.Warn().
			Ints("rotors", req.Settings.Rotors[:]).
			Msg("The same wheel is selected for multiple slots")
	}

	enigma, err := machine.New(req.Settings.MachineConfig())
	if err != nil {
		uc.collector.EncodeFailures.WithLabelValues("machine").Inc()
		return Result{}, err
	}

	started := uc.clock.Now()
	ciphertext := enigma.Process(req.Message)
	uc.collector.EncodeDurations.Observe(uc.clock.Since(started).Seconds())

	letters := countLetters(ciphertext)
	uc.collector.EncodeMessages.Inc()
	uc.collector.EncodeLetters.Add(float64(letters))

	return Result{Ciphertext: ciphertext, Letters: letters}, nil
}

func countLetters(text string) int {
	letters := 0
	for i := 0; i < len(text); i++ {
		if alphabet.IsLetter(text[i]) {
			letters++
		}
	}
	return letters
}

package encodemessage_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/usecases/encodemessage"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/settings"
	"github.com/sergeii/enigma/internal/validation"
)

func makeUseCase(t *testing.T, out *bytes.Buffer) (encodemessage.UseCase, *metrics.Collector) {
	t.Helper()
	validate, err := validation.New()
	require.NoError(t, err)
	collector := metrics.New()
	logger := zerolog.Nop()
	if out != nil {
		logger = zerolog.New(out)
	}
	uc := encodemessage.New(validate, clockwork.NewFakeClock(), collector, &logger)
	return uc, collector
}

func TestUseCase_EncodeMessage(t *testing.T) {
	ctx := context.TODO()
	uc, collector := makeUseCase(t, nil)

	result, err := uc.Execute(ctx, encodemessage.NewRequest("HELLO", settings.Default()))
	require.NoError(t, err)
	assert.Equal(t, "VNACA", result.Ciphertext)
	assert.Equal(t, 5, result.Letters)

	assert.Equal(t, float64(1), testutil.ToFloat64(collector.EncodeMessages))
	assert.Equal(t, float64(5), testutil.ToFloat64(collector.EncodeLetters))
}

func TestUseCase_EachMessageStartsAFreshSession(t *testing.T) {
	ctx := context.TODO()
	uc, _ := makeUseCase(t, nil)

	first, err := uc.Execute(ctx, encodemessage.NewRequest("HELLO", settings.Default()))
	require.NoError(t, err)
	second, err := uc.Execute(ctx, encodemessage.NewRequest("HELLO", settings.Default()))
	require.NoError(t, err)
	// unlike successive calls on a single machine, every request
	// starts from the configured initial positions
	assert.Equal(t, first.Ciphertext, second.Ciphertext)
}

func TestUseCase_RoundTripWithPlugboard(t *testing.T) {
	ctx := context.TODO()
	uc, _ := makeUseCase(t, nil)

	cfg := settings.Default()
	cfg.Pairs = []string{"QW", "ER"}

	encrypted, err := uc.Execute(ctx, encodemessage.NewRequest("HELLOWORLD", cfg))
	require.NoError(t, err)
	assert.Equal(t, "VDACACJJEA", encrypted.Ciphertext)

	decrypted, err := uc.Execute(ctx, encodemessage.NewRequest(encrypted.Ciphertext, cfg))
	require.NoError(t, err)
	assert.Equal(t, "HELLOWORLD", decrypted.Ciphertext)
}

func TestUseCase_NonLettersDoNotCount(t *testing.T) {
	ctx := context.TODO()
	uc, collector := makeUseCase(t, nil)

	result, err := uc.Execute(ctx, encodemessage.NewRequest("HE LL-O!", settings.Default()))
	require.NoError(t, err)
	assert.Equal(t, "VN AC-A!", result.Ciphertext)
	assert.Equal(t, 5, result.Letters)
	assert.Equal(t, float64(5), testutil.ToFloat64(collector.EncodeLetters))
}

func TestUseCase_InvalidSettingsAreRejected(t *testing.T) {
	tests := []struct {
		name string
		cfg  settings.Settings
	}{
		{"rotor out of range", settings.Settings{Rotors: [3]int{0, 1, 5}}},
		{"position out of range", settings.Settings{Rotors: [3]int{0, 1, 2}, Positions: [3]int{0, 0, 77}}},
		{"ring out of range", settings.Settings{Rotors: [3]int{0, 1, 2}, Rings: [3]int{-3, 0, 0}}},
		{"malformed plugboard", settings.Settings{Rotors: [3]int{0, 1, 2}, Pairs: []string{"NOPE"}}},
		{"plugboard letter reused", settings.Settings{Rotors: [3]int{0, 1, 2}, Pairs: []string{"AB", "AC"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, collector := makeUseCase(t, nil)
			_, err := uc.Execute(context.TODO(), encodemessage.NewRequest("HELLO", tt.cfg))
			assert.ErrorIs(t, err, encodemessage.ErrInvalidSettings)
			failures := collector.EncodeFailures.WithLabelValues("settings")
			assert.Equal(t, float64(1), testutil.ToFloat64(failures))
			assert.Equal(t, float64(0), testutil.ToFloat64(collector.EncodeMessages))
		})
	}
}

func TestUseCase_DuplicateRotorsAreFlagged(t *testing.T) {
	var out bytes.Buffer
	uc, _ := makeUseCase(t, &out)

	cfg := settings.Default()
	cfg.Rotors = [3]int{1, 1, 2}

	result, err := uc.Execute(context.TODO(), encodemessage.NewRequest("HELLO", cfg))
	require.NoError(t, err)
	assert.NotEmpty(t, result.Ciphertext)
	assert.Contains(t, out.String(), "The same wheel is selected for multiple slots")
}

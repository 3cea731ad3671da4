package interactive

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/internal/core/usecases/encodemessage"
	"github.com/sergeii/enigma/internal/settings"
)

const runTimeout = time.Second * 5

var errThreeNumbersExpected = errors.New("enter three numbers separated by spaces, e.g. 0 0 0")

type command struct{}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	var sessionErr error
	app := builder.
		Add(
			fx.Invoke(func(uc encodemessage.UseCase) {
				sessionErr = runSession(uc)
			}),
		).
		Build()

	startCtx, cancelStart := context.WithTimeout(context.Background(), runTimeout)
	defer cancelStart()
	if startErr := app.Start(startCtx); startErr != nil {
		return startErr
	}
	stopCtx, cancelStop := context.WithTimeout(context.Background(), runTimeout)
	defer cancelStop()
	if stopErr := app.Stop(stopCtx); stopErr != nil {
		return stopErr
	}

	return sessionErr
}

// runSession prompts for a message and machine settings, prints the result
// and repeats until the operator has had enough
func runSession(uc encodemessage.UseCase) error {
	for {
		var message, positions, rings, pairs string

		if err := huh.NewInput().
			Title("Message").
			Value(&message).
			Run(); err != nil {
			return err
		}
		if err := huh.NewInput().
			Title("Rotor positions").
			Description("Three numbers 0-25, left to right; empty for 0 0 0").
			Value(&positions).
			Validate(validateTriple).
			Run(); err != nil {
			return err
		}
		if err := huh.NewInput().
			Title("Ring settings").
			Description("Three numbers 0-25, left to right; empty for 0 0 0").
			Value(&rings).
			Validate(validateTriple).
			Run(); err != nil {
			return err
		}
		if err := huh.NewInput().
			Title("Plugboard pairs").
			Description("Letter pairs such as AB CD; empty for none").
			Value(&pairs).
			Run(); err != nil {
			return err
		}

		cfg := settings.Default()
		cfg.Positions, _ = parseTriple(positions)
		cfg.Rings, _ = parseTriple(rings)
		cfg.Pairs = strings.Fields(pairs)

		result, err := uc.Execute(context.Background(), encodemessage.NewRequest(message, cfg))
		if err != nil {
			return err
		}
		fmt.Printf("Output: %s\n", result.Ciphertext) // nolint: forbidigo

		var again bool
		if err := huh.NewConfirm().
			Title("Process another message?").
			Value(&again).
			Run(); err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// parseTriple reads three space-separated integers; an empty input means all zeroes
func parseTriple(input string) ([3]int, error) {
	var out [3]int
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return out, nil
	}
	if len(fields) != 3 {
		return out, errThreeNumbersExpected
	}
	for i, field := range fields {
		number, err := strconv.Atoi(field)
		if err != nil {
			return out, errThreeNumbersExpected
		}
		out[i] = number
	}
	return out, nil
}

func validateTriple(input string) error {
	_, err := parseTriple(input)
	return err
}

type CLI struct {
	Interactive command `cmd:"" help:"Run an interactive cipher session" name:"interactive"`
}

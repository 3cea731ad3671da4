package encode

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/internal/core/usecases/encodemessage"
	"github.com/sergeii/enigma/internal/settings"
)

const runTimeout = time.Second * 5

type command struct {
	Message   string   `arg:""          help:"Message to encrypt or decrypt"`
	Rotors    []int    `default:"0,1,2" help:"Wheel order, left to right (0 for I, 1 for II, 2 for III)"`
	Positions []int    `default:"0,0,0" help:"Initial rotor positions, left to right, each 0-25"`
	Rings     []int    `default:"0,0,0" help:"Ring settings, left to right, each 0-25"`
	Plugboard []string `help:"Plugboard letter pairs, e.g. AB,CD"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	cfg, err := settings.FromSlices(c.Rotors, c.Positions, c.Rings, c.Plugboard)
	if err != nil {
		return err
	}

	var result encodemessage.Result
	var execErr error
	app := builder.
		Add(
			fx.Invoke(func(uc encodemessage.UseCase) {
				result, execErr = uc.Execute(
					context.Background(),
					encodemessage.NewRequest(c.Message, cfg),
				)
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

	if execErr != nil {
		return execErr
	}
	fmt.Println(result.Ciphertext) // nolint: forbidigo
	return nil
}

type CLI struct {
	Encode command `cmd:"" help:"Encrypt or decrypt a message in one shot" name:"encode"`
}

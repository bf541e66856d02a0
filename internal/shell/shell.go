// Package shell runs the interactive hostel menu.
package shell

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/yigit/hostel/internal/app/controllers"
	"github.com/yigit/hostel/internal/app/routes"
	"github.com/yigit/hostel/internal/app/services"
	"github.com/yigit/hostel/internal/pkg/console"
)

// Shell holds the state for one interactive session
type Shell struct {
	menu        *routes.Menu
	controllers *controllers.Controllers
	prompt      *console.Prompt
	logger      zerolog.Logger
}

// NewShell wires controllers and the menu onto the given streams
func NewShell(svc *services.Services, in io.Reader, out io.Writer, logger zerolog.Logger) *Shell {
	prompt := console.NewPrompt(in, out)
	ctrls := controllers.NewControllers(svc, prompt)
	return &Shell{
		menu:        routes.SetupMenu(ctrls),
		controllers: ctrls,
		prompt:      prompt,
		logger:      logger,
	}
}

func (s *Shell) printMenu() {
	s.prompt.Println(routes.Banner)
	for _, line := range s.menu.Lines() {
		s.prompt.Println(line)
	}
}

// Run loads stored data, then reads menu choices until Exit or end of input
func (s *Shell) Run(ctx context.Context) error {
	if err := s.controllers.Data.Load(ctx); err != nil {
		return err
	}

	s.logger.Info().Msg("Menu loop started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		answer, err := s.prompt.AskInline("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			s.logger.Info().Msg("End of input, exiting")
			return nil
		}
		if err != nil {
			return err
		}

		route, numeric, found := s.menu.Lookup(answer)
		switch {
		case !numeric:
			s.prompt.Println("Invalid choice format. Please enter a numeric value.")
			continue
		case !found:
			s.prompt.Println("Invalid choice. Please try again.")
			continue
		case route.Choice == routes.ExitChoice:
			s.logger.Info().Msg("Exit chosen")
			return nil
		}

		s.logger.Debug().Int("choice", route.Choice).Str("entry", route.Label).Msg("Menu entry selected")
		if err := route.Handler(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Info().Int("choice", route.Choice).Msg("End of input inside menu entry, exiting")
				return nil
			}
			return err
		}
	}
}

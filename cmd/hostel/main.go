package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yigit/hostel/internal/app/views"
	"github.com/yigit/hostel/internal/bootstrap"
	"github.com/yigit/hostel/internal/config"
	"github.com/yigit/hostel/internal/pkg/auth"
	"github.com/yigit/hostel/internal/pkg/console"
	"github.com/yigit/hostel/internal/pkg/logger"
	"github.com/yigit/hostel/internal/shell"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Application failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hostel",
		Usage: "hostel residents, room occupancy and daily attendance",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultConfigPath,
				EnvVars: []string{"HOSTEL_CONFIG"},
				Usage:   "path to the YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file loaded before configuration",
			},
		},
		Before: func(c *cli.Context) error {
			return config.LoadDotEnv(c.String("env-file"))
		},
		Action: runMenu,
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  "print the attendance report and exit",
				Action: runReport,
			},
			{
				Name:   "list",
				Usage:  "print every registered student and exit",
				Action: runList,
			},
			{
				Name:   "hash-pin",
				Usage:  "read a warden PIN from stdin and print its bcrypt hash for admin.pin_hash",
				Action: runHashPIN,
			},
		},
	}
}

// withDependencies runs fn with fully bootstrapped dependencies and closes them afterwards
func withDependencies(c *cli.Context, fn func(ctx context.Context, deps *bootstrap.Dependencies) error) error {
	ctx := c.Context
	deps, err := bootstrap.Setup(ctx, c.String("config"))
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(); err != nil {
			deps.Logger.Error().Err(err).Msg("Failed to release resources")
		}
	}()
	return fn(ctx, deps)
}

func runMenu(c *cli.Context) error {
	return withDependencies(c, func(ctx context.Context, deps *bootstrap.Dependencies) error {
		sh := shell.NewShell(deps.Services, c.App.Reader, c.App.Writer, deps.Logger)
		if err := sh.Run(ctx); err != nil {
			return err
		}
		deps.Logger.Info().Msg("Application finished gracefully.")
		return nil
	})
}

// loadQuietly loads stored data, sending load failures to the error stream
func loadQuietly(c *cli.Context, ctx context.Context, deps *bootstrap.Dependencies) {
	_, errs := deps.Services.Data.Load(ctx)
	for _, err := range []error{errs.Students, errs.Attendance} {
		if err != nil {
			fmt.Fprintln(c.App.ErrWriter, err)
		}
	}
}

func runReport(c *cli.Context) error {
	return withDependencies(c, func(ctx context.Context, deps *bootstrap.Dependencies) error {
		loadQuietly(c, ctx, deps)
		students := deps.Services.Students.List(ctx)
		views.AttendanceSummary(c.App.Writer, students)
		views.AllStudents(c.App.Writer, students)
		views.StudentsByDepartment(c.App.Writer, deps.Services.Students.ListByDepartment(ctx))
		return nil
	})
}

func runList(c *cli.Context) error {
	return withDependencies(c, func(ctx context.Context, deps *bootstrap.Dependencies) error {
		loadQuietly(c, ctx, deps)
		views.AllStudents(c.App.Writer, deps.Services.Students.List(ctx))
		return nil
	})
}

func runHashPIN(c *cli.Context) error {
	prompt := console.NewPrompt(c.App.Reader, c.App.ErrWriter)
	pin, err := prompt.Ask("Enter warden PIN: ")
	if err != nil {
		return fmt.Errorf("failed to read PIN: %w", err)
	}
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return errors.New("PIN must not be empty")
	}

	hash, err := auth.HashPIN(pin)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	fmt.Fprintln(c.App.Writer, hash)
	return nil
}

package commands

import (
	"context"
	"fmt"

	"labelsmobile/cmd/devserver/config"
	"labelsmobile/cmd/devserver/runner"
	"labelsmobile/internal/console"
	"labelsmobile/internal/lifecycle"
	"labelsmobile/version"

	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:      "devserver",
		Usage:     "Labels Productos dev server - bootstrap .env, check Supabase and serve the PWA locally",
		Version:   version.Version,
		ArgsUsage: "[port]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-probe",
				Usage: "Do not contact Supabase before starting",
			},
		},
		Action: runAction,
	}
}

func runAction(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		console.New(c.Root().ErrWriter).Fail("No se pudo cargar la configuración: %s", err)
		return fmt.Errorf("failed to load config: %w", err)
	}

	r := runner.New(runner.Options{
		Port:         cfg.GetPort(),
		PortArg:      c.Args().First(),
		StaticDir:    cfg.GetStaticDir(),
		EnvFile:      cfg.GetEnvFile(),
		TemplateFile: cfg.GetTemplateFile(),
		Fallbacks:    cfg.GetFallbacks(),
		SkipProbe:    c.Bool("skip-probe"),
	}, c.Root().Writer, cfg.GetBrowser())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopSignals := lifecycle.WatchSignals(cancel)
	defer stopSignals()

	return r.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackielii/showcase"
	"github.com/jackielii/showcase/internal/config"
	"github.com/jackielii/showcase/internal/logging"
	"github.com/jackielii/showcase/internal/server"
	"github.com/jackielii/showcase/pages"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		log.Error().Err(err).Msg("showcase")
		stop()
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "showcase",
		Usage:     "Serve the routing showcase",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			serveCommand,
			routesCommand,
		},
	}
}

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP server",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: config.DefaultPath, Usage: "path to the YAML config file", EnvVars: []string{"SHOWCASE_CONFIG"}},
		&cli.StringFlag{Name: "addr", Usage: "listen address, overrides the config file", EnvVars: []string{"SHOWCASE_ADDR"}},
		&cli.StringFlag{Name: "log-level", Usage: "log level (debug, info, warn, error)"},
		&cli.BoolFlag{Name: "pretty", Usage: "human readable logs"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load(c.String("config"))
		if err != nil {
			return err
		}
		if c.IsSet("addr") {
			cfg.Addr = c.String("addr")
		}
		if c.IsSet("log-level") {
			cfg.LogLevel = c.String("log-level")
		}
		if c.IsSet("pretty") {
			cfg.Pretty = c.Bool("pretty")
		}
		logger := logging.Setup(logging.Config{Level: cfg.LogLevel, Pretty: cfg.Pretty})

		s, err := server.New(cfg, logger)
		if err != nil {
			return err
		}
		return s.Run(c.Context)
	},
}

var routesCommand = &cli.Command{
	Name:  "routes",
	Usage: "Print the mounted page tree",
	Action: func(c *cli.Context) error {
		_, err := fmt.Fprint(c.App.Writer, showcase.PrintRoutes("/", pages.Pages{}))
		return err
	},
}

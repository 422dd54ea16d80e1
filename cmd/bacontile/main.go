package main

import (
	"context"
	"image/png"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/urfave/cli/v2"

	bacontile "github.com/iroiro-gamedev/BaconTileSetter"
	"github.com/iroiro-gamedev/BaconTileSetter/autotile"
	"github.com/iroiro-gamedev/BaconTileSetter/export"
	"github.com/iroiro-gamedev/BaconTileSetter/live"
	"github.com/iroiro-gamedev/BaconTileSetter/preview"
	"github.com/iroiro-gamedev/BaconTileSetter/tileset"
)

const defaultDB = "bacontile.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func engineConfig(c *cli.Context) autotile.Config {
	return autotile.Config{
		TileSize: c.Int("size"),
		Scheme:   autotile.ParseScheme(c.String("scheme")),
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "bacontile"
	app.Usage = "autotile atlas generator"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BACONTILE_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to atlas cache database",
		},
		&cli.StringFlag{
			Name:    "scheme",
			EnvVars: []string{"BACONTILE_SCHEME"},
			Value:   "16",
			Usage:   "autotiling scheme, \"16\" or \"47\"",
		},
		&cli.IntFlag{
			Name:  "size",
			Value: 32,
			Usage: "tile edge length in pixels",
		},
		&cli.BoolFlag{
			Name:  "indexed",
			Usage: "include a palette-quantized atlas in bundles",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Generate a tile set bundle from one directory",
			Description: "",
			ArgsUsage:   "DIRECTORY [FILE]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				file := bacontile.BundleFilename
				if c.NArg() > 1 {
					file = c.Args().Get(1)
				}

				db, err := bacontile.NewAtlasDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				t := bacontile.New(db, engineConfig(c), export.Options{Indexed: c.Bool("indexed")}, newLogger(c))

				if err := t.Export(c.Args().First(), file); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Walk a tree and bundle every tile set directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := bacontile.NewAtlasDB(c.String("db"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				t := bacontile.New(db, engineConfig(c), export.Options{Indexed: c.Bool("indexed")}, newLogger(c))

				if err := t.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render a contact sheet of the generated atlas",
			Description: "",
			ArgsUsage:   "DIRECTORY FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				sources, err := tileset.Load(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				atlas := autotile.Generate(sources, engineConfig(c))

				f, err := os.Create(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				if err := png.Encode(f, preview.Render(atlas)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "serve",
			Usage:       "Serve a live browser preview of a tile set directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "addr",
					Value: ":8080",
					Usage: "listen address",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
				defer stop()

				s := live.New(c.Args().First(), engineConfig(c), newLogger(c))
				if err := s.ListenAndServe(ctx, c.String("addr")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

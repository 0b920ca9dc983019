package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"chessassets/src/cacher"
	"chessassets/src/logx"
	clic "chessassets/ui/cli"
	"chessassets/ui/gconf"
	"chessassets/ui/gui/ggen"

	"github.com/urfave/cli/v3"
)

const logfile string = "chessassets.log"

func GetLogger(file *os.File, cfg *gconf.Config) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(cfg.LogLevel),
		cfg.Debug,
		cfg.Console,
	)
	l.InitLogger(file)
	return l
}

// config file first, then flags on top
func loadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.NewConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.String("assets") != "" {
		cfg.AssetsDir = c.String("assets")
	}
	if c.String("level") != "" {
		cfg.LogLevel = c.String("level")
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}
	if c.Bool("console") {
		cfg.Console = true
	}
	return cfg, nil
}

func newDecodeCacher(cfg *gconf.Config, l *logx.Logx) (*cacher.Cacher[any], error) {
	if cfg.AssetsDir != "" {
		return cacher.NewAt[any](cfg.AssetsDir, l)
	}
	return cacher.New[any](l)
}

func runCheck(cfg *gconf.Config, l *logx.Logx) error {
	c, err := newDecodeCacher(cfg, l)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error resolve assets: %v", err), 1)
	}

	err = c.Populate(anyContext{})
	clic.EnableANSI()
	if err != nil {
		var le *cacher.LoadError
		if errors.As(err, &le) {
			clic.PrintCheck(os.Stdout, c.Dir(), le.Name, le.Err)
		}
		return cli.Exit(fmt.Sprintf("error check assets: %v", err), 1)
	}
	clic.PrintCheck(os.Stdout, c.Dir(), "", nil)
	return nil
}

// anyContext adapts the CPU decode context to an untyped cache so check
// does not need a rendering backend.
type anyContext struct{}

func (anyContext) LoadTexture(path string) (any, error) {
	return clic.DecodeContext{}.LoadTexture(path)
}

func RunChessAssets() error {
	af := &cli.StringFlag{
		Name:  "assets",
		Usage: "path to assets directory (skips search)",
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Usage: "path to JSON config file",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	ff := []cli.Flag{af, conff, df, lf, cf}

	return (&cli.Command{
		Name:  "chessassets",
		Usage: "chess piece taxonomy and texture cache tooling",
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "load every required asset and report the result",
				Flags: ff,
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig(c)
					if err != nil {
						fmt.Printf("error read config: %v", err)
						return nil
					}
					file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
					if err != nil {
						fmt.Printf("error open logfile: %v", err)
						return nil
					}
					defer file.Close()
					return runCheck(cfg, GetLogger(file, cfg))
				},
			},
			{
				Name:  "gen",
				Usage: "write placeholder PNGs for all required assets",
				Flags: ff,
				Action: func(ctx context.Context, c *cli.Command) error {
					dir := c.String("assets")
					if dir == "" {
						dir = "assets"
					}
					if err := ggen.Generate(dir); err != nil {
						return cli.Exit(fmt.Sprintf("error generate assets: %v", err), 1)
					}
					fmt.Printf("generated %d assets in %s\n", len(cacher.RequiredAssets()), dir)
					return nil
				},
			},
			{
				Name:  "pieces",
				Usage: "print the piece variants and their asset file names",
				Action: func(ctx context.Context, c *cli.Command) error {
					clic.EnableANSI()
					clic.PrintVariants(os.Stdout)
					return nil
				},
			},
		},
	}).Run(context.Background(), os.Args)
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "knot").
		WithSynopsis("knot [opts] command [opts]").
		WithDescription("knot is a tool for working with JSON value trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return knotMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			ViewCommand(cfg),
			GetCommand(cfg),
			WireCommand(cfg),
			UnwireCommand(cfg),
			SetCommand(cfg))
}

func knotMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("re-render JSON documents compactly, or indented with -p").
		WithRun(func(cc *cli.Context, args []string) error {
			return knotFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view JSON documents indented, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return knotView(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <key> [files]").
		WithDescription("print the value under a top-level key").
		WithRun(func(cc *cli.Context, args []string) error {
			return knotGet(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func WireCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WireConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("wire").
		WithAliases("w").
		WithSynopsis("wire [files]").
		WithDescription("binary-encode JSON documents to base64").
		WithRun(func(cc *cli.Context, args []string) error {
			return knotWire(cfg, cc, args)
		})
	cfg.Wire = cmd
	return cmd
}

func UnwireCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnwireConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("unwire").
		WithAliases("u").
		WithSynopsis("unwire [files]").
		WithDescription("decode base64 wire input back to JSON text").
		WithRun(func(cc *cli.Context, args []string) error {
			return knotUnwire(cfg, cc, args)
		})
	cfg.Unwire = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg, Env: map[string]any{}}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set -e key=val [-e key2=val2 ...] [files]").
		WithDescription("set top-level keys before rendering; values are YAML literals").
		WithOpts(&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(key=val)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return knotSet(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/knot-format/go-knot/encode"
	"github.com/knot-format/go-knot/ir"
	"github.com/knot-format/go-knot/parse"
	"github.com/knot-format/go-knot/wire"

	"github.com/scott-cotton/cli"
)

func knotFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	return processFiles(cc, args, func(w io.Writer, node *ir.Node) error {
		return render(w, node, cfg.encOpts(w))
	})
}

func knotView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.Pretty = true
	return processFiles(cc, args, func(w io.Writer, node *ir.Node) error {
		return render(w, node, cfg.encOpts(w))
	})
}

func knotGet(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a key", cli.ErrUsage)
	}
	key := args[0]
	return processFiles(cc, args[1:], func(w io.Writer, node *ir.Node) error {
		v := node.Get(key)
		if v == nil {
			return fmt.Errorf("no top-level key %q", key)
		}
		return render(w, v, cfg.encOpts(w))
	})
}

func knotWire(cfg *WireConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Wire.Parse(cc, args)
	if err != nil {
		return err
	}
	return processFiles(cc, args, func(w io.Writer, node *ir.Node) error {
		s, err := wire.MarshalBase64(node)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	})
}

func knotUnwire(cfg *UnwireConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unwire.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(w io.Writer, in []byte) error {
		node, err := wire.UnmarshalBase64(strings.TrimSpace(string(in)))
		if err != nil {
			return err
		}
		return render(w, node, cfg.encOpts(w))
	})
}

func knotSet(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	return processFiles(cc, args, func(w io.Writer, node *ir.Node) error {
		for _, key := range slices.Sorted(maps.Keys(cfg.Env)) {
			node.Add(key, nodeFromAny(cfg.Env[key]))
		}
		return render(w, node, cfg.encOpts(w))
	})
}

func render(w io.Writer, node *ir.Node, opts []encode.EncodeOption) error {
	if err := encode.Encode(node, w, opts...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}

// processFiles parses each named file (stdin when none or "-") and hands
// the tree to f.
func processFiles(cc *cli.Context, files []string, f func(io.Writer, *ir.Node) error) error {
	return eachInput(cc, files, func(w io.Writer, in []byte) error {
		node, err := parse.Parse(string(in))
		if err != nil {
			return err
		}
		return f(w, node)
	})
}

func eachInput(cc *cli.Context, files []string, f func(io.Writer, []byte) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := oneInput(cc, file, f); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func oneInput(cc *cli.Context, file string, f func(io.Writer, []byte) error) error {
	var r io.Reader = cc.In
	if file != "-" {
		fd, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer fd.Close()
		r = fd
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return f(cc.Out, in)
}

// contentcoding decodes or encodes a body read from stdin according to a
// Content-Encoding header field value, or lists the layers the value consists of.
//
//	contentcoding --encoding "gzip, br" < body.br > body
//	contentcoding --encode --encoding "gzip, br" < body > body.br
//	contentcoding --layers --json --encoding "gzip, x-custom"
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/indigo-web/contentcoding/codec"
	"github.com/indigo-web/contentcoding/config"
	"github.com/indigo-web/contentcoding/status"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)

		var httpErr status.HTTPError
		if errors.As(err, &httpErr) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}

type options struct {
	Encoding  string
	Encode    bool
	Layers    bool
	JSON      bool
	MaxLayers int
	MaxSize   int64
	Verbose   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options
	cfg := config.Default()

	flagSet := pflag.NewFlagSet("contentcoding", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.Encoding, "encoding", "e", "", "Content-Encoding header field value")
	flagSet.BoolVar(&opts.Encode, "encode", false, "encode stdin instead of decoding it")
	flagSet.BoolVar(&opts.Layers, "layers", false, "list the layers in decoding order and exit")
	flagSet.BoolVar(&opts.JSON, "json", false, "print layers as JSON (with --layers)")
	flagSet.IntVar(&opts.MaxLayers, "max-layers", cfg.Decoding.MaxLayers, "maximal number of non-identity layers to decode")
	flagSet.Int64Var(&opts.MaxSize, "max-size", cfg.Decoding.MaxSize, "maximal decoded body size in bytes")
	flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug messages to stderr")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}

		return err
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.Layers {
		return printLayers(stdout, opts.Encoding, opts.JSON)
	}

	cfg.Decoding.MaxLayers = opts.MaxLayers
	cfg.Decoding.MaxSize = opts.MaxSize

	return transcodeBody(logger, cfg, codec.NewRegistryFromConfig(cfg), opts, stdin, stdout)
}

package main

import (
	"io"
	"log/slog"

	"github.com/indigo-web/contentcoding"
	"github.com/indigo-web/contentcoding/codec"
	"github.com/indigo-web/contentcoding/config"
	"github.com/indigo-web/contentcoding/transcode"
)

func transcodeBody(
	logger *slog.Logger, cfg *config.Config, registry *codec.Registry, opts options, in io.Reader, out io.Writer,
) error {
	logger.Debug("processing body",
		"encoding", opts.Encoding,
		"layers", contentcoding.Count(opts.Encoding),
		"encode", opts.Encode,
		"accept", registry.AcceptEncoding(),
	)

	if opts.Encode {
		w, err := transcode.NewEncoder(registry).NewWriter(opts.Encoding, out)
		if err != nil {
			return err
		}

		n, err := io.Copy(w, in)
		if err != nil {
			return err
		}

		logger.Debug("body encoded", "read", n)
		return w.Close()
	}

	r, err := transcode.NewDecoder(registry, cfg).NewReader(opts.Encoding, in)
	if err != nil {
		return err
	}

	n, err := io.Copy(out, r)
	if err != nil {
		return err
	}

	logger.Debug("body decoded", "written", n)
	return nil
}

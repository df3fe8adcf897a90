package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/taproom/internal/config"
	"github.com/aretw0/taproom/internal/logging"
)

// NewLogger builds the application logger from the log section of the configuration.
func NewLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewWithFormat(w, level, cfg.Format), nil
}

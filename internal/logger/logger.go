// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package logger builds the structured logger shared by commands and steps.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a logger writing to stderr, leaving stdout to command output.
func New(verbose, pretty bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, verbose, pretty)
}

// NewWithWriter returns a logger writing to w.
// Pretty output uses zerolog's console writer; otherwise events are JSON lines.
func NewWithWriter(w io.Writer, verbose, pretty bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if pretty {
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}
		logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
		log.Logger = logger
		return logger
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

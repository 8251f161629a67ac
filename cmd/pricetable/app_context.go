package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/pricetable/internal/config"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
	"github.com/alexisbeaulieu97/pricetable/internal/logger"
	"github.com/alexisbeaulieu97/pricetable/internal/suggest"
)

// AppContext bundles the configuration and logger of one invocation.
type AppContext struct {
	Config  *config.Config
	Logger  *logger.Logger
	Session string

	closeLog func() error
}

// newAppContext loads configuration and builds the session logger. The
// editor owns the terminal, so interactive runs only log with --log-file.
func newAppContext(flags *rootFlags, stderr io.Writer, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	writer := stderr
	closeLog := func() error { return nil }
	switch {
	case flags.logFile != "":
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writer = f
		closeLog = f.Close
	case interactive:
		writer = io.Discard
	}

	base, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human,
		Writer:        writer,
	})
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("create logger: %w", err)
	}

	log, session := base.WithSession()

	return &AppContext{
		Config:   cfg,
		Logger:   log,
		Session:  session,
		closeLog: closeLog,
	}, nil
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a == nil || a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

// Suggester builds the AI color service from configuration.
func (a *AppContext) Suggester() *suggest.Service {
	ai := a.Config.AI
	return suggest.NewService(suggest.Config{
		Host:        ai.Host,
		Model:       ai.Model,
		Temperature: ai.Temperature,
		Timeout:     ai.Timeout,
	}, a.Logger)
}

// Exporter builds the PNG exporter writing into dir.
func (a *AppContext) Exporter(dir string, scale int) *export.Exporter {
	return export.NewExporter(dir, export.Options{
		Scale:      scale,
		Background: a.Config.Export.Background,
	}, a.Logger)
}

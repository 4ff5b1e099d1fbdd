package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/jassdoc"
	"github.com/gdamore/tcell/v2"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Sources []string
	Loader  jassdoc.Loader
	Indexer jassdoc.Indexer

	// NewScreen returns an initialized screen. The caller calls Fini.
	NewScreen func() (tcell.Screen, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source      []string      `short:"s" env:"JASSDOC_SOURCES" default:"${default_sources}" sep:"," help:"Documentation source URL (repeatable)"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per source"`
	Rate        float64       `default:"0" help:"Requests per second per host (0 = unlimited)"`
	Concurrency int           `short:"c" default:"0" help:"Concurrent fetch limit (0 = all at once)"`
	Retries     int           `default:"0" help:"Retries of a source after a temporary failure (0 = fail on first error)"`
	LogFile     string        `name:"log-file" env:"JASSDOC_LOG" help:"Write logs to this file"`
	Debug       bool          `help:"Log fetches, index builds and searches"`

	Search  SearchCmd  `cmd:"" default:"1" help:"Interactively search the documentation"`
	Show    ShowCmd    `cmd:"" help:"Print the documentation of an entry"`
	List    ListCmd    `cmd:"" help:"List entries, optionally filtered by a fuzzy query"`
	Sources SourcesCmd `cmd:"" help:"Show what each source contributes"`
	Export  ExportCmd  `cmd:"" help:"Write one file per entry to a directory"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name   string `arg:"" help:"Entry name"`
	Format string `short:"f" enum:"text,html,markdown" default:"text" help:"Output format (text, html, markdown)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Query string `short:"q" help:"Fuzzy query"`
	Limit int    `short:"n" default:"200" help:"Maximum number of entries"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path   string `arg:"" help:"Output directory (replaced atomically)"`
	Format string `short:"f" enum:"markdown,text" default:"markdown" help:"File format (markdown, text)"`
}

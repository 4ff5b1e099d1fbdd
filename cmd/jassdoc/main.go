package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jassdoc"
	"github.com/fwojciec/jassdoc/bleve"
	jasshttp "github.com/fwojciec/jassdoc/http"
	"github.com/fwojciec/jassdoc/load"
	jslog "github.com/fwojciec/jassdoc/slog"
	"github.com/gdamore/tcell/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// DefaultSources are the JASS API files loaded when no source is configured.
var DefaultSources = []string{
	"https://raw.githubusercontent.com/lep/jassdoc/master/common.j",
	"https://raw.githubusercontent.com/lep/jassdoc/master/Blizzard.j",
	"https://raw.githubusercontent.com/lep/jassdoc/master/common.ai",
}

// Main represents the program.
type Main struct {
	// JSON configuration file supplying flag defaults. Set before calling Run().
	ConfigPath string

	// Fetcher overrides the HTTP fetcher, for end-to-end testing.
	Fetcher jassdoc.Fetcher

	// NewScreen returns an initialized screen for interactive commands.
	NewScreen func() (tcell.Screen, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: defaultConfigPath(),
		NewScreen:  newTerminalScreen,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		NewScreen: m.NewScreen,
	}

	options := []kong.Option{
		kong.Name("jassdoc"),
		kong.Description("Fuzzy search the JASS API documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"default_sources": strings.Join(DefaultSources, ",")},
		kong.Bind(deps),
	}
	if m.ConfigPath != "" {
		options = append(options, kong.Configuration(kong.JSON, m.ConfigPath))
	}

	cli := &CLI{}
	parser, err := kong.New(cli, options...)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	interactive := kongCtx.Command() == "search"

	logger, closeLog, err := openLogger(cli, stderr, interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	var fetcher jassdoc.Fetcher = jasshttp.NewFetcher(jasshttp.WithTimeout(cli.Timeout))
	if m.Fetcher != nil {
		fetcher = m.Fetcher
	}
	defer fetcher.Close()

	var indexer jassdoc.Indexer = bleve.NewIndexer(bleve.DefaultOptions())

	// Wrap services with logging decorators when debugging.
	if cli.Debug {
		fetcher = jslog.NewLoggingFetcher(fetcher, logger)
		indexer = jslog.NewLoggingIndexer(indexer, logger)
	}

	var loader jassdoc.Loader = &load.Loader{
		Fetcher:     fetcher,
		Limiter:     load.NewHostLimiter(cli.Rate),
		Concurrency: cli.Concurrency,
		RetryDelays: load.RetryDelays(cli.Retries),
	}
	if cli.Debug {
		loader = jslog.NewLoggingLoader(loader, logger)
	}

	deps.Logger = logger
	deps.Sources = cli.Source
	deps.Loader = loader
	deps.Indexer = indexer

	return kongCtx.Run(deps)
}

// openLogger returns the logger for this run. Logs go to the log file when
// one is set. Otherwise debug logs go to stderr, except for interactive
// commands where they would corrupt the screen.
func openLogger(cli *CLI, stderr io.Writer, interactive bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch {
	case cli.LogFile != "":
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %q: %w", cli.LogFile, err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
	case cli.Debug && !interactive:
		return slog.New(slog.NewTextHandler(stderr, opts)), func() {}, nil
	default:
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
}

func newTerminalScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("JASSDOC_CONFIG"); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jassdoc", "config.json")
}

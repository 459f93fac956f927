package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/slidezone"
	"github.com/fwojciec/slidezone/etree"
	"github.com/fwojciec/slidezone/fs"
	"github.com/fwojciec/slidezone/scan"
	szslog "github.com/fwojciec/slidezone/slog"
	"github.com/fwojciec/slidezone/sqlite"
	"github.com/fwojciec/slidezone/tabula"
	"github.com/fwojciec/slidezone/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when --db is set.
	DB *sqlite.DB

	// Deck reader override for end-to-end testing. When nil the reader is
	// chosen by --backend.
	Decks slidezone.DeckOpener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("slidezone"),
		kong.Description("Extract zone-classified text from .pptx slides into a RAG dataset."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
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

	decks := m.Decks
	if decks == nil {
		switch cli.Backend {
		case "tabula":
			decks = tabula.NewDeckOpener()
		default:
			decks = etree.NewDeckOpener()
		}
	}

	var zones slidezone.ZoneLoader = fs.NewZoneLoader()
	var dataset slidezone.DatasetWriter = fs.NewDatasetWriter(cli.Scan.Output)
	var slides slidezone.SlideParser
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		decks = szslog.NewLoggingDeckOpener(decks, logger)
		zones = szslog.NewLoggingZoneLoader(zones, logger)
		dataset = szslog.NewLoggingDatasetWriter(dataset, logger)
		slides = szslog.NewLoggingSlideParser(scan.NewParser(decks), logger)
	} else {
		slides = scan.NewParser(decks)
	}

	deps.Folder = cli.Folder
	deps.ZonesPath = cli.Zones
	deps.Zones = zones
	deps.Decks = decks
	deps.Scanner = &scan.Scanner{Zones: zones, Parser: slides}
	deps.Dataset = dataset
	deps.Printer = yaml.NewDatasetPrinter(stdout)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SLIDEZONE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Records = sqlite.NewRecordService(m.DB)
	}

	return kongCtx.Run(deps)
}

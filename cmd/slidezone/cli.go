package main

import (
	"context"
	"io"

	"github.com/fwojciec/slidezone"
	"github.com/fwojciec/slidezone/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Folder    string
	ZonesPath string
	Zones     slidezone.ZoneLoader
	Decks     slidezone.DeckOpener
	Scanner   *scan.Scanner
	Dataset   slidezone.DatasetWriter
	Printer   slidezone.DatasetWriter
	Records   slidezone.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Folder  string `short:"f" default:"." env:"SLIDEZONE_FOLDER" help:"Folder containing .pptx files"`
	Zones   string `short:"z" default:"zones.json" env:"SLIDEZONE_ZONES" help:"Zone configuration file (.json, .yaml)"`
	DB      string `env:"SLIDEZONE_DB" help:"SQLite database to store records in"`
	Backend string `default:"etree" enum:"etree,tabula" help:"Deck reader (etree, tabula). tabula also reads text inside grouped shapes, takes slides in part-name order, and cannot resolve inherited placeholder positions"`
	Verbose bool   `short:"v" help:"Log every operation to stderr"`

	Scan    ScanCmd    `cmd:"" default:"withargs" help:"Scan the folder and write the joined dataset (default)"`
	Dump    DumpCmd    `cmd:"" help:"Scan the folder and print raw zone content as YAML"`
	Shapes  ShapesCmd  `cmd:"" help:"List the shapes of a presentation's first slide"`
	Records RecordsCmd `cmd:"" help:"List records stored in the database"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Output string `short:"o" default:"rag_dataset.json" help:"Dataset output file"`
}

// DumpCmd is the "dump" subcommand.
type DumpCmd struct{}

// ShapesCmd is the "shapes" subcommand.
type ShapesCmd struct {
	File string `arg:"" help:"Presentation file"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	File   string `help:"Only show the record for this file name"`
	Limit  int    `short:"n" help:"Maximum number of records"`
	Offset int    `help:"Number of records to skip"`
	Full   bool   `help:"Show stored content"`
	Delete bool   `help:"Delete the record named by --file"`
}

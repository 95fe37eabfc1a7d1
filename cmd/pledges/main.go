package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/aapp-oss/pledges/internal/config"
	"github.com/aapp-oss/pledges/internal/export"
	"github.com/aapp-oss/pledges/internal/lookup"
	"github.com/aapp-oss/pledges/internal/normalize"
	"github.com/aapp-oss/pledges/internal/pdf"
	"github.com/aapp-oss/pledges/internal/pipeline"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging configures the standard logger from the configured level.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	if cfg.LogLevel == "error" {
		// Per-file progress is info/warn noise; errors still surface
		// through the exit path.
		log.SetOutput(os.NewFile(0, os.DevNull))
	}
}

func printVersion() {
	fmt.Printf("pledges %s\n", version)
	fmt.Printf("  build time: %s\n", buildTime)
	fmt.Printf("  git commit: %s\n", gitCommit)
	fmt.Printf("  go version: %s\n", runtime.Version())
	fmt.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// loadLookup loads the optional donor-ID lookup workbook. A lookup that
// cannot be loaded disables backfill with a warning; it never stops a run.
func loadLookup(cfg *config.Config) *lookup.Table {
	if cfg.LookupPath == "" {
		return nil
	}
	table, err := lookup.Load(cfg.LookupPath)
	if err != nil {
		log.Printf("[WARN] lookup disabled: %v", err)
		return nil
	}
	log.Printf("loaded lookup workbook %s (%d names)", cfg.LookupPath, table.Len())
	return table
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	inputs, err := cfg.ResolveInputs()
	if err != nil {
		log.Fatalf("Failed to resolve inputs: %v", err)
	}
	if len(inputs) == 0 {
		log.Printf("[WARN] no PDF files found in %s", cfg.InputDirectory)
		os.Exit(1)
	}

	p := pipeline.New(
		pdf.NewExtractor(cfg.MaxFileSize),
		normalize.NewNormalizer(),
		loadLookup(cfg),
		export.NewWriter(cfg.Sheet),
		log.Default(),
	)

	report, err := p.Run(inputs, cfg.OutputPath)
	if err != nil {
		log.Fatalf("Failed to write output workbook: %v", err)
	}

	for _, fr := range report.Files {
		if fr.Err != nil {
			fmt.Printf("%s: failed (%v)\n", fr.File, fr.Err)
			continue
		}
		fmt.Printf("%s: %d rows written, %d rejected\n", fr.File, fr.Written, len(fr.Failures))
		for _, failure := range fr.Failures {
			fmt.Printf("  rejected %v\n", failure)
		}
	}

	if !report.Success() {
		fmt.Println("no rows extracted from any input file")
		os.Exit(1)
	}
	fmt.Printf("wrote %d rows to %s\n", report.TotalRows, report.OutputPath)
}

// Package fileprocessor handles the end to end generation workflow
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/zynqinit/internal/app"
	"github.com/retroenv/zynqinit/internal/loader"
	"github.com/retroenv/zynqinit/internal/options"
	"github.com/retroenv/zynqinit/internal/registry"
	"github.com/retroenv/zynqinit/internal/script"
	"github.com/retroenv/zynqinit/internal/zynq7000"
)

// ProcessFile handles the complete generation workflow: build the catalog,
// scan the init sources for field masks, run the sequence script, merge and
// emit the result.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	genOptions options.Generator) error {

	reg, err := buildRegistry(logger, opts)
	if err != nil {
		return err
	}

	if opts.Dump {
		return dumpCatalog(opts, reg)
	}

	runner := script.New(reg, logger)
	if err := runner.RunFile(ctx, opts.Input); err != nil {
		return fmt.Errorf("running init sequence: %w", err)
	}

	lists := runner.Lists()
	if genOptions.Merge {
		for _, list := range lists {
			if err := list.Merge(); err != nil {
				return fmt.Errorf("merging write list: %w", err)
			}
		}
	}

	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	fileWriterConstructor, err := app.InitializeFormatCompatibleMode(genOptions.Format)
	if err != nil {
		return fmt.Errorf("initializing output format: %w", err)
	}

	fileWriter := fileWriterConstructor(lists, genOptions, writer)
	if err := fileWriter.Write(); err != nil {
		return fmt.Errorf("emitting instructions: %w", err)
	}

	return nil
}

// buildRegistry creates the device registry and attaches the field masks
// found in the configured ps7_init sources.
func buildRegistry(logger *log.Logger, opts options.Program) (*registry.Registry, error) {
	reg, err := zynq7000.New()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	fieldLoader := loader.New(reg)
	for _, name := range initFiles(opts) {
		stats, err := fieldLoader.ScanFile(name)
		if err != nil {
			return nil, fmt.Errorf("loading field masks: %w", err)
		}

		logger.Debug("Scanned init source",
			log.String("file", name),
			log.Int("resolved", stats.Resolved),
			log.Int("unresolved", stats.Unresolved),
		)
		if stats.Unresolved > 0 {
			logger.Warn("Init source contains addresses owned by no catalog block",
				log.String("file", name),
				log.Int("unresolved", stats.Unresolved),
			)
		}
	}

	return reg, nil
}

// initFiles returns the ps7_init source files to scan.
func initFiles(opts options.Program) []string {
	if opts.Init == "" {
		return nil
	}

	var files []string
	for _, name := range strings.Split(opts.Init, ",") {
		if name = strings.TrimSpace(name); name != "" {
			files = append(files, name)
		}
	}
	return files
}

func dumpCatalog(opts options.Program, reg *registry.Registry) error {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := writer.(io.Closer); ok {
			_ = closer.Close()
		}
	}()

	if err := app.DumpCatalog(writer, reg); err != nil {
		return fmt.Errorf("dumping catalog: %w", err)
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintInfo prints the information about the processed script.
func PrintInfo(logger *log.Logger, opts options.Program) {
	if opts.Quiet || opts.Dump {
		return
	}

	logger.Info("Compiling init sequence",
		log.String("script", opts.Input),
		log.String("format", opts.Format),
	)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("zynqinit", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}

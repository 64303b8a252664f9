// Command solvanity searches for a seeded derived address whose Base58
// form starts and/or ends with a chosen pattern. It is a thin driver
// over the search engine: it decodes the keys, fans the search out
// across CPU cores, and renders progress until a match or Ctrl-C.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/solvanity/internal/ui"
	"github.com/solvanity/internal/worker"
	"github.com/solvanity/pkg/vanity"
)

const (
	version    = "0.1"
	outputFile = "vanity.txt"
	updateRate = 33 * time.Millisecond

	// The system program owns plain wallet accounts; it is the owner
	// callers almost always want.
	systemProgram = "11111111111111111111111111111111"
)

var flags struct {
	base       string
	owner      string
	prefix     string
	suffix     string
	ignoreCase bool
	workers    int
	batchSize  uint32
	offset     uint64
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s✗ %v%s\n", ui.ColorRed, err, ui.ColorReset)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "solvanity",
		Short:        "Search for seeded derived addresses with a vanity prefix or suffix",
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flags.base, "base", "", "Base58 base public key (required)")
	cmd.Flags().StringVar(&flags.owner, "owner", systemProgram, "Base58 owner program key")
	cmd.Flags().StringVar(&flags.prefix, "prefix", "", "desired address prefix")
	cmd.Flags().StringVar(&flags.suffix, "suffix", "", "desired address suffix")
	cmd.Flags().BoolVar(&flags.ignoreCase, "ignore-case", false, "match case-insensitively")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "worker count (default: all cores)")
	cmd.Flags().Uint32Var(&flags.batchSize, "batch", worker.DefaultBatchSize, "candidates per batch")
	cmd.Flags().Uint64Var(&flags.offset, "offset", 0, "base counter offset (for splitting work across machines)")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "log worker activity to stderr")
	cmd.MarkFlagRequired("base")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if flags.prefix == "" && flags.suffix == "" {
		return errors.New("must specify --prefix or --suffix")
	}
	for name, pattern := range map[string]string{"prefix": flags.prefix, "suffix": flags.suffix} {
		if chars := vanity.InvalidChars(pattern, flags.ignoreCase); len(chars) > 0 {
			return fmt.Errorf("%s contains characters that never appear in a Base58 address: %q", name, string(chars))
		}
	}

	baseKey, err := decodeKey("base", flags.base)
	if err != nil {
		return err
	}
	ownerKey, err := decodeKey("owner", flags.owner)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if flags.verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	pool, err := worker.New(worker.Config{
		Search: vanity.Config{
			BaseKey:         baseKey,
			OwnerKey:        ownerKey,
			Prefix:          flags.prefix,
			Suffix:          flags.suffix,
			CaseInsensitive: flags.ignoreCase,
			CountOffset:     flags.offset,
		},
		Workers:   flags.workers,
		BatchSize: flags.batchSize,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workers := flags.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	difficulty := vanity.EstimateDifficulty(flags.prefix, flags.suffix, flags.ignoreCase)
	ui.PrintBanner(version)
	ui.PrintSearchInfo(flags.prefix, flags.suffix, workers, difficulty)

	startTime := time.Now()
	progressDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(updateRate)
		defer ticker.Stop()
		frame := 0
		for {
			select {
			case <-progressDone:
				return
			case <-ticker.C:
				ui.PrintProgress(pool.Stats(), difficulty, frame)
				frame++
			}
		}
	}()

	result, runErr := pool.Run(ctx)
	close(progressDone)
	ui.ClearLine()

	elapsed := time.Since(startTime)
	stats := pool.Stats()

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			fmt.Printf("\n    %s⚠ Cancelled%s │ %s attempts │ %s\n",
				ui.ColorYellow+ui.ColorBold, ui.ColorReset,
				ui.FormatNumber(stats.Attempts),
				ui.FormatDuration(elapsed))
			return nil
		}
		return runErr
	}

	ui.PrintSuccess(result, elapsed, stats.Attempts, outputFile)
	return saveResult(result, elapsed, stats.Attempts)
}

// decodeKey turns a Base58 key string into raw bytes. Length validation
// happens in the searcher constructor, so a mistyped key still fails
// with a precise message.
func decodeKey(name, s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decoding %s key: %w", name, err)
	}
	return raw, nil
}

// saveResult writes the match to a file next to the binary.
func saveResult(result *vanity.Result, elapsed time.Duration, attempts uint64) error {
	content := fmt.Sprintf(`Seeded Vanity Address
=====================

Address: %s
Seed:    %s

Base key:  %s
Owner key: %s

Statistics:
  Time:     %s
  Attempts: %s

Generated: %s
`, result.Address, result.Seed, flags.base, flags.owner,
		ui.FormatDuration(elapsed), ui.FormatNumber(attempts),
		time.Now().Format("2006-01-02 15:04:05"))

	if err := os.WriteFile(outputFile, []byte(content), 0600); err != nil {
		return fmt.Errorf("saving result: %w", err)
	}
	return nil
}

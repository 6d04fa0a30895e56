// Command postag rewrites a dictionary as "word_TAG" entries with tags from a
// fixed part-of-speech vocabulary (NOUN, VERB, ADJ, ADV, PRON, ADP, CONJ, PART,
// INTJ, NUM). Words the analyzer does not recognize are dropped.
//
// Usage:
//
//	postag [flags] input_file
//
// Flags:
//
//	-o, --output      output file (default: <input>_processed<ext>)
//	-m, --min-length  minimum word length (default 2)
//	-v, --verbose     progress and debug logging
//	--config          YAML config file (default: $DICTCONV_CONFIG)
//	--encoding        input encoding label, e.g. windows-1251
//	--blacklist       file with words to drop
//	--analyzer        analyzer kind: lexicon, http, exec
//	--lexicon         TSV lexicon for the lexicon analyzer
//	--publish         store the run in PostgreSQL
//	--pos             comma-separated tags to keep (default: all)
//	--dedupe          drop repeated word_TAG lines
//	--version         print version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/RexarX/Contexto/internal/app"
	"github.com/RexarX/Contexto/internal/config"
	"github.com/RexarX/Contexto/internal/domain"
)

func main() {
	flags := app.RegisterConvertFlags(pflag.CommandLine, true)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input_file\n\nFlags:\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if flags.Version {
		fmt.Println(app.BuildVersion())
		return
	}
	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Debug("starting", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	err = app.RunConvert(ctx, app.ConvertJob{
		Kind:   domain.RunKindPostag,
		Input:  pflag.Arg(0),
		Output: flags.Output,
		Flags:  flags,
		Config: cfg,
		Log:    logger,
		Stdout: os.Stdout,
	})
	if err != nil {
		logger.Error("tagging failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

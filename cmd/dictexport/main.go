// Command dictexport writes a run published with --publish back to a counted
// dictionary file, or lists the published runs.
//
// Flags:
//
//	--run         id of the run to export
//	-o, --output  output file (default: <run id>.txt)
//	--lemmas      also write the <output>_lemmas file
//	--pos         comma-separated tags to export (default: all)
//	--list        list recent runs instead of exporting
//	--limit       number of runs shown by --list (default 20)
//	--config      YAML config file (default: $DICTCONV_CONFIG)
//	--version     print version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/RexarX/Contexto/internal/adapter/postgres"
	"github.com/RexarX/Contexto/internal/adapter/postgres/dictentry"
	"github.com/RexarX/Contexto/internal/app"
	"github.com/RexarX/Contexto/internal/config"
	"github.com/RexarX/Contexto/internal/domain"
)

func main() {
	runFlag := pflag.String("run", "", "id of the run to export")
	outputFlag := pflag.StringP("output", "o", "", "output file (default: <run id>.txt)")
	lemmasFlag := pflag.Bool("lemmas", false, "also write the lemma file")
	posFlag := pflag.String("pos", "", "comma-separated tags to export (default: all)")
	listFlag := pflag.Bool("list", false, "list recent runs")
	limitFlag := pflag.Int("limit", 20, "number of runs shown by --list")
	configFlag := pflag.String("config", "", "path to YAML config file")
	versionFlag := pflag.Bool("version", false, "print version and exit")
	pflag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger, *runFlag, *outputFlag, *posFlag, *lemmasFlag, *listFlag, *limitFlag); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, runID, output, pos string, lemmas, list bool, limit int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var id uuid.UUID
	if !list {
		var err error
		if id, err = uuid.Parse(runID); err != nil {
			return fmt.Errorf("--run: %w", err)
		}
	}
	tags, err := domain.ParseTags(pos)
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := dictentry.New(pool)

	if list {
		return app.ListRuns(ctx, repo, limit, os.Stdout)
	}

	if output == "" {
		output = id.String() + ".txt"
	}

	job := app.ExportJob{
		RunID:  id,
		Output: output,
		Lemmas: lemmas,
		Log:    logger,
		Stdout: os.Stdout,
	}
	if tags != nil {
		job.Tags = slices.Sorted(maps.Keys(tags))
	}
	return app.RunExport(ctx, repo, job)
}

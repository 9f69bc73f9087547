package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/commerce_dwh/config"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"bitbucket.org/mmdatafocus/commerce_dwh/pipeline"
	"github.com/bsm/redislock"
)

const rebuildLockKey = "commerce_dwh:rebuild-warehouse"

func main() {
	dateFrom := flag.String("date-from", "", "Optional: date dimension start (YYYY-MM-DD). Defaults to 2016-01-01.")
	dateTo := flag.String("date-to", "", "Optional: date dimension end (YYYY-MM-DD). Defaults to 2020-12-31.")
	skipLock := flag.Bool("skip-lock", false, "Skip the redis rebuild lock (local/dev only)")
	flag.Parse()

	ctx := context.Background()

	opts := pipeline.Options{}
	var err error
	if opts.DateFrom, err = parseDateFlag(*dateFrom); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -date-from: %v\n", err)
		os.Exit(2)
	}
	if opts.DateTo, err = parseDateFlag(*dateTo); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -date-to: %v\n", err)
		os.Exit(2)
	}

	// Explicit DB connect (config does not connect in init()).
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	// Ensure schema is up-to-date (creates warehouse tables if missing).
	models.MigrateTable()

	if !*skipLock {
		config.ConnectRedisWithRetry()
		// Two concurrent truncate-and-reload runs would interleave surrogate
		// keys; hold a lock for the whole rebuild.
		lock, lockErr := config.GetRedisLock().Obtain(ctx, rebuildLockKey, 2*time.Hour, nil)
		if lockErr == redislock.ErrNotObtained {
			fmt.Fprintln(os.Stderr, "another warehouse rebuild is already running; aborting")
			os.Exit(1)
		}
		if lockErr != nil {
			fmt.Fprintf(os.Stderr, "failed to obtain rebuild lock: %v\n", lockErr)
			os.Exit(1)
		}
		defer lock.Release(ctx)
	}

	report, err := pipeline.Run(ctx, pipeline.NewGormSource(db), pipeline.NewGormSink(db), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warehouse rebuild failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Warehouse rebuild %s complete in %s\n", report.RunId, report.Duration)
	for _, stage := range report.Stages {
		fmt.Printf("  %-32s input=%-8d accepted=%-8d rejected=%-8d took=%s\n",
			stage.Stage, stage.Input, stage.Accepted, stage.Rejected, stage.Duration)
	}
}

func parseDateFlag(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", v)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/commerce_dwh/config"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"bitbucket.org/mmdatafocus/commerce_dwh/warehouse"
	"gorm.io/gorm"
)

// Regenerates dim_dates alone, for extending the calendar span without a full
// warehouse rebuild. The date dimension is a pure function of the range, so
// this is always safe to re-run.
func main() {
	from := flag.String("from", "2016-01-01", "Start date (YYYY-MM-DD)")
	to := flag.String("to", "2020-12-31", "End date (YYYY-MM-DD)")
	flag.Parse()

	start, err := time.Parse("2006-01-02", strings.TrimSpace(*from))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -from: %v\n", err)
		os.Exit(2)
	}
	end, err := time.Parse("2006-01-02", strings.TrimSpace(*to))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -to: %v\n", err)
		os.Exit(2)
	}
	if end.Before(start) {
		fmt.Fprintln(os.Stderr, "-to must not be before -from")
		os.Exit(2)
	}

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}
	models.MigrateTable()

	rows := warehouse.GenerateDateDimension(start, end)
	if err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + models.DimDate{}.TableName()).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(rows, 500).Error
	}); err != nil {
		fmt.Fprintf(os.Stderr, "date dimension backfill failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Backfilled %d date rows (%s .. %s)\n", len(rows), start.Format("2006-01-02"), end.Format("2006-01-02"))
}

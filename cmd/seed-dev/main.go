// seed-dev loads the example dataset into the tracker database.
//
// Usage:
//
//	DB_PATH=education-tracker.db go run ./cmd/seed-dev          # seed if empty
//	DB_PATH=education-tracker.db go run ./cmd/seed-dev -reset   # clear and reseed
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mmeducare/edutracker_backend/config"
	"github.com/mmeducare/edutracker_backend/ledger"
)

func main() {
	reset := flag.Bool("reset", false, "clear all collections before seeding")
	flag.Parse()

	ctx := context.Background()

	db, err := config.OpenDatabase("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database at %s: %v\n", config.DatabasePath(), err)
		os.Exit(1)
	}
	store, err := ledger.New(db, config.GetLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize store: %v\n", err)
		os.Exit(1)
	}

	if *reset {
		err = store.Reseed(ctx)
	} else {
		err = store.Seed(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}

	students, err := store.GetAllStudents(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read back students: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("database %s ready: %d students\n", config.DatabasePath(), len(students))
	for _, s := range students {
		fmt.Printf("  %s %-16s fee=%s paid=%s balance=%s schedules=%d payments=%d\n",
			s.ID, s.Name,
			s.Financials.TotalFee, s.Financials.TotalPaid, s.Financials.Balance,
			len(s.Financials.Schedules), len(s.Financials.Payments))
	}
}

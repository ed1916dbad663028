// ledger-verify scans every student and reports ledger inconsistencies:
// totals that break totalPaid + balance == totalFee, totals that disagree
// with the payment records, and drift between the financials record and the
// legacy mirror columns on the student row.
//
// Exits non-zero when any inconsistency is found.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mmeducare/edutracker_backend/config"
	"github.com/mmeducare/edutracker_backend/ledger"
	"github.com/shopspring/decimal"
)

func main() {
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

	students, err := store.GetAllStudents(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load students: %v\n", err)
		os.Exit(1)
	}

	var problems int
	for _, s := range students {
		fin := s.Financials
		if fin.ID == "" {
			problems++
			fmt.Printf("%s: no financials record\n", s.ID)
			continue
		}
		if !fin.ConsistentTotals() {
			problems++
			fmt.Printf("%s: totalPaid %s + balance %s != totalFee %s\n",
				s.ID, fin.TotalPaid, fin.Balance, fin.TotalFee)
		}

		paymentSum := decimal.Zero
		for _, p := range fin.Payments {
			paymentSum = paymentSum.Add(p.Amount)
		}
		if !paymentSum.Equal(fin.TotalPaid) {
			problems++
			fmt.Printf("%s: payment records sum to %s but totalPaid is %s\n",
				s.ID, paymentSum, fin.TotalPaid)
		}

		if !s.TotalCollected.Equal(fin.TotalPaid) || !s.Student.Balance.Equal(fin.Balance) {
			problems++
			fmt.Printf("%s: student mirror (collected=%s balance=%s) drifted from financials (paid=%s balance=%s)\n",
				s.ID, s.TotalCollected, s.Student.Balance, fin.TotalPaid, fin.Balance)
		}
	}

	if problems > 0 {
		fmt.Printf("%d students checked, %d problems\n", len(students), problems)
		os.Exit(1)
	}
	fmt.Printf("%d students checked, ledger consistent\n", len(students))
}

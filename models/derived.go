package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Derived values are computed from the aggregate view, never stored.

// PaymentProgress returns round(totalPaid / totalFee * 100); 0 when the fee
// is zero.
func PaymentProgress(f StudentFinancials) int {
	if f.TotalFee.IsZero() {
		return 0
	}
	pct := f.TotalPaid.Div(f.TotalFee).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// NextDueSchedule returns the earliest-due pending schedule (tie-break:
// smaller id), or nil when none is pending.
func NextDueSchedule(schedules []PaymentSchedule) *PaymentSchedule {
	var next *PaymentSchedule
	for i := range schedules {
		s := &schedules[i]
		if s.Status != PaymentStatusPending {
			continue
		}
		if next == nil ||
			s.DueDate.Before(next.DueDate) ||
			(s.DueDate == next.DueDate && s.ID < next.ID) {
			next = s
		}
	}
	return next
}

// ScheduleRunningTotal pairs a schedule with the cumulative amount due
// through it, in due-date order.
type ScheduleRunningTotal struct {
	Schedule     PaymentSchedule `json:"schedule"`
	RunningTotal decimal.Decimal `json:"runningTotal"`
}

func ScheduleRunningTotals(schedules []PaymentSchedule) []ScheduleRunningTotal {
	ordered := make([]PaymentSchedule, len(schedules))
	copy(ordered, schedules)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].DueDate != ordered[j].DueDate {
			return ordered[i].DueDate.Before(ordered[j].DueDate)
		}
		return ordered[i].ID < ordered[j].ID
	})

	totals := make([]ScheduleRunningTotal, 0, len(ordered))
	sum := decimal.Zero
	for _, s := range ordered {
		sum = sum.Add(s.Amount)
		totals = append(totals, ScheduleRunningTotal{Schedule: s, RunningTotal: sum})
	}
	return totals
}

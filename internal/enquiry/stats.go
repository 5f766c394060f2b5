package enquiry

import (
	"context"
	"math"
)

// DashboardStats aggregates the landing page counters.
type DashboardStats struct {
	TodayNew       int `json:"todayNew"`
	PendingQuote   int `json:"pendingQuote"`
	ThisMonthTotal int `json:"thisMonthTotal"`
	// QuoteRate is the share of this month's enquiries that are
	// Quoted, in whole percent.
	QuoteRate int `json:"quoteRate"`
	// ConfirmRate is the share of all enquiries with a confirmed
	// booking, in whole percent.
	ConfirmRate           int            `json:"confirmRate"`
	StatusDistribution    map[Status]int `json:"statusDistribution"`
	CargoTypeDistribution map[string]int `json:"cargoTypeDistribution"`
}

// DashboardStats computes the dashboard aggregates over the whole
// collection. Concurrent callers share a single computation.
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	v, err, _ := s.statsGroup.Do("dashboard", func() (interface{}, error) {
		return s.computeDashboardStats(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*DashboardStats), nil
}

func (s *Service) computeDashboardStats(ctx context.Context) (*DashboardStats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := NewDate(now)
	thisMonth := ReferenceMonth(now)

	stats := &DashboardStats{
		StatusDistribution:    make(map[Status]int),
		CargoTypeDistribution: make(map[string]int),
	}

	quoted := 0
	confirmed := 0
	for _, e := range all {
		if e.IssueDate.Equal(today.Time) {
			stats.TodayNew++
		}
		if e.ReferenceMonth == thisMonth {
			stats.ThisMonthTotal++
		}
		if e.Status == StatusNew {
			stats.PendingQuote++
		}
		if e.Status == StatusQuoted {
			quoted++
		}
		if e.BookingConfirmed == BookingYes {
			confirmed++
		}
		stats.StatusDistribution[e.Status]++
		stats.CargoTypeDistribution[e.CargoTypeCode]++
	}

	if stats.ThisMonthTotal > 0 {
		stats.QuoteRate = roundPercent(quoted, stats.ThisMonthTotal)
	}
	if len(all) > 0 {
		stats.ConfirmRate = roundPercent(confirmed, len(all))
	}
	return stats, nil
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

package report

import (
	"sort"
	"time"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/booking"
	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

type GroupBy string

const (
	GroupDaily   GroupBy = "daily"
	GroupMonthly GroupBy = "monthly"
)

type Bucket struct {
	Period       string `json:"period"`
	BookingCount int    `json:"bookingCount"`
	NightCount   int    `json:"nightCount"`
	Revenue      int64  `json:"revenue"`
}

type Summary struct {
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GroupBy      GroupBy  `json:"groupBy"`
	BookingCount int      `json:"bookingCount"`
	TotalRevenue int64    `json:"totalRevenue"`
	Buckets      []Bucket `json:"buckets"`
}

// Summarize aggregates bookings created in [start, end] into period buckets.
// A booking is bucketed by its creation day; revenue is its total amount.
func Summarize(bookings []booking.Booking, start, end time.Time, groupBy GroupBy) Summary {
	if groupBy != GroupMonthly {
		groupBy = GroupDaily
	}

	s := Summary{
		StartDate: pricing.FormatDate(start),
		EndDate:   pricing.FormatDate(end),
		GroupBy:   groupBy,
	}

	byPeriod := make(map[string]*Bucket)
	for _, b := range bookings {
		created := pricing.DateOnly(b.CreatedAt)
		if created.Before(pricing.DateOnly(start)) || created.After(pricing.DateOnly(end)) {
			continue
		}

		period := pricing.FormatDate(created)
		if groupBy == GroupMonthly {
			period = created.Format("2006-01")
		}

		bucket, ok := byPeriod[period]
		if !ok {
			bucket = &Bucket{Period: period}
			byPeriod[period] = bucket
		}
		bucket.BookingCount++
		bucket.NightCount += len(b.Items)
		bucket.Revenue += b.TotalAmount

		s.BookingCount++
		s.TotalRevenue += b.TotalAmount
	}

	for _, bucket := range byPeriod {
		s.Buckets = append(s.Buckets, *bucket)
	}
	sort.Slice(s.Buckets, func(i, j int) bool { return s.Buckets[i].Period < s.Buckets[j].Period })

	return s
}

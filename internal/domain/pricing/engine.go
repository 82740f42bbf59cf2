package pricing

import (
	"context"
	"fmt"
	"time"
)

// Store is the read surface the engine needs for one quote. Implementations
// pre-filter rules by enabled flag, date overlap, scope and channel; the
// engine re-checks scope and channel so over-returning stores stay correct.
type Store interface {
	PackageByID(ctx context.Context, id string) (*Package, error)
	InventoryDays(ctx context.Context, start, end time.Time, roomID, packageID *string) ([]InventoryDay, error)
	EnabledRules(ctx context.Context, start, end time.Time, roomID *string, packageID string, channel *string) ([]SurchargeRule, error)
}

// Engine computes per-day price breakdowns. It holds a single injected store
// handle; its lifecycle is owned by the process entry point.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

type QuoteRequest struct {
	PackageID string
	RoomID    *string
	Channel   *string
	StartDate time.Time
	EndDate   time.Time
}

// Quote walks every calendar day of the range and prices it: package base
// price plus the sum of all matching surcharge rules. Missing inventory rows
// read as open with zero allotment. The quote itself never fails on closed
// days; callers that book decide what closed means.
func (e *Engine) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	if req.PackageID == "" {
		return nil, ErrPackageNotFound
	}

	start := DateOnly(req.StartDate)
	end := DateOnly(req.EndDate)
	if start.IsZero() || end.IsZero() || start.After(end) {
		return nil, ErrInvalidRange
	}

	pkg, err := e.store.PackageByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	inventories, err := e.store.InventoryDays(ctx, start, end, req.RoomID, &req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("load inventories: %w", err)
	}
	invByDate := make(map[string]InventoryDay, len(inventories))
	for _, inv := range inventories {
		invByDate[FormatDate(inv.Date)] = inv
	}

	rules, err := e.store.EnabledRules(ctx, start, end, req.RoomID, req.PackageID, req.Channel)
	if err != nil {
		return nil, fmt.Errorf("load surcharge rules: %w", err)
	}

	q := &Quote{PackageID: req.PackageID, RoomID: req.RoomID, Channel: req.Channel}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		iso := FormatDate(d)
		basePrice := pkg.Price

		var surcharge int64
		for _, r := range rules {
			if !r.Enabled || !r.Scope.Matches(req.RoomID, req.PackageID) || !r.matchesChannel(req.Channel) {
				continue
			}
			if !r.AppliesOn(d) {
				continue
			}
			switch r.RuleType {
			case RuleFixed:
				surcharge += r.Amount
			case RulePercent:
				surcharge += percentSurcharge(basePrice, r.Amount)
			}
		}

		day := QuoteDay{
			Date:      iso,
			BasePrice: basePrice,
			Surcharge: surcharge,
			Total:     basePrice + surcharge,
		}
		if inv, ok := invByDate[iso]; ok {
			day.Closed = inv.Closed
			day.Allotment = inv.Allotment
		}
		q.Days = append(q.Days, day)
	}

	return q, nil
}

// percentSurcharge is base*amount/100 rounded half-up, per day independently.
// Rounding error can accumulate across a stay; aggregate reconciliation is
// deliberately absent.
func percentSurcharge(base, amount int64) int64 {
	n := base*amount*2 + 100
	q := n / 200
	if n < 0 && n%200 != 0 {
		q--
	}
	return q
}

package pricing

import "time"

// Money values are integer KRW, no minor units.

type Package struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"roomId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InventoryDay is the availability state of one calendar day. A nil RoomID or
// PackageID widens the record: a row with both nil applies hotel-wide.
type InventoryDay struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	RoomID    *string   `json:"roomId"`
	PackageID *string   `json:"packageId"`
	Allotment int       `json:"allotment"`
	Closed    bool      `json:"closed"`
}

type RuleType string

const (
	RuleFixed   RuleType = "FIXED"
	RulePercent RuleType = "PERCENT"
)

type ScopeKind string

const (
	ScopeHotel   ScopeKind = "HOTEL"
	ScopeRoom    ScopeKind = "ROOM"
	ScopePackage ScopeKind = "PACKAGE"
)

// Scope names the entity level a surcharge rule applies to. RoomID is set only
// for ScopeRoom, PackageID only for ScopePackage.
type Scope struct {
	Kind      ScopeKind `json:"kind"`
	RoomID    string    `json:"roomId,omitempty"`
	PackageID string    `json:"packageId,omitempty"`
}

func HotelScope() Scope               { return Scope{Kind: ScopeHotel} }
func RoomScope(roomID string) Scope   { return Scope{Kind: ScopeRoom, RoomID: roomID} }
func PackageScope(pkgID string) Scope { return Scope{Kind: ScopePackage, PackageID: pkgID} }

// Matches reports whether the scope covers a query for the given room and
// package. Room scope requires the exact room, so a query without a room never
// picks up room-level rules.
func (s Scope) Matches(roomID *string, packageID string) bool {
	switch s.Kind {
	case ScopeHotel:
		return true
	case ScopeRoom:
		return roomID != nil && s.RoomID == *roomID
	case ScopePackage:
		return s.PackageID == packageID
	}
	return false
}

// defaultDowMask covers all seven days.
const defaultDowMask = 127

type SurchargeRule struct {
	ID        string    `json:"id"`
	Enabled   bool      `json:"enabled"`
	Scope     Scope     `json:"scope"`
	Channel   *string   `json:"channel"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	DowMask   *int      `json:"dowMask"`
	RuleType  RuleType  `json:"ruleType"`
	Amount    int64     `json:"amount"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
}

// AppliesOn reports whether the rule is active on the given day. An unset
// dowMask means every day of the rule's date range, not no days.
func (r SurchargeRule) AppliesOn(day time.Time) bool {
	if day.Before(DateOnly(r.StartDate)) || day.After(DateOnly(r.EndDate)) {
		return false
	}
	mask := defaultDowMask
	if r.DowMask != nil {
		mask = *r.DowMask
	}
	dow := int(day.Weekday()) // Sunday = 0
	return mask&(1<<dow) != 0
}

// matchesChannel: a rule without a channel applies to every channel.
func (r SurchargeRule) matchesChannel(channel *string) bool {
	if r.Channel == nil {
		return true
	}
	return channel != nil && *r.Channel == *channel
}

type QuoteDay struct {
	Date      string `json:"date"`
	BasePrice int64  `json:"basePrice"`
	Surcharge int64  `json:"surcharge"`
	Total     int64  `json:"total"`
	Closed    bool   `json:"closed"`
	Allotment int    `json:"allotment"`
}

type Quote struct {
	PackageID string     `json:"packageId"`
	RoomID    *string    `json:"roomId"`
	Channel   *string    `json:"channel"`
	Days      []QuoteDay `json:"days"`
}

// Total sums the per-day totals across the whole stay.
func (q *Quote) Total() int64 {
	var sum int64
	for _, d := range q.Days {
		sum += d.Total
	}
	return sum
}

const dateLayout = "2006-01-02"

// ParseDate accepts an ISO calendar date, falling back to RFC 3339 timestamps
// which are truncated to their UTC day.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t.UTC()), nil
}

// DateOnly truncates to midnight UTC so day arithmetic never drifts across
// timezones or DST.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string { return t.UTC().Format(dateLayout) }

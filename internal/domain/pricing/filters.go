package pricing

import "time"

// RuleFilter narrows surcharge-rule listings in admin queries.
type RuleFilter struct {
	Scope     *ScopeKind
	RoomID    *string
	PackageID *string
}

// InventoryFilter narrows inventory-day listings in admin queries.
type InventoryFilter struct {
	RoomID    *string
	PackageID *string
	Start     *time.Time
	End       *time.Time
}

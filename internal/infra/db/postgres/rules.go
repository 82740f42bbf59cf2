package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leeboklee/rsvshop-sub002/internal/domain/pricing"
)

const ruleColumns = `id, enabled, scope, room_id::text, package_id::text, channel,
	start_date, end_date, dow_mask, rule_type, amount, priority, created_at`

func (s *Store) ListSurchargeRules(ctx context.Context, f pricing.RuleFilter) ([]pricing.SurchargeRule, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+ruleColumns+`
		FROM surcharge_rules
		WHERE ($1::text IS NULL OR scope = $1)
		  AND ($2::text IS NULL OR room_id::text = $2)
		  AND ($3::text IS NULL OR package_id::text = $3)
		ORDER BY priority DESC, created_at DESC
	`, (*string)(f.Scope), f.RoomID, f.PackageID)
	if err != nil {
		return nil, fmt.Errorf("select surcharge rules: %w", err)
	}
	defer rows.Close()
	return scanRules(rows)
}

func (s *Store) CreateSurchargeRule(ctx context.Context, r *pricing.SurchargeRule) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	kind, roomID, packageID := scopeToRow(r.Scope)
	err := s.pool.QueryRow(ctx, `
		INSERT INTO surcharge_rules (id, enabled, scope, room_id, package_id, channel,
		                             start_date, end_date, dow_mask, rule_type, amount, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`, r.ID, r.Enabled, kind, roomID, packageID, r.Channel,
		r.StartDate, r.EndDate, r.DowMask, r.RuleType, r.Amount, r.Priority).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert surcharge rule: %w", err)
	}
	return nil
}

func (s *Store) UpdateSurchargeRule(ctx context.Context, r *pricing.SurchargeRule) error {
	kind, roomID, packageID := scopeToRow(r.Scope)
	rows, err := s.pool.Query(ctx, `
		UPDATE surcharge_rules
		SET enabled = $2, scope = $3, room_id = $4, package_id = $5, channel = $6,
		    start_date = $7, end_date = $8, dow_mask = $9, rule_type = $10, amount = $11, priority = $12
		WHERE id = $1
		RETURNING `+ruleColumns,
		r.ID, r.Enabled, kind, roomID, packageID, r.Channel,
		r.StartDate, r.EndDate, r.DowMask, r.RuleType, r.Amount, r.Priority)
	if err != nil {
		return fmt.Errorf("update surcharge rule: %w", err)
	}
	defer rows.Close()

	updated, err := scanRules(rows)
	if err != nil {
		return err
	}
	if len(updated) == 0 {
		return pricing.ErrRuleNotFound
	}
	*r = updated[0]
	return nil
}

func (s *Store) DeleteSurchargeRule(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM surcharge_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete surcharge rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pricing.ErrRuleNotFound
	}
	return nil
}

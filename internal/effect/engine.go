package effect

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/ledger"
	"github.com/osse101/BrandishEconomy/internal/utils"
)

var maxWallet = decimal.NewFromInt(math.MaxInt64)

// AppliedEffect is the outcome of one effect in a batch
type AppliedEffect struct {
	Type       domain.EffectType     `json:"type"`
	Category   domain.EffectCategory `json:"category"`
	Applied    bool                  `json:"applied"`
	Failed     bool                  `json:"failed,omitempty"`
	Reason     string                `json:"reason,omitempty"`
	Value      float64               `json:"value"`
	StackCount int                   `json:"stack_count,omitempty"`
	ExpiresAt  *time.Time            `json:"expires_at,omitempty"`
}

// StatChanges maps a stat name to the change actually applied to it
type StatChanges map[string]float64

func (c StatChanges) add(stat string, delta float64) {
	if delta != 0 {
		c[stat] += delta
	}
}

// DefaultDuration is the lifetime given to a timed effect of category c
// when its definition supplies none
func DefaultDuration(c domain.EffectCategory) time.Duration {
	switch c {
	case domain.CategoryDOT:
		return domain.DefaultDOTDuration
	case domain.CategoryStatus:
		return domain.DefaultStatusDuration
	case domain.CategoryDefensive:
		return domain.DefaultDefensiveDuration
	case domain.CategoryTransform:
		return domain.DefaultTransformDuration
	}
	return domain.DefaultTemporaryDuration
}

// gate decides whether def fires for trigger. The chance roll only happens
// once the trigger matched.
func gate(def domain.EffectDefinition, trigger domain.Trigger, rnd func() float64) (bool, string) {
	if !def.FiresOn(trigger) {
		return false, ReasonTriggerMismatch
	}
	if !utils.RollChance(def.EffectiveChance(), rnd) {
		return false, ReasonChanceFailed
	}
	return true, ""
}

// apply commits one fired effect to acct
func apply(acct *domain.Account, def domain.EffectDefinition, source string, now time.Time, changes StatChanges) AppliedEffect {
	cat := def.Type.Category()
	res := AppliedEffect{Type: def.Type, Category: cat, Value: def.Value}

	switch cat {
	case domain.CategoryInstant:
		applyInstant(acct, def, now, changes)
	case domain.CategoryBaseStat:
		if def.Duration <= 0 {
			stat := acct.Stats.StatPointer(def.Type)
			*stat += def.Value
			changes.add(string(def.Type), def.Value)
			break
		}
		rec, delta := upsertTimed(acct, def, source, now)
		res.StackCount, res.ExpiresAt = rec.StackCount, &rec.ExpiresAt
		changes.add(string(def.Type), delta)
	case domain.CategoryCombat:
		rec, delta := upsertTimed(acct, def, source, now)
		res.StackCount, res.ExpiresAt = rec.StackCount, &rec.ExpiresAt
		changes.add(string(def.Type), delta)
	case domain.CategoryDOT, domain.CategoryStatus, domain.CategoryDefensive, domain.CategoryTransform:
		rec := appendTimed(acct, def, source, now)
		res.StackCount, res.ExpiresAt = rec.StackCount, &rec.ExpiresAt
	case domain.CategoryMath:
		if err := applyMath(acct, def, now, changes); err != "" {
			res.Failed, res.Reason = true, err
			return res
		}
	default:
		res.Failed, res.Reason = true, ReasonUnknownType
		return res
	}

	res.Applied = true
	return res
}

func applyInstant(acct *domain.Account, def domain.EffectDefinition, now time.Time, changes StatChanges) {
	s := &acct.Stats
	delta := int64(def.Value)

	switch def.Type {
	case domain.EffectHeal:
		changes.add(StatHealth, adjustVital(&s.Health, delta, s.MaxHealth))
	case domain.EffectHarm:
		changes.add(StatHealth, adjustVital(&s.Health, -delta, s.MaxHealth))
	case domain.EffectSanity:
		changes.add(StatSanity, adjustVital(&s.Sanity, delta, s.MaxSanity))
	case domain.EffectEnergy:
		changes.add(StatEnergy, adjustVital(&s.Energy, delta, s.MaxEnergy))
	case domain.EffectExperience:
		before := s.Experience
		s.Experience = max(utils.SaturatingAddInt64(s.Experience, delta), 0)
		changes.add(StatExperience, float64(s.Experience-before))
	case domain.EffectMoney:
		changes.add(StatWallet, float64(moveWallet(acct, delta, now)))
	}
}

// adjustVital adds delta to *v within [0, maxV] and returns the change made
func adjustVital(v *int64, delta, maxV int64) float64 {
	before := *v
	*v = utils.ClampInt64(utils.SaturatingAddInt64(*v, delta), 0, maxV)
	return float64(*v - before)
}

// moveWallet credits or debits the wallet through the ledger so the move is
// logged. Debits stop at zero and credits at math.MaxInt64. Returns the
// change made.
func moveWallet(acct *domain.Account, delta int64, now time.Time) int64 {
	switch {
	case delta > 0:
		delta = min(delta, math.MaxInt64-acct.Wallet)
		if delta != 0 {
			// cannot fail: the amount is capped at the headroom
			_, _ = ledger.Credit(acct, delta, domain.LocationWallet, domain.ReasonItemEffect, now)
		}
	case delta < 0:
		delta = -min(-delta, acct.Wallet)
		if delta != 0 {
			// cannot fail: the amount is capped at the balance
			_ = ledger.Debit(acct, -delta, domain.LocationWallet, domain.ReasonItemEffect, now)
		}
	}
	return delta
}

// applyMath rescales the wallet, flooring the result. Returns a failure
// reason, or "" on success.
func applyMath(acct *domain.Account, def domain.EffectDefinition, now time.Time, changes StatChanges) string {
	factor := decimal.NewFromFloat(def.Value)
	wallet := decimal.NewFromInt(acct.Wallet)

	var scaled decimal.Decimal
	switch def.Type {
	case domain.EffectMultiply:
		scaled = wallet.Mul(factor)
	case domain.EffectDivide:
		if factor.IsZero() {
			return ReasonDivideByZero
		}
		scaled = wallet.Div(factor)
	}

	scaled = decimal.Min(scaled.Floor(), maxWallet)
	target := max(scaled.IntPart(), 0)
	changes.add(StatWallet, float64(moveWallet(acct, target-acct.Wallet, now)))
	return ""
}

func expiry(def domain.EffectDefinition, now time.Time) (time.Duration, time.Time) {
	d := time.Duration(def.Duration) * time.Second
	if d <= 0 {
		d = DefaultDuration(def.Type.Category())
	}
	return d, now.Add(d)
}

// upsertTimed applies the stacking rule for temporary stat and combat
// effects: a live record with the same type and source is stacked or
// overwritten, otherwise a new record starts. The second result is the
// change to the record's modifier.
func upsertTimed(acct *domain.Account, def domain.EffectDefinition, source string, now time.Time) (domain.ActiveEffect, float64) {
	d, exp := expiry(def, now)

	for i := range acct.ActiveEffects {
		rec := &acct.ActiveEffects[i]
		if rec.Type != def.Type || rec.Source != source || rec.Expired(now) {
			continue
		}
		before := rec.Value
		if def.Stackable {
			rec.StackCount++
			rec.Value += def.Value
		} else {
			rec.Value = def.Value
		}
		rec.Duration = d
		rec.ExpiresAt = exp
		return *rec, rec.Value - before
	}
	return appendTimed(acct, def, source, now), def.Value
}

func appendTimed(acct *domain.Account, def domain.EffectDefinition, source string, now time.Time) domain.ActiveEffect {
	d, exp := expiry(def, now)
	rec := domain.ActiveEffect{
		Type:       def.Type,
		Category:   def.Type.Category(),
		Value:      def.Value,
		Duration:   d,
		StackCount: 1,
		Stackable:  def.Stackable,
		Source:     source,
		AppliedAt:  now,
		ExpiresAt:  exp,
	}
	acct.ActiveEffects = append(acct.ActiveEffects, rec)
	return rec
}

// settle brings the effect list up to now: DOT records apply every tick
// owed since their last evaluation in one batch, then expired records are
// pruned. It reports whether acct changed.
func settle(acct *domain.Account, now time.Time, changes StatChanges) bool {
	changed := false
	s := &acct.Stats

	for i := range acct.ActiveEffects {
		rec := &acct.ActiveEffects[i]
		if rec.Category != domain.CategoryDOT {
			continue
		}
		owed := ticksOwed(rec, now)
		if owed <= 0 {
			continue
		}
		perTick := int64(rec.Value)
		if rec.Type != domain.EffectRegeneration {
			perTick = -perTick
		}
		changes.add(StatHealth, adjustVital(&s.Health, perTick*int64(owed), s.MaxHealth))
		rec.TicksApplied += owed
		changed = true
	}

	kept := acct.ActiveEffects[:0]
	for _, rec := range acct.ActiveEffects {
		if rec.Expired(now) {
			changed = true
			continue
		}
		kept = append(kept, rec)
	}
	acct.ActiveEffects = kept

	if changed {
		acct.UpdatedAt = now
	}
	return changed
}

// ticksOwed is floor((min(now, expiresAt) - appliedAt) / tick) minus the
// ticks already applied
func ticksOwed(rec *domain.ActiveEffect, now time.Time) int {
	end := now
	if rec.ExpiresAt.Before(end) {
		end = rec.ExpiresAt
	}
	elapsed := end.Sub(rec.AppliedAt)
	if elapsed <= 0 {
		return 0
	}
	return int(elapsed/domain.DOTTickInterval) - rec.TicksApplied
}

// EffectiveStats is a stat block with live timed modifiers folded in
type EffectiveStats struct {
	Base      domain.StatBlock    `json:"base"`
	Effective domain.StatBlock    `json:"effective"`
	Modifiers map[string]float64  `json:"modifiers"`
	Statuses  []domain.EffectType `json:"statuses"`
}

// effectiveStats folds the stat and combat modifiers of every live record
// into a copy of the base stat block
func effectiveStats(acct *domain.Account, now time.Time) *EffectiveStats {
	out := &EffectiveStats{
		Base:      acct.Stats,
		Effective: acct.Stats,
		Modifiers: map[string]float64{},
		Statuses:  []domain.EffectType{},
	}

	for _, rec := range acct.ActiveEffects {
		if rec.Expired(now) {
			continue
		}
		switch rec.Category {
		case domain.CategoryBaseStat, domain.CategoryCombat:
			if stat := out.Effective.StatPointer(rec.Type); stat != nil {
				*stat += rec.Value
				out.Modifiers[string(rec.Type)] += rec.Value
			}
		case domain.CategoryStatus, domain.CategoryDefensive, domain.CategoryTransform:
			out.Statuses = append(out.Statuses, rec.Type)
		}
	}
	return out
}

func failureMessage(res AppliedEffect) string {
	return fmt.Sprintf("%s: %s", res.Type, res.Reason)
}

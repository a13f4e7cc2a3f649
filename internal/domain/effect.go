package domain

import "time"

// EffectType names a single effect kind
type EffectType string

// Instant effects
const (
	EffectHeal       EffectType = "heal"
	EffectHarm       EffectType = "harm"
	EffectSanity     EffectType = "sanity"
	EffectEnergy     EffectType = "energy"
	EffectExperience EffectType = "experience"
	EffectMoney      EffectType = "money"
)

// Base stat effects (permanent without a duration, temporary with one)
const (
	EffectStrength     EffectType = "strength"
	EffectIntelligence EffectType = "intelligence"
	EffectCharisma     EffectType = "charisma"
	EffectSpeed        EffectType = "speed"
	EffectStealth      EffectType = "stealth"
	EffectLuck         EffectType = "luck"
)

// Combat effects (always temporary)
const (
	EffectAttack     EffectType = "attack"
	EffectDefense    EffectType = "defense"
	EffectCritChance EffectType = "crit_chance"
	EffectDodge      EffectType = "dodge"
)

// Damage/heal over time
const (
	EffectPoison       EffectType = "poison"
	EffectBurn         EffectType = "burn"
	EffectBleed        EffectType = "bleed"
	EffectRegeneration EffectType = "regeneration"
)

// Status, defensive and transform effects
const (
	EffectStun         EffectType = "stun"
	EffectConfusion    EffectType = "confusion"
	EffectBlessed      EffectType = "blessed"
	EffectCursed       EffectType = "cursed"
	EffectShield       EffectType = "shield"
	EffectInvisibility EffectType = "invisibility"
	EffectReflect      EffectType = "reflect"
	EffectTransform    EffectType = "transform"
)

// Math effects rescale the wallet
const (
	EffectMultiply EffectType = "multiply"
	EffectDivide   EffectType = "divide"
)

// EffectCategory drives how an effect is applied
type EffectCategory string

const (
	CategoryInstant   EffectCategory = "instant"
	CategoryBaseStat  EffectCategory = "base_stat"
	CategoryCombat    EffectCategory = "combat"
	CategoryDOT       EffectCategory = "dot"
	CategoryStatus    EffectCategory = "status"
	CategoryDefensive EffectCategory = "defensive"
	CategoryTransform EffectCategory = "transform"
	CategoryMath      EffectCategory = "math"
	CategoryUnknown   EffectCategory = "unknown"
)

var effectCategories = map[EffectType]EffectCategory{
	EffectHeal:         CategoryInstant,
	EffectHarm:         CategoryInstant,
	EffectSanity:       CategoryInstant,
	EffectEnergy:       CategoryInstant,
	EffectExperience:   CategoryInstant,
	EffectMoney:        CategoryInstant,
	EffectStrength:     CategoryBaseStat,
	EffectIntelligence: CategoryBaseStat,
	EffectCharisma:     CategoryBaseStat,
	EffectSpeed:        CategoryBaseStat,
	EffectStealth:      CategoryBaseStat,
	EffectLuck:         CategoryBaseStat,
	EffectAttack:       CategoryCombat,
	EffectDefense:      CategoryCombat,
	EffectCritChance:   CategoryCombat,
	EffectDodge:        CategoryCombat,
	EffectPoison:       CategoryDOT,
	EffectBurn:         CategoryDOT,
	EffectBleed:        CategoryDOT,
	EffectRegeneration: CategoryDOT,
	EffectStun:         CategoryStatus,
	EffectConfusion:    CategoryStatus,
	EffectBlessed:      CategoryStatus,
	EffectCursed:       CategoryStatus,
	EffectShield:       CategoryDefensive,
	EffectInvisibility: CategoryDefensive,
	EffectReflect:      CategoryDefensive,
	EffectTransform:    CategoryTransform,
	EffectMultiply:     CategoryMath,
	EffectDivide:       CategoryMath,
}

// Category returns the category of the effect type, CategoryUnknown if unrecognised.
func (t EffectType) Category() EffectCategory {
	if c, ok := effectCategories[t]; ok {
		return c
	}
	return CategoryUnknown
}

// Trigger is the action that invokes an item's effects
type Trigger string

const (
	TriggerUse    Trigger = "use"
	TriggerEquip  Trigger = "equip"
	TriggerAttack Trigger = "attack"
	TriggerDefend Trigger = "defend"
)

// EffectDefinition is an effect as declared on a catalog item.
type EffectDefinition struct {
	Type EffectType `json:"type"`
	// Value is an amount for most effects and a factor for math effects.
	Value float64 `json:"value"`
	// Duration in seconds; zero means "not supplied".
	Duration  int       `json:"duration,omitempty"`
	Chance    *float64  `json:"chance,omitempty"` // percent, default 100
	Triggers  []Trigger `json:"triggers,omitempty"`
	Stackable bool      `json:"stackable,omitempty"`
}

// ActiveEffect is a timed effect record held on an account.
type ActiveEffect struct {
	Type         EffectType     `json:"type"`
	Category     EffectCategory `json:"category"`
	Value        float64        `json:"value"`
	Duration     time.Duration  `json:"duration"`
	StackCount   int            `json:"stack_count"`
	Stackable    bool           `json:"stackable"`
	Source       string         `json:"source"`
	AppliedAt    time.Time      `json:"applied_at"`
	ExpiresAt    time.Time      `json:"expires_at"`
	TicksApplied int            `json:"ticks_applied,omitempty"`
}

// Expired reports whether the effect has reached its terminal state at now.
func (e *ActiveEffect) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Valid reports whether t is a known trigger.
func (t Trigger) Valid() bool {
	switch t {
	case TriggerUse, TriggerEquip, TriggerAttack, TriggerDefend:
		return true
	}
	return false
}

// EffectiveTriggers returns the triggers of d, defaulting to {use}.
func (d EffectDefinition) EffectiveTriggers() []Trigger {
	if len(d.Triggers) == 0 {
		return []Trigger{TriggerUse}
	}
	return d.Triggers
}

// FiresOn reports whether d's trigger set contains t.
func (d EffectDefinition) FiresOn(t Trigger) bool {
	for _, trig := range d.EffectiveTriggers() {
		if trig == t {
			return true
		}
	}
	return false
}

// EffectiveChance returns the chance percentage of d, defaulting to 100.
func (d EffectDefinition) EffectiveChance() float64 {
	if d.Chance == nil {
		return DefaultEffectChance
	}
	return *d.Chance
}

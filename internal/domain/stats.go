package domain

// StatBlock holds a user's vitals, base stats and combat stats.
type StatBlock struct {
	Health     int64 `json:"health"`
	MaxHealth  int64 `json:"max_health"`
	Sanity     int64 `json:"sanity"`
	MaxSanity  int64 `json:"max_sanity"`
	Energy     int64 `json:"energy"`
	MaxEnergy  int64 `json:"max_energy"`
	Experience int64 `json:"experience"`

	Strength     float64 `json:"strength"`
	Intelligence float64 `json:"intelligence"`
	Charisma     float64 `json:"charisma"`
	Speed        float64 `json:"speed"`
	Stealth      float64 `json:"stealth"`
	Luck         float64 `json:"luck"`

	Attack     float64 `json:"attack"`
	Defense    float64 `json:"defense"`
	CritChance float64 `json:"crit_chance"`
	Dodge      float64 `json:"dodge"`
}

// DefaultStatBlock is the stat block of a freshly created account.
func DefaultStatBlock() StatBlock {
	return StatBlock{
		Health:       DefaultMaxVital,
		MaxHealth:    DefaultMaxVital,
		Sanity:       DefaultMaxVital,
		MaxSanity:    DefaultMaxVital,
		Energy:       DefaultMaxVital,
		MaxEnergy:    DefaultMaxVital,
		Strength:     DefaultBaseStat,
		Intelligence: DefaultBaseStat,
		Charisma:     DefaultBaseStat,
		Speed:        DefaultBaseStat,
		Stealth:      DefaultBaseStat,
		Luck:         DefaultBaseStat,
		Attack:       DefaultBaseStat,
		Defense:      DefaultBaseStat,
		CritChance:   DefaultCritChance,
		Dodge:        DefaultDodge,
	}
}

// StatPointer returns a pointer to the float stat named by t, or nil
// when t is not a base or combat stat.
func (s *StatBlock) StatPointer(t EffectType) *float64 {
	switch t {
	case EffectStrength:
		return &s.Strength
	case EffectIntelligence:
		return &s.Intelligence
	case EffectCharisma:
		return &s.Charisma
	case EffectSpeed:
		return &s.Speed
	case EffectStealth:
		return &s.Stealth
	case EffectLuck:
		return &s.Luck
	case EffectAttack:
		return &s.Attack
	case EffectDefense:
		return &s.Defense
	case EffectCritChance:
		return &s.CritChance
	case EffectDodge:
		return &s.Dodge
	}
	return nil
}

package model

// Tier is a membership level controlling feature access, ordered low to high.
type Tier string

const (
	TierFree       Tier = "free"
	TierBrigade    Tier = "brigade"
	TierFraternity Tier = "fraternity"
	TierGuild      Tier = "guild"
)

// tierOrder is the canonical low-to-high ordering. Access checks compare
// positions in this slice.
var tierOrder = []Tier{TierFree, TierBrigade, TierFraternity, TierGuild}

// AllTiers returns the ordered tier list, lowest first.
func AllTiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}

// Index returns the zero-based position of t in the tier ordering, or -1 for
// an unrecognized tier. An unknown tier therefore fails every access check,
// which denies rather than errors.
func (t Tier) Index() int {
	for i, v := range tierOrder {
		if v == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t.Index() >= 0
}

// HasAccess reports whether a member at userTier may use a resource gated at
// requiredTier. An empty userTier is treated as free.
func HasAccess(userTier, requiredTier Tier) bool {
	if userTier == "" {
		userTier = TierFree
	}
	return userTier.Index() >= requiredTier.Index()
}

// TiersAtOrAbove returns the tiers whose members pass the gate at t, highest
// last. Used to build SQL IN filters for feed visibility and broadcast
// audience segmentation. Unknown t yields nil.
func TiersAtOrAbove(t Tier) []Tier {
	idx := t.Index()
	if idx < 0 {
		return nil
	}
	out := make([]Tier, 0, len(tierOrder)-idx)
	for _, v := range tierOrder[idx:] {
		out = append(out, v)
	}
	return out
}

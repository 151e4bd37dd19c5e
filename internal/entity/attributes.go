package entity

import "dwarf-slayer/assets"

// Attributes holds the eight attribute scores, indexed by assets.Attribute.
type Attributes [assets.NumAttributes]int

// Get returns the score for a.
func (a Attributes) Get(attr assets.Attribute) int {
	if attr >= assets.NumAttributes {
		return 0
	}
	return a[attr]
}

// Apply returns a copy with the heritage deltas added.
func (a Attributes) Apply(h assets.Heritage) Attributes {
	for attr, d := range h.Deltas {
		if attr < assets.NumAttributes {
			a[attr] += d
		}
	}
	return a
}

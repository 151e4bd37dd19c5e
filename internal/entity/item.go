package entity

import "dwarf-slayer/internal/gamemap"

// ItemKind identifies a floor item.
type ItemKind uint8

const (
	ItemPotion ItemKind = iota
)

// Item is an object lying on the floor until picked up.
type Item struct {
	Kind ItemKind         `json:"kind"`
	Pos  gamemap.Position `json:"pos"`
}

// ItemAt returns the index of the first item of kind at p, or -1.
func ItemAt(items []Item, kind ItemKind, p gamemap.Position) int {
	for i := range items {
		if items[i].Kind == kind && items[i].Pos == p {
			return i
		}
	}
	return -1
}

// RemoveItem returns items without the element at i. The backing array is not
// shared with the input.
func RemoveItem(items []Item, i int) []Item {
	out := make([]Item, 0, len(items))
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

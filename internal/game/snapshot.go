package game

import (
	"cmp"
	"slices"

	"dwarf-slayer/internal/entity"
	"dwarf-slayer/internal/gamemap"
	"dwarf-slayer/internal/system"

	"github.com/zyedidia/generic/mapset"
)

// Snapshot is a deep copy of everything a front end draws. It shares no
// memory with the Game, so it may be read from any goroutine.
type Snapshot struct {
	State State `json:"state"`
	Depth int   `json:"depth"`
	Turn  int   `json:"turn"`

	Map   *gamemap.GameMap `json:"-"`
	Rows  []string         `json:"rows"` // explored tiles; unexplored cells are blank
	Rooms []gamemap.Rect   `json:"-"`

	Player entity.Player `json:"player"`
	Facing int           `json:"facing"` // compass degrees

	// Monsters holds the living monsters in view, Items the items on
	// explored cells.
	Monsters    []entity.Monster `json:"monsters"`
	Items       []entity.Item    `json:"items"`
	Stairs      gamemap.Position `json:"stairs"`
	StairsKnown bool             `json:"stairs_known"`

	Visible      mapset.Set[gamemap.Position] `json:"-"`
	Explored     mapset.Set[gamemap.Position] `json:"-"`
	VisibleCells []gamemap.Position           `json:"visible"`

	Log   []string        `json:"log"` // newest first
	View  []system.Column `json:"view,omitempty"`
	Stats RunLog          `json:"stats"`
}

// Snapshot copies the current state. viewColumns > 0 also projects the
// first-person view at that many columns.
func (g *Game) Snapshot(viewColumns int) Snapshot {
	s := Snapshot{
		State:    g.state,
		Depth:    g.depth,
		Turn:     g.turn,
		Map:      g.gmap.Clone(),
		Player:   g.player,
		Facing:   system.FacingDegrees(g.player.Angle),
		Stairs:   g.stairs,
		Visible:  copySet(g.visible),
		Explored: copySet(g.explored),
		Stats:    g.runLog.Clone(),
	}
	s.Rooms = s.Map.Rooms
	s.StairsKnown = g.explored.Has(g.stairs)

	for _, m := range g.monsters {
		if m.Alive() && g.visible.Has(m.Pos) {
			s.Monsters = append(s.Monsters, m)
		}
	}
	for _, it := range g.items {
		if g.explored.Has(it.Pos) {
			s.Items = append(s.Items, it)
		}
	}

	s.Rows = make([]string, g.gmap.Height)
	row := make([]rune, g.gmap.Width)
	for y := range g.gmap.Height {
		for x := range g.gmap.Width {
			row[x] = ' '
			if g.explored.Has(gamemap.Position{X: x, Y: y}) {
				row[x] = g.gmap.At(x, y).Glyph()
			}
		}
		s.Rows[y] = string(row)
	}

	g.visible.Each(func(p gamemap.Position) {
		s.VisibleCells = append(s.VisibleCells, p)
	})
	slices.SortFunc(s.VisibleCells, func(a, b gamemap.Position) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})

	s.Log = make([]string, len(g.messages))
	for i, msg := range g.messages {
		s.Log[len(g.messages)-1-i] = msg
	}

	if viewColumns > 0 {
		cam := g.cfg.View
		cam.Columns = viewColumns
		s.View = system.Project(g.gmap,
			float64(g.player.Pos.X)+0.5, float64(g.player.Pos.Y)+0.5,
			g.player.Angle, cam)
	}
	return s
}

// Over reports whether the snapshot was taken after the run ended.
func (s *Snapshot) Over() bool { return s.State == StateGameOver }

// IsVisible reports whether p was in view.
func (s *Snapshot) IsVisible(p gamemap.Position) bool { return s.Visible.Has(p) }

// IsExplored reports whether p had ever been seen on this floor.
func (s *Snapshot) IsExplored(p gamemap.Position) bool { return s.Explored.Has(p) }

// MonsterAt returns the visible monster at p, if any.
func (s *Snapshot) MonsterAt(p gamemap.Position) (entity.Monster, bool) {
	if i := entity.MonsterAt(s.Monsters, p); i >= 0 {
		return s.Monsters[i], true
	}
	return entity.Monster{}, false
}

// ItemAt reports whether an explored item lies at p.
func (s *Snapshot) ItemAt(p gamemap.Position) bool {
	for _, it := range s.Items {
		if it.Pos == p {
			return true
		}
	}
	return false
}

func copySet(src mapset.Set[gamemap.Position]) mapset.Set[gamemap.Position] {
	dst := mapset.New[gamemap.Position]()
	src.Each(func(p gamemap.Position) {
		dst.Put(p)
	})
	return dst
}

package generate

import (
	"testing"

	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/gamemap"
)

func defaultTestConfig(seed int64) *Config {
	return &Config{
		MapWidth:    60,
		MapHeight:   28,
		MaxRooms:    12,
		MinRoomSize: 4,
		MaxRoomSize: 9,
		Dice:        dice.NewSeeded(seed),
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		gmap := Generate(defaultTestConfig(seed))
		for x := 0; x < gmap.Width; x++ {
			if !gmap.IsWall(x, 0) || !gmap.IsWall(x, gmap.Height-1) {
				t.Fatalf("seed=%d: border row cell x=%d is not wall", seed, x)
			}
		}
		for y := 0; y < gmap.Height; y++ {
			if !gmap.IsWall(0, y) || !gmap.IsWall(gmap.Width-1, y) {
				t.Fatalf("seed=%d: border column cell y=%d is not wall", seed, y)
			}
		}
	}
}

func TestGenerateRoomsDoNotIntersect(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		gmap := Generate(defaultTestConfig(seed))
		if len(gmap.Rooms) == 0 {
			t.Fatalf("seed=%d: no rooms accepted", seed)
		}
		if len(gmap.Rooms) > 12 {
			t.Fatalf("seed=%d: %d rooms exceeds attempts", seed, len(gmap.Rooms))
		}
		for i, a := range gmap.Rooms {
			for j, b := range gmap.Rooms {
				if i != j && a.Intersects(b) {
					t.Errorf("seed=%d: room %d %+v intersects room %d %+v", seed, i, a, j, b)
				}
			}
		}
	}
}

func TestGenerateRoomsAreCarvedFloor(t *testing.T) {
	gmap := Generate(defaultTestConfig(5))
	for _, r := range gmap.Rooms {
		if w, h := r.X2-r.X1, r.Y2-r.Y1; w < 4 || w > 9 || h < 4 || h > 9 {
			t.Errorf("room %+v outside size range 4..9", r)
		}
		for y := r.Y1; y < r.Y2; y++ {
			for x := r.X1; x < r.X2; x++ {
				if !gmap.IsFloor(x, y) {
					t.Fatalf("room %+v: (%d,%d) is not floor", r, x, y)
				}
			}
		}
	}
}

// TestGenerateAllFloorConnected verifies that every floor tile is reachable
// from the first room's center via BFS (flood-fill).
func TestGenerateAllFloorConnected(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		gmap := Generate(defaultTestConfig(seed))
		start := gmap.Rooms[0].Center()

		visited := make([][]bool, gmap.Height)
		for y := range visited {
			visited[y] = make([]bool, gmap.Width)
		}
		queue := []gamemap.Position{start}
		visited[start.Y][start.X] = true
		dirs := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range dirs {
				n := cur.Add(d[0], d[1])
				if gmap.IsFloor(n.X, n.Y) && !visited[n.Y][n.X] {
					visited[n.Y][n.X] = true
					queue = append(queue, n)
				}
			}
		}

		for y := 0; y < gmap.Height; y++ {
			for x := 0; x < gmap.Width; x++ {
				if gmap.IsFloor(x, y) && !visited[y][x] {
					t.Fatalf("seed=%d: floor (%d,%d) unreachable from %v", seed, x, y, start)
				}
			}
		}
	}
}

func TestGenerateTooSmallMapHasNoRooms(t *testing.T) {
	cfg := defaultTestConfig(1)
	cfg.MapWidth, cfg.MapHeight = 6, 6
	gmap := Generate(cfg)
	if len(gmap.Rooms) != 0 {
		t.Errorf("6x6 map cannot hold a 4..9 room with a border; got %d rooms", len(gmap.Rooms))
	}
	for y := range gmap.Tiles {
		for x := range gmap.Tiles[y] {
			if !gmap.IsWall(x, y) {
				t.Fatalf("(%d,%d) carved on a map with no rooms", x, y)
			}
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	a := Generate(defaultTestConfig(77))
	b := Generate(defaultTestConfig(77))
	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for y := range a.Tiles {
		for x := range a.Tiles[y] {
			if a.Tiles[y][x] != b.Tiles[y][x] {
				t.Fatalf("tile (%d,%d) differs for the same seed", x, y)
			}
		}
	}
}

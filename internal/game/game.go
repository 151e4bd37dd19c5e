package game

import (
	"fmt"
	"log/slog"
	"math"

	"dwarf-slayer/assets"
	"dwarf-slayer/internal/dice"
	"dwarf-slayer/internal/entity"
	"dwarf-slayer/internal/factory"
	"dwarf-slayer/internal/gamemap"
	"dwarf-slayer/internal/generate"
	"dwarf-slayer/internal/system"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State tracks the main state machine.
type State uint8

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "playing"
}

// MarshalText lets snapshots carry the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the names written by MarshalText.
func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "playing":
		*s = StatePlaying
	case "game_over":
		*s = StateGameOver
	default:
		return fmt.Errorf("unknown state %q", b)
	}
	return nil
}

// Config holds every tunable of a run.
type Config struct {
	MapWidth    int
	MapHeight   int
	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int
	FOVRadius   int
	LogMax      int
	Spawn       generate.SpawnConfig
	// View is the first-person camera. Columns is chosen per snapshot.
	View system.ProjectorConfig
	// RotateStep is the turn, in degrees, front ends apply per rotate key.
	RotateStep float64
	Logger     *slog.Logger
}

// DefaultConfig returns the standard 60×28 dungeon.
func DefaultConfig() Config {
	return Config{
		MapWidth:    60,
		MapHeight:   28,
		MaxRooms:    12,
		MinRoomSize: 4,
		MaxRoomSize: 9,
		FOVRadius:   8,
		LogMax:      160,
		Spawn: generate.SpawnConfig{
			Potions:         7,
			Monsters:        12,
			PotionAttempts:  200,
			MonsterAttempts: 300,
		},
		View: system.ProjectorConfig{
			FOV:      66 * math.Pi / 180,
			MinDist:  0.05,
			MaxDist:  20,
			MaxSteps: 128,
		},
		RotateStep: 15,
	}
}

// Game is the aggregate root of one run. It is not safe for concurrent use:
// front ends call actions from one goroutine and hand Snapshots to others.
type Game struct {
	cfg    Config
	dice   *dice.Dice
	logger *slog.Logger

	state    State
	depth    int
	turn     int
	gmap     *gamemap.GameMap
	player   entity.Player
	monsters []entity.Monster
	items    []entity.Item
	stairs   gamemap.Position
	visible  mapset.Set[gamemap.Position]
	explored mapset.Set[gamemap.Position]
	messages []string
	runLog   RunLog
}

// New creates a Game and starts its first run.
func New(cfg Config, d *dice.Dice) *Game {
	if d == nil {
		d = dice.New(nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{cfg: cfg, dice: d, logger: logger}
	g.NewGame()
	return g
}

// NewGame throws away the current run and starts over on depth 1 with a
// freshly rolled dwarf.
func (g *Game) NewGame() {
	g.state = StatePlaying
	g.depth = 1
	g.turn = 1
	g.messages = nil
	g.runLog = newRunLog()
	g.player = factory.NewPlayer(g.dice, gamemap.Position{})
	g.loadFloor()
	g.refreshVisibility()
	g.addMessage(assets.MsgEnter)
	g.logger.Debug("new run",
		"max_hp", g.player.MaxHP, "attack", g.player.Attack, "parry", g.player.Parry)
}

// loadFloor generates and populates a floor for the current depth. The
// player keeps everything except their position.
func (g *Game) loadFloor() {
	if g.depth > g.runLog.DeepestDepth {
		g.runLog.DeepestDepth = g.depth
	}
	g.gmap = generate.Generate(g.floorConfig())
	pop := generate.Populate(g.gmap, g.depth, &g.cfg.Spawn, g.dice)

	g.player.Pos = pop.Start
	g.stairs = pop.Stairs
	g.monsters = make([]entity.Monster, 0, len(pop.Monsters))
	for _, ms := range pop.Monsters {
		g.monsters = append(g.monsters, factory.NewMonster(ms.Species, ms.Pos))
	}
	g.items = make([]entity.Item, 0, len(pop.Potions))
	for _, p := range pop.Potions {
		g.items = append(g.items, factory.NewPotion(p))
	}
	g.visible = mapset.New[gamemap.Position]()
	g.explored = mapset.New[gamemap.Position]()

	g.logger.Debug("floor generated",
		"depth", g.depth,
		"rooms", len(g.gmap.Rooms),
		"monsters", len(g.monsters), "monsters_wanted", g.cfg.Spawn.Monsters,
		"potions", len(g.items), "potions_wanted", g.cfg.Spawn.Potions)
}

// refreshVisibility recomputes the visible set and folds it into explored.
func (g *Game) refreshVisibility() {
	g.visible = system.ComputeVisible(g.gmap, g.player.Pos, g.cfg.FOVRadius)
	g.visible.Each(func(p gamemap.Position) {
		g.explored.Put(p)
	})
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if limit := g.cfg.LogMax; limit > 0 && len(g.messages) > limit {
		g.messages = g.messages[len(g.messages)-limit:]
	}
}

func (g *Game) addMessagef(format string, args ...any) {
	g.addMessage(fmt.Sprintf(format, args...))
}

// capitalize turns a species name into the start of a sentence. A Caser
// keeps state, so each call builds its own.
func capitalize(name string) string {
	return cases.Title(language.English).String(name)
}

// State returns the current state of the run.
func (g *Game) State() State { return g.state }

// Over reports whether the run has ended.
func (g *Game) Over() bool { return g.state == StateGameOver }

// Depth returns the current dungeon depth, starting at 1.
func (g *Game) Depth() int { return g.depth }

// Turn returns the turn counter.
func (g *Game) Turn() int { return g.turn }

// Config returns the configuration the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Stats returns a copy of the run statistics.
func (g *Game) Stats() RunLog { return g.runLog.Clone() }

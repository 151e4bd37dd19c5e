package system

import (
	"errors"
	"testing"

	"dwarf-slayer/assets"
	"dwarf-slayer/internal/dice"
	dicemock "dwarf-slayer/internal/dice/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// forcedDice returns dice whose faces are scripted by the caller.
func forcedDice(t *testing.T) (*dice.Dice, *dicemock.MockRoller) {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	return dice.New(roller), roller
}

func TestComputeHitFreshTarget(t *testing.T) {
	d, roller := forcedDice(t)
	gomock.InOrder(
		roller.EXPECT().Roll(20).Return(5, nil),
		roller.EXPECT().Roll(2).Return(2, nil),
		roller.EXPECT().Roll(3).Return(3, nil),
	)
	p := testPlayer(0, 0) // KK 14: +2 damage
	m := monsterAt(assets.SpeciesOrc, 1, 0)

	res := ComputeHit(d, p, &m)
	assert.True(t, res.Hit)
	assert.Equal(t, 2, res.Opener)
	assert.Equal(t, 2+3+2+2, res.Damage)
	assert.Equal(t, 10, m.HP, "ComputeHit must not apply damage")
	assert.True(t, m.Fresh, "ComputeHit must not clear the fresh flag")
}

func TestComputeHitStaleTargetSkipsOpener(t *testing.T) {
	d, roller := forcedDice(t)
	gomock.InOrder(
		roller.EXPECT().Roll(20).Return(1, nil),
		roller.EXPECT().Roll(3).Return(1, nil),
	)
	p := testPlayer(0, 0)
	m := monsterAt(assets.SpeciesOrc, 1, 0)
	m.Fresh = false

	res := ComputeHit(d, p, &m)
	assert.True(t, res.Hit)
	assert.Zero(t, res.Opener)
	assert.Equal(t, 5, res.Damage)
}

func TestComputeHitThreshold(t *testing.T) {
	cases := []struct {
		name   string
		attack int
		roll   int
		hit    bool
	}{
		{"at threshold", 11, 9, true},
		{"above threshold", 11, 10, false},
		{"floor of three hits", 2, 3, true},
		{"floor of three misses", 2, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, roller := forcedDice(t)
			roller.EXPECT().Roll(20).Return(tc.roll, nil)
			if tc.hit {
				roller.EXPECT().Roll(2).Return(1, nil)
				roller.EXPECT().Roll(3).Return(1, nil)
			}
			p := testPlayer(0, 0)
			p.Attack = tc.attack
			m := monsterAt(assets.SpeciesGoblin, 1, 0)
			assert.Equal(t, tc.hit, ComputeHit(d, p, &m).Hit)
		})
	}
}

func TestDamageNeverBelowOne(t *testing.T) {
	d, roller := forcedDice(t)
	gomock.InOrder(
		roller.EXPECT().Roll(20).Return(1, nil),
		roller.EXPECT().Roll(3).Return(0, errors.New("broken")),
	)
	p := testPlayer(0, 0)
	p.Attrs[assets.AttrKK] = 8
	m := monsterAt(assets.SpeciesGoblin, 1, 0)
	m.Fresh = false

	res := ComputeHit(d, p, &m)
	require.True(t, res.Hit)
	assert.GreaterOrEqual(t, res.Damage, 1)
}

func TestResolvePlayerAttackKillAwardsXP(t *testing.T) {
	d, roller := forcedDice(t)
	gomock.InOrder(
		roller.EXPECT().Roll(20).Return(2, nil),
		roller.EXPECT().Roll(2).Return(1, nil),
		roller.EXPECT().Roll(3).Return(3, nil),
	)
	p := testPlayer(0, 0)
	m := monsterAt(assets.SpeciesGoblin, 1, 0)

	rep := ResolvePlayerAttack(d, p, &m)
	require.True(t, rep.Hit)
	assert.True(t, rep.Killed)
	assert.False(t, m.Alive())
	assert.False(t, m.Fresh)
	assert.Equal(t, 8, rep.XP)
	assert.Equal(t, 8, p.XP)
	assert.Empty(t, rep.LevelUps)
}

func TestResolvePlayerAttackIgnoresCorpse(t *testing.T) {
	d, _ := forcedDice(t) // no draws expected
	p := testPlayer(0, 0)
	m := monsterAt(assets.SpeciesGoblin, 1, 0)
	m.HP = 0

	rep := ResolvePlayerAttack(d, p, &m)
	assert.False(t, rep.Hit)
	assert.False(t, rep.Killed)
	assert.Zero(t, rep.XP)
	assert.Zero(t, p.XP)
	assert.Equal(t, 0, m.HP)
}

func TestResolvePlayerAttackMissKeepsFresh(t *testing.T) {
	d, roller := forcedDice(t)
	roller.EXPECT().Roll(20).Return(20, nil)
	p := testPlayer(0, 0)
	m := monsterAt(assets.SpeciesOrc, 1, 0)

	rep := ResolvePlayerAttack(d, p, &m)
	assert.False(t, rep.Hit)
	assert.True(t, m.Fresh, "only a hit ends the opener window")
	assert.Equal(t, 10, m.HP)
	assert.Zero(t, p.XP)
}

func TestOpenerOnlyOnFirstHit(t *testing.T) {
	d, roller := forcedDice(t)
	gomock.InOrder(
		// First swing: hit with opener.
		roller.EXPECT().Roll(20).Return(1, nil),
		roller.EXPECT().Roll(2).Return(2, nil),
		roller.EXPECT().Roll(3).Return(1, nil),
		// Second swing: hit, no opener draw.
		roller.EXPECT().Roll(20).Return(1, nil),
		roller.EXPECT().Roll(3).Return(1, nil),
	)
	p := testPlayer(0, 0)
	m := monsterAt(assets.SpeciesTroll, 1, 0)

	first := ResolvePlayerAttack(d, p, &m)
	second := ResolvePlayerAttack(d, p, &m)
	assert.Equal(t, 2, first.Opener)
	assert.Zero(t, second.Opener)
	assert.Equal(t, 20-first.Damage-second.Damage, m.HP)
}

func TestAwardXPMultipleLevels(t *testing.T) {
	p := testPlayer(0, 0)
	p.HP = 10
	maxHP, attack, parry := p.MaxHP, p.Attack, p.Parry

	ups := AwardXP(p, 75)

	require.Len(t, ups, 2)
	assert.Equal(t, LevelUp{Level: 2, ParryUp: true}, ups[0])
	assert.Equal(t, LevelUp{Level: 3, ParryUp: false}, ups[1])
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 75-30-40, p.XP)
	assert.Equal(t, 50, p.NextXP)
	assert.Equal(t, maxHP+8, p.MaxHP)
	assert.Equal(t, attack+2, p.Attack)
	assert.Equal(t, parry+1, p.Parry)
	assert.Equal(t, 18, p.HP)
}

func TestAwardXPBelowThreshold(t *testing.T) {
	p := testPlayer(0, 0)
	assert.Empty(t, AwardXP(p, 29))
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 29, p.XP)
}

func TestAwardXPHealCapped(t *testing.T) {
	p := testPlayer(0, 0)
	AwardXP(p, 30)
	assert.Equal(t, p.MaxHP, p.HP)
	assert.Equal(t, 34, p.MaxHP)
}

func TestEnemyAttack(t *testing.T) {
	cases := []struct {
		name   string
		faces  []int
		hit    bool
		damage int
	}{
		{"hits", []int{8, 15, 2}, true, 3},
		{"attack roll fails", []int{9}, false, 0},
		{"parry holds", []int{1, 8}, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, roller := forcedDice(t)
			var calls []any
			sizes := []int{20, 20, 2}
			for i, f := range tc.faces {
				calls = append(calls, roller.EXPECT().Roll(sizes[i]).Return(f, nil))
			}
			gomock.InOrder(calls...)

			p := testPlayer(0, 0)                   // parry 8
			m := monsterAt(assets.SpeciesOrc, 1, 0) // attack 10, damage 2..3
			m.Attack = 8

			res := EnemyAttack(d, &m, p)
			assert.Equal(t, tc.hit, res.Hit)
			assert.Equal(t, tc.damage, res.Damage)
			assert.Equal(t, 30-tc.damage, p.HP)
			assert.Equal(t, "orc", res.Name)
		})
	}
}

func TestQuaffPotion(t *testing.T) {
	p := testPlayer(0, 0) // KO 14: heal 6 + 2
	p.HP = 10

	_, ok := QuaffPotion(p)
	assert.False(t, ok, "no potions to drink")
	assert.Equal(t, 10, p.HP)

	p.Potions = 2
	healed, ok := QuaffPotion(p)
	assert.True(t, ok)
	assert.Equal(t, 8, healed)
	assert.Equal(t, 18, p.HP)
	assert.Equal(t, 1, p.Potions)

	p.HP = 29
	healed, _ = QuaffPotion(p)
	assert.Equal(t, 1, healed)
	assert.Equal(t, 30, p.HP)
}

func TestPotionHealMinimum(t *testing.T) {
	p := testPlayer(0, 0)
	p.Attrs[assets.AttrKO] = 8
	assert.Equal(t, 6, PotionHeal(p))
}

func TestRestCapped(t *testing.T) {
	p := testPlayer(0, 0)
	p.HP = 29
	assert.Equal(t, 1, Rest(p))
	assert.Equal(t, 0, Rest(p))
	assert.Equal(t, 30, p.HP)
}

package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/boardrec/core"
)

func carcassonne() *core.Game {
	return &core.Game{
		ID:         1,
		Name:       "카르카손",
		MinPlayers: 2,
		MaxPlayers: 5,
		Difficulty: 2.0,
		PlayTime:   35,
		Categories: []core.Category{core.CategoryFamily, core.CategoryStrategy},
	}
}

func TestEncode(t *testing.T) {
	want := []float64{1, 0, 1, 0, 0, 0, 0, 0, 0.4, 2.0, 0.5, 35.0 / 180.0}
	got := Encode(carcassonne())
	require.Len(t, got, Dimension())
	assert.InDeltaSlice(t, want, got, 1e-12)
	assert.InDelta(t, 0.19444, got[11], 1e-5)
}

func TestEncodeDimensionConstant(t *testing.T) {
	games := []*core.Game{
		carcassonne(),
		{Name: "빈 게임"},
		{Name: "전부", Categories: core.Vocabulary()},
		nil,
	}
	for _, g := range games {
		assert.Len(t, Encode(g), core.VocabularySize()+4)
	}
	assert.Equal(t, 12, Dimension())
}

func TestEncodeCategoryOrderIgnoresInsertionOrder(t *testing.T) {
	a := &core.Game{Categories: []core.Category{core.CategoryWargame, core.CategoryParty}}
	b := &core.Game{Categories: []core.Category{core.CategoryParty, core.CategoryWargame}}
	assert.Equal(t, Encode(a), Encode(b))
	assert.Equal(t, 1.0, Encode(a)[1])
	assert.Equal(t, 1.0, Encode(a)[7])
}

func TestEncodeNoClamping(t *testing.T) {
	g := &core.Game{Difficulty: 7.5, MaxPlayers: 20, PlayTime: 360}
	vec := Encode(g)
	base := core.VocabularySize()
	assert.InDelta(t, 1.5, vec[base+slotDifficulty], 1e-12)
	assert.InDelta(t, 2.0, vec[base+slotMaxPlayers], 1e-12)
	assert.InDelta(t, 2.0, vec[base+slotPlayTime], 1e-12)
}

func TestEncodeWeighted(t *testing.T) {
	opts := core.NewWeightSet(core.WeightDifficulty, core.WeightCategory)
	want := []float64{3, 0, 3, 0, 0, 0, 0, 0, 1.2, 2.0, 0.5, 35.0 / 180.0}
	assert.InDeltaSlice(t, want, EncodeWeighted(carcassonne(), opts), 1e-12)
}

func TestEncodeWeightedNoOptionsEqualsPlain(t *testing.T) {
	assert.Equal(t, Encode(carcassonne()), EncodeWeighted(carcassonne(), nil))
	assert.Equal(t, Encode(carcassonne()), EncodeWeighted(carcassonne(), core.NewWeightSet()))
}

func TestEncodeWeightedSingleOption(t *testing.T) {
	base := core.VocabularySize()
	affected := map[core.WeightOption][]int{
		core.WeightCategory:   {0, 1, 2, 3, 4, 5, 6, 7},
		core.WeightDifficulty: {base + slotDifficulty},
		core.WeightMinPlayer:  {base + slotMinPlayers},
		core.WeightMaxPlayer:  {base + slotMaxPlayers},
		core.WeightPlayTime:   {base + slotPlayTime},
	}
	game := carcassonne()
	plain := Encode(game)

	for _, opt := range core.AllWeightOptions() {
		t.Run(opt.String(), func(t *testing.T) {
			want := append([]float64(nil), plain...)
			for _, i := range affected[opt] {
				want[i] *= WeightMultiplier
			}
			assert.Equal(t, want, EncodeWeighted(game, core.NewWeightSet(opt)))
		})
	}
}

func TestEncodeWeightedComposes(t *testing.T) {
	game := carcassonne()
	all := EncodeWeighted(game, core.NewWeightSet(core.AllWeightOptions()...))
	plain := Encode(game)
	for i := range plain {
		assert.InDelta(t, plain[i]*WeightMultiplier, all[i], 1e-12)
	}
}

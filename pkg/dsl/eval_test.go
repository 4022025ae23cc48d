package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/boardrec/core"
)

func TestExprMatch(t *testing.T) {
	game := &core.Game{
		ID: 1, Name: "카르카손", MinPlayers: 2, MaxPlayers: 5, Difficulty: 2.0, PlayTime: 35,
		Categories: []core.Category{core.CategoryFamily, core.CategoryStrategy},
	}
	tests := []struct {
		expr string
		want bool
	}{
		{`game.max_players >= 4`, true},
		{`game.max_players >= 6`, false},
		{`"FAMILY" in game.categories`, true},
		{`"PARTY" in game.categories`, false},
		{`game.difficulty < 3.0 && game.play_time <= 60`, true},
		{`game.name == "카르카손"`, true},
		{`game.min_players == 1 || game.id == 1`, true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			e, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expr, e.String())
			got, err := e.Match(game)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, expr := range []string{`game.max_players >=`, `1 + 1`, `unknown.field == 1`} {
		_, err := Compile(expr)
		assert.Error(t, err, expr)
	}
}

func TestMatchNonBool(t *testing.T) {
	e, err := Compile(`game.max_players`)
	require.NoError(t, err)
	_, err = e.Match(&core.Game{MaxPlayers: 4})
	assert.Error(t, err)

	ok, err := e.Match(nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

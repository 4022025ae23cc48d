package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/boardrec/config"
	"github.com/rushteam/boardrec/core"
)

func TestNewStore(t *testing.T) {
	s, err := NewStore(context.Background(), config.StoreConfig{Type: "memory"})
	require.NoError(t, err)
	assert.Equal(t, "memory", s.Name())

	_, err = NewStore(context.Background(), config.StoreConfig{Type: "mysql"})
	assert.True(t, core.IsNotSupported(err))
}

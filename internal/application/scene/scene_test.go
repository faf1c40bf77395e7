package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/flappy/internal/application/system"
	"github.com/younwookim/flappy/internal/infrastructure/config"
)

func TestTransitions(t *testing.T) {
	assert.Equal(t, OpNone, Stay.Op)
	assert.Nil(t, Stay.Next)

	assert.Equal(t, OpPush, PushTo(nil).Op)
	assert.Equal(t, OpReplace, ReplaceWith(nil).Op)
	assert.Equal(t, OpPop, PopSelf().Op)
}

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpNone, "None"},
		{OpPush, "Push"},
		{OpReplace, "Replace"},
		{OpPop, "Pop"},
		{Op(42), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestEnv_SeedsAreReproducible(t *testing.T) {
	store := config.NewStore(&config.GameConfig{})
	a := NewEnv(store, nil, &system.ScriptedInput{}, 99)
	b := NewEnv(store, nil, &system.ScriptedInput{}, 99)

	for i := 0; i < 5; i++ {
		assert.Equal(t, a.NextSeed(), b.NextSeed())
	}
	assert.True(t, a.Headless())
	assert.NotNil(t, a.Stats)
}

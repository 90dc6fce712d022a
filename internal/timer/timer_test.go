package timer

import (
	"fmt"
	"testing"

	"github.com/grewek/gboyrust/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivider(t *testing.T) {
	c := NewController()
	c.Step(255)
	assert.Equal(t, uint8(0), c.Read(types.DIV))
	c.Step(1)
	assert.Equal(t, uint8(1), c.Read(types.DIV))

	for i := 0; i < 255; i++ {
		c.Step(256)
	}
	assert.Equal(t, uint8(0), c.Read(types.DIV), "expected DIV to wrap")

	c.Step(0x1234)
	c.Write(types.DIV, 0xAB)
	assert.Equal(t, uint8(0), c.Read(types.DIV), "expected any write to reset DIV")
}

func TestTACReadBack(t *testing.T) {
	c := NewController()
	assert.Equal(t, uint8(0xF8), c.Read(types.TAC))
	c.Write(types.TAC, 0x05)
	assert.Equal(t, uint8(0xFD), c.Read(types.TAC))
	assert.True(t, c.Enabled())
}

func TestTIMA(t *testing.T) {
	for tac, divisor := range divisors {
		divisor := divisor
		t.Run(fmt.Sprintf("%d cycles", divisor), func(t *testing.T) {
			c := NewController()
			c.Write(types.TAC, types.Bit2|uint8(tac))

			c.Step(divisor - 1)
			assert.Equal(t, uint8(0), c.Read(types.TIMA))
			c.Step(1)
			assert.Equal(t, uint8(1), c.Read(types.TIMA))
		})
	}

	t.Run("disabled", func(t *testing.T) {
		c := NewController()
		c.Write(types.TAC, 0x01)
		assert.False(t, c.Step(0xFFFF))
		assert.Equal(t, uint8(0), c.Read(types.TIMA))
	})
}

func TestOverflow(t *testing.T) {
	c := NewController()
	c.Write(types.TAC, 0x05) // 16 cycles
	c.Write(types.TMA, 0xF0)
	c.Write(types.TIMA, 0xFF)

	require.True(t, c.Step(16), "expected overflow")
	assert.Equal(t, uint8(0xF0), c.Read(types.TIMA), "expected TIMA to reload from TMA")

	assert.False(t, c.Step(16))
	assert.Equal(t, uint8(0xF1), c.Read(types.TIMA))
}

func TestState(t *testing.T) {
	c := NewController()
	c.Write(types.TAC, 0x06)
	c.Write(types.TMA, 0x42)
	c.Step(1000)

	s := types.NewState()
	c.Save(s)

	loaded := NewController()
	loaded.Load(s)
	require.NoError(t, s.Err())
	assert.Equal(t, c, loaded)
}

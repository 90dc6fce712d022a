package interrupts

import (
	"testing"

	"github.com/grewek/gboyrust/internal/types"
	"github.com/stretchr/testify/assert"
)

type memory map[uint16]uint8

func (m memory) Read(address uint16) uint8 {
	return m[address]
}

func (m memory) Write(address uint16, value uint8) {
	m[address] = value
}

func TestSource(t *testing.T) {
	tests := []struct {
		source Source
		flag   uint8
		vector uint16
		name   string
	}{
		{VBlank, 0x01, 0x0040, "VBlank"},
		{LCD, 0x02, 0x0048, "LCD"},
		{Timer, 0x04, 0x0050, "Timer"},
		{Serial, 0x08, 0x0058, "Serial"},
		{Joypad, 0x10, 0x0060, "Joypad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.flag, tt.source.Flag())
			assert.Equal(t, tt.vector, tt.source.Vector())
			assert.Equal(t, tt.name, tt.source.String())
		})
	}
}

func TestPending(t *testing.T) {
	t.Run("none requested", func(t *testing.T) {
		m := memory{types.IE: 0x1F}
		_, ok := Pending(m)
		assert.False(t, ok)
	})
	t.Run("requested but not enabled", func(t *testing.T) {
		m := memory{types.IF: 0x04, types.IE: 0x01}
		_, ok := Pending(m)
		assert.False(t, ok)
	})
	t.Run("priority", func(t *testing.T) {
		m := memory{types.IF: 0x1C, types.IE: 0x1F}
		s, ok := Pending(m)
		assert.True(t, ok)
		assert.Equal(t, Timer, s)
	})
	t.Run("upper bits ignored", func(t *testing.T) {
		m := memory{types.IF: 0xE0, types.IE: 0xFF}
		_, ok := Pending(m)
		assert.False(t, ok)
	})
}

func TestRequestAcknowledge(t *testing.T) {
	m := memory{types.IE: 0x1F}
	Request(m, Serial)
	Request(m, Timer)
	assert.Equal(t, uint8(0x0C), m[types.IF])

	s, _ := Pending(m)
	Acknowledge(m, s)
	assert.Equal(t, uint8(0x08), m[types.IF])

	s, _ = Pending(m)
	assert.Equal(t, Serial, s)
}

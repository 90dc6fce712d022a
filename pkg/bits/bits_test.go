package bits

import "testing"

func TestBits(t *testing.T) {
	t.Run("set and reset", func(t *testing.T) {
		for i := uint8(0); i < 8; i++ {
			v := Set(0, i)
			if !Test(v, i) || Val(v, i) != 1 {
				t.Errorf("expected bit %d to be set, got %08b", i, v)
			}
			if Reset(v, i) != 0 {
				t.Errorf("expected bit %d to be reset, got %08b", i, Reset(v, i))
			}
		}
	})
	t.Run("join and split", func(t *testing.T) {
		h, l := Split(0xBEEF)
		if h != 0xBE || l != 0xEF {
			t.Errorf("expected 0xBE 0xEF, got 0x%02X 0x%02X", h, l)
		}
		if Join(h, l) != 0xBEEF {
			t.Errorf("expected 0xBEEF, got 0x%04X", Join(h, l))
		}
	})
	t.Run("nibbles", func(t *testing.T) {
		h, l := Nibbles(0x9C)
		if h != 0x9 || l != 0xC {
			t.Errorf("expected 0x9 0xC, got 0x%X 0x%X", h, l)
		}
	})
}

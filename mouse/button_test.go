package mouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpdg/winkey/keyboard"
)

func TestMakeLParam(t *testing.T) {
	tests := []struct {
		name string
		x, y int32
		want uintptr
	}{
		{name: "origin", x: 0, y: 0, want: 0},
		{name: "simple", x: 100, y: 200, want: 200<<16 | 100},
		{name: "x truncated to 16 bits", x: 0x12345, y: 1, want: 1<<16 | 0x2345},
		{name: "negative x", x: -1, y: 2, want: 2<<16 | 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeLParam(tt.x, tt.y))
		})
	}
}

func TestButtonFor(t *testing.T) {
	b, ok := ButtonFor(keyboard.VKLButton)
	require.True(t, ok)
	assert.Equal(t, Button{Down: WM_LBUTTONDOWN, Up: WM_LBUTTONUP, State: MK_LBUTTON}, b)

	b, ok = ButtonFor(keyboard.VKMButton)
	require.True(t, ok)
	assert.Equal(t, uintptr(MK_MBUTTON), b.State)

	_, ok = ButtonFor(keyboard.VKA)
	assert.False(t, ok)
}

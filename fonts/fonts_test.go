package fonts

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFaceIsCachedUntilReload(t *testing.T) {
	require.NoError(t, LoadDefaults())

	hud := HUD.Face()
	assert.Same(t, hud, HUD.Face())
	assert.Greater(t, text.Advance("distance", hud), 0.0)

	require.NoError(t, LoadFontWithSize(HUD, goregular.TTF, 28))
	bigger := HUD.Face()
	assert.NotSame(t, hud, bigger)
	assert.Greater(t, text.Advance("distance", bigger), text.Advance("distance", hud))
}

func TestFaceUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Face() })
}

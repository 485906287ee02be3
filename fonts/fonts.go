package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Banner FontName = "banner"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face wraps the loaded face for ebiten's text/v2 renderer.
func (f FontName) Face() text.Face {
	if tf, ok := textFaces[f]; ok {
		return tf
	}
	tf := text.NewGoXFace(getFont(f))
	textFaces[f] = tf
	return tf
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults registers the overlay faces from the bundled Go Regular font.
func LoadDefaults() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 14); err != nil {
		return err
	}
	return LoadFontWithSize(Banner, goregular.TTF, 24)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

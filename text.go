//go:build !ili9341_notext

package ili9341

import (
	"errors"
	"fmt"
)

var (
	// ErrGlyph is returned by DrawText for characters outside the font.
	ErrGlyph = errors.New("ili9341: character not in font")
	// ErrScale is returned by DrawText for a scale that does not divide 8.
	ErrScale = errors.New("ili9341: scale must be 1, 2, 4 or 8")
)

// DrawText draws text at (x, y) with the built-in 8x8 font, each glyph
// scaled by scale (1, 2, 4 or 8) and drawn fg on bg.
//
// text is read byte by byte; only printable ASCII (0x20 to 0x7E) is
// supported. Characters advance 8*scale pixels to the right with no
// wrapping. text is validated before anything is sent to the display.
func (d *Dev) DrawText(x, y uint16, text string, fg, bg, scale uint16) error {
	switch scale {
	case 1, 2, 4, 8:
	default:
		return fmt.Errorf("%w: got %d", ErrScale, scale)
	}
	for i := 0; i < len(text); i++ {
		if c := text[i]; c < fontFirst || c > fontLast {
			return fmt.Errorf("%w: %#02x at offset %d", ErrGlyph, c, i)
		}
	}

	cx := x
	for i := 0; i < len(text); i++ {
		if err := d.drawCharacter(cx, y, glyph(text[i]), fg, bg, scale); err != nil {
			return err
		}
		cx += scale * 8
	}
	return nil
}

// glyph returns the bitmap of c, which must be in the font range.
func glyph(c byte) *[8]byte {
	off := 8 * int(c-fontFirst)
	return (*[8]byte)(font[off : off+8])
}

// drawCharacter renders one glyph into an 8*scale square window.
//
// Every output row is sent as scale chunks of 8 pixels. Each chunk covers
// 8/scale source bits, most significant first, every bit widened to scale
// pixels.
func (d *Dev) drawCharacter(x, y uint16, g *[8]byte, fg, bg, scale uint16) error {
	if err := d.selectWindow(x, y, x+scale*8, y+scale*8); err != nil {
		return err
	}

	fgh, fgl := ToBytes(fg)
	bgh, bgl := ToBytes(bg)
	s := int(scale)
	bits := 8 / s

	var buf [16]byte
	if err := d.beginDataTransfer(); err != nil {
		return err
	}
	for row := 0; row < 8; row++ {
		for k := 0; k < s; k++ {
			for group := s - 1; group >= 0; group-- {
				start := group * bits
				for i := start; i < start+bits; i++ {
					h, l := bgh, bgl
					if g[row]>>i&1 != 0 {
						h, l = fgh, fgl
					}
					off := 16 - (i-start+1)*2*s
					for p := 0; p < s; p++ {
						buf[off+2*p] = h
						buf[off+2*p+1] = l
					}
				}
				if err := d.continueDataTransfer(buf[:]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

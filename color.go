package ili9341

import "github.com/flavioheleno/ili9341/image565"

// ToBytes splits a 16-bit color into its big-endian wire bytes.
func ToBytes(c uint16) (hi, lo byte) {
	return image565.RGB565(c).Bytes()
}

// PackColor combines 8-bit RGB channels into a RGB565 value.
func PackColor(r, g, b uint8) uint16 {
	return uint16(image565.NewRGB565(r, g, b))
}

// PackColorBytes combines 8-bit RGB channels into the RGB565 wire bytes.
func PackColorBytes(r, g, b uint8) (hi, lo byte) {
	return ToBytes(PackColor(r, g, b))
}

// FillBuffer fills dst with c repeated, high byte first.
//
// dst is expected to have an even length. With an odd length the last
// byte holds a high byte and the matching low byte is dropped.
func FillBuffer(dst []byte, c uint16) {
	hi, lo := ToBytes(c)
	for i := range dst {
		if i%2 == 0 {
			dst[i] = hi
		} else {
			dst[i] = lo
		}
	}
}

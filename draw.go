package ili9341

// FillRect fills the w×h rectangle at (x, y) with color c.
//
// A width or height of 1 draws a line.
func (d *Dev) FillRect(x, y, w, h, c uint16) error {
	if err := d.selectWindow(x, y, x+w, y+h); err != nil {
		return err
	}
	if err := d.beginDataTransfer(); err != nil {
		return err
	}

	// Pixels go out four at a time. When w*h is not a multiple of 4 up to
	// three extra pixels are sent; they wrap inside the window onto pixels
	// that already hold c.
	var chunk [8]byte
	FillBuffer(chunk[:], c)
	n := (uint32(w)*uint32(h) + 3) / 4
	for k := uint32(0); k < n; k++ {
		if err := d.continueDataTransfer(chunk[:]); err != nil {
			return err
		}
	}
	return nil
}

// Clear fills the entire screen with color c.
func (d *Dev) Clear(c uint16) error {
	w, h := d.Size()
	return d.FillRect(0, 0, w, h, c)
}

// DrawSprite writes raw pixel data to the w×h rectangle at (x, y).
//
// data holds 2 bytes per pixel, high byte first, row by row, and should be
// exactly 2*w*h bytes long. The length is not checked: a short buffer
// leaves the rest of the window untouched and a long one wraps around.
func (d *Dev) DrawSprite(x, y, w, h uint16, data []byte) error {
	if err := d.selectWindow(x, y, x+w, y+h); err != nil {
		return err
	}
	return d.writeData(data)
}

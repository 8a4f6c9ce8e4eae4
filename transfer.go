package ili9341

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// selectWindow sets the column and page address window and opens a memory
// write. x1 and y1 are exclusive; the controller takes inclusive bounds.
//
// The address counter wraps inside the window, so bytes streamed past its
// end land back at (x0, y0).
func (d *Dev) selectWindow(x0, y0, x1, y1 uint16) error {
	var b [4]byte

	b[0], b[1] = ToBytes(x0)
	b[2], b[3] = ToBytes(inclusiveEnd(x0, x1))
	if err := d.writeCommand(columnAddressSet); err != nil {
		return err
	}
	if err := d.writeData(b[:]); err != nil {
		return err
	}

	b[0], b[1] = ToBytes(y0)
	b[2], b[3] = ToBytes(inclusiveEnd(y0, y1))
	if err := d.writeCommand(pageAddressSet); err != nil {
		return err
	}
	if err := d.writeData(b[:]); err != nil {
		return err
	}

	return d.writeCommand(memoryWrite)
}

// inclusiveEnd converts an exclusive end bound, never going below start.
func inclusiveEnd(start, end uint16) uint16 {
	if end > 0 {
		end--
	}
	return max(start, end)
}

// writeCommand sends a single opcode.
func (d *Dev) writeCommand(op byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("%w: failed to pull DC low: %w", ErrPin, err)
	}
	d.op[0] = op
	if err := d.c.Tx(d.op[:], nil); err != nil {
		return fmt.Errorf("%w: command %#02x: %w", ErrTransport, op, err)
	}
	return nil
}

// beginDataTransfer switches the bus to data mode. It must precede the
// first continueDataTransfer of a transfer.
func (d *Dev) beginDataTransfer() error {
	if err := d.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("%w: failed to pull DC high: %w", ErrPin, err)
	}
	return nil
}

// continueDataTransfer streams payload bytes without touching DC.
func (d *Dev) continueDataTransfer(b []byte) error {
	for len(b) != 0 {
		chunk := b
		if d.maxTxSize > 0 && len(chunk) > d.maxTxSize {
			chunk = chunk[:d.maxTxSize]
		}
		if err := d.c.Tx(chunk, nil); err != nil {
			return fmt.Errorf("%w: %w", ErrTransport, err)
		}
		b = b[len(chunk):]
	}
	return nil
}

// writeData sends a complete data payload.
func (d *Dev) writeData(b []byte) error {
	if err := d.beginDataTransfer(); err != nil {
		return err
	}
	return d.continueDataTransfer(b)
}

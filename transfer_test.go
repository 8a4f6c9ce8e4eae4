package ili9341

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
)

func TestSelectWindow(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 uint16
		want           []op
	}{
		{"full screen", 0, 0, 240, 320, window(0, 0, 239, 319)},
		{"single pixel", 5, 6, 6, 7, window(5, 6, 5, 6)},
		{"zero width", 10, 10, 10, 12, window(10, 10, 10, 11)},
		{"zero height", 10, 10, 12, 10, window(10, 10, 11, 10)},
		{"all zero", 0, 0, 0, 0, window(0, 0, 0, 0)},
		{"high bytes", 0x0100, 0x0120, 0x0140, 0x0140, window(0x0100, 0x0120, 0x013F, 0x013F)},
		{"end before start", 50, 50, 20, 20, window(50, 50, 50, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td := newTestDev(t, nil)
			if err := td.selectWindow(tt.x0, tt.y0, tt.x1, tt.y1); err != nil {
				t.Fatal(err)
			}
			checkTrace(t, td.c.trace, tt.want)
			// RAMWR leaves the transfer open in command mode.
			if td.dc.Read() != gpio.Low {
				t.Error("DC should be low after selectWindow")
			}
		})
	}
}

func TestInclusiveEnd(t *testing.T) {
	tests := []struct {
		start, end, want uint16
	}{
		{10, 10, 10},
		{0, 0, 0},
		{0, 1, 0},
		{0, 240, 239},
		{100, 50, 100},
		{0xFFFE, 0xFFFF, 0xFFFE},
	}
	for _, tt := range tests {
		if got := inclusiveEnd(tt.start, tt.end); got != tt.want {
			t.Errorf("inclusiveEnd(%d, %d) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestWriteCommand(t *testing.T) {
	td := newTestDev(t, nil)
	td.dc.Out(gpio.High)
	if err := td.writeCommand(0x2C); err != nil {
		t.Fatal(err)
	}
	checkTrace(t, td.c.trace, cmd(0x2C))
}

func TestDataTransfer(t *testing.T) {
	td := newTestDev(t, nil)
	if err := td.beginDataTransfer(); err != nil {
		t.Fatal(err)
	}
	if td.dc.Read() != gpio.High {
		t.Fatal("DC should be high after beginDataTransfer")
	}
	if len(td.c.trace) != 0 {
		t.Fatal("beginDataTransfer should not write to the bus")
	}
	for _, b := range [][]byte{{1, 2}, {3}, {4, 5, 6}} {
		if err := td.continueDataTransfer(b); err != nil {
			t.Fatal(err)
		}
	}
	checkTrace(t, td.c.trace, []op{
		{data: true, b: []byte{1, 2}},
		{data: true, b: []byte{3}},
		{data: true, b: []byte{4, 5, 6}},
	})
}

func TestContinueDataTransferEmpty(t *testing.T) {
	td := newTestDev(t, nil)
	if err := td.writeData(nil); err != nil {
		t.Fatal(err)
	}
	if len(td.c.trace) != 0 {
		t.Errorf("empty payload sent %d writes", len(td.c.trace))
	}
}

func TestContinueDataTransferChunks(t *testing.T) {
	td := newTestDev(t, &Opts{MaxTxSize: 4})
	if err := td.writeData([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}); err != nil {
		t.Fatal(err)
	}
	checkTrace(t, td.c.trace, []op{
		{data: true, b: []byte{0, 1, 2, 3}},
		{data: true, b: []byte{4, 5, 6, 7}},
		{data: true, b: []byte{8, 9}},
	})
}

func TestTransferErrors(t *testing.T) {
	td := newTestDev(t, nil)
	td.c.failAt = 1

	if err := td.writeCommand(0x29); !errors.Is(err, ErrTransport) {
		t.Errorf("writeCommand() = %v, want ErrTransport", err)
	}
	if err := td.writeData([]byte{1}); !errors.Is(err, ErrTransport) {
		t.Errorf("writeData() = %v, want ErrTransport", err)
	}
	if err := td.selectWindow(0, 0, 1, 1); !errors.Is(err, ErrTransport) {
		t.Errorf("selectWindow() = %v, want ErrTransport", err)
	}
	if errors.Is(ErrTransport, ErrPin) {
		t.Error("error kinds must be distinct")
	}
}

// failPin fails every level change.
type failPin struct {
	gpio.PinIO
}

func (failPin) Out(gpio.Level) error {
	return errors.New("pin stuck")
}

func TestTransferPinErrors(t *testing.T) {
	td := newTestDev(t, nil)
	td.Dev.dc = failPin{PinIO: gpio.INVALID}

	if err := td.writeCommand(0x29); !errors.Is(err, ErrPin) {
		t.Errorf("writeCommand() = %v, want ErrPin", err)
	}
	if err := td.beginDataTransfer(); !errors.Is(err, ErrPin) {
		t.Errorf("beginDataTransfer() = %v, want ErrPin", err)
	}
	if err := td.FillRect(0, 0, 1, 1, 0); !errors.Is(err, ErrPin) {
		t.Errorf("FillRect() = %v, want ErrPin", err)
	}
	if td.c.calls != 0 {
		t.Errorf("%d bus writes after pin failure, want none", td.c.calls)
	}
}

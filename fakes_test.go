package ili9341

import (
	"errors"
	"testing"
	"time"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var errBus = errors.New("bus failure")

// op is one bus write together with the DC level it was sent with.
type op struct {
	data bool
	b    []byte
}

// traceConn records every write with the DC level at the time of the write.
type traceConn struct {
	conntest.Record
	dc     *gpiotest.Pin
	trace  []op
	calls  int
	failAt int // 1-based Tx call to fail, 0 to never fail
}

func (c *traceConn) Tx(w, r []byte) error {
	c.calls++
	if c.failAt != 0 && c.calls >= c.failAt {
		return errBus
	}
	c.trace = append(c.trace, op{data: c.dc.Read() == gpio.High, b: append([]byte(nil), w...)})
	return c.Record.Tx(w, r)
}

// limitConn is a traceConn that advertises a transaction size limit.
type limitConn struct {
	*traceConn
	max int
}

func (c *limitConn) MaxTxSize() int {
	return c.max
}

// spiConn turns a traceConn into a spi.Conn.
type spiConn struct {
	*traceConn
}

func (c *spiConn) TxPackets(p []spi.Packet) error {
	return errors.New("not supported")
}

type fakePort struct {
	c    *traceConn
	f    physic.Frequency
	mode spi.Mode
	bits int
	err  error
}

func (p *fakePort) String() string {
	return "fakePort"
}

func (p *fakePort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.f, p.mode, p.bits = f, mode, bits
	return &spiConn{p.c}, nil
}

func (p *fakePort) LimitSpeed(f physic.Frequency) error {
	return nil
}

// pwmPin records PWM calls.
type pwmPin struct {
	gpiotest.Pin
	duty []gpio.Duty
	freq physic.Frequency
	err  error
}

func (p *pwmPin) PWM(d gpio.Duty, f physic.Frequency) error {
	if p.err != nil {
		return p.err
	}
	p.duty = append(p.duty, d)
	p.freq = f
	return nil
}

// logPin appends its level changes to a shared log.
type logPin struct {
	gpiotest.Pin
	log *[]string
	err error
}

func (p *logPin) Out(l gpio.Level) error {
	if p.err != nil {
		return p.err
	}
	*p.log = append(*p.log, p.N+" "+l.String())
	return p.Pin.Out(l)
}

type testDev struct {
	*Dev
	c   *traceConn
	dc  *gpiotest.Pin
	rst *logPin
	bl  *pwmPin
	log []string
}

func newTestDev(t *testing.T, opts *Opts) *testDev {
	t.Helper()
	td := &testDev{
		dc: &gpiotest.Pin{N: "DC"},
		bl: &pwmPin{Pin: gpiotest.Pin{N: "BL"}},
	}
	td.rst = &logPin{Pin: gpiotest.Pin{N: "RST"}, log: &td.log}
	td.c = &traceConn{dc: td.dc}
	d, err := New(td.c, td.dc, td.rst, td.bl, opts)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	d.sleep = func(dur time.Duration) {
		td.log = append(td.log, "sleep "+dur.String())
	}
	td.Dev = d
	return td
}

// cmd is the expected trace of an opcode followed by one data write.
func cmd(opcode byte, data ...byte) []op {
	out := []op{{data: false, b: []byte{opcode}}}
	if len(data) != 0 {
		out = append(out, op{data: true, b: data})
	}
	return out
}

// window is the expected trace of selectWindow with inclusive bounds.
func window(x0, y0, x1, y1 uint16) []op {
	var out []op
	out = append(out, cmd(0x2A, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1))...)
	out = append(out, cmd(0x2B, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1))...)
	return append(out, cmd(0x2C)...)
}

func checkTrace(t *testing.T, got, want []op) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d bus writes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].data != want[i].data || string(got[i].b) != string(want[i].b) {
			t.Fatalf("write %d = {data: %t, % X}, want {data: %t, % X}",
				i, got[i].data, got[i].b, want[i].data, want[i].b)
		}
	}
}

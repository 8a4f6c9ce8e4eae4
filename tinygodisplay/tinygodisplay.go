// Package tinygodisplay runs the ILI9341 driver on TinyGo targets.
//
// TinyGo boards expose their SPI buses as drivers.SPI and their GPIOs as
// machine.Pin. This package adapts both to the periph.io interfaces the
// driver consumes, and exposes the panel as a drivers.Displayer so it can
// be used with tinydraw, tinyfont and friends:
//
//	machine.SPI0.Configure(machine.SPIConfig{Frequency: 40e6})
//	dc := tinygodisplay.NewPin("DC", machine.LCD_DC.Set)
//	rst := tinygodisplay.NewPin("RST", machine.LCD_RESET.Set)
//	dev, _ := ili9341.New(tinygodisplay.Conn(machine.SPI0), dc, rst, nil,
//		&ili9341.Opts{Orientation: tinygodisplay.Orientation(drivers.Rotation90)})
//	dev.Init()
//	disp := tinygodisplay.NewDisplayer(dev)
package tinygodisplay

import (
	"image"
	"image/color"

	"github.com/flavioheleno/ili9341"
	"github.com/flavioheleno/ili9341/image565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// Conn wraps a TinyGo SPI bus. The bus must have already been configured.
func Conn(bus drivers.SPI) conn.Conn {
	return &spiConn{bus: bus}
}

type spiConn struct {
	bus drivers.SPI
}

func (c *spiConn) String() string {
	return "tinygo.SPI"
}

func (c *spiConn) Tx(w, r []byte) error {
	return c.bus.Tx(w, r)
}

func (c *spiConn) Duplex() conn.Duplex {
	return conn.Full
}

// Pin is a gpio.PinOut driven by plain functions, typically the methods of
// a machine.Pin or a PWM channel.
//
// Only Out and PWM are functional; the rest of gpio.PinOut reports an
// invalid pin.
type Pin struct {
	gpio.PinOut
	name string
	set  func(high bool)
	duty func(d gpio.Duty, f physic.Frequency) error
}

// NewPin returns an output pin calling set on every level change.
func NewPin(name string, set func(high bool)) *Pin {
	return &Pin{PinOut: gpio.INVALID, name: name, set: set}
}

// NewPWMPin returns a pin whose PWM calls are forwarded to duty.
func NewPWMPin(name string, duty func(d gpio.Duty, f physic.Frequency) error) *Pin {
	return &Pin{PinOut: gpio.INVALID, name: name, duty: duty}
}

func (p *Pin) String() string {
	return p.name
}

// Name returns the pin name.
func (p *Pin) Name() string {
	return p.name
}

// Out sets the pin level.
func (p *Pin) Out(l gpio.Level) error {
	if p.set == nil {
		return p.PinOut.Out(l)
	}
	p.set(bool(l))
	return nil
}

// PWM sets the pin duty cycle.
func (p *Pin) PWM(d gpio.Duty, f physic.Frequency) error {
	if p.duty == nil {
		return p.PinOut.PWM(d, f)
	}
	return p.duty(d, f)
}

// Orientation maps a TinyGo display rotation to the driver orientation.
func Orientation(r drivers.Rotation) ili9341.Orientation {
	switch r {
	case drivers.Rotation90:
		return ili9341.Rotate90
	case drivers.Rotation180:
		return ili9341.Rotate180
	case drivers.Rotation270:
		return ili9341.Rotate270
	default:
		return ili9341.Rotate0
	}
}

// Displayer is a frame buffered drivers.Displayer. SetPixel draws into
// memory and Display sends the whole frame.
type Displayer struct {
	dev *ili9341.Dev
	fb  *image565.Image
}

var _ drivers.Displayer = (*Displayer)(nil)

// NewDisplayer allocates a frame buffer matching the size of dev.
func NewDisplayer(dev *ili9341.Dev) *Displayer {
	return &Displayer{
		dev: dev,
		fb:  image565.NewImage(dev.Bounds()),
	}
}

// Size returns the display size in pixels.
func (d *Displayer) Size() (x, y int16) {
	w, h := d.dev.Size()
	return int16(w), int16(h)
}

// SetPixel sets a pixel in the frame buffer. Out of range pixels are
// ignored.
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetRGB565(int(x), int(y), image565.NewRGB565(c.R, c.G, c.B))
}

// Display sends the frame buffer to the panel.
func (d *Displayer) Display() error {
	return d.dev.Draw(d.fb.Rect, d.fb, image.Point{})
}

// FillScreen sets every pixel of the frame buffer to c.
func (d *Displayer) FillScreen(c color.RGBA) {
	ili9341.FillBuffer(d.fb.Pix, ili9341.PackColor(c.R, c.G, c.B))
}

// Package ili9341 controls an ILI9341 240x320 TFT LCD via 4-wire SPI.
//
// The ILI9341 is a 262K color TFT controller. This driver runs it in 16 bits
// per pixel (RGB565) mode with a separate PWM backlight.
//
// See the examples for how to use this package.
package ili9341

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/ili9341/image565"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Physical panel geometry at Rotate0.
const (
	columns = 240
	pages   = 320
)

var (
	// ErrPin is returned when driving the DC, RST or backlight pin fails.
	ErrPin = errors.New("ili9341: pin error")
	// ErrTransport is returned when a SPI transmission fails.
	ErrTransport = errors.New("ili9341: transport error")
)

// Orientation is the display rotation, clockwise from the default portrait
// orientation.
type Orientation uint8

// Supported orientations.
const (
	Rotate0 Orientation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (o Orientation) String() string {
	switch o {
	case Rotate0:
		return "Rotate0"
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// size returns the logical width and height seen by callers.
func (o Orientation) size() (w, h uint16) {
	if o == Rotate90 || o == Rotate270 {
		return pages, columns
	}
	return columns, pages
}

// madctl returns the memory access control value matching o.
func (o Orientation) madctl() byte {
	var v byte
	switch o {
	case Rotate90:
		v = madctlMX | madctlMV
	case Rotate180:
		v = madctlMY | madctlMX
	case Rotate270:
		v = madctlMY | madctlMV
	}
	return v | madctlBGR
}

// Opts is the configuration for the ILI9341 display.
type Opts struct {
	// Orientation is applied by Init. Default: Rotate0.
	Orientation Orientation

	// Backlight PWM scale. SetBacklight(BacklightMax) is full brightness.
	BacklightMax  uint16           // Default: 255
	BacklightFreq physic.Frequency // Default: 1kHz

	// MaxTxSize caps the bytes sent per SPI transaction. When zero, the
	// connection's conn.Limits is used if available, otherwise unlimited.
	MaxTxSize int
}

// DefaultOpts is the configuration used when nil is passed.
var DefaultOpts = Opts{
	Orientation:   Rotate0,
	BacklightMax:  255,
	BacklightFreq: physic.KiloHertz,
}

// Dev is the device handle for the ILI9341 display.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin: low = command, high = data
	rst gpio.PinOut // Reset pin, active low
	bl  gpio.PinOut // Backlight PWM pin (optional)

	orientation Orientation
	blMax       uint16
	blFreq      physic.Frequency
	maxTxSize   int

	sleep func(time.Duration)
	op    [1]byte
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new ILI9341 device connected via SPI and initializes it.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. Call LimitSpeed on the port beforehand to run slower.
//
// dc and rst must be output pins. bl drives the backlight through PWM and
// can be nil when the backlight is hard-wired.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc, rst, bl gpio.PinOut, opts *Opts) (*Dev, error) {
	// Serial write cycle is 100ns minimum.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ili9341: %w", err)
	}
	d, err := New(c, dc, rst, bl, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// New creates a device handle over an already connected bus.
//
// Unlike NewSPI, New does not talk to the hardware; call Init before
// drawing.
func New(c conn.Conn, dc, rst, bl gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if c == nil {
		return nil, errors.New("ili9341: connection is required")
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("ili9341: dc pin is required")
	}
	if rst == nil || rst == gpio.INVALID {
		return nil, errors.New("ili9341: rst pin is required")
	}
	if bl == gpio.INVALID {
		return nil, errors.New("ili9341: use nil for bl when the backlight is not controlled, do not use gpio.INVALID")
	}
	if opts.Orientation > Rotate270 {
		return nil, fmt.Errorf("ili9341: invalid orientation %s", opts.Orientation)
	}

	d := &Dev{
		c:           c,
		dc:          dc,
		rst:         rst,
		bl:          bl,
		orientation: opts.Orientation,
		blMax:       opts.BacklightMax,
		blFreq:      opts.BacklightFreq,
		maxTxSize:   opts.MaxTxSize,
		sleep:       time.Sleep,
	}
	if d.blMax == 0 {
		d.blMax = DefaultOpts.BacklightMax
	}
	if d.blFreq == 0 {
		d.blFreq = DefaultOpts.BacklightFreq
	}
	if d.maxTxSize == 0 {
		if l, ok := c.(conn.Limits); ok {
			d.maxTxSize = l.MaxTxSize()
		}
	}
	return d, nil
}

// Reset pulses the hardware reset line.
func (d *Dev) Reset() error {
	d.sleep(200 * time.Millisecond)
	if err := d.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("%w: failed to pull RST low: %w", ErrPin, err)
	}
	d.sleep(200 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("%w: failed to pull RST high: %w", ErrPin, err)
	}
	d.sleep(200 * time.Millisecond)
	return nil
}

// command is one register write: an opcode followed by its parameters.
type command struct {
	op   byte
	data []byte
}

// Power-up register values, in order, up to the pixel format.
var powerSequence = []command{
	{powerControlB, []byte{0x00, 0xC1, 0x30}},
	{powerOnSeqControl, []byte{0x64, 0x03, 0x12, 0x81}},
	{driverTimingControlA, []byte{0x85, 0x00, 0x79}},
	{powerControlA, []byte{0x39, 0x2C, 0x00, 0x34, 0x02}},
	{pumpRatioControl, []byte{0x20}},
	{driverTimingControlB, []byte{0x00, 0x00}},
	{powerControl1, []byte{0x1D}},
	{powerControl2, []byte{0x12}},
	{vcomControl1, []byte{0x33, 0x3F}},
	{vcomControl2, []byte{0x92}},
	{pixelFormatSet, []byte{0x55}}, // 16 bits per pixel
}

// Register values written after memory access control.
var timingSequence = []command{
	{frameControlNormalMode, []byte{0x00, 0x12}},
	{displayFunctionControl, []byte{0x0A, 0xA2}},
	{setTearScanline, []byte{0x02}},
}

var gammaSequence = []command{
	{enable3G, []byte{0x00}},
	{gammaSet, []byte{0x01}},
	{positiveGammaCorrection, []byte{
		0x0F, 0x22, 0x1C, 0x1B, 0x08, 0x0F, 0x48, 0xB8,
		0x34, 0x05, 0x0C, 0x09, 0x0F, 0x07, 0x00,
	}},
	{negativeGammaCorrection, []byte{
		0x00, 0x23, 0x24, 0x07, 0x10, 0x07, 0x38, 0x47,
		0x4B, 0x0A, 0x13, 0x06, 0x30, 0x38, 0x0F,
	}},
}

// Init resets the panel and sends the power-up sequence, leaving the
// display on with the backlight at full brightness.
//
// The first failure aborts the sequence and is returned as is; the panel
// is then in an unspecified state and Init can be retried.
func (d *Dev) Init() error {
	if err := d.Reset(); err != nil {
		return err
	}
	if err := d.writeCommand(sleepOut); err != nil {
		return err
	}
	if err := d.sendCommands(powerSequence); err != nil {
		return err
	}
	madctl := [1]byte{d.orientation.madctl()}
	if err := d.sendCommands([]command{{memoryAccessControl, madctl[:]}}); err != nil {
		return err
	}
	if err := d.sendCommands(timingSequence); err != nil {
		return err
	}
	if err := d.writeCommand(displayOn); err != nil {
		return err
	}
	if err := d.sendCommands(gammaSequence); err != nil {
		return err
	}
	return d.SetBacklight(d.blMax)
}

// sendCommands writes each opcode followed by its parameters, one data
// write per parameter byte.
func (d *Dev) sendCommands(cmds []command) error {
	for _, c := range cmds {
		if err := d.writeCommand(c.op); err != nil {
			return err
		}
		for i := range c.data {
			if err := d.writeData(c.data[i : i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// DisplayOn leaves the display off state.
func (d *Dev) DisplayOn() error {
	return d.writeCommand(displayOn)
}

// DisplayOff blanks the display. Memory content is kept.
func (d *Dev) DisplayOff() error {
	return d.writeCommand(displayOff)
}

// EnterSleep puts the panel in sleep mode.
func (d *Dev) EnterSleep() error {
	return d.writeCommand(enterSleepMode)
}

// LeaveSleep wakes the panel from sleep mode.
func (d *Dev) LeaveSleep() error {
	return d.writeCommand(sleepOut)
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if invert {
		return d.writeCommand(displayInversionOn)
	}
	return d.writeCommand(displayInversionOff)
}

// SetBacklight sets the backlight brightness, from 0 (off) to
// Opts.BacklightMax. Larger values are clamped.
//
// It is a no-op when no backlight pin was provided.
func (d *Dev) SetBacklight(level uint16) error {
	if d.bl == nil {
		return nil
	}
	if level > d.blMax {
		level = d.blMax
	}
	duty := gpio.Duty(uint64(level) * uint64(gpio.DutyMax) / uint64(d.blMax))
	if err := d.bl.PWM(duty, d.blFreq); err != nil {
		return fmt.Errorf("%w: failed to set backlight: %w", ErrPin, err)
	}
	return nil
}

// Size returns the logical width and height for the configured orientation.
func (d *Dev) Size() (w, h uint16) {
	return d.orientation.size()
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.Size()
	return image.Rect(0, 0, int(w), int(h))
}

// Draw draws src onto the display.
//
// The dst rectangle is clipped to the display bounds and sp is the point in
// src aligned with dst.Min. An *image565.Image whose rows are contiguous for
// the clipped area is streamed without conversion.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	r := dst.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	var pix []byte
	n := r.Dx() * r.Dy() * 2
	if img, ok := src.(*image565.Image); ok && img.Stride == r.Dx()*2 &&
		(image.Rectangle{Min: sp, Max: sp.Add(r.Size())}).In(img.Rect) {
		pix = img.Pix[img.PixOffset(sp.X, sp.Y):][:n]
	} else {
		buf := image565.NewImage(image.Rectangle{Max: r.Size()})
		draw.Draw(buf, buf.Rect, src, sp, draw.Src)
		pix = buf.Pix
	}
	return d.DrawSprite(uint16(r.Min.X), uint16(r.Min.Y), uint16(r.Dx()), uint16(r.Dy()), pix)
}

// Halt turns the display and the backlight off.
func (d *Dev) Halt() error {
	if err := d.DisplayOff(); err != nil {
		return err
	}
	return d.SetBacklight(0)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	w, h := d.Size()
	return fmt.Sprintf("ili9341.Dev{%dx%d}", w, h)
}

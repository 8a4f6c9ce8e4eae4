// Package ili9341 controls an ILI9341 TFT LCD via 4-wire SPI.
//
// The ILI9341 drives 240×320 color panels such as the common 2.4" and 2.8"
// modules. This driver runs the controller in 16 bits per pixel (RGB565)
// mode and implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 240×320 pixels, 65K colors (RGB565)
// - Four orientations, selected before initialization
// - Hardware address window with auto-increment and wraparound
// - Sleep mode and display on/off
// - PWM backlight control
//
// # Hardware Connection
//
// Connect the ILI9341 display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	CLK         → SPI Clock (SCLK)
//	DIN/MOSI    → SPI Data (MOSI)
//	CS          → SPI Chip Select (or GND if always selected)
//	DC          → GPIO (any available pin)
//	RST         → GPIO (any available pin)
//	BL          → PWM capable GPIO (optional)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ili9341"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		b, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer b.Close()
//
//		dev, err := ili9341.NewSPI(b,
//			gpioreg.ByName("GPIO25"), // DC
//			gpioreg.ByName("GPIO27"), // RST
//			gpioreg.ByName("GPIO18"), // BL
//			&ili9341.Opts{Orientation: ili9341.Rotate90},
//		)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.Clear(ili9341.PackColor(0, 0, 64))
//		dev.DrawText(8, 8, "Hello, world!", 0xFFFF, ili9341.PackColor(0, 0, 64), 2)
//	}
//
// # Drawing
//
// Every drawing operation selects an address window on the controller and
// streams pixels into it, two bytes per pixel, high byte first.
//
// FillRect and Clear stream a solid color:
//
//	dev.FillRect(10, 10, 100, 50, ili9341.PackColor(255, 0, 0))
//
// DrawSprite streams raw pixel data. The buffer must hold exactly 2*w*h
// bytes; this is not checked:
//
//	sprite := make([]byte, 16*16*2)
//	ili9341.FillBuffer(sprite, 0x07E0)
//	dev.DrawSprite(0, 0, 16, 16, sprite)
//
// Draw accepts any image.Image. An *image565.Image is already in wire
// format and is sent without conversion:
//
//	img := image565.NewImage(dev.Bounds())
//	draw.Draw(img, img.Bounds(), photo, image.Point{}, draw.Src)
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Text
//
// DrawText renders printable ASCII with a built-in 8×8 font, scaled by 1,
// 2, 4 or 8. Build with the ili9341_notext tag to leave the font out.
//
// # Errors
//
// Failures to drive a pin wrap ErrPin, failures to write to the bus wrap
// ErrTransport. Multi-step operations stop at the first failure.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
package ili9341

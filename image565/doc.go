// Package image565 provides a 16-bit RGB565 image format for the ILI9341
// display controller.
//
// The ILI9341 in 16 bits per pixel mode expects each pixel as two bytes,
// high byte first, packing 5 bits of red, 6 bits of green and 5 bits of
// blue:
//
//	bit:   15 ... 11 | 10 ... 5 | 4 ... 0
//	       R4 ... R0 | G5 ... G0| B4 ... B0
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0       1
//	Values: 0xF800  0x07E0  (red, green)
//	Bytes:  0xF8 0x00 0x07 0xE0
//
// Image stores its pixels in exactly this order, so its Pix slice can be
// streamed to the display unchanged.
//
// Example usage:
//
//	// Create a 240x320 image
//	img := image565.NewImage(image.Rect(0, 0, 240, 320))
//
//	// Set a pixel to pure red
//	img.SetRGB565(10, 20, image565.NewRGB565(0xFF, 0, 0))
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package image565

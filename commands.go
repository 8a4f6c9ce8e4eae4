package ili9341

// Command opcodes understood by the ILI9341 controller.
//
// Datasheet: ILI9341 a-Si TFT LCD Single Chip Driver, section 8.
const (
	enterSleepMode          = 0x10 // SLPIN
	sleepOut                = 0x11 // SLPOUT
	displayInversionOff     = 0x20 // INVOFF
	displayInversionOn      = 0x21 // INVON
	gammaSet                = 0x26 // GAMSET
	displayOff              = 0x28 // DISPOFF
	displayOn               = 0x29 // DISPON
	columnAddressSet        = 0x2A // CASET
	pageAddressSet          = 0x2B // PASET
	memoryWrite             = 0x2C // RAMWR
	memoryAccessControl     = 0x36 // MADCTL
	pixelFormatSet          = 0x3A // COLMOD
	setTearScanline         = 0x44 // STE
	frameControlNormalMode  = 0xB1 // FRMCTR1
	displayFunctionControl  = 0xB6 // DISCTRL
	powerControl1           = 0xC0 // PWCTR1
	powerControl2           = 0xC1 // PWCTR2
	vcomControl1            = 0xC5 // VMCTR1
	vcomControl2            = 0xC7 // VMCTR2
	powerControlA           = 0xCB
	powerControlB           = 0xCF
	positiveGammaCorrection = 0xE0 // PGAMCTRL
	negativeGammaCorrection = 0xE1 // NGAMCTRL
	driverTimingControlA    = 0xE8
	driverTimingControlB    = 0xEA
	powerOnSeqControl       = 0xED
	enable3G                = 0xF2
	pumpRatioControl        = 0xF7
)

// Memory access control (MADCTL) bits.
const (
	madctlMY  = 0x80 // Row address order
	madctlMX  = 0x40 // Column address order
	madctlMV  = 0x20 // Row/column exchange
	madctlBGR = 0x08 // BGR color filter panel
)

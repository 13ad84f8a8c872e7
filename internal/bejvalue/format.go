package bejvalue

// Principal BEJ data types — the 4-bit format nibble SFLV.Format carries,
// per DSP0218 (5.3.7), mirroring original_source/include/decode.h's
// BEJ_FORMAT_* constants.
const (
	FormatSet                uint8 = 0x00
	FormatArray              uint8 = 0x01
	FormatNull               uint8 = 0x02
	FormatInteger            uint8 = 0x03
	FormatEnum               uint8 = 0x04
	FormatString             uint8 = 0x05
	FormatReal               uint8 = 0x06
	FormatBoolean            uint8 = 0x07
	FormatByteString         uint8 = 0x08
	FormatChoice             uint8 = 0x09
	FormatPropertyAnnotation uint8 = 0x0A
	FormatRegistryItem       uint8 = 0x0B
)

package mnist

import (
	"encoding/binary"
	"fmt"
)

type imageHeader struct {
	Magic uint32
	Count uint32
	Rows  uint32
	Cols  uint32
}

type labelHeader struct {
	Magic uint32
	Count uint32
}

// headerWord returns the big-endian 32-bit word at the given zero-based
// word index. The stored format is big-endian regardless of host order.
// No bounds check: callers must have verified that buf holds at least
// 4*(word+1) bytes.
func headerWord(buf []byte, word int) uint32 {
	return binary.BigEndian.Uint32(buf[4*word:])
}

func readImageHeader(data []byte) (imageHeader, error) {
	if len(data) < imageHeaderSize {
		return imageHeader{}, fmt.Errorf("%w: %d bytes is too short for an image header", ErrInvalidHeader, len(data))
	}
	return imageHeader{
		Magic: headerWord(data, 0),
		Count: headerWord(data, 1),
		Rows:  headerWord(data, 2),
		Cols:  headerWord(data, 3),
	}, nil
}

func readLabelHeader(data []byte) (labelHeader, error) {
	if len(data) < labelHeaderSize {
		return labelHeader{}, fmt.Errorf("%w: %d bytes is too short for a label header", ErrInvalidHeader, len(data))
	}
	return labelHeader{
		Magic: headerWord(data, 0),
		Count: headerWord(data, 1),
	}, nil
}

package checksum

import (
	"github.com/pkg/errors"
	"github.com/snksoft/crc"
)

// Params is CRC-16/CCITT-FALSE: poly 0x1021, init 0xFFFF, no reflection, no final XOR.
var Params = &crc.Parameters{
	Width:      16,
	Polynomial: 0x1021,
	Init:       0xFFFF,
	ReflectIn:  false,
	ReflectOut: false,
	FinalXor:   0x0,
}

// TrailerLen is the number of bytes at the end of a block that hold its checksum.
const TrailerLen = 2

var ErrTooShort = errors.New("block shorter than checksum trailer")

var table = crc.NewTable(Params)

func Compute(data []byte) uint16 {
	return uint16(table.CalculateCRC(data))
}

// Block returns the checksum of data with its trailer excluded.
func Block(data []byte) (uint16, error) {
	if len(data) < TrailerLen {
		return 0, errors.Wrapf(ErrTooShort, "got %d bytes", len(data))
	}
	return Compute(data[:len(data)-TrailerLen]), nil
}

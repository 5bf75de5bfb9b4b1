package memory

import (
	"math"
	"unicode/utf16"
)

func BytesToUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func BytesToUint64(b []byte) uint64 {
	return uint64(BytesToUint32(b[:4])) | uint64(BytesToUint32(b[4:8]))<<32
}

// CString cuts buf at the first NUL.
func CString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// UTF16String decodes little-endian UTF-16 up to the first NUL code unit.
func UTF16String(buf []byte) string {
	units := make([]uint16, 0, len(buf)/2)
	for i := 0; i+1 < len(buf); i += 2 {
		u := uint16(buf[i]) | uint16(buf[i+1])<<8
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units))
}

func IsValidPtr(ptr uint64) bool {
	return ptr >= 0x10000 && ptr < 0x7FFFFFFFFFFF
}

func IsValidCoord(val float32) bool {
	if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
		return false
	}
	return val > -100000 && val < 100000 && val != 0
}

func CalculateDistance(x1, y1, z1, x2, y2, z2 float32) float32 {
	dx := x2 - x1
	dy := y2 - y1
	dz := z2 - z1
	return float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz)))
}

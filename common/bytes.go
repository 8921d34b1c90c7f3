package common

import "github.com/nspcc-dev/neo-go/pkg/interop/util"

// BytesEqual compares two slice of bytes by wrapping them into strings,
// which is necessary with new util.Equal interop behaviour, see neo-go#1176.
func BytesEqual(a []byte, b []byte) bool {
	return util.Equals(string(a), string(b))
}

// PadBytes returns a copy of b right-padded with zero bytes up to n bytes.
// b must not be longer than n.
func PadBytes(b []byte, n int) []byte {
	res := []byte{}
	res = append(res, b...)
	for len(res) < n {
		res = append(res, 0)
	}

	return res
}

// TrimZeros cuts trailing zero bytes of the fixed-width value.
func TrimZeros(b []byte) []byte {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}

	return b[:n]
}

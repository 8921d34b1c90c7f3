package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// MaxAmount is the upper bound of every accumulated counter and fee.
// NeoVM integers are unbounded, so overflow is checked against it explicitly.
const MaxAmount = 9_223_372_036_854_775_807

// ErrOverflow is thrown by CheckedAdd and CheckedMulAdd.
const ErrOverflow = "arithmetic overflow"

// CheckedAdd returns a+b and panics with msg if the result exceeds
// MaxAmount. Both operands must be non-negative.
func CheckedAdd(a, b int, msg string) int {
	if a > MaxAmount-b {
		panic(msg)
	}
	return a + b
}

// CheckedMulAdd returns base+x*y and panics with msg if any intermediate
// result exceeds MaxAmount. All operands must be non-negative.
func CheckedMulAdd(base, x, y int, msg string) int {
	if x != 0 && y > MaxAmount/x {
		panic(msg)
	}
	return CheckedAdd(base, x*y, msg)
}

// AbortWithMessage calls `runtime.Log` with passed message
// and calls `ABORT` opcode.
func AbortWithMessage(msg string) {
	runtime.Log(msg)
	util.Abort()
}

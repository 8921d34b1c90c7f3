// Package nep11recv is a parcel token receiver used in tests. It keeps the
// last accepted payment and aborts all of them once rejection is switched on.
package nep11recv

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Receipt describes the last accepted parcel token.
type Receipt struct {
	Token   interop.Hash160
	From    interop.Hash160
	TokenID []byte
	Data    any
}

const (
	receiptKey = "r"
	rejectKey  = "x"
)

func SetReject(reject bool) {
	ctx := storage.GetContext()
	if reject {
		storage.Put(ctx, rejectKey, true)
		return
	}
	storage.Delete(ctx, rejectKey)
}

func OnNEP11Payment(from interop.Hash160, amount int, tokenID []byte, data any) {
	if amount != 1 {
		panic("parcel tokens are not divisible")
	}
	ctx := storage.GetContext()
	if storage.Get(ctx, rejectKey) != nil {
		panic("parcel token rejected")
	}
	storage.Put(ctx, receiptKey, std.Serialize(Receipt{
		Token:   runtime.GetCallingScriptHash(),
		From:    from,
		TokenID: tokenID,
		Data:    data,
	}))
}

func LastReceipt() Receipt {
	val := storage.Get(storage.GetReadOnlyContext(), receiptKey)
	if val == nil {
		return Receipt{}
	}
	return std.Deserialize(val.([]byte)).(Receipt)
}

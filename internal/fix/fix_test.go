package fix

import (
	"bytes"
	"fmt"
)

func buildMessage(body ...Field) []byte {
	return AppendMessage(nil, "FIX.4.2", body...)
}

func orderMessage(msgType, qty string) []byte {
	return buildMessage(
		NewField(MsgTypeTag, msgType),
		NewField(49, "SENDER"),
		NewField(56, "TARGET"),
		NewField(34, "12"),
		NewField(OrderQtyTag, qty),
		NewField(54, "1"),
		NewField(58, "note with = sign"),
	)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func sampleStream(n int) []byte {
	var buf []byte
	types := []string{"8", "D", "8", "0", "F"}
	for i := 0; i < n; i++ {
		buf = append(buf, orderMessage(types[i%len(types)], fmt.Sprintf("%d", i*10+1))...)
	}
	return buf
}

package fix

import "strconv"

// NewField creates a field holding a copy of value.
func NewField(tag int, value string) Field {
	return Field{Tag: tag, Value: []byte(value)}
}

// AppendMessage appends one complete message to dst: BeginString, BodyLength,
// the body fields in order, then the CheckSum field.
func AppendMessage(dst []byte, beginString string, body ...Field) []byte {
	start := len(dst)

	bodyLen := 0
	for _, f := range body {
		bodyLen += len(strconv.Itoa(f.Tag)) + 1 + len(f.Value) + 1
	}

	dst = appendField(dst, BeginStringTag, []byte(beginString))
	dst = appendField(dst, BodyLengthTag, strconv.AppendInt(nil, int64(bodyLen), 10))
	for _, f := range body {
		dst = appendField(dst, f.Tag, f.Value)
	}

	return appendField(dst, ChecksumTag, Checksum(dst[start:]))
}

// Checksum renders the byte sum of b modulo 256 as three digits.
func Checksum(b []byte) []byte {
	var sum uint
	for _, c := range b {
		sum += uint(c)
	}
	sum %= 256
	return []byte{byte('0' + sum/100), byte('0' + sum/10%10), byte('0' + sum%10)}
}

func appendField(dst []byte, tag int, value []byte) []byte {
	dst = strconv.AppendInt(dst, int64(tag), 10)
	dst = append(dst, Separator)
	dst = append(dst, value...)
	return append(dst, Delimiter)
}

package fix

const (
	// Delimiter terminates every field value.
	Delimiter byte = 0x01
	// Separator splits a field's tag digits from its value.
	Separator byte = '='

	BeginStringTag = 8
	BodyLengthTag  = 9
	ChecksumTag    = 10
	MsgTypeTag     = 35
	OrderQtyTag    = 38

	// ChecksumLength is the fixed digit count of the checksum value. Framing
	// trusts it and never re-scans for the delimiter that follows it.
	ChecksumLength = 3

	ExecutionReport = "8"
)

// TerminatorMarker opens the trailing checksum field of every message.
const TerminatorMarker = "\x0110="

var terminatorMarker = []byte(TerminatorMarker)

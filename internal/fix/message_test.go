package fix

import (
	"testing"

	"github.com/3Red/FIXParser/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strategies(buf []byte) map[Strategy]Message {
	return map[Strategy]Message{
		StrategyFull:      NewFullMessage(buf),
		StrategySelective: NewSelectiveMessage(buf, MsgTypeTag, OrderQtyTag),
	}
}

func TestStrategiesAgreeOnWantedTags(t *testing.T) {
	testlog.Start(t)
	buf := concat(
		sampleStream(40),
		buildMessage(NewField(49, "X"), NewField(MsgTypeTag, "8")),
		buildMessage(NewField(OrderQtyTag, "77")),
		buildMessage(NewField(MsgTypeTag, ""), NewField(OrderQtyTag, "")),
		buildMessage(NewField(135, "8"), NewField(138, "9"), NewField(MsgTypeTag, "G")),
	)

	full := NewFullMessage(buf)
	selective := NewSelectiveMessage(buf, MsgTypeTag, OrderQtyTag)

	f := NewFramer(buf)
	count := 0
	for span := f.Next(); span.IsValid(); span = f.Next() {
		require.NoError(t, full.Reset(span))
		require.NoError(t, selective.Reset(span))
		for _, tag := range []int{MsgTypeTag, OrderQtyTag} {
			fv, fok := full.Find(tag)
			sv, sok := selective.Find(tag)
			assert.Equal(t, fok, sok, "span %+v tag %d", span, tag)
			assert.Equal(t, string(fv), string(sv), "span %+v tag %d", span, tag)
		}
		count++
	}
	assert.Equal(t, 44, count)
}

func TestFindIsIdempotent(t *testing.T) {
	testlog.Start(t)
	buf := orderMessage("8", "250")
	for name, msg := range strategies(buf) {
		require.NoError(t, msg.Reset(NewFramer(buf).Next()), name)
		first, ok1 := msg.Find(OrderQtyTag)
		second, ok2 := msg.Find(OrderQtyTag)
		assert.True(t, ok1 && ok2, name)
		assert.Equal(t, "250", string(first), name)
		assert.Equal(t, string(first), string(second), name)
	}
}

func TestFirstDuplicateWins(t *testing.T) {
	testlog.Start(t)
	buf := buildMessage(
		NewField(MsgTypeTag, "8"),
		NewField(OrderQtyTag, "10"),
		NewField(OrderQtyTag, "20"),
		NewField(MsgTypeTag, "D"),
	)
	for name, msg := range strategies(buf) {
		require.NoError(t, msg.Reset(NewFramer(buf).Next()), name)
		qty, ok := msg.Find(OrderQtyTag)
		require.True(t, ok, name)
		assert.Equal(t, "10", string(qty), name)
		typ, _ := msg.Find(MsgTypeTag)
		assert.Equal(t, "8", string(typ), name)
	}
}

func TestResetDiscardsPreviousSpan(t *testing.T) {
	testlog.Start(t)
	buf := concat(orderMessage("8", "100"), buildMessage(NewField(49, "ONLY")))
	for name, msg := range strategies(buf) {
		f := NewFramer(buf)
		require.NoError(t, msg.Reset(f.Next()), name)
		_, ok := msg.Find(OrderQtyTag)
		require.True(t, ok, name)

		require.NoError(t, msg.Reset(f.Next()), name)
		_, ok = msg.Find(OrderQtyTag)
		assert.False(t, ok, name)
		_, ok = msg.Find(MsgTypeTag)
		assert.False(t, ok, name)

		require.NoError(t, msg.Reset(f.Next()), name)
		assert.False(t, msg.IsValid(), name)
		_, ok = msg.Find(MsgTypeTag)
		assert.False(t, ok, name)
	}
}

func TestValuesAliasBuffer(t *testing.T) {
	testlog.Start(t)
	buf := orderMessage("8", "42")
	span := NewFramer(buf).Next()
	for name, msg := range strategies(buf) {
		require.NoError(t, msg.Reset(span), name)
		qty, _ := msg.Find(OrderQtyTag)
		require.Equal(t, "42", string(qty), name)
		assert.Equal(t, len(qty), cap(qty), "value must not extend into the next field")
		assert.Same(t, &buf[span.Begin+indexOf(buf[span.Begin:span.End], "38=")+3], &qty[0], name)
	}
}

func TestFullMessageParsesEveryField(t *testing.T) {
	testlog.Start(t)
	buf := buildMessage(NewField(MsgTypeTag, "8"), NewField(58, "a=b"), NewField(OrderQtyTag, "3"))
	msg := NewFullMessage(buf)
	require.NoError(t, msg.Reset(NewFramer(buf).Next()))

	fields := msg.Fields()
	require.Len(t, fields, 6)
	tags := make([]int, 0, len(fields))
	for _, f := range fields {
		tags = append(tags, f.Tag)
	}
	assert.Equal(t, []int{BeginStringTag, BodyLengthTag, MsgTypeTag, 58, OrderQtyTag, ChecksumTag}, tags)
	assert.Equal(t, "a=b", string(fields[3].Value))

	_, ok := msg.Find(9999)
	assert.False(t, ok)
}

func TestFullMessageMalformedTag(t *testing.T) {
	testlog.Start(t)
	buf := []byte("8=FIX.4.2\x01X5=8\x0138=1\x0110=000\x01")
	msg := NewFullMessage(buf)
	err := msg.Reset(NewFramer(buf).Next())
	require.ErrorIs(t, err, ErrMalformedTag)
	assert.Empty(t, msg.Fields())

	buf = []byte("8=FIX.4.2\x01garbage\x0110=000\x01")
	msg = NewFullMessage(buf)
	require.ErrorIs(t, msg.Reset(NewFramer(buf).Next()), ErrMalformedTag)
}

func TestSelectiveIgnoresUnwantedTags(t *testing.T) {
	testlog.Start(t)
	buf := orderMessage("8", "100")
	msg := NewSelectiveMessage(buf, OrderQtyTag, OrderQtyTag, MsgTypeTag)
	assert.Equal(t, []int{OrderQtyTag, MsgTypeTag}, msg.Tags())

	require.NoError(t, msg.Reset(NewFramer(buf).Next()))
	_, ok := msg.Find(49)
	assert.False(t, ok)
	_, ok = msg.Find(BeginStringTag)
	assert.False(t, ok)
}

func TestSelectiveDoesNotMatchTagSuffix(t *testing.T) {
	testlog.Start(t)
	buf := buildMessage(NewField(135, "8"), NewField(338, "5"))
	msg := NewSelectiveMessage(buf, MsgTypeTag, OrderQtyTag)
	require.NoError(t, msg.Reset(NewFramer(buf).Next()))
	_, ok := msg.Find(MsgTypeTag)
	assert.False(t, ok)
	_, ok = msg.Find(OrderQtyTag)
	assert.False(t, ok)
}

func TestSelectiveStopsOnceSatisfied(t *testing.T) {
	testlog.Start(t)
	// Tail is not a valid field; the scan must stop before reaching it.
	buf := []byte("35=8\x0138=9\x01\xff\xff\xff\x0110=000\x01")
	msg := NewSelectiveMessage(buf, MsgTypeTag, OrderQtyTag)
	require.NoError(t, msg.Reset(NewFramer(buf).Next()))
	qty, ok := msg.Find(OrderQtyTag)
	require.True(t, ok)
	assert.Equal(t, "9", string(qty))

	full := NewFullMessage(buf)
	assert.ErrorIs(t, full.Reset(NewFramer(buf).Next()), ErrMalformedTag)
}

func TestNewMessage(t *testing.T) {
	buf := orderMessage("8", "1")

	m, err := NewMessage(StrategyFull, buf)
	require.NoError(t, err)
	assert.IsType(t, &FullMessage{}, m)

	m, err = NewMessage(StrategySelective, buf, MsgTypeTag)
	require.NoError(t, err)
	assert.IsType(t, &SelectiveMessage{}, m)

	_, err = NewMessage(StrategySelective, buf)
	assert.ErrorIs(t, err, ErrNoWantedTags)

	_, err = NewMessage("regex", buf)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy(" FULL ")
	require.NoError(t, err)
	assert.Equal(t, StrategyFull, s)

	s, err = ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategySelective, s)

	_, err = ParseStrategy("lazy")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func indexOf(b []byte, sub string) int {
	for i := 0; i+len(sub) <= len(b); i++ {
		if string(b[i:i+len(sub)]) == sub {
			return i
		}
	}
	return -1
}

package fix_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tradewire/go-fix/dictionary"
	"github.com/tradewire/go-fix/fix"
)

func newOrderMessage() *fix.Message {
	msg := fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
	msg.Header.Set(fix.FieldMsgType, fix.String("D"))
	msg.Header.Set(fix.FieldMsgSeqNum, fix.Int(7))
	msg.Header.Set(fix.FieldSenderCompID, fix.String("K1"))
	msg.Header.Set(fix.FieldTargetCompID, fix.String("Coinbase"))
	msg.Header.Set(fix.FieldSendingTime, fix.String("20240101-00:00:00.000"))

	msg.Body.Set("ClOrdID", fix.String("order-1"))
	msg.Body.Set("Symbol", fix.String("BTC-USD"))
	msg.Body.Set("Side", fix.String("1"))
	msg.Body.Set("OrderQty", fix.Decimal(decimal.RequireFromString("0.5000")))
	msg.Body.Set("Price", fix.Decimal(decimal.RequireFromString("42000.01")))

	return msg
}

// segments splits a wire message into its tag=value segments, dropping the
// empty segment after the trailing SOH.
func segments(t *testing.T, wire []byte) []string {
	t.Helper()

	parts := strings.Split(string(wire), fix.SOH)
	require.NotEmpty(t, parts)
	require.Equal(t, "", parts[len(parts)-1], "wire message must end with SOH")

	return parts[:len(parts)-1]
}

func TestEncode_FieldOrdering(t *testing.T) {
	require := require.New(t)

	dict := dictionary.FIX42()
	wire, err := fix.Encode(newOrderMessage(), dict)
	require.NoError(err)

	segs := segments(t, wire)
	require.GreaterOrEqual(len(segs), 4)

	require.Equal("8=FIX.4.2", segs[0])
	require.True(strings.HasPrefix(segs[1], "9="), "second field must be BodyLength, got %s", segs[1])
	require.Equal("35=D", segs[2], "MsgType must be the third field on the wire")
	require.True(strings.HasPrefix(segs[len(segs)-1], "10="), "last field must be CheckSum")

	// remaining fields are emitted in ascending tag order
	prev := -1
	for _, seg := range segs[3 : len(segs)-1] {
		eq := strings.IndexByte(seg, '=')
		require.Positive(eq)
		tag, err := strconv.Atoi(seg[:eq])
		require.NoError(err)
		require.Greater(tag, prev, "tags must be ascending, got segment %s", seg)
		prev = tag
	}
}

func TestEncode_BodyLength(t *testing.T) {
	require := require.New(t)

	dict := dictionary.FIX42()

	tests := []struct {
		description string
		message     *fix.Message
	}{
		{
			description: "order message",
			message:     newOrderMessage(),
		},
		{
			description: "empty body",
			message: func() *fix.Message {
				msg := fix.NewMessage()
				msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
				msg.Header.Set(fix.FieldMsgType, fix.String("0"))
				return msg
			}(),
		},
	}

	for _, test := range tests {
		wire, err := fix.Encode(test.message, dict)
		require.NoError(err, test.description)

		s := string(wire)
		segs := segments(t, wire)
		declared, err := strconv.Atoi(strings.TrimPrefix(segs[1], "9="))
		require.NoError(err, test.description)

		// the counted segment runs from after the BodyLength terminator to
		// the start of the checksum field, terminators inclusive
		start := len(segs[0]) + 1 + len(segs[1]) + 1
		end := strings.LastIndex(s, "10=")
		require.Equal(end-start, declared, test.description)
	}
}

func TestEncode_Checksum(t *testing.T) {
	require := require.New(t)

	dict := dictionary.FIX42()

	tests := []struct {
		description string
		message     *fix.Message
	}{
		{description: "order message", message: newOrderMessage()},
		{
			description: "empty body",
			message: func() *fix.Message {
				msg := fix.NewMessage()
				msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
				msg.Header.Set(fix.FieldMsgType, fix.String("0"))
				return msg
			}(),
		},
	}

	for _, test := range tests {
		wire, err := fix.Encode(test.message, dict)
		require.NoError(err, test.description)

		s := string(wire)
		trailerStart := strings.LastIndex(s, "10=")
		require.Positive(trailerStart, test.description)

		var sum int
		for i := 0; i < trailerStart; i++ {
			sum += int(s[i])
		}

		require.Equal("10=", s[trailerStart:trailerStart+3], test.description)
		declared := s[trailerStart+3 : len(s)-1]
		require.Len(declared, 3, test.description)

		want, err := strconv.Atoi(declared)
		require.NoError(err, test.description)
		require.Equal(sum%256, want, test.description)
	}
}

func TestEncode_GroupFlattening(t *testing.T) {
	require := require.New(t)

	dict := dictionary.FIX42()

	msg := fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
	msg.Header.Set(fix.FieldMsgType, fix.String("D"))
	msg.Body.Set("NoOrders", fix.GroupOf(
		fix.Element{
			{Name: "ClOrdID", Value: fix.String("a-1")},
			{Name: "Symbol", Value: fix.String("BTC-USD")},
		},
		fix.Element{
			{Name: "ClOrdID", Value: fix.String("a-2")},
			{Name: "Symbol", Value: fix.String("ETH-USD")},
		},
	))

	wire, err := fix.Encode(msg, dict)
	require.NoError(err)

	segs := segments(t, wire)
	idx := -1
	for i, seg := range segs {
		if seg == "73=2" {
			idx = i
			break
		}
	}
	require.Positive(idx, "count field 73=2 must be present")
	require.Equal([]string{"73=2", "11=a-1", "55=BTC-USD", "11=a-2", "55=ETH-USD"}, segs[idx:idx+5],
		"group elements must follow the count field in element order")

	// decoding does not re-nest the group: the consumer receives flat fields
	decoded, err := fix.Decode(wire, dict)
	require.NoError(err)
	require.Equal("2", decoded.Body.GetString("NoOrders"))
	require.Equal(fix.KindString, decoded.Body["NoOrders"].Kind())
}

func TestEncode_EmptyGroup(t *testing.T) {
	require := require.New(t)

	msg := fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
	msg.Header.Set(fix.FieldMsgType, fix.String("D"))
	msg.Body.Set("NoOrders", fix.GroupOf())

	wire, err := fix.Encode(msg, dictionary.FIX42())
	require.NoError(err)
	require.Contains(string(wire), "73=0"+fix.SOH, "an empty group still emits a count field of 0")
}

func TestEncode_NestedGroups(t *testing.T) {
	require := require.New(t)

	msg := fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
	msg.Header.Set(fix.FieldMsgType, fix.String("D"))
	msg.Body.Set("NoOrders", fix.GroupOf(
		fix.Element{
			{Name: "ClOrdID", Value: fix.String("a-1")},
			{Name: "NoOrders", Value: fix.GroupOf(
				fix.Element{{Name: "Symbol", Value: fix.String("BTC-USD")}},
			)},
		},
	))

	wire, err := fix.Encode(msg, dictionary.FIX42())
	require.NoError(err)
	require.Contains(string(wire),
		"73=1"+fix.SOH+"11=a-1"+fix.SOH+"73=1"+fix.SOH+"55=BTC-USD"+fix.SOH,
		"nested groups flatten recursively")
}

func TestEncode_UnknownField(t *testing.T) {
	require := require.New(t)

	msg := fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
	msg.Header.Set(fix.FieldMsgType, fix.String("D"))
	msg.Body.Set("NotARealField", fix.String("x"))

	_, err := fix.Encode(msg, dictionary.FIX42())
	require.ErrorIs(err, fix.ErrUnknownField)

	// unknown field inside a group element fails the same way
	msg = fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
	msg.Header.Set(fix.FieldMsgType, fix.String("D"))
	msg.Body.Set("NoOrders", fix.GroupOf(
		fix.Element{{Name: "NotARealField", Value: fix.String("x")}},
	))

	_, err = fix.Encode(msg, dictionary.FIX42())
	require.ErrorIs(err, fix.ErrUnknownField)
}

func TestEncode_MissingEnvelope(t *testing.T) {
	require := require.New(t)

	msg := fix.NewMessage()
	msg.Header.Set(fix.FieldMsgType, fix.String("D"))
	_, err := fix.Encode(msg, dictionary.FIX42())
	require.ErrorIs(err, fix.ErrMissingBeginString)

	msg = fix.NewMessage()
	msg.Header.Set(fix.FieldBeginString, fix.String("FIX.4.2"))
	_, err = fix.Encode(msg, dictionary.FIX42())
	require.ErrorIs(err, fix.ErrMissingMsgType)
}

func TestDecode_SectionRouting(t *testing.T) {
	require := require.New(t)

	dict := dictionary.FIX42()
	wire := strings.Join([]string{
		"8=FIX.4.2", "9=42", "35=8", "34=3", "49=Coinbase", "56=K1",
		"37=srv-1", "39=0", "55=BTC-USD", "10=123", "",
	}, fix.SOH)

	msg, err := fix.Decode([]byte(wire), dict)
	require.NoError(err)

	require.Equal("FIX.4.2", msg.Header.GetString(fix.FieldBeginString))
	require.Equal("8", msg.Header.GetString(fix.FieldMsgType))
	require.Equal("3", msg.Header.GetString(fix.FieldMsgSeqNum))
	require.Equal("123", msg.Trailer.GetString(fix.FieldCheckSum))
	require.Equal("srv-1", msg.Body.GetString("OrderID"))
	require.Equal("0", msg.Body.GetString("OrdStatus"))
	require.Equal("BTC-USD", msg.Body.GetString("Symbol"))

	// body does not leak header or trailer fields
	_, ok := msg.Body.Get(fix.FieldBeginString)
	require.False(ok)
	_, ok = msg.Body.Get(fix.FieldCheckSum)
	require.False(ok)
}

func TestDecode_MalformedAndUnknownTags(t *testing.T) {
	require := require.New(t)

	dict := dictionary.FIX42()
	wire := "8=FIX.4.2" + fix.SOH + "35=0" + fix.SOH + "bogus=x" + fix.SOH + "99999=y" + fix.SOH

	msg, err := fix.Decode([]byte(wire), dict)
	require.NoError(err)

	// malformed tag keeps its raw string key rather than failing the message
	require.Equal("x", msg.Body.GetString("bogus"))
	// unmapped numeric tag passes through keyed by its decimal string
	require.Equal("y", msg.Body.GetString("99999"))
}

func TestDecode_Empty(t *testing.T) {
	_, err := fix.Decode(nil, dictionary.FIX42())
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	require := require.New(t)

	dict := dictionary.FIX42()
	msg := newOrderMessage()

	wire, err := fix.Encode(msg, dict)
	require.NoError(err)

	decoded, err := fix.Decode(wire, dict)
	require.NoError(err)

	for name, v := range msg.Body {
		require.Equal(v.Wire(), decoded.Body.GetString(name), "body field %s", name)
	}
	for name, v := range msg.Header {
		if name == fix.FieldBodyLength {
			continue
		}
		require.Equal(v.Wire(), decoded.Header.GetString(name), "header field %s", name)
	}
}

// Package encoder serializes a FIX 4.4 message from a structured field
// set into a correctly framed, checksummed byte sequence.
package encoder

import (
	"strconv"

	"github.com/rshearer/fix44/fix"
)

const soh = 0x01

var beginString = []byte("FIX.4.4")

// Params describes one message to build. MsgType is required (Build fails
// with MissingMsgType when it is empty); SenderCompID, TargetCompID and
// MsgSeqNum are emitted as given and are not checked. SendingTime is
// optional and is filled from the Encoder's clock when empty. BodyFields are emitted in
// the order given and must not include a reserved header/trailer tag.
type Params struct {
	MsgType      string
	SenderCompID string
	TargetCompID string
	MsgSeqNum    int64
	SendingTime  string
	BodyFields   []fix.RawField
}

// Encoder builds FIX 4.4 byte sequences. An Encoder instance is not safe
// for concurrent use by multiple goroutines at once.
type Encoder struct {
	clock fix.Clock
}

// Option configures an Encoder at construction time.
type Option func(*Encoder)

// WithClock overrides the Encoder's time source, used to fill
// SendingTime when a caller omits it. Default: fix.SystemClock.
func WithClock(c fix.Clock) Option {
	return func(e *Encoder) { e.clock = c }
}

// New builds an Encoder with the given options applied over the default
// (SystemClock).
func New(opts ...Option) *Encoder {
	e := &Encoder{clock: fix.SystemClock}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build serializes p into a freshly allocated byte slice with correctly
// computed BodyLength and CheckSum.
func (e *Encoder) Build(p Params) ([]byte, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}

	sendingTime := p.SendingTime
	if sendingTime == "" {
		sendingTime = fix.FormatUTCTimestamp(e.clock.Now())
	}

	body := make([]byte, 0, 128+len(p.BodyFields)*16)
	body = appendField(body, fix.TagMsgType, []byte(p.MsgType))
	body = appendField(body, fix.TagSenderCompID, []byte(p.SenderCompID))
	body = appendField(body, fix.TagTargetCompID, []byte(p.TargetCompID))
	body = appendField(body, fix.TagMsgSeqNum, []byte(strconv.FormatInt(p.MsgSeqNum, 10)))
	body = appendField(body, fix.TagSendingTime, []byte(sendingTime))
	for _, f := range p.BodyFields {
		body = appendField(body, f.Tag, f.Value)
	}

	out := make([]byte, 0, len(body)+64)
	out = appendField(out, fix.TagBeginString, beginString)
	out = appendField(out, fix.TagBodyLength, []byte(strconv.Itoa(len(body))))
	out = append(out, body...)

	var sum byte
	for _, b := range out {
		sum += b
	}
	out = appendField(out, fix.TagCheckSum, []byte(pad3(int(sum))))

	return out, nil
}

// BuildInto serializes p into dst, returning the number of bytes written.
// It fails with BufferTooSmall rather than growing dst.
func (e *Encoder) BuildInto(dst []byte, p Params) (int, error) {
	out, err := e.Build(p)
	if err != nil {
		return 0, err
	}
	if len(dst) < len(out) {
		return 0, &fix.EncodeError{Kind: fix.KindBufferTooSmall}
	}
	copy(dst, out)
	return len(out), nil
}

func validateParams(p Params) error {
	if p.MsgType == "" {
		return &fix.EncodeError{Kind: fix.KindMissingMsgType}
	}
	for _, f := range p.BodyFields {
		if fix.IsHeaderTag(f.Tag) {
			return &fix.EncodeError{Kind: fix.KindReservedTagInBody, Tag: f.Tag}
		}
	}
	return nil
}

func appendField(dst []byte, tag fix.Tag, value []byte) []byte {
	dst = strconv.AppendUint(dst, uint64(tag), 10)
	dst = append(dst, '=')
	dst = append(dst, value...)
	dst = append(dst, soh)
	return dst
}

func pad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// HeartbeatParams builds the field set for a Heartbeat (MsgType "0").
func HeartbeatParams(sender, target string, seqNum int64) Params {
	return Params{MsgType: "0", SenderCompID: sender, TargetCompID: target, MsgSeqNum: seqNum}
}

// LogonParams builds the field set for a Logon (MsgType "A") with
// EncryptMethod 0, the given heartbeat interval, and ResetSeqNumFlag=Y
// when resetSeqNumFlag is set.
func LogonParams(sender, target string, seqNum int64, heartBtInt int, resetSeqNumFlag bool) Params {
	fields := []fix.RawField{
		{Tag: fix.TagEncryptMethod, Value: []byte("0")},
		{Tag: fix.TagHeartBtInt, Value: []byte(strconv.Itoa(heartBtInt))},
	}
	if resetSeqNumFlag {
		fields = append(fields, fix.RawField{Tag: fix.TagResetSeqNumFlag, Value: []byte("Y")})
	}
	return Params{MsgType: "A", SenderCompID: sender, TargetCompID: target, MsgSeqNum: seqNum, BodyFields: fields}
}

// LogoutParams builds the field set for a Logout (MsgType "5"), with an
// optional free-text reason.
func LogoutParams(sender, target string, seqNum int64, text string) Params {
	var fields []fix.RawField
	if text != "" {
		fields = append(fields, fix.RawField{Tag: fix.TagText, Value: []byte(text)})
	}
	return Params{MsgType: "5", SenderCompID: sender, TargetCompID: target, MsgSeqNum: seqNum, BodyFields: fields}
}

// NewOrderSingleParams builds the field set for a NewOrderSingle
// (MsgType "D") with the required order-entry tags.
func NewOrderSingleParams(sender, target string, seqNum int64, clOrdID, symbol string, side byte, orderQty string, transactTime string) Params {
	return Params{
		MsgType:      "D",
		SenderCompID: sender,
		TargetCompID: target,
		MsgSeqNum:    seqNum,
		BodyFields: []fix.RawField{
			{Tag: fix.TagClOrdID, Value: []byte(clOrdID)},
			{Tag: fix.TagHandlInst, Value: []byte("1")},
			{Tag: fix.TagSymbol, Value: []byte(symbol)},
			{Tag: fix.TagSide, Value: []byte{side}},
			{Tag: fix.TagTransactTime, Value: []byte(transactTime)},
			{Tag: fix.TagOrderQty, Value: []byte(orderQty)},
		},
	}
}

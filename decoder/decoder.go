// Package decoder implements the FIX 4.4 framing and field-scan algorithm:
// locating message boundaries inside a byte region, scanning tag=value
// fields without copying value bytes, and verifying integrity and
// dictionary conformance.
package decoder

import (
	"iter"
	"log/slog"

	"github.com/rshearer/fix44/fix"
)

const (
	soh = 0x01
	eq  = '='

	minMessageBytes = 20
	defaultMaxSize  = 1 << 20 // 1 MiB
)

var beginStringValue = []byte("FIX.4.4")

// DuplicatePolicy controls how the field scan treats a tag it has already
// seen in the current message.
type DuplicatePolicy int

const (
	// DuplicateLastWins keeps every occurrence in wire order; point
	// lookup (Message.Field) returns the last one. This is the default,
	// matching FIX's treatment of non-group duplicate tags.
	DuplicateLastWins DuplicatePolicy = iota
	// DuplicateStrict fails the scan with KindDuplicateField the moment
	// a repeated tag is seen.
	DuplicateStrict
)

// Decoder locates and scans FIX 4.4 messages within a byte region. A
// Decoder is not safe for concurrent use: it reuses a per-instance scratch
// accumulator across calls. Give each goroutine its own Decoder.
type Decoder struct {
	dict               *fix.Dictionary
	validateChecksum   bool
	validateDictionary bool
	maxMessageSize     int
	duplicatePolicy    DuplicatePolicy
	logger             *slog.Logger

	scratch []fix.FieldView
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithDictionary supplies the data dictionary used for MsgType and
// required-field validation. The default is a fresh fix.NewDictionary().
func WithDictionary(d *fix.Dictionary) Option {
	return func(dec *Decoder) { dec.dict = d }
}

// WithChecksumValidation enables or disables BodyLength/CheckSum
// verification. Default: enabled.
func WithChecksumValidation(enabled bool) Option {
	return func(dec *Decoder) { dec.validateChecksum = enabled }
}

// WithDictionaryValidation enables or disables MsgType/required-field
// verification. Default: enabled.
func WithDictionaryValidation(enabled bool) Option {
	return func(dec *Decoder) { dec.validateDictionary = enabled }
}

// WithMaxMessageSize bounds how far the end-of-message scan looks for the
// checksum trailer. A trailer that does not start within the bound fails
// with Truncated; one that starts within it but ends past it fails with
// MessageTooLarge. Default: 1 MiB.
func WithMaxMessageSize(n int) Option {
	return func(dec *Decoder) { dec.maxMessageSize = n }
}

// WithDuplicatePolicy selects how repeated non-group tags are handled.
// Default: DuplicateLastWins.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(dec *Decoder) { dec.duplicatePolicy = p }
}

// WithLogger attaches a structured logger used to record rejected
// messages at debug level. Default: no logging.
func WithLogger(l *slog.Logger) Option {
	return func(dec *Decoder) { dec.logger = l }
}

// New builds a Decoder with the given options applied over the defaults
// (checksum and dictionary validation on, 1 MiB max message size,
// last-wins duplicate policy, a fresh dictionary).
func New(opts ...Option) *Decoder {
	dec := &Decoder{
		dict:               fix.NewDictionary(),
		validateChecksum:   true,
		validateDictionary: true,
		maxMessageSize:     defaultMaxSize,
		duplicatePolicy:    DuplicateLastWins,
	}
	for _, opt := range opts {
		opt(dec)
	}
	return dec
}

// DecodeOne attempts to parse exactly one message starting at *cursor
// within region. On success, *cursor is advanced to the byte after the
// parsed message and the Message is returned. On any failure, *cursor is
// left unchanged and the returned Message is nil.
func (d *Decoder) DecodeOne(region []byte, cursor *int) (*fix.Message, error) {
	start := *cursor

	if len(region)-start < minMessageBytes {
		return nil, d.fail(fix.KindTruncated, 0, 0, nil)
	}

	end, err := d.locateMessageEnd(region, start)
	if err != nil {
		return nil, err
	}

	msg, err := d.scanAndVerify(region, start, end)
	if err != nil {
		return nil, err
	}

	*cursor = end
	return msg, nil
}

// DecodeAll returns a lazy, finite, non-restartable sequence of
// (Message, error) pairs obtained by applying DecodeOne repeatedly,
// starting at the beginning of region, until fewer than the minimum
// message bytes remain or a decode fails. A failure is yielded once and
// ends the sequence; the successful prefix has already been yielded.
func (d *Decoder) DecodeAll(region []byte) iter.Seq2[*fix.Message, error] {
	return func(yield func(*fix.Message, error) bool) {
		cursor := 0
		for len(region)-cursor >= minMessageBytes {
			msg, err := d.DecodeOne(region, &cursor)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(msg, nil) {
				return
			}
		}
	}
}

// locateMessageEnd scans forward from start for the "10=" checksum field
// and its trailing delimiter. The end position is the byte after that
// delimiter.
func (d *Decoder) locateMessageEnd(region []byte, start int) (int, error) {
	limit := len(region)
	if maxEnd := start + d.maxMessageSize; maxEnd < limit {
		limit = maxEnd
	}

	for i := start; i+3 <= limit; i++ {
		if region[i] != '1' || region[i+1] != '0' || region[i+2] != eq {
			continue
		}
		// "10=" only starts a field when it follows a delimiter (or is
		// the very first byte scanned); otherwise it's a coincidental
		// match inside a longer tag (e.g. 110) or inside a value.
		if i != start && region[i-1] != soh {
			continue
		}
		// Found "10="; the three checksum value bytes and a trailing
		// delimiter must follow within the region.
		valueEnd := i + 3 + 3
		if valueEnd >= len(region) {
			break
		}
		if region[valueEnd] != soh {
			continue
		}
		end := valueEnd + 1
		if end > start+d.maxMessageSize {
			return 0, d.fail(fix.KindMessageTooLarge, i-start, fix.TagCheckSum, nil)
		}
		return end, nil
	}
	return 0, d.fail(fix.KindTruncated, 0, 0, nil)
}

// scanAndVerify performs the field scan over [start, end), captures the
// header/trailer values, and runs the configured integrity and dictionary
// checks. The scratch accumulator is cleared first so a prior failure
// can't leak fields into this message.
func (d *Decoder) scanAndVerify(region []byte, start, end int) (*fix.Message, error) {
	d.scratch = d.scratch[:0]
	index := make(map[fix.Tag]int)

	var (
		checksumFieldPos = -1
		bodyLengthStart  = -1
		msgType          string
		bodyLengthValue  int64
		checksumValue    int64
		sawBeginString   bool
		sawBodyLength    bool
	)

	pos := start
	fieldIdx := 0
	for pos < end {
		fieldStart := pos

		eqIdx := -1
		for i := pos; i < end; i++ {
			if region[i] == eq {
				eqIdx = i
				break
			}
			if region[i] == soh {
				break
			}
		}
		if eqIdx < 0 {
			return nil, d.fail(fix.KindMalformedField, fieldStart-start, 0, nil)
		}

		tag, ok := parseTag(region[pos:eqIdx])
		if !ok {
			return nil, d.fail(fix.KindInvalidTag, fieldStart-start, 0, nil)
		}

		valueStart := eqIdx + 1
		delimIdx := -1
		for i := valueStart; i < end; i++ {
			if region[i] == soh {
				delimIdx = i
				break
			}
		}
		if delimIdx < 0 {
			return nil, d.fail(fix.KindMalformedField, fieldStart-start, tag, nil)
		}
		valueLen := delimIdx - valueStart

		if fieldIdx == 0 {
			if tag != fix.TagBeginString || string(region[valueStart:delimIdx]) != string(beginStringValue) {
				return nil, d.fail(fix.KindBadBeginString, fieldStart-start, tag, nil)
			}
			sawBeginString = true
		}
		if fieldIdx == 1 && tag != fix.TagBodyLength {
			return nil, d.fail(fix.KindMissingBodyLength, fieldStart-start, tag, nil)
		}

		if _, dup := index[tag]; dup {
			if d.duplicatePolicy == DuplicateStrict {
				return nil, d.fail(fix.KindDuplicateField, fieldStart-start, tag, nil)
			}
		}

		fv := fix.NewFieldView(tag, region, valueStart, valueLen)
		index[tag] = len(d.scratch)
		d.scratch = append(d.scratch, fv)

		switch tag {
		case fix.TagBodyLength:
			n, ok := parseUint(region[valueStart:delimIdx])
			if !ok {
				return nil, d.fail(fix.KindBadBodyLength, fieldStart-start, tag, nil)
			}
			bodyLengthValue = n
			bodyLengthStart = delimIdx + 1
			sawBodyLength = true
		case fix.TagMsgType:
			msgType = string(region[valueStart:delimIdx])
		case fix.TagCheckSum:
			n, ok := parseUint(region[valueStart:delimIdx])
			if !ok || valueLen != 3 {
				return nil, d.fail(fix.KindBadChecksum, fieldStart-start, tag, nil)
			}
			checksumValue = n
			checksumFieldPos = fieldStart
		}

		pos = delimIdx + 1
		fieldIdx++
	}

	if !sawBeginString {
		return nil, d.fail(fix.KindBadBeginString, 0, fix.TagBeginString, nil)
	}
	if !sawBodyLength {
		return nil, d.fail(fix.KindMissingBodyLength, 0, fix.TagBodyLength, nil)
	}
	lastTag := d.scratch[len(d.scratch)-1].Tag()
	if lastTag != fix.TagCheckSum {
		return nil, d.fail(fix.KindMissingChecksum, end-start, fix.TagCheckSum, nil)
	}

	if d.validateChecksum {
		measured := checksumFieldPos - bodyLengthStart
		if int64(measured) != bodyLengthValue {
			return nil, d.fail(fix.KindBadBodyLength, bodyLengthStart-start, fix.TagBodyLength, nil)
		}

		var sum byte
		for i := start; i < checksumFieldPos; i++ {
			sum += region[i]
		}
		if int64(sum) != checksumValue {
			return nil, d.fail(fix.KindBadChecksum, checksumFieldPos-start, fix.TagCheckSum, nil)
		}
	}

	if d.validateDictionary {
		if !d.dict.IsValidMsgType(msgType) {
			return nil, d.fail(fix.KindUnknownMsgType, 0, fix.TagMsgType, nil)
		}
		for _, req := range d.dict.RequiredFields(msgType) {
			if _, ok := index[req]; !ok {
				return nil, d.fail(fix.KindMissingRequiredField, 0, req, nil)
			}
		}
	}

	order := make([]fix.FieldView, len(d.scratch))
	copy(order, d.scratch)

	msg := fix.NewMessage(region[start:end], order, index, msgType, int(bodyLengthValue), int(checksumValue))
	return msg, nil
}

func (d *Decoder) fail(kind fix.ErrorKind, offset int, tag fix.Tag, cause error) error {
	err := &fix.DecodeError{Kind: kind, Offset: offset, Tag: tag, Err: cause}
	if d.logger != nil {
		d.logger.Debug("decode failed", "kind", kind.String(), "offset", offset, "tag", tag)
	}
	return err
}

func parseTag(b []byte) (fix.Tag, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint64(c-'0')
	}
	return fix.Tag(n), true
}

func parseUint(b []byte) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	var n int64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int64(c-'0')
	}
	return n, true
}

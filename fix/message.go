package fix

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Message is the parsed form of one FIX message: an ordered set of
// FieldViews over a backing byte region, plus the header/trailer values
// extracted during the scan. A Message is immutable and safe to share
// across goroutines for as long as its backing region is unmodified.
//
// Duplicate tags (outside of repeating groups, which this codec does not
// parse) follow last-occurrence-wins for point lookup; every occurrence,
// including earlier ones, remains reachable through All.
type Message struct {
	region     []byte
	order      []FieldView
	index      map[Tag]int
	msgType    string
	bodyLength int
	checksum   int
}

// NewMessage constructs a Message from a completed field scan. Called by
// the decoder; order must list every field in wire order and index must
// map each tag to the position of its last occurrence in order.
func NewMessage(region []byte, order []FieldView, index map[Tag]int, msgType string, bodyLength, checksum int) *Message {
	return &Message{
		region:     region,
		order:      order,
		index:      index,
		msgType:    msgType,
		bodyLength: bodyLength,
		checksum:   checksum,
	}
}

// MsgType returns the value of tag 35.
func (m *Message) MsgType() string { return m.msgType }

// BodyLength returns the declared value of tag 9.
func (m *Message) BodyLength() int { return m.bodyLength }

// Checksum returns the declared value of tag 10.
func (m *Message) Checksum() int { return m.checksum }

// FieldCount returns the number of fields in wire order, counting
// duplicates.
func (m *Message) FieldCount() int { return len(m.order) }

// Has reports whether tag appears anywhere in the message.
func (m *Message) Has(tag Tag) bool {
	_, ok := m.index[tag]
	return ok
}

// Field returns the last occurrence of tag, if present.
func (m *Message) Field(tag Tag) (FieldView, bool) {
	i, ok := m.index[tag]
	if !ok {
		return FieldView{}, false
	}
	return m.order[i], true
}

// GetText is a convenience over Field. present is false when tag is
// absent, distinct from a non-nil decode error.
func (m *Message) GetText(tag Tag) (value string, present bool, err error) {
	fv, ok := m.Field(tag)
	if !ok {
		return "", false, nil
	}
	value, err = fv.AsText()
	return value, true, err
}

// GetInt is a convenience over Field.
func (m *Message) GetInt(tag Tag) (value int64, present bool, err error) {
	fv, ok := m.Field(tag)
	if !ok {
		return 0, false, nil
	}
	value, err = fv.AsInt()
	return value, true, err
}

// GetDecimal is a convenience over Field.
func (m *Message) GetDecimal(tag Tag) (value decimal.Decimal, present bool, err error) {
	fv, ok := m.Field(tag)
	if !ok {
		return decimal.Decimal{}, false, nil
	}
	value, err = fv.AsDecimal()
	return value, true, err
}

// All iterates every field in wire order, including duplicates. Each
// call to All returns a fresh, restartable iterator.
func (m *Message) All() iter.Seq[FieldView] {
	return func(yield func(FieldView) bool) {
		for _, fv := range m.order {
			if !yield(fv) {
				return
			}
		}
	}
}

package fix

import (
	"strconv"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FieldView is a zero-copy reference to one field's value bytes inside a
// backing byte region. It never copies the payload; typed accessors
// decode lazily, on demand. A FieldView is valid only as long as its
// backing region is unmodified and alive.
type FieldView struct {
	tag         Tag
	region      []byte
	valueOffset int
	valueLength int
}

// NewFieldView constructs a FieldView over region[valueOffset : valueOffset+valueLength].
// Called by the decoder during a field scan; not normally needed by
// library consumers.
func NewFieldView(tag Tag, region []byte, valueOffset, valueLength int) FieldView {
	return FieldView{tag: tag, region: region, valueOffset: valueOffset, valueLength: valueLength}
}

// Tag returns the field's tag number.
func (f FieldView) Tag() Tag { return f.tag }

// Offset returns the value's starting position within the backing region.
func (f FieldView) Offset() int { return f.valueOffset }

// Bytes returns the raw value bytes, without copying.
func (f FieldView) Bytes() []byte {
	return f.region[f.valueOffset : f.valueOffset+f.valueLength]
}

// AsText decodes the value as UTF-8 text. It fails with InvalidEncoding
// only when the bytes aren't valid UTF-8; FIX otherwise treats values as
// opaque octets.
func (f FieldView) AsText() (string, error) {
	b := f.Bytes()
	if !utf8.Valid(b) {
		return "", &DecodeError{Kind: KindInvalidEncoding, Offset: f.valueOffset, Tag: f.tag}
	}
	return string(b), nil
}

// AsInt decodes the value as a base-10 signed integer.
func (f FieldView) AsInt() (int64, error) {
	n, err := strconv.ParseInt(string(f.Bytes()), 10, 64)
	if err != nil {
		return 0, &DecodeError{Kind: KindInvalidNumber, Offset: f.valueOffset, Tag: f.tag, Err: err}
	}
	return n, nil
}

// AsDecimal decodes the value as a fractional number, for QTY/PRICE-class
// tags (OrderQty, Price, LastPx, ...).
func (f FieldView) AsDecimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(string(f.Bytes()))
	if err != nil {
		return decimal.Decimal{}, &DecodeError{Kind: KindInvalidNumber, Offset: f.valueOffset, Tag: f.tag, Err: err}
	}
	return d, nil
}

package fix

import (
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// FieldType classifies a tag's value for dictionary validation. This is
// the subset of FIX value types this codec understands; it intentionally
// does not cover every type class in the full FIX 4.4 data dictionary
// (DATA, MULTIPLEVALUESTRING, MONTHYEAR, ...), only the ones that appear
// among the header/trailer tags and the required-field sets below.
type FieldType int

const (
	FieldTypeText FieldType = iota
	FieldTypeChar
	FieldTypeInt
	FieldTypeQty
	FieldTypeLength
	FieldTypeSeqNum
	FieldTypeUTCTimestamp
)

func (t FieldType) String() string {
	switch t {
	case FieldTypeText:
		return "TEXT"
	case FieldTypeChar:
		return "CHAR"
	case FieldTypeInt:
		return "INT"
	case FieldTypeQty:
		return "QTY"
	case FieldTypeLength:
		return "LENGTH"
	case FieldTypeSeqNum:
		return "SEQNUM"
	case FieldTypeUTCTimestamp:
		return "UTCTIMESTAMP"
	default:
		return "UNKNOWN"
	}
}

var utcTimestampPattern = regexp.MustCompile(`^\d{8}-\d{2}:\d{2}:\d{2}(\.\d{3})?$`)

// validateFieldValue reports whether value conforms to t's wire grammar.
func validateFieldValue(t FieldType, value []byte) bool {
	switch t {
	case FieldTypeText:
		return len(value) > 0
	case FieldTypeChar:
		return len(value) == 1
	case FieldTypeInt:
		_, err := strconv.ParseInt(string(value), 10, 64)
		return err == nil
	case FieldTypeQty:
		_, err := decimal.NewFromString(string(value))
		return err == nil
	case FieldTypeLength:
		n, err := strconv.Atoi(string(value))
		return err == nil && n >= 0
	case FieldTypeSeqNum:
		n, err := strconv.Atoi(string(value))
		return err == nil && n > 0
	case FieldTypeUTCTimestamp:
		return utcTimestampPattern.Match(value)
	default:
		return true
	}
}

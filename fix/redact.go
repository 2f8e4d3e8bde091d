package fix

import (
	"strconv"
	"strings"
)

// DefaultSensitiveTags is the set of tags redacted by a Redactor built
// with NewRedactor and no arguments: Username (553) and Password (554).
var DefaultSensitiveTags = []Tag{TagUsername, TagPassword}

// Redactor renders a Message as "|"-delimited text with sensitive field
// values replaced, suitable for logging. Adapted from the decoder's
// original line obfuscator; here it operates on a parsed Message rather
// than a raw log line.
type Redactor struct {
	sensitive map[Tag]struct{}
}

// NewRedactor builds a Redactor over the given tags. With no arguments it
// redacts DefaultSensitiveTags.
func NewRedactor(tags ...Tag) *Redactor {
	if len(tags) == 0 {
		tags = DefaultSensitiveTags
	}
	r := &Redactor{sensitive: make(map[Tag]struct{}, len(tags))}
	for _, t := range tags {
		r.sensitive[t] = struct{}{}
	}
	return r
}

// Redact renders m field-by-field in wire order, replacing the value of
// every sensitive tag with "***" and joining fields with "|" in place of
// the wire's SOH, so the result is safe to write to a log.
func (r *Redactor) Redact(m *Message) string {
	var b strings.Builder
	first := true
	for fv := range m.All() {
		if !first {
			b.WriteByte('|')
		}
		first = false
		b.WriteString(strconv.FormatUint(uint64(fv.Tag()), 10))
		b.WriteByte('=')
		if _, ok := r.sensitive[fv.Tag()]; ok {
			b.WriteString("***")
		} else {
			b.Write(fv.Bytes())
		}
	}
	return b.String()
}

// Redacted is a convenience over NewRedactor().Redact: callers who don't
// need a reusable Redactor can format a single message with the default
// sensitive-tag set.
func Redacted(m *Message) string {
	return NewRedactor().Redact(m)
}

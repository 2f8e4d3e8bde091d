// Package fix implements the FIX 4.4 wire format's data model: tags,
// field values, messages, and the compiled-in data dictionary. It holds
// no decoding or encoding logic of its own; see the decoder and encoder
// packages.
package fix

// Tag identifies a FIX field by its numeric tag.
type Tag uint32

// Header and trailer tags shared by every FIX 4.4 message.
const (
	TagBeginString  Tag = 8
	TagBodyLength   Tag = 9
	TagMsgType      Tag = 35
	TagSenderCompID Tag = 49
	TagTargetCompID Tag = 56
	TagMsgSeqNum    Tag = 34
	TagSendingTime  Tag = 52
	TagCheckSum     Tag = 10
)

// Body tags referenced by the required-field sets in the compiled
// dictionary, plus a handful used by the encoder's convenience
// constructors.
const (
	TagTestReqID               Tag = 112
	TagBeginSeqNo              Tag = 7
	TagEndSeqNo                Tag = 16
	TagRefSeqNum               Tag = 45
	TagText                    Tag = 58
	TagNewSeqNo                Tag = 36
	TagClOrdID                 Tag = 11
	TagHandlInst               Tag = 21
	TagSymbol                  Tag = 55
	TagSide                    Tag = 54
	TagTransactTime            Tag = 60
	TagOrigClOrdID             Tag = 41
	TagAvgPx                   Tag = 6
	TagCumQty                  Tag = 14
	TagExecID                  Tag = 17
	TagExecTransType           Tag = 20
	TagLastPx                  Tag = 31
	TagLastQty                 Tag = 32
	TagOrderID                 Tag = 37
	TagOrderQty                Tag = 38
	TagOrdStatus               Tag = 39
	TagOrdType                 Tag = 40
	TagCxlRejResponseTo        Tag = 434
	TagMDReqID                 Tag = 262
	TagSubscriptionRequestType Tag = 263
	TagMarketDepth             Tag = 264
	TagMDUpdateType            Tag = 265
	TagNoMDEntryTypes          Tag = 267
	TagNoMDEntries             Tag = 268
	TagMDEntryType             Tag = 269
	TagEncryptMethod           Tag = 98
	TagHeartBtInt              Tag = 108
	TagResetSeqNumFlag         Tag = 141
	TagUsername                Tag = 553
	TagPassword                Tag = 554
)

// HeaderTags lists the shared header/trailer tags, in wire order, that
// every FIX 4.4 message carries regardless of MsgType.
var HeaderTags = []Tag{
	TagBeginString, TagBodyLength, TagMsgType, TagSenderCompID,
	TagTargetCompID, TagMsgSeqNum, TagSendingTime, TagCheckSum,
}

// IsHeaderTag reports whether tag is one of the shared header/trailer
// tags the Encoder populates itself; callers may not add these to a
// body field set.
func IsHeaderTag(tag Tag) bool {
	for _, t := range HeaderTags {
		if t == tag {
			return true
		}
	}
	return false
}

// RawField is an ordered (tag, value-bytes) pair supplied to the
// Encoder. Build copies Value into the output it returns and keeps no
// reference to it afterward.
type RawField struct {
	Tag   Tag
	Value []byte
}

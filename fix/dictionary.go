package fix

// FieldDef describes one tag's name, value type, and whether it belongs
// to the shared header/trailer carried by every message.
type FieldDef struct {
	Name                   string
	Type                   FieldType
	HeaderRequiredGlobally bool
}

// Dictionary is the compiled-in FIX 4.4 profile: recognized message
// types, their required fields, and per-tag value definitions. It is
// immutable once constructed and safe to share across goroutines.
// Construct with NewDictionary; there is no runtime loading from an
// external schema file.
type Dictionary struct {
	validTypes     map[string]struct{}
	requiredFields map[string][]Tag
	fieldDefs      map[Tag]FieldDef
}

// additionalRequiredFields holds the per-MsgType required tags beyond
// the shared header/trailer set (fix.HeaderTags), taken from the FIX
// 4.4 profile table.
var additionalRequiredFields = map[string][]Tag{
	"1": {TagTestReqID},
	"2": {TagBeginSeqNo, TagEndSeqNo},
	"3": {TagRefSeqNum, TagText},
	"4": {TagNewSeqNo},
	"D": {TagClOrdID, TagHandlInst, TagSymbol, TagSide, TagTransactTime},
	"F": {TagClOrdID, TagHandlInst, TagOrigClOrdID, TagSymbol, TagSide, TagTransactTime},
	"G": {TagClOrdID, TagHandlInst, TagOrigClOrdID, TagSymbol, TagSide, TagTransactTime},
	"H": {TagClOrdID, TagHandlInst, TagSymbol, TagSide, TagTransactTime},
	"8": {
		TagAvgPx, TagClOrdID, TagCumQty, TagExecID, TagExecTransType,
		TagLastPx, TagLastQty, TagOrderID, TagOrderQty, TagOrdStatus,
		TagOrdType, TagSide, TagSymbol, TagTransactTime,
	},
	"9": {TagClOrdID, TagOrderID, TagOrdStatus, TagCxlRejResponseTo},
	"V": {
		TagMDReqID, TagSubscriptionRequestType, TagMarketDepth,
		TagMDUpdateType, TagNoMDEntryTypes, TagMDEntryType,
	},
	"W": {TagMDReqID, TagNoMDEntries},
	"X": {TagMDReqID, TagNoMDEntries},
	"Y": {TagMDReqID, TagText},
}

// validMessageTypes is the recognized FIX 4.4 MsgType alphabet.
var validMessageTypes = []string{
	"0", "1", "2", "3", "4", "5", "A", "D", "E", "F", "G", "H", "8", "9",
	"V", "W", "X", "Y", "B", "C", "6", "7", "J", "K", "L", "M", "N", "P",
	"Q", "R", "S", "T", "U", "Z", "I",
}

// fieldDefTable is the compiled field-definition table for every tag
// referenced by a required-field set, the shared header/trailer, or an
// encoder convenience constructor.
var fieldDefTable = map[Tag]FieldDef{
	TagBeginString:  {"BeginString", FieldTypeText, true},
	TagBodyLength:   {"BodyLength", FieldTypeLength, true},
	TagMsgType:      {"MsgType", FieldTypeText, true},
	TagSenderCompID: {"SenderCompID", FieldTypeText, true},
	TagTargetCompID: {"TargetCompID", FieldTypeText, true},
	TagMsgSeqNum:    {"MsgSeqNum", FieldTypeSeqNum, true},
	TagSendingTime:  {"SendingTime", FieldTypeUTCTimestamp, true},
	TagCheckSum:     {"CheckSum", FieldTypeText, true},

	TagTestReqID:               {"TestReqID", FieldTypeText, false},
	TagBeginSeqNo:              {"BeginSeqNo", FieldTypeSeqNum, false},
	TagEndSeqNo:                {"EndSeqNo", FieldTypeSeqNum, false},
	TagRefSeqNum:               {"RefSeqNum", FieldTypeSeqNum, false},
	TagText:                    {"Text", FieldTypeText, false},
	TagNewSeqNo:                {"NewSeqNo", FieldTypeSeqNum, false},
	TagClOrdID:                 {"ClOrdID", FieldTypeText, false},
	TagHandlInst:               {"HandlInst", FieldTypeChar, false},
	TagSymbol:                  {"Symbol", FieldTypeText, false},
	TagSide:                    {"Side", FieldTypeChar, false},
	TagTransactTime:            {"TransactTime", FieldTypeUTCTimestamp, false},
	TagOrigClOrdID:             {"OrigClOrdID", FieldTypeText, false},
	TagAvgPx:                   {"AvgPx", FieldTypeQty, false},
	TagCumQty:                  {"CumQty", FieldTypeQty, false},
	TagExecID:                  {"ExecID", FieldTypeText, false},
	TagExecTransType:           {"ExecTransType", FieldTypeChar, false},
	TagLastPx:                  {"LastPx", FieldTypeQty, false},
	TagLastQty:                 {"LastQty", FieldTypeQty, false},
	TagOrderID:                 {"OrderID", FieldTypeText, false},
	TagOrderQty:                {"OrderQty", FieldTypeQty, false},
	TagOrdStatus:               {"OrdStatus", FieldTypeChar, false},
	TagOrdType:                 {"OrdType", FieldTypeChar, false},
	TagCxlRejResponseTo:        {"CxlRejResponseTo", FieldTypeChar, false},
	TagMDReqID:                 {"MDReqID", FieldTypeText, false},
	TagSubscriptionRequestType: {"SubscriptionRequestType", FieldTypeChar, false},
	TagMarketDepth:             {"MarketDepth", FieldTypeInt, false},
	TagMDUpdateType:            {"MDUpdateType", FieldTypeInt, false},
	TagNoMDEntryTypes:          {"NoMDEntryTypes", FieldTypeInt, false},
	TagNoMDEntries:             {"NoMDEntries", FieldTypeInt, false},
	TagMDEntryType:             {"MDEntryType", FieldTypeChar, false},
	TagEncryptMethod:           {"EncryptMethod", FieldTypeInt, false},
	TagHeartBtInt:              {"HeartBtInt", FieldTypeInt, false},
	TagResetSeqNumFlag:         {"ResetSeqNumFlag", FieldTypeChar, false},
	TagUsername:                {"Username", FieldTypeText, false},
	TagPassword:                {"Password", FieldTypeText, false},
}

// NewDictionary builds a fresh, independent FIX 4.4 dictionary instance.
// The content is always the same compiled-in profile; tests are free to
// construct their own copies rather than share a package-level value.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		validTypes:     make(map[string]struct{}, len(validMessageTypes)),
		requiredFields: make(map[string][]Tag, len(validMessageTypes)),
		fieldDefs:      make(map[Tag]FieldDef, len(fieldDefTable)),
	}

	for _, mt := range validMessageTypes {
		d.validTypes[mt] = struct{}{}

		required := make([]Tag, len(HeaderTags), len(HeaderTags)+len(additionalRequiredFields[mt]))
		copy(required, HeaderTags)
		required = append(required, additionalRequiredFields[mt]...)
		d.requiredFields[mt] = required
	}

	for tag, def := range fieldDefTable {
		d.fieldDefs[tag] = def
	}

	return d
}

// IsValidMsgType reports whether s is a recognized FIX 4.4 MsgType.
func (d *Dictionary) IsValidMsgType(s string) bool {
	_, ok := d.validTypes[s]
	return ok
}

// RequiredFields returns the tags that must appear in a message of the
// given type, including the shared header/trailer. It returns nil for
// an unrecognized message type.
func (d *Dictionary) RequiredFields(msgType string) []Tag {
	return d.requiredFields[msgType]
}

// FieldDef returns the compiled definition for tag, if any.
func (d *Dictionary) FieldDef(tag Tag) (FieldDef, bool) {
	def, ok := d.fieldDefs[tag]
	return def, ok
}

// ValidateValue reports whether value conforms to tag's compiled type
// definition. Unknown tags are always considered valid: FIX permits
// fields the dictionary doesn't recognize.
func (d *Dictionary) ValidateValue(tag Tag, value []byte) bool {
	def, ok := d.fieldDefs[tag]
	if !ok {
		return true
	}
	return validateFieldValue(def.Type, value)
}

package fix

import "testing"

func TestDictionary_IsValidMsgType(t *testing.T) {
	d := NewDictionary()
	for _, mt := range []string{"0", "D", "8", "V", "Y"} {
		if !d.IsValidMsgType(mt) {
			t.Errorf("IsValidMsgType(%q) = false, want true", mt)
		}
	}
	if d.IsValidMsgType("@") {
		t.Error("IsValidMsgType(@) = true, want false")
	}
}

func TestDictionary_RequiredFields(t *testing.T) {
	d := NewDictionary()

	required := d.RequiredFields("D")
	want := map[Tag]bool{
		TagBeginString: true, TagBodyLength: true, TagMsgType: true,
		TagSenderCompID: true, TagTargetCompID: true, TagMsgSeqNum: true,
		TagSendingTime: true, TagCheckSum: true,
		TagClOrdID: true, TagHandlInst: true, TagSymbol: true,
		TagSide: true, TagTransactTime: true,
	}
	if len(required) != len(want) {
		t.Fatalf("RequiredFields(D) has %d tags, want %d: %v", len(required), len(want), required)
	}
	for _, tag := range required {
		if !want[tag] {
			t.Errorf("RequiredFields(D) contains unexpected tag %d", tag)
		}
	}

	if fields := d.RequiredFields("@"); fields != nil {
		t.Errorf("RequiredFields(unknown) = %v, want nil", fields)
	}

	// Every message type requires the shared header/trailer.
	heartbeatRequired := d.RequiredFields("0")
	for _, h := range HeaderTags {
		found := false
		for _, tag := range heartbeatRequired {
			if tag == h {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("RequiredFields(0) missing header tag %d", h)
		}
	}
}

func TestDictionary_FieldDef(t *testing.T) {
	d := NewDictionary()

	def, ok := d.FieldDef(TagSymbol)
	if !ok || def.Name != "Symbol" || def.Type != FieldTypeText {
		t.Fatalf("FieldDef(Symbol) = (%+v, %v), want Symbol/TEXT", def, ok)
	}

	if _, ok := d.FieldDef(Tag(999999)); ok {
		t.Error("FieldDef(unregistered tag) = true, want false")
	}
}

func TestDictionary_ValidateValue(t *testing.T) {
	d := NewDictionary()

	cases := []struct {
		tag   Tag
		value string
		want  bool
	}{
		{TagSymbol, "IBM", true},          // TEXT, non-empty
		{TagSymbol, "", false},            // TEXT, empty
		{TagSide, "1", true},              // CHAR, one byte
		{TagSide, "12", false},            // CHAR, too long
		{TagMarketDepth, "10", true},      // INT
		{TagMarketDepth, "abc", false},    // INT, not numeric
		{TagOrderQty, "100.5", true},      // QTY
		{TagOrderQty, "abc", false},       // QTY, not numeric
		{TagBodyLength, "0", true},        // LENGTH, zero allowed
		{TagBodyLength, "-1", false},      // LENGTH, negative
		{TagMsgSeqNum, "1", true},         // SEQNUM, positive
		{TagMsgSeqNum, "0", false},        // SEQNUM, zero not allowed
		{TagSendingTime, "20231201-10:30:00.000", true},
		{TagSendingTime, "not-a-timestamp", false},
	}
	for _, c := range cases {
		got := d.ValidateValue(c.tag, []byte(c.value))
		if got != c.want {
			t.Errorf("ValidateValue(%d, %q) = %v, want %v", c.tag, c.value, got, c.want)
		}
	}

	// Unknown tags are always valid: FIX permits fields the dictionary
	// doesn't recognize.
	if !d.ValidateValue(Tag(999999), []byte("anything")) {
		t.Error("ValidateValue(unknown tag) = false, want true")
	}
}

func TestDictionary_InstancesAreIndependent(t *testing.T) {
	a := NewDictionary()
	b := NewDictionary()
	if a == b {
		t.Fatal("NewDictionary returned the same instance twice")
	}
	if !a.IsValidMsgType("D") || !b.IsValidMsgType("D") {
		t.Fatal("independent instances should carry identical content")
	}
}

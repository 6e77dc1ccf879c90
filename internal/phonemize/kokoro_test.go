package phonemize

import "testing"

func TestKokoroTokenizeBounds(t *testing.T) {
	k := NewKokoro()
	ids, contentLen := k.Tokenize("你好世界")
	if len(ids) != kokoroMaxTokens {
		t.Fatalf("len(ids) = %d, want %d", len(ids), kokoroMaxTokens)
	}
	if ids[0] != 0 {
		t.Errorf("first token = %d, want 0", ids[0])
	}
	if ids[len(ids)-1] != 0 {
		t.Errorf("last token = %d, want 0", ids[len(ids)-1])
	}
	if contentLen <= 0 || contentLen >= kokoroMaxTokens {
		t.Errorf("contentLen = %d, want a short, unpadded length", contentLen)
	}
}

func TestKokoroTokenizeLongTextTruncates(t *testing.T) {
	k := NewKokoro()
	long := ""
	for i := 0; i < 400; i++ {
		long += "你好"
	}
	ids, contentLen := k.Tokenize(long)
	if len(ids) != kokoroMaxTokens {
		t.Fatalf("len(ids) = %d, want %d", len(ids), kokoroMaxTokens)
	}
	if ids[0] != 0 || ids[len(ids)-1] != 0 {
		t.Error("truncated sequence must still start and end with 0")
	}
	if contentLen != kokoroMaxTokens {
		t.Errorf("contentLen = %d, want %d for a truncated sequence", contentLen, kokoroMaxTokens)
	}
}

func TestKokoroTokenizeContentLenVariesWithInputLength(t *testing.T) {
	k := NewKokoro()
	_, shortLen := k.Tokenize("你好")
	_, longLen := k.Tokenize("你好世界和平安康")
	if longLen <= shortLen {
		t.Fatalf("contentLen did not grow with input: short=%d long=%d", shortLen, longLen)
	}
}

func TestSyllableToIPARetroflexAndDental(t *testing.T) {
	if got := syllableToIPA("zhi1"); got[:len("ɻ")] != "ɻ" {
		t.Errorf("syllableToIPA(zhi1) = %q, want ɻ prefix", got)
	}
	if got := syllableToIPA("si1"); got[:len("ɹ")] != "ɹ" {
		t.Errorf("syllableToIPA(si1) = %q, want ɹ prefix", got)
	}
}

func TestSyllableToIPAToneArrow(t *testing.T) {
	cases := map[byte]string{'1': "→", '2': "↗", '3': "↓", '4': "↘", '5': ""}
	for tone, arrow := range cases {
		syl := "ma" + string(tone)
		got := syllableToIPA(syl)
		if arrow != "" && !hasSuffix(got, arrow) {
			t.Errorf("syllableToIPA(%q) = %q, want suffix %q", syl, got, arrow)
		}
	}
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

package normalizer

import (
	"strings"
	"testing"
)

func TestNormalizeDateChinese(t *testing.T) {
	got := Normalize("2024-01-16", LangZH)
	want := "二零二四年一月十六日"
	if got != want {
		t.Errorf("Normalize(date, zh) = %q, want %q", got, want)
	}
}

func TestNormalizeDateEnglish(t *testing.T) {
	got := Normalize("2024-01-16", LangEN)
	want := "January sixteenth, twenty twenty-four"
	if got != want {
		t.Errorf("Normalize(date, en) = %q, want %q", got, want)
	}
}

func TestNormalizeYearEnglish(t *testing.T) {
	got := Normalize("The year 2024 was good.", LangEN)
	if !strings.Contains(got, "twenty twenty-four") {
		t.Errorf("Normalize(year, en) = %q, missing spelled year", got)
	}
}

func TestNormalizePercent(t *testing.T) {
	if got := Normalize("50%", LangEN); got != "fifty percent" {
		t.Errorf("Normalize(percent, en) = %q", got)
	}
	if got := Normalize("50%", LangZH); got != "百分之五十" {
		t.Errorf("Normalize(percent, zh) = %q", got)
	}
}

func TestNormalizeCurrencyPrefix(t *testing.T) {
	got := Normalize("$100", LangEN)
	want := "one hundred dollars"
	if got != want {
		t.Errorf("Normalize(currency, en) = %q, want %q", got, want)
	}
}

func TestNormalizeCurrencySuffixChinese(t *testing.T) {
	got := Normalize("100元", LangZH)
	want := "一百元"
	if got != want {
		t.Errorf("Normalize(currency, zh) = %q, want %q", got, want)
	}
}

func TestNormalizePhoneDigitByDigit(t *testing.T) {
	got := Normalize("13800138000", LangZH)
	want := "一三八零零一三八零零零"
	if got != want {
		t.Errorf("Normalize(phone, zh) = %q, want %q", got, want)
	}
}

func TestNormalizeUnits(t *testing.T) {
	got := Normalize("5km", LangEN)
	want := "five kilometers"
	if got != want {
		t.Errorf("Normalize(units, en) = %q, want %q", got, want)
	}
}

func TestNormalizeGenericNumberDecimal(t *testing.T) {
	got := Normalize("3.14", LangEN)
	want := "three point one four"
	if got != want {
		t.Errorf("Normalize(decimal, en) = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotentOnPlainText(t *testing.T) {
	texts := []string{
		"hello world",
		"你好世界",
		"The quick brown fox.",
		"今天天气很好。",
	}
	for _, text := range texts {
		once := Normalize(text, LangAuto)
		twice := Normalize(once, LangAuto)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", text, once, twice)
		}
	}
}

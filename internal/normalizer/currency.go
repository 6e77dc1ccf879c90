package normalizer

import (
	"regexp"
	"strings"
)

type currencyWord struct{ zh, en string }

var currencySymbols = map[string]currencyWord{
	"¥": {"元", "yuan"},
	"$": {"美元", "dollars"},
	"€": {"欧元", "euros"},
	"£": {"英镑", "pounds"},
	"₩": {"韩元", "won"},
	"₹": {"卢比", "rupees"},
}

var currencySuffixes = map[string]currencyWord{
	"元":   {"元", "yuan"},
	"块":   {"块", "yuan"},
	"美元":  {"美元", "dollars"},
	"人民币": {"人民币", "yuan"},
}

// currencyPrefixRE matches a currency symbol followed by a number; thousands
// commas are stripped before the number is spelled out.
var currencyPrefixRE = regexp.MustCompile(`([¥$€£₩₹])\s?(\d+(?:,\d{3})*(?:\.\d+)?)`)

// currencySuffixRE matches a number followed by a Chinese currency suffix,
// longest suffix first so "美元"/"人民币" win over a bare "元" prefix match.
var currencySuffixRE = regexp.MustCompile(`(\d+(?:\.\d+)?)(人民币|美元|块|元)`)

func normalizeCurrency(text string, lang Lang) string {
	text = rewrite(text, currencyPrefixRE, lang, func(g []string, matchLang Lang) string {
		word, ok := currencySymbols[g[1]]
		if !ok {
			return g[0]
		}
		amount := strings.ReplaceAll(g[2], ",", "")
		return renderCurrencyAmount(amount, word, matchLang)
	})
	text = rewrite(text, currencySuffixRE, lang, func(g []string, matchLang Lang) string {
		word, ok := currencySuffixes[g[2]]
		if !ok {
			return g[0]
		}
		return renderCurrencyAmount(g[1], word, matchLang)
	})
	return text
}

func renderCurrencyAmount(amount string, word currencyWord, lang Lang) string {
	spelled := renderNumber(amount, lang)
	if lang == LangZH {
		return spelled + word.zh
	}
	plural := word.en
	if amount == "1" {
		plural = strings.TrimSuffix(plural, "s")
	}
	return spelled + " " + plural
}

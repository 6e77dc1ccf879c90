package normalizer

import (
	"regexp"
	"strconv"

	"tts/internal/textutil"
)

var monthNames = [...]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// dateRE matches YYYY[-/年]MM[-/月]DD[日]?.
var dateRE = regexp.MustCompile(`(\d{4})[-/年](\d{1,2})[-/月](\d{1,2})日?`)

func normalizeDates(text string, lang Lang) string {
	return rewrite(text, dateRE, lang, func(g []string, matchLang Lang) string {
		year, _ := strconv.Atoi(g[1])
		month, _ := strconv.Atoi(g[2])
		day, _ := strconv.Atoi(g[3])
		if matchLang == LangZH {
			return yearDigitsChinese(year) + "年" +
				textutil.IntToChinese(int64(month)) + "月" +
				textutil.IntToChinese(int64(day)) + "日"
		}
		monthName := "January"
		if month >= 1 && month <= 12 {
			monthName = monthNames[month]
		}
		return monthName + " " + OrdinalEnglish(day) + ", " + yearToEnglish(year)
	})
}

// timeRE matches HH:MM(:SS)?.
var timeRE = regexp.MustCompile(`([01]?\d|2[0-3]):([0-5]\d)(?::([0-5]\d))?`)

func normalizeTimes(text string, lang Lang) string {
	return rewrite(text, timeRE, lang, func(g []string, matchLang Lang) string {
		hour, _ := strconv.Atoi(g[1])
		minute, _ := strconv.Atoi(g[2])
		hasSeconds := g[3] != ""
		second, _ := strconv.Atoi(g[3])

		if matchLang == LangZH {
			s := textutil.IntToChinese(int64(hour)) + "点"
			switch {
			case minute == 0 && !hasSeconds:
				s += "整"
			case minute < 10:
				s += "零" + textutil.IntToChinese(int64(minute)) + "分"
			default:
				s += textutil.IntToChinese(int64(minute)) + "分"
			}
			if hasSeconds {
				s += textutil.IntToChinese(int64(second)) + "秒"
			}
			return s
		}

		period := "AM"
		hour12 := hour % 12
		if hour12 == 0 {
			hour12 = 12
		}
		if hour >= 12 {
			period = "PM"
		}
		s := CardinalEnglish(int64(hour12))
		if minute > 0 {
			if minute < 10 {
				s += " oh " + CardinalEnglish(int64(minute))
			} else {
				s += " " + CardinalEnglish(int64(minute))
			}
		} else if !hasSeconds {
			s += " o'clock"
		}
		if hasSeconds {
			s += " and " + CardinalEnglish(int64(second)) + " seconds"
		}
		return s + " " + period
	})
}

// bareYearRE matches a bare 4-digit year in [1000, 2999] that is not part of
// a longer digit run, with an optional Chinese 年 marker that is preserved in
// the Chinese rendering.
var bareYearRE = regexp.MustCompile(`\b(1\d{3}|2\d{3})\b(年)?`)

func normalizeBareYears(text string, lang Lang) string {
	return rewrite(text, bareYearRE, lang, func(g []string, matchLang Lang) string {
		year, _ := strconv.Atoi(g[1])
		if matchLang == LangZH {
			s := yearDigitsChinese(year)
			if g[2] != "" {
				s += "年"
			}
			return s
		}
		return yearToEnglish(year)
	})
}

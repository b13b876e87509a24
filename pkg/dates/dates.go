package dates

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

type longFormat struct {
	locale monday.Locale
	layout string
}

// The first entry is the fallback for locales nothing else matches.
var (
	supported = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.Russian,
		language.Ukrainian,
		language.German,
		language.French,
		language.Italian,
		language.Spanish,
		language.BrazilianPortuguese,
	}
	formats = []longFormat{
		{monday.LocaleEnUS, "January 2, 2006"},
		{monday.LocaleEnGB, "2 January 2006"},
		{monday.LocaleRuRU, "2 January 2006 г."},
		{monday.LocaleUkUA, "2 January 2006 р."},
		{monday.LocaleDeDE, "2. January 2006"},
		{monday.LocaleFrFR, "2 January 2006"},
		{monday.LocaleItIT, "2 January 2006"},
		{monday.LocaleEsES, "2 de January de 2006"},
		{monday.LocalePtBR, "2 de January de 2006"},
	}
	matcher = language.NewMatcher(supported)
)

// Formatter renders dates as numeric day, full month name and numeric year
// in one locale.
type Formatter struct {
	tag    language.Tag
	format longFormat
}

// NewFormatter picks the closest supported locale for a BCP 47 tag such as
// "ru-RU" or "en_US". Unparseable or unsupported tags fall back to en-US.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return Formatter{tag: supported[0], format: formats[0]}
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return Formatter{tag: supported[idx], format: formats[idx]}
}

func (f Formatter) Locale() string {
	return f.tag.String()
}

func (f Formatter) Format(t time.Time) string {
	return monday.Format(t, f.format.layout, f.format.locale)
}

// FormatDate is NewFormatter(locale).Format(t).
func FormatDate(t time.Time, locale string) string {
	return NewFormatter(locale).Format(t)
}

// DateOnlyString returns YYYY-MM-DD in t's own location.
func DateOnlyString(t time.Time) string {
	return t.Format("2006-01-02")
}

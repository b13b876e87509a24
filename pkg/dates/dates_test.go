package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOnlyString(t *testing.T) {
	require.Equal(t, "2021-03-05", DateOnlyString(time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2020-12-31", DateOnlyString(time.Date(2020, time.December, 31, 23, 59, 0, 0, time.UTC)))

	// No conversion: the calendar day is the one the value carries.
	loc := time.FixedZone("UTC+3", 3*60*60)
	require.Equal(t, "2021-03-06", DateOnlyString(time.Date(2021, time.March, 6, 1, 0, 0, 0, loc)))
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2021, time.March, 5, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "March 5, 2021", FormatDate(date, "en-US"))
	assert.Equal(t, "March 5, 2021", FormatDate(date, "en_US"))
	assert.Equal(t, "5 March 2021", FormatDate(date, "en-GB"))

	assert.Equal(t, "5 марта 2021 г.", FormatDate(date, "ru-RU"))
	assert.Equal(t, "5 марта 2021 г.", FormatDate(date, "ru"))
	assert.Equal(t, "5 березня 2021 р.", FormatDate(date, "uk-UA"))
	assert.Equal(t, "5. März 2021", FormatDate(date, "de-DE"))
	assert.Equal(t, "5 mars 2021", FormatDate(date, "fr-FR"))
	assert.Equal(t, "5 de marzo de 2021", FormatDate(date, "es-ES"))
	assert.Equal(t, "March 5, 2021", FormatDate(date, "ja-JP"))
}

func TestNewFormatterFallback(t *testing.T) {
	require.Equal(t, "en-US", NewFormatter("").Locale())
	require.Equal(t, "en-US", NewFormatter("not a locale!").Locale())
	require.Equal(t, "ru", NewFormatter("ru-RU").Locale())
}

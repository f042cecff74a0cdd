package elapsed

import (
	"fmt"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/it"
	"github.com/go-playground/locales/nl"
	"github.com/go-playground/locales/pt"
	"github.com/goodsign/monday"
)

// translatorTables are CLDR backed locales. They are tried before
// mondayTables for every candidate code.
var translatorTables = map[string]func() locales.Translator{
	"de": de.New,
	"en": en.New,
	"es": es.New,
	"fr": fr.New,
	"it": it.New,
	"nl": nl.New,
	"pt": pt.New,
}

var mondayTables = map[string]monday.Locale{
	"bg":    monday.Locale("bg_BG"),
	"da":    monday.Locale("da_DK"),
	"el":    monday.Locale("el_GR"),
	"fi":    monday.Locale("fi_FI"),
	"fr-CA": monday.Locale("fr_CA"),
	"hu":    monday.Locale("hu_HU"),
	"nb":    monday.Locale("nb_NO"),
	"pl":    monday.Locale("pl_PL"),
	"pt-BR": monday.Locale("pt_BR"),
	"ro":    monday.Locale("ro_RO"),
	"ru":    monday.Locale("ru_RU"),
	"sv":    monday.Locale("sv_SE"),
	"tr":    monday.Locale("tr_TR"),
	"uk":    monday.Locale("uk_UA"),
}

// TablesFromTranslator copies month and weekday names out of a
// go-playground/locales translator.
func TablesFromTranslator(tr locales.Translator) *LocaleTables {
	if tr == nil {
		return EnglishTables()
	}

	tables := &LocaleTables{Locale: normalizeLocale(tr.Locale())}
	for m := time.January; m <= time.December; m++ {
		tables.Months[m-1] = tr.MonthWide(m)
		tables.MonthsAbbreviated[m-1] = tr.MonthAbbreviated(m)
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		tables.Weekdays[d] = tr.WeekdayWide(d)
		tables.WeekdaysAbbreviated[d] = tr.WeekdayAbbreviated(d)
	}
	return tables
}

// TablesFromMonday builds tables by rendering reference dates with
// goodsign/monday. Months use the standalone (nominative) forms.
func TablesFromMonday(locale monday.Locale) *LocaleTables {
	tables := &LocaleTables{Locale: normalizeLocale(string(locale))}

	for m := time.January; m <= time.December; m++ {
		ref := time.Date(2006, m, 1, 12, 0, 0, 0, time.UTC)
		tables.Months[m-1] = monday.Format(ref, "January", locale)
		tables.MonthsAbbreviated[m-1] = monday.Format(ref, "Jan", locale)
	}

	// 2006-01-01 is a Sunday
	sunday := time.Date(2006, time.January, 1, 12, 0, 0, 0, time.UTC)
	for d := time.Sunday; d <= time.Saturday; d++ {
		ref := sunday.AddDate(0, 0, int(d))
		tables.Weekdays[d] = monday.Format(ref, "Monday", locale)
		tables.WeekdaysAbbreviated[d] = monday.Format(ref, "Mon", locale)
	}
	return tables
}

// LookupTables resolves built-in tables for a locale code. The exact code is
// tried first, then its parents and finally the base language. An empty code
// selects English.
func LookupTables(locale string) (*LocaleTables, error) {
	code := normalizeLocale(locale)
	if code == "" {
		return EnglishTables(), nil
	}

	for _, candidate := range localeCandidates(code) {
		if newTranslator, ok := translatorTables[candidate]; ok {
			return TablesFromTranslator(newTranslator()), nil
		}
		if mondayLocale, ok := mondayTables[candidate]; ok {
			return TablesFromMonday(mondayLocale), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
}

// BuiltinLocales lists the locale codes LookupTables resolves directly.
func BuiltinLocales() []string {
	codes := make([]string, 0, len(translatorTables)+len(mondayTables))
	for code := range translatorTables {
		codes = append(codes, code)
	}
	for code := range mondayTables {
		codes = append(codes, code)
	}
	return normalizeLocales(codes)
}

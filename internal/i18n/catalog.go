// Package i18n holds the static display-name tables for bed types and
// sunlight exposure.
package i18n

import (
	"github.com/YoshitsuguKoike/smartfarm/internal/domain/model/bed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/unicode/norm"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		"bed_type.raised_bed": "Raised bed",
		"bed_type.deep_bed":   "Deep bed",
		"bed_type.pot":        "Pot",
		"sunlight.direct":     "Direct sunlight",
		"sunlight.indirect":   "Indirect sunlight",
	},
	language.German: {
		"bed_type.raised_bed": "Hochbeet",
		"bed_type.deep_bed":   "Tiefbeet",
		"bed_type.pot":        "Topf",
		"sunlight.direct":     "Direktes Sonnenlicht",
		"sunlight.indirect":   "Indirektes Sonnenlicht",
	},
}

var builtin = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			// SetString only fails on malformed messages; the table above is static
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Translator resolves display names for one language
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New creates a translator for lang (BCP 47, e.g. "en", "de-AT").
// Unknown languages fall back to English.
func New(lang string) *Translator {
	supported := builtin.Languages()
	tag := language.English
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			_, idx, conf := language.NewMatcher(supported).Match(parsed)
			if conf != language.No {
				tag = supported[idx]
			}
		}
	}
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builtin)),
	}
}

// Language returns the resolved language tag
func (t *Translator) Language() language.Tag {
	return t.tag
}

// BedTypeName returns the display name of a bed type
func (t *Translator) BedTypeName(bt bed.Type) string {
	return t.lookup("bed_type." + bt.String())
}

// SunlightName returns the display name of a sunlight exposure
func (t *Translator) SunlightName(s bed.Sunlight) string {
	return t.lookup("sunlight." + s.String())
}

func (t *Translator) lookup(key string) string {
	return norm.NFKC.String(t.printer.Sprintf(key))
}

package drink

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Locale holds the description templates and vocabulary phrases of one
// language.
type Locale struct {
	tag language.Tag

	espresso    string
	singleShot  string
	doubleShot  string
	cappuccino  string
	latte       string
	withMilk    string
	extraFoam   string
	syrup       string
	volume      string
	latteArt    string
	unknownMilk string
	milkNames   map[MilkType]string
	syrupLabels map[SyrupType]string
}

// LocaleEnglish is the default locale.
var LocaleEnglish = &Locale{
	tag:         language.English,
	espresso:    "Espresso, %s, %dml",
	singleShot:  "single",
	doubleShot:  "double",
	cappuccino:  "Cappuccino",
	latte:       "Latte",
	withMilk:    "%s with %s milk",
	extraFoam:   " with extra foam",
	syrup:       ", syrup %s (%s doses)",
	volume:      ", %dml",
	latteArt:    ", with latte art",
	unknownMilk: "unknown",
	milkNames: map[MilkType]string{
		MilkDairy:   "dairy",
		MilkOat:     "oat",
		MilkAlmond:  "almond",
		MilkCoconut: "coconut",
		MilkBanana:  "banana",
		MilkSoy:     "soy",
	},
}

// LocaleRussian renders descriptions the way the café menu board prints them.
var LocaleRussian = &Locale{
	tag:         language.Russian,
	espresso:    "Эспрессо, %s, %dмл",
	singleShot:  "одинарный",
	doubleShot:  "двойной",
	cappuccino:  "Капучино",
	latte:       "Латте",
	withMilk:    "%s на %s молоке",
	extraFoam:   " с дополнительной пенкой",
	syrup:       ", сироп %s (%s дозы)",
	volume:      ", %dмл",
	latteArt:    ", с латте-артом",
	unknownMilk: "???",
	milkNames: map[MilkType]string{
		MilkDairy:   "коровьем",
		MilkOat:     "овсяном",
		MilkAlmond:  "миндальном",
		MilkCoconut: "кокосовом",
		MilkBanana:  "банановом",
		MilkSoy:     "соевом",
	},
	syrupLabels: map[SyrupType]string{
		SyrupCaramel:   "Карамель",
		SyrupVanilla:   "Ваниль",
		SyrupHazelnut:  "Фундук",
		SyrupChocolate: "Шоколад",
		SyrupCoconut:   "Кокос",
		SyrupLavender:  "Лаванда",
		SyrupMint:      "Мятный",
	},
}

var (
	locales       = []*Locale{LocaleEnglish, LocaleRussian}
	localeMatcher = language.NewMatcher([]language.Tag{language.English, language.Russian})
)

// MatchLocale picks the best supported locale for the given BCP 47 tags or
// Accept-Language style preferences. Unparseable tags are ignored; English is
// the fallback.
func MatchLocale(prefs ...string) *Locale {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	_, idx, _ := localeMatcher.Match(tags...)
	return locales[idx]
}

// Tag returns the language of the locale.
func (l *Locale) Tag() language.Tag { return l.tag }

// MilkName returns the phrase used for m inside a description. MilkNone and
// values outside the vocabulary yield the locale's unknown placeholder.
func (l *Locale) MilkName(m MilkType) string {
	if name, ok := l.milkNames[m]; ok {
		return name
	}
	return l.unknownMilk
}

// SyrupLabel returns the display name of s.
func (l *Locale) SyrupLabel(s SyrupType) string {
	if label, ok := l.syrupLabels[s]; ok {
		return label
	}
	return s.Label()
}

// Render returns the description of d in the given locale. A nil locale
// means English.
func Render(d *Drink, l *Locale) string {
	if l == nil {
		l = LocaleEnglish
	}

	var b strings.Builder
	switch v := d.variant.(type) {
	case Espresso:
		shot := l.singleShot
		if v.DoubleShot {
			shot = l.doubleShot
		}
		fmt.Fprintf(&b, l.espresso, shot, d.volumeMl)
	case Cappuccino:
		fmt.Fprintf(&b, l.withMilk, l.cappuccino, l.MilkName(v.Milk))
		if v.ExtraFoam {
			b.WriteString(l.extraFoam)
		}
		l.writeSyrup(&b, v.Syrup, v.SyrupDose)
		fmt.Fprintf(&b, l.volume, d.volumeMl)
	case Latte:
		fmt.Fprintf(&b, l.withMilk, l.latte, l.MilkName(v.Milk))
		l.writeSyrup(&b, v.Syrup, v.SyrupDose)
		fmt.Fprintf(&b, l.volume, d.volumeMl)
		if v.LatteArt {
			b.WriteString(l.latteArt)
		}
	default:
		// Unsupported variant or zero Drink, which Validate rejects.
	}
	return b.String()
}

func (l *Locale) writeSyrup(b *strings.Builder, s SyrupType, dose decimal.Decimal) {
	if s == SyrupNone {
		return
	}
	fmt.Fprintf(b, l.syrup, l.SyrupLabel(s), dose.String())
}

package duty

import "strings"

// DefaultCountry is returned when a country cannot be resolved.
const DefaultCountry = "CN,CHINA"

// ResolveCountry matches input against reference entries of the form
// "CODE,NAME". The input may be a code, a name or a whole entry and is compared
// trimmed and upper-cased. The first matching entry is returned unchanged;
// empty input or no match yields DefaultCountry.
func ResolveCountry(input string, reference []string) string {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return DefaultCountry
	}

	for _, entry := range reference {
		code, name, _ := strings.Cut(entry, ",")
		if normalized == strings.TrimSpace(code) ||
			normalized == strings.TrimSpace(name) ||
			normalized == entry {
			return entry
		}
	}
	return DefaultCountry
}

// ReferenceCountries is the built-in ICEGATE country list used when none is
// configured. Entries use the same "CODE,NAME" form as the upstream selector.
var ReferenceCountries = []string{
	"AE,UNITED ARAB EMIRATES",
	"AU,AUSTRALIA",
	"BD,BANGLADESH",
	"BR,BRAZIL",
	"CA,CANADA",
	"CH,SWITZERLAND",
	"CN,CHINA",
	"DE,GERMANY",
	"ES,SPAIN",
	"FR,FRANCE",
	"GB,UNITED KINGDOM",
	"HK,HONG KONG",
	"ID,INDONESIA",
	"IT,ITALY",
	"JP,JAPAN",
	"KR,KOREA REPUBLIC OF",
	"LK,SRI LANKA",
	"MY,MALAYSIA",
	"NL,NETHERLANDS",
	"NP,NEPAL",
	"RU,RUSSIA",
	"SA,SAUDI ARABIA",
	"SG,SINGAPORE",
	"TH,THAILAND",
	"TW,TAIWAN",
	"US,U S A",
	"VN,VIETNAM",
	"ZA,SOUTH AFRICA",
}

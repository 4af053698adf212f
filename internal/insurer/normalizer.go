package insurer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// defaultAliases maps lower-case insurer names, as they appear in quote
// documents, to the canonical insurer name.
var defaultAliases = map[string]string{
	"hdi seguros":                         "HDI",
	"hdi seguros s.a.":                    "HDI",
	"bci seguros":                         "BCI Seguros",
	"mapfre":                              "MAPFRE",
	"reale chile seguros generales s.a.":  "Reale Seguros",
	"reale seguros":                       "Reale Seguros",
	"reale":                               "Reale Seguros",
	"fid chile seguros generales s.a.":    "FID Seguros",
	"fid seguros":                         "FID Seguros",
	"zurich chile seguros generales s.a.": "Zurich",
}

// Normalizer resolves insurer name variants through an exact, lower-case
// alias lookup. Keys are compared in Unicode NFC so a decomposed "ñ" from
// a PDF text layer matches the composed one. It is immutable once built and safe for concurrent use.
type Normalizer struct {
	aliases map[string]string
}

var defaultNormalizer = &Normalizer{aliases: defaultAliases}

func aliasKey(name string) string {
	return norm.NFC.String(strings.ToLower(name))
}

// Default returns the normalizer backed by the built-in alias table.
func Default() *Normalizer {
	return defaultNormalizer
}

// New builds a normalizer from the built-in table plus extra aliases.
// Extra keys are lower-cased and NFC-normalized. Entries may only add names: overriding a
// built-in alias or mapping a canonical name elsewhere is rejected.
func New(extra map[string]string) (*Normalizer, error) {
	aliases := make(map[string]string, len(defaultAliases)+len(extra))
	for k, v := range defaultAliases {
		aliases[k] = v
	}

	for k, v := range extra {
		key := aliasKey(k)
		if key == "" || strings.TrimSpace(v) == "" {
			return nil, fmt.Errorf("insurer alias %q: empty alias or canonical name", k)
		}
		if existing, ok := aliases[key]; ok && existing != v {
			return nil, fmt.Errorf("insurer alias %q: already maps to %q", k, existing)
		}
		aliases[key] = v
	}

	for alias, canonical := range aliases {
		if target, ok := aliases[aliasKey(canonical)]; ok && target != canonical {
			return nil, fmt.Errorf("insurer alias %q: canonical name %q is itself an alias of %q", alias, canonical, target)
		}
	}

	return &Normalizer{aliases: aliases}, nil
}

// Normalize returns the canonical name for raw, or raw unchanged when no
// alias matches. A nil name stays nil.
func (n *Normalizer) Normalize(raw *string) *string {
	if raw == nil {
		return nil
	}
	if canonical, ok := n.aliases[aliasKey(*raw)]; ok {
		return &canonical
	}
	return raw
}

// Len reports how many aliases the normalizer knows.
func (n *Normalizer) Len() int {
	return len(n.aliases)
}

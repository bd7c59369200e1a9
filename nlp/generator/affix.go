package generator

import (
	"strings"

	"github.com/esmanning/emmAMR/nlp/amr"
)

const PREP_ROLE = ":prep-"

type affixes struct {
	prefixes, suffixes []string
}

func (a affixes) empty() bool {
	return len(a.prefixes) == 0 && len(a.suffixes) == 0
}

var fixedAffixes = map[string]affixes{
	":accompanier": {prefixes: []string{"with "}},
	":destination": {prefixes: []string{"to "}},
	":purpose":     {prefixes: []string{"to "}},
	":condition":   {prefixes: []string{"if "}},
	":compared-to": {prefixes: []string{"than "}},
	amr.REL_POSS:   {prefixes: []string{"of "}, suffixes: []string{" 's"}},
	":domain":      {suffixes: []string{" is"}},
	":location":    {prefixes: []string{"in ", "at ", "by "}},
}

// roleAffixes returns the function words a relation wraps around its
// dependent, e.g. :prep-on-behalf-of prefixes "on behalf of ".
func roleAffixes(rel string) affixes {
	if strings.Contains(rel, PREP_ROLE) {
		parts := strings.Split(rel, "-")[1:]
		return affixes{prefixes: []string{strings.Join(parts, " ") + " "}}
	}
	return fixedAffixes[rel]
}

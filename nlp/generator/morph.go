package generator

import (
	"strings"
)

// frameBase strips the sense of a frame: look-up-05 -> "look up"
func frameBase(concept string) string {
	parts := strings.Split(concept, "-")
	return strings.Join(parts[:len(parts)-1], " ")
}

// nounBase spells out a non-frame concept: ice-cream -> "ice cream"
func nounBase(concept string) string {
	return strings.ReplaceAll(concept, "-", " ")
}

func pastTense(base string) string {
	switch {
	case base == "say":
		return "said"
	case strings.HasSuffix(base, "e"):
		return base + "d"
	case strings.HasSuffix(base, "y"):
		return base[:len(base)-1] + "ied"
	default:
		return base + "ed"
	}
}

// frameRealizations over-generates inflections and derivations of a verb.
// The oracle ranks them, so none is preferred here.
func frameRealizations(base string) []string {
	retval := make([]string, 0, 20)
	retval = append(retval, base, "is "+base, "are "+base, base+"ment")

	if strings.HasSuffix(base, "e") {
		retval = append(retval, base[:len(base)-1]+"ing")
	} else {
		retval = append(retval, base+"ing")
	}

	if strings.HasSuffix(base, "y") {
		retval = append(retval, base[:len(base)-1]+"ily", base[:len(base)-1]+"ies")
	} else {
		retval = append(retval, base+"ly", base+"s")
	}

	past := pastTense(base)
	for _, aux := range []string{"", "is ", "are ", "was ", "were ", "have ", "has ", "had "} {
		retval = append(retval, aux+past)
	}

	if strings.HasSuffix(base, "e") || strings.HasSuffix(base, "t") {
		stem := base[:len(base)-1]
		retval = append(retval, stem+"ion", stem+"ition", stem+"ation")
	}
	return retval
}

func nounRealizations(noun string) []string {
	return []string{
		noun,
		"the " + noun,
		"a " + noun,
		"an " + noun,
		noun + "s",
		"the " + noun + "s",
	}
}

// ordinal spells out an ordinal number: 3 -> third, 21 -> 21st
func ordinal(value string) string {
	if word, exists := ordinals[value]; exists {
		return word
	}
	if len(value) == 0 {
		return value
	}
	if suffix, exists := ordinalSuffixes[value[len(value)-1]]; exists {
		return value + suffix
	}
	return value + "th"
}

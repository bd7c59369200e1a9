package generator

// Closed-class English realizations.

var negations = []string{
	"not", "do n't", "does n't", "did n't", "is n't", "are n't",
	"wo n't", "have n't", "has n't", "was n't", "were n't",
}

var months = map[string]string{
	"1": "January", "2": "February", "3": "March", "4": "April",
	"5": "May", "6": "June", "7": "July", "8": "August",
	"9": "September", "10": "October", "11": "November", "12": "December",
}

var ordinals = map[string]string{
	"1": "first", "2": "second", "3": "third", "4": "fourth",
	"5": "fifth", "6": "sixth", "7": "seventh", "8": "eighth",
	"9": "ninth", "10": "tenth", "11": "eleventh", "12": "twelfth",
}

// ordinalSuffixes is keyed by last digit, anything else takes "th"
var ordinalSuffixes = map[byte]string{'1': "st", '2': "nd", '3': "rd"}

// functionWords maps abstract concepts to the words that express them
var functionWords = map[string][]string{
	"have-concession-91": {"though"},
	"contrast-01":        {"but"},
	"have-condition-91":  {"if"},
	"amr-unknown":        {"why"},
	"multi-sentence":     {"."},
	"possible-01":        {"can"},
	"obligate-01":        {"must"},
	"recommend-01":       {"should"},
	"date-entity":        {"on", "in"},
	"cause-01":           {"because"},
	"percentage-entity":  {"%", "percent"},
	"include-91":         {"of the"},
}

// reifiedMarkers flag structural concepts that are not spelled out
var reifiedMarkers = []string{"-91", "-entity", "-quantity"}

// roleConcepts supply the noun phrase of a person they attach to
var roleConcepts = map[string]bool{
	"have-org-role-91": true,
	"have-rel-role-91": true,
}

const PERSON_CONCEPT = "person"

const ORDINAL_CONCEPT = "ordinal-entity"

const NEGATIVE_POLARITY = "-"

type pronoun struct {
	forms      []string
	possessive string
}

var pronouns = map[string]pronoun{
	"i":    {[]string{"i", "me"}, "my"},
	"we":   {[]string{"we", "us"}, "our"},
	"he":   {[]string{"he", "him"}, "his"},
	"she":  {[]string{"she", "her"}, "her"},
	"they": {[]string{"they", "them"}, "their"},
	"it":   {[]string{"it"}, "its"},
	"you":  {[]string{"you"}, "your"},
}

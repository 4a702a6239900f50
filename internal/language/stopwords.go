package language

// stopWords are Spanish function words that are usually known even by
// beginners. They are excluded from the unique-lemma set by default and
// counted as comprehensible when estimating comprehension.
var stopWords = map[string]struct{}{
	"a": {}, "al": {}, "algo": {}, "algunas": {}, "algunos": {}, "ante": {},
	"antes": {}, "como": {}, "con": {}, "contra": {}, "cual": {}, "cuando": {},
	"de": {}, "del": {}, "desde": {}, "donde": {}, "durante": {}, "e": {},
	"el": {}, "ella": {}, "ellas": {}, "ellos": {}, "en": {}, "entre": {},
	"era": {}, "esa": {}, "esas": {}, "ese": {}, "eso": {}, "esos": {},
	"esta": {}, "estado": {}, "estas": {}, "este": {}, "esto": {}, "estos": {},
	"fue": {}, "ha": {}, "han": {}, "hay": {}, "la": {}, "las": {}, "le": {},
	"les": {}, "lo": {}, "los": {}, "me": {}, "mi": {}, "muy": {}, "ni": {},
	"no": {}, "nos": {}, "o": {}, "os": {}, "para": {}, "pero": {}, "por": {},
	"que": {}, "qué": {}, "se": {}, "si": {}, "sí": {}, "sin": {}, "sobre": {},
	"su": {}, "sus": {}, "también": {}, "tan": {}, "te": {}, "tu": {},
	"tus": {}, "un": {}, "una": {}, "uno": {}, "unos": {}, "unas": {},
	"y": {}, "ya": {}, "yo": {},
}

// IsStopWord reports whether the (lowercased) word is a Spanish stop word.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

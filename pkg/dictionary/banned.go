package dictionary

// cardinals and ordinals are excluded from the dictionary because a puzzle
// assembled from number words reads as nonsense ("the THIRD CAT SAT").
var cardinals = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen", "twenty", "thirty", "forty", "fourty",
	"fifty", "sixty", "seventy", "eighty", "ninety", "hundred", "thousand",
	"million", "billion", "trillion", "quadrillion", "quintillion", "sextillion",
	"octillion", "nonillion", "decillion",
}

var ordinals = []string{
	"zeroth", "zeroeth", "first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "nineth", "ninth", "tenth", "eleventh", "twelfth",
	"thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth",
	"eighteenth", "nineteenth", "twentieth", "thirtieth", "fortieth", "fourtieth",
	"fiftieth", "sixtieth", "seventieth", "eightieth", "ninetieth", "hundredth",
	"thousandth", "millionth", "billionth", "trillionth", "quadrillionth",
	"quintillionth", "sextillionth", "octillionth", "nonillionth", "decillionth",
}

// ludicrous holds one-off junk entries that have shown up in word-frequency
// corpora from hyphenated compounds ("london-based") splitting wrong.
var ludicrous = []string{"london-based"}

// BannedWords is the set of dictionary entries excluded regardless of
// frequency rank.
var BannedWords = func() map[string]struct{} {
	out := make(map[string]struct{}, len(cardinals)+len(ordinals)+len(ludicrous))
	for _, list := range [][]string{cardinals, ordinals, ludicrous} {
		for _, w := range list {
			out[w] = struct{}{}
		}
	}
	return out
}()

// IsBanned reports whether word (already lowercase) is excluded.
func IsBanned(word string) bool {
	_, ok := BannedWords[word]
	return ok
}

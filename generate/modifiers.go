package generate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/pafw/numtext"
	"github.com/dhamidi/pafw/random"
)

// ErrUnknownModifier is returned when a pattern names a modifier that does
// not exist. The generation session treats it as grounds to retry the whole
// attempt.
var ErrUnknownModifier = errors.New("unknown modifier")

type modifierFunc func(word string, params []string) (string, error)

var modifiers map[string]modifierFunc

// The map references applyModifier through the "random" entry, so it cannot
// be built in a var initializer.
func init() {
	modifiers = map[string]modifierFunc{
		"a": func(word string, params []string) (string, error) {
			if strings.ContainsRune("aeiou", rune(lowerByte(word[0]))) {
				return "an " + word, nil
			}
			return "a " + word, nil
		},
		"bracket": func(word string, params []string) (string, error) {
			return bracketWord(word, strParam(params, 0, "")), nil
		},
		"num2word":  numToWords,
		"num2words": numToWords,
		"reverse": func(word string, params []string) (string, error) {
			runes := []rune(word)
			for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
				runes[i], runes[j] = runes[j], runes[i]
			}
			return string(runes), nil
		},
		"ucase":     caseModifier(strings.ToUpper),
		"uppercase": caseModifier(strings.ToUpper),
		"lcase":     caseModifier(strings.ToLower),
		"lowercase": caseModifier(strings.ToLower),
		"propercase": func(word string, params []string) (string, error) {
			return properCase(word), nil
		},
		"sentencecase": func(word string, params []string) (string, error) {
			return sentenceCase(word), nil
		},
		"obscure": func(word string, params []string) (string, error) {
			return obscure(word), nil
		},
		"replace": func(word string, params []string) (string, error) {
			return strings.ReplaceAll(word, strParam(params, 0, ""), strParam(params, 1, "")), nil
		},
		"randomcase": func(word string, params []string) (string, error) {
			return randomCase(word), nil
		},
		"scramble": func(word string, params []string) (string, error) {
			return scrambleWord(word, intParam(params, 0, 1)), nil
		},
		"piglatin": func(word string, params []string) (string, error) {
			return pigLatin(word), nil
		},
		"repeat": func(word string, params []string) (string, error) {
			times := intParam(params, 0, 1)
			if times < 0 {
				times = 0
			}
			return strings.Repeat(word, times+1), nil
		},
		"right": func(word string, params []string) (string, error) {
			n := intParam(params, 0, len(word))
			if n > len(word) {
				n = len(word)
			}
			if n <= 0 {
				return word, nil
			}
			return word[len(word)-n:], nil
		},
		"left": func(word string, params []string) (string, error) {
			n := intParam(params, 0, len(word))
			if n > len(word) {
				n = len(word)
			}
			if n < 0 {
				n = 0
			}
			return word[:n], nil
		},
		"trim": func(word string, params []string) (string, error) {
			return strings.TrimSpace(word), nil
		},
		"format": func(word string, params []string) (string, error) {
			width := strings.Count(strParam(params, 0, "0"), "0")
			return zeroFill(word, width), nil
		},
		"mid": func(word string, params []string) (string, error) {
			start := intParam(params, 0, 1) - 1
			length := intParam(params, 1, 1)
			if start < 0 {
				start = 0
			}
			if start > len(word) {
				start = len(word)
			}
			end := start + length
			if end > len(word) {
				end = len(word)
			}
			if end < start {
				end = start
			}
			return word[start:end], nil
		},
		"swap": func(word string, params []string) (string, error) {
			return swapInitials(word), nil
		},
		"romannumeral": func(word string, params []string) (string, error) {
			n, err := strconv.Atoi(strings.TrimSpace(word))
			if err != nil {
				return word, nil
			}
			return toRoman(n), nil
		},
		"hide": func(word string, params []string) (string, error) {
			return "", nil
		},
		"quote": func(word string, params []string) (string, error) {
			return `"` + word + `"`, nil
		},
		"stutter": func(word string, params []string) (string, error) {
			return stutter(word), nil
		},
		"random": func(word string, params []string) (string, error) {
			name := random.PickOne("bracket num2words randomcase reverse obscure piglatin scramble swap")
			return applyModifier(word, name, params)
		},
	}
}

// applyModifier dispatches a modifier by case-insensitive name. An empty
// input short-circuits every modifier, including unknown ones.
func applyModifier(word, name string, params []string) (string, error) {
	if word == "" {
		return word, nil
	}

	fn, ok := modifiers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownModifier, name)
	}
	return fn(word, params)
}

func caseModifier(transform func(string) string) modifierFunc {
	return func(word string, params []string) (string, error) {
		return transform(word), nil
	}
}

func numToWords(word string, params []string) (string, error) {
	return sentenceCase(numtext.NumberAsText(word)), nil
}

func lowerByte(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}

func upperByte(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}

func isLetterByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// sentenceCase uppercases the first character and lowercases the rest.
func sentenceCase(text string) string {
	if text == "" {
		return text
	}
	return string(upperByte(text[0])) + strings.ToLower(text[1:])
}

// properCase capitalizes the first letter of every word and lowercases the
// rest of it.
func properCase(text string) string {
	b := []byte(strings.ToLower(text))
	prevLetter := false
	for i := range b {
		if isLetterByte(b[i]) && !prevLetter {
			b[i] = upperByte(b[i])
		}
		prevLetter = isLetterByte(b[i])
	}
	return string(b)
}

// zeroFill left-pads a string with zeros to the given width.
func zeroFill(word string, width int) string {
	if len(word) >= width {
		return word
	}
	return strings.Repeat("0", width-len(word)) + word
}

const defaultBrackets = `[ ] < > ( ) ( ) ( ) ( ) ( ) ( ) ( ) ( ) [ ] [ ] | | \ / * * [ ] { } / / \ / / \ \ \ <- -> -> <-`

// bracketWord wraps a word in one randomly chosen pair from a space-separated
// even-length bracket list.
func bracketWord(word, bracketList string) string {
	if bracketList == "" {
		bracketList = defaultBrackets
	}

	brackets := strings.Split(bracketList, " ")
	if len(brackets) < 2 {
		return word
	}

	pairs := len(brackets) / 2
	x := 0
	if pairs > 1 {
		x = random.Rand(pairs-1, 0, 1) * 2
	}
	return brackets[x] + word + brackets[x+1]
}

// Leet-speak substitution rules, in priority-free table order. Each rule is
// applied at most once per obscure call.
var obscureRules = [][2]string{
	{"ate", "8"}, {"for", "4"}, {"e", "3"}, {"l", "1"}, {"s", "z"},
	{"o", "0"}, {"a", "@"}, {"s", "$"}, {"l", "|"}, {"ait", "8"},
	{"a", ""}, {"e", ""}, {"ou", "u"}, {"cc", "x"}, {"oo", "ew"},
	{"and", "&"}, {"are", "r"}, {"ks", "x"}, {"f", "ph"}, {"ph", "f"},
	{"won", "1"}, {"l", "r"}, {"ee", "eee"}, {"000", "k"}, {"er", "r"},
	{"ex", "x"}, {"ecs", "x"}, {"m", "mm"}, {"cke", "x0"}, {"qu", "kw"},
	{"a", "'"}, {"u", "'"}, {"ei", "ee"}, {"one", "own"}, {"oi", "oy"},
	{"om", "um"}, {"a", "aa"}, {"ew", "u"}, {"us", "is"}, {"y", "ee"},
	{"sh", "ch"}, {"to", "2"}, {"s", "th"}, {"ck", "q"}, {"ci", "si"},
	{"ie", "iye"}, {"tion", "shun"}, {"r", "w"}, {"come", "cum"},
	{"cks", "x"}, {"ight", "ite"}, {"ing", "'n"}, {"th", "f"},
	{"too", "2"}, {"why", "y"}, {"your", "yor"}, {"sc", "sh"},
	{"sh", "th"}, {"ly", "lee"}, {"er", "uh"}, {"er", "a"},
	{"the", "da"}, {"it is", "'tis"}, {"you", "ya"}, {"l", "w"},
	{"th", "d"}, {"a", "u"}, {"th", "'"}, {"your", "yer"},
	{"ned", "nt"}, {"e", "_"}, {"t", "+"}, {"e", "="}, {"can", "kin"},
	{"t", "'"}, {"ng", "n'"}, {"red", "hed"}, {"he", "eh"}, {"h", ""},
	{"f", "v"}, {"ha", "o"}, {"v", "f"}, {"v", "b"}, {"N", `|\|`},
	{"ll", "dd"}, {"ll", "tt"}, {"dd", "tt"}, {"h", "'"}, {"o", "a"},
	{"e", "a"}, {"a", "uh"}, {"a", "u"}, {"oo", "u"}, {"i", "ih"},
	{"a ", "ah"}, {"s", "ss"}, {"t", "tt"}, {"d", "dd"}, {"at", "@"},
	{" ", ""}, {"with", "w/"}, {"t", "d"}, {"t", "dd"}, {"d", "t"},
	{"d", "tt"}, {"cks", "x"}, {"er", "ah"},
}

// obscure applies a weighted-random number of single-shot leet-speak
// substitutions, with a 75% chance of stopping early once at least three
// attempts have run and the word has changed.
func obscure(word string) string {
	result := word

	maxAttempts := random.Rand(20, 2, 2)
	for i := 0; i < maxAttempts; i++ {
		rule := obscureRules[random.Rand(len(obscureRules)-1, 0, 1)]
		if strings.Contains(result, rule[0]) {
			result = strings.Replace(result, rule[0], rule[1], 1)
		}
		if i >= 2 && result != word && random.Chance(75) {
			break
		}
	}

	return result
}

// randomCase applies one of fifteen capitalization strategies, selected
// uniformly.
func randomCase(word string) string {
	switch random.Rand(14, 0, 1) {
	case 0:
		return word
	case 1:
		return strings.ToUpper(word)
	case 2:
		return strings.ToLower(word)
	case 3:
		return properCase(word)
	case 4:
		// Uppercase every occurrence of one letter.
		letter := string(word[random.Rand(len(word)-1, 0, 1)])
		return strings.ReplaceAll(word, letter, strings.ToUpper(letter))
	case 5:
		b := []byte(word)
		for i := range b {
			if random.Rand(1, 0, 1) == 1 {
				b[i] = upperByte(b[i])
			}
		}
		return string(b)
	case 6, 7:
		b := []byte(word)
		i := random.Rand(len(b)-1, 0, 1)
		b[i] = upperByte(b[i])
		return string(b)
	case 8:
		return upperAlphabet(word, vowels)
	case 9:
		return upperAlphabet(word, consonants)
	case 10:
		if len(word) < 2 {
			return strings.ToUpper(word)
		}
		b := []byte(word)
		i := random.Rand(len(b)-2, 0, 1)
		b[i] = upperByte(b[i])
		b[i+1] = upperByte(b[i+1])
		return string(b)
	case 11:
		b := []byte(word)
		b[len(b)-1] = upperByte(b[len(b)-1])
		return string(b)
	case 12:
		if len(word) < 2 {
			return strings.ToUpper(word)
		}
		b := []byte(word)
		b[0] = upperByte(b[0])
		b[len(b)-1] = upperByte(b[len(b)-1])
		return string(b)
	case 13:
		x := random.Rand(len(word), 1, 2)
		return strings.ToUpper(word[:x]) + word[x:]
	default:
		b := []byte(word)
		for i := range b {
			if i%2 == 0 {
				b[i] = upperByte(b[i])
			}
		}
		return string(b)
	}
}

// upperAlphabet uppercases every character of word that appears in alphabet.
func upperAlphabet(word, alphabet string) string {
	b := []byte(word)
	for i := range b {
		if strings.ContainsRune(alphabet, rune(lowerByte(b[i]))) {
			b[i] = upperByte(b[i])
		}
	}
	return string(b)
}

// scrambleWord performs the given number of random transpositions. Length
// and character multiset are preserved.
func scrambleWord(word string, times int) string {
	if len(word) < 2 {
		return word
	}

	b := []byte(word)
	for i := 0; i < times; i++ {
		x1 := random.Rand(len(b)-1, 0, 1)
		x2 := random.Rand(len(b)-1, 0, 1)
		b[x1], b[x2] = b[x2], b[x1]
	}
	return string(b)
}

// pigLatin converts each space-separated word: vowel-led words take "yay",
// others rotate the first letter to the end and take "ay". Leading
// capitalization is preserved.
func pigLatin(text string) string {
	parts := strings.Split(text, " ")

	for i, word := range parts {
		if word == "" {
			continue
		}

		var converted string
		if strings.ContainsRune("aeiou", rune(lowerByte(word[0]))) {
			converted = word + "yay"
		} else {
			converted = word[1:] + string(word[0]) + "ay"
		}

		if word[0] >= 'A' && word[0] <= 'Z' {
			converted = string(upperByte(converted[0])) + strings.ToLower(converted[1:])
		}

		parts[i] = converted
	}

	return strings.Join(parts, " ")
}

// swapInitials swaps the first letters of the first two space-separated
// words. Fewer than two words is a no-op.
func swapInitials(text string) string {
	parts := strings.Split(text, " ")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return text
	}

	first := []byte(parts[0])
	second := []byte(parts[1])
	first[0], second[0] = second[0], first[0]
	parts[0] = string(first)
	parts[1] = string(second)

	return strings.Join(parts, " ")
}

// stutter repeats the word's opening syllable 1-4 times (weighted toward
// fewer) in front of the word, occasionally separated by an ellipsis or a
// space. The syllable ends at the first vowel, or at a widened consonant set
// 20% of the time.
func stutter(word string) string {
	marker := "aeiou"
	if random.Rand(100, 0, 1) <= 20 {
		marker = "hywrtnaeiou"
	}

	for i := 0; i < len(word); i++ {
		if !strings.ContainsRune(marker, rune(lowerByte(word[i]))) {
			continue
		}

		firstPart := word[:i+1]
		if random.Rand(100, 0, 1) < 5 {
			firstPart += "..."
		}
		if random.Rand(100, 0, 1) < 10 {
			firstPart += " "
		}

		stuttered := word
		for n := 0; n < random.Rand(4, 1, -2); n++ {
			stuttered = firstPart + stuttered
		}
		return stuttered
	}

	return word
}

var romanValues = []struct {
	value   int
	numeral string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// toRoman converts a positive integer to subtractive-notation Roman
// numerals. Zero and negative values convert to the empty string.
func toRoman(n int) string {
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.numeral)
			n -= rv.value
		}
	}
	return b.String()
}

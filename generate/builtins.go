package generate

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dhamidi/pafw/random"
	"github.com/dhamidi/pafw/words"
)

// builtinFunc produces the value for one placeholder name. Parameters arrive
// quote-stripped; handlers fall back to their documented defaults on missing
// or malformed values.
type builtinFunc func(g *Generator, params []string) (string, error)

var builtins = map[string]builtinFunc{
	"word": func(g *Generator, params []string) (string, error) {
		list := strParam(params, 0, "4-letter")
		// The list name itself supports a|b alternation.
		if strings.Contains(list, "|") {
			list = random.Pick(list, 1, "|")
		}
		return g.store.RandomWord(list)
	},
	"sp":    staticBuiltin(" "),
	"space": staticBuiltin(" "),
	"vowel": func(g *Generator, params []string) (string, error) {
		return pickChars(vowels, intParam(params, 0, 1)), nil
	},
	"consonant": func(g *Generator, params []string) (string, error) {
		return pickChars(consonants, intParam(params, 0, 1)), nil
	},
	"letter": func(g *Generator, params []string) (string, error) {
		count := intParam(params, 0, 1)
		if count < 0 {
			count = -count
		}
		return pickChars(letters, count), nil
	},
	"symbol":              pickOneBuiltin(symbols),
	"endpunctuation":      pickOneBuiltin(endPunctuation),
	"smiley":              pickOneBuiltin(smileys),
	"longmonth":           pickOneBuiltin(longMonths),
	"shortmonth":          pickOneBuiltin(shortMonths),
	"longday":             pickOneBuiltin(longDays),
	"shortday":            pickOneBuiltin(shortDays),
	"sentencepunctuation": pickCharBuiltin(sentencePunctuation),
	"keyboard":            pickCharBuiltin(keyboard),
	"numrow":              pickCharBuiltin(numRow),
	"numrowfull":          pickCharBuiltin(numRowFull),
	"row1":                pickCharBuiltin(row1),
	"row1full":            pickCharBuiltin(row1Full),
	"row2":                pickCharBuiltin(row2),
	"row2full":            pickCharBuiltin(row2Full),
	"row3":                pickCharBuiltin(row3),
	"row3full":            pickCharBuiltin(row3Full),
	"lefthand":            pickCharBuiltin(leftHand),
	"righthand":           pickCharBuiltin(rightHand),
	"number": func(g *Generator, params []string) (string, error) {
		max := intParam(params, 0, 9)
		min := intParam(params, 1, 0)
		weight := intParam(params, 2, 1)
		decimals := intParam(params, 3, 0)
		if decimals > 0 {
			v := random.RandFloat(max, min, weight, decimals)
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
		return strconv.Itoa(random.Rand(max, min, weight)), nil
	},
	"sequence": func(g *Generator, params []string) (string, error) {
		return keySequence(intParam(params, 0, 3)), nil
	},
	"numberpattern": func(g *Generator, params []string) (string, error) {
		return numberPattern(intParam(params, 0, 3)), nil
	},
	"numbercode": func(g *Generator, params []string) (string, error) {
		return numberCode(), nil
	},
	"ordinal": func(g *Generator, params []string) (string, error) {
		n := intParam(params, 0, random.Rand(99, 1, 1))
		return ordinal(n), nil
	},
	"phonetic": func(g *Generator, params []string) (string, error) {
		word := strParam(params, 0, "")
		if word == "" {
			word = random.PickChar(letters, 0)
		}
		return phonetic(word, intParam(params, 1, 1)), nil
	},
	"pronounceable": func(g *Generator, params []string) (string, error) {
		return words.Pronounceable(), nil
	},
	"asc": func(g *Generator, params []string) (string, error) {
		if s := strParam(params, 0, ""); s != "" {
			return strconv.Itoa(int(s[0])), nil
		}
		return strconv.Itoa(random.Rand(255, 32, 1)), nil
	},
	"chr": func(g *Generator, params []string) (string, error) {
		code, err := strconv.Atoi(strParam(params, 0, ""))
		if err != nil || code < 32 || code > 126 {
			return "", nil
		}
		return string(rune(code)), nil
	},
}

// resolveBuiltin dispatches a placeholder name. Unrecognized names are tried
// as wordlist names; when that fails too, the name itself is the value.
func (g *Generator) resolveBuiltin(name string, params []string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if fn, ok := builtins[key]; ok {
		return fn(g, params)
	}

	word, err := g.store.RandomWord(key)
	if errors.Is(err, words.ErrNotFound) {
		return name, nil
	}
	if err != nil {
		return "", err
	}
	return word, nil
}

func staticBuiltin(value string) builtinFunc {
	return func(*Generator, []string) (string, error) {
		return value, nil
	}
}

func pickOneBuiltin(table string) builtinFunc {
	return func(*Generator, []string) (string, error) {
		return random.PickOne(table), nil
	}
}

func pickCharBuiltin(table string) builtinFunc {
	return func(*Generator, []string) (string, error) {
		return random.PickChar(table, 0), nil
	}
}

func pickChars(table string, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteString(random.PickChar(table, 0))
	}
	return b.String()
}

// intParam reads the i-th parameter as an integer, falling back to def when
// the parameter is absent, empty, or not a number.
func intParam(params []string, i, def int) int {
	if i >= len(params) || params[i] == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(params[i]))
	if err != nil {
		return def
	}
	return n
}

func strParam(params []string, i int, def string) string {
	if i >= len(params) || params[i] == "" {
		return def
	}
	return params[i]
}

// ordinal appends the English ordinal suffix: 1st, 2nd, 3rd, 4th, with the
// 11..13 exception.
func ordinal(n int) string {
	s := strconv.Itoa(n)

	lastTwo := s
	if len(s) >= 2 {
		lastTwo = s[len(s)-2:]
	}
	if lastTwo == "11" || lastTwo == "12" || lastTwo == "13" {
		return s + "th"
	}

	switch s[len(s)-1] {
	case '1':
		return s + "st"
	case '2':
		return s + "nd"
	case '3':
		return s + "rd"
	default:
		return s + "th"
	}
}

var phoneticNATO = []string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot",
	"Golf", "Hotel", "India", "Juliet", "Kilo", "Lima", "Mike",
	"November", "Oscar", "Papa", "Quebec", "Romeo", "Sierra",
	"Tango", "Uniform", "Victor", "Whiskey", "X-Ray", "Yankee", "Zulu",
}

var phoneticNames = []string{
	"Adam", "Baker", "Charles", "David", "Edward", "Frank",
	"George", "Henry", "Ida", "John", "King", "Lincoln", "Mary",
	"Nora", "Ocean", "Paul", "Queen", "Robert", "Sam",
	"Tom", "Union", "Victor", "William", "X-Ray", "Young", "Zebra",
}

// phonetic spells a word letter by letter in a phonetic alphabet. Styles 0
// and 1 select the NATO alphabet, anything else the name-based one.
// Characters outside A-Z are dropped.
func phonetic(word string, style int) string {
	alphabet := phoneticNames
	if style == 0 || style == 1 {
		alphabet = phoneticNATO
	}

	var parts []string
	for _, ch := range strings.ToUpper(word) {
		if ch >= 'A' && ch <= 'Z' {
			parts = append(parts, alphabet[ch-'A'])
		}
	}
	return strings.Join(parts, " ")
}

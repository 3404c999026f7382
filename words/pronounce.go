package words

import (
	"strings"

	"github.com/dhamidi/pafw/random"
)

// Cluster tables used for building pronounceable words. Entries repeat to
// weight common clusters; picks are space-delimited.
const (
	// VowelClusters can appear anywhere in a word.
	VowelClusters = "a a a a a a a a a e e e e e e e e e e e i i i u u o o ay ea ee ia io oa oi oo er on re he ha in es io ou"

	// ConsonantClusters can appear anywhere in a word, including the start.
	ConsonantClusters = "b b c d d d f g j k m m m n n p p qu r r r s s s s t t t t v w x z z th st sh ph ch th sh for has tis men"

	// InnerConsonantClusters cannot start a word.
	InnerConsonantClusters = "nd rt dd zz rg ng tt ss mm nn pp nt nc nl ft"

	// ThreeLetterWords are common English three-letter words.
	ThreeLetterWords = "the and for are but not you all any can had her was one our out day get has him his how man new now old see two way who boy did its let put say she too use"
)

const (
	vowelSuffixes = "ing ers ance ence le ness ings ment ize ate ive ute acy ous ify " +
		"ought some edness ed es ly less ment able ible les led ious ant " +
		"ary iety ist ism ial ate act ure iac ice aint ent ant ure ide ify les"

	consonantSuffixes = "cked cker tor ter ly rer tic nst lyst onic ght nge nce zer cy ly " +
		"ny lic dged red ate ndle ching tching lent ged zen ted nnial lic " +
		"rly stic se les"

	tSuffixes = "ion ity ient ment ance ly less ter tor"
)

var doubledLetterCleanup = []struct{ from, to string }{
	{"aa", "a"}, {"hh", "h"}, {"ii", "i"}, {"jj", "j"},
	{"kk", "k"}, {"qq", "qu"}, {"uu", "u"}, {"vv", "v"},
	{"ww", "w"}, {"xx", "x"}, {"yy", "y"},
}

// Pronounceable generates a fake but pronounceable word by alternating vowel
// and consonant clusters, with a chance of finishing on a common suffix.
func Pronounceable() string {
	word := ""
	vowelNext := random.Rand(1, 0, 1) == 1

	for i := 0; i < random.Rand(5, 4, 1); i++ {
		length := len(word)

		if vowelNext {
			if random.Rand(3, 0, 1) == 0 && length > 1 {
				word += random.PickOne(vowelSuffixes)
				break
			}
			word += random.Pick(VowelClusters, 2, " ")
		} else {
			if random.Rand(3, 0, 1) == 0 && length > 0 {
				word += random.PickOne(consonantSuffixes)
				break
			}
			if random.Rand(3, 0, 1) == 0 && length > 0 {
				word += random.PickOne(InnerConsonantClusters)
			} else {
				word += random.Pick(ConsonantClusters, 2, " ")
			}
			if strings.HasSuffix(word, "t") && random.Rand(2, 0, 1) == 0 && length > 1 {
				word += random.PickOne(tSuffixes)
				break
			}
		}

		vowelNext = !vowelNext
	}

	for _, c := range doubledLetterCleanup {
		word = strings.ReplaceAll(word, c.from, c.to)
	}

	// i before e except after c
	word = strings.ReplaceAll(word, "cie", "cei")

	// A word should not start with a doubled letter.
	if len(word) >= 2 && word[0] == word[1] {
		word = word[1:]
	}

	return word
}

const fakePrefixes = "a ab abso aca acri admini alpha ambi ana ant ante anti apro aqua " +
	"archi astro atmo audi auto be bene beta beva bi bio centa chrono " +
	"circum co co- com con contra counter credo cryo cyber cyclo de " +
	"deca demo dextro di dia dicto dis double- duo dyna dyno dys e " +
	"ecto ef endo entre equi euro every ex exo extra fa fan fict fiz " +
	"flo fore fun gag gamma gap geo gig giga glyco goo gyro he hemi " +
	"hetero hexa his holo homeo homo hosp hu hydro hyper hypo id " +
	"identi ig imi in info infra int inter intra intro iso kilo kno " +
	"la lacto li longi luma ma macro magni mali mega meso meta micro " +
	"milli mini mis mono multi nano navi neo non non- novi octa octo " +
	"omni otco over oxy pan para peda penta per peri philo phoni " +
	"phono physi pico poly post pre pre- pro proto quad re retro " +
	"sancti semi septo similli steno sub super supra synchro tele " +
	"tera tetra thermo trans tre tri ultra un una under uni uno " +
	"vario vita xantho xero"

const fakeSuffixes = "able ad aero alooza any ation be bi bio cate cede ceed cess " +
	"eting fest fy gram graph iac ible ify ing ism ist ity ize log " +
	"logue logy maniac ment meter metry ogram ograph oid ology " +
	"ometer opath opsy osity phile phobe phobia phone super tion " +
	"tious ty"

var fakeWordCleanup = []struct{ from, to string }{
	{"aa", "a"}, {"ii", "i"}, {"hh", "h"}, {"jj", "j"},
	{"kk", "k"}, {"qq", "q"}, {"uu", "u"}, {"ww", "w"},
	{"xx", "x"}, {"yy", "y"}, {"zz", "z"}, {"eae", "ae"},
}

// FakeWord derives a new word from a base word by attaching a random prefix
// and/or suffix.
func FakeWord(base string) string {
	prefix := random.PickOne(fakePrefixes)
	suffix := random.PickOne(fakeSuffixes)

	if random.Rand(100, 0, 1) <= 20 && !strings.Contains(prefix, "-") {
		prefix += "-"
	}

	var word string
	switch random.Rand(5, 1, 1) {
	case 1:
		word = prefix + base + suffix
	case 2:
		word = base + suffix
	default:
		word = prefix + base
	}

	for _, c := range fakeWordCleanup {
		word = strings.ReplaceAll(word, c.from, c.to)
	}
	return word
}

package generate

// Character tables for the builtin placeholders. Alphabets are ordered by
// English letter frequency so that weighted picks favor common letters;
// space-delimited tables weight entries by repetition.
const (
	vowels     = "eaoiu"
	consonants = "tnshrdlcmfgypwbvkxjqz"
	letters    = "etaoinshrdlucmfgypwbvkxjqz"

	symbols = `! @ # % $ ^ & * ( ) { } : ' / ` + "`" + ` ~ * - < > + = _ | \ \ . . , , ; ; ? ? [ ]`

	sentencePunctuation = "!;:?.,"
	endPunctuation      = "! ! ! ! . . . . . . . . . . . . . . . ... ... ? ? ? ? ? ? ?"

	smileys = ":) :( :-) :-( :D :0 ;-) ;) :/ 8-) 8-( :-D :-0 :-p :^)"

	keyboard = `1234567890` + "`" + `~!@#$%^&*()-_=+]}[{\|'";:/?.>,<abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ`

	numRow     = "1234567890"
	numRowFull = "1234567890`~!@#$%^&*()_-+="
	row1       = "QWERTYUIOP"
	row1Full   = `QWERTYUIOP{[}]|\`
	row2       = "ASDFGHJKL"
	row2Full   = `ASDFGHJKL;:'"`
	row3       = "ZXCVBNM"
	row3Full   = "ZXCVBNM,<.>/?"

	leftHand  = "qwertasdfgzxcvb"
	rightHand = "yuiophjknm"

	longMonths  = "January February March April May June July August September October November December"
	shortMonths = "Jan Feb Mar Apr May Jun Jul Aug Sep Oct Nov Dec"
	longDays    = "Monday Tuesday Wednesday Thursday Friday Saturday Sunday"
	shortDays   = "Mon Tue Wed Thu Fri Sat Sun"
)

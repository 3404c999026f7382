package generate

import (
	"strconv"
	"strings"

	"github.com/dhamidi/pafw/random"
)

// Keyboard rows used by the sequence strategies, forward and reversed.
const (
	seqLetters = "abcdefghijklmnopqrstuvwxyz"
	seqNumbers = "1234567890"
	seqKey1    = "qwertyuiop"
	seqKey2    = "asdfghjkl"
	seqKey3    = "zxcvbnm"
	seqKey4    = "poiuytrewq"
	seqKey5    = "lkjhgfdsa"
	seqKey6    = "mnbvcxz"
)

// window takes a random slice of the given length out of s.
func window(s string, length int) string {
	start := 0
	if m := len(s) - length; m >= 1 {
		start = random.Rand(m, 0, 1)
	}
	end := start + length
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// keySequence generates one of ~20 keyboard walk shapes: sliding windows
// over a single row, vertical column walks across rows, alternating
// row/number picks, and mirrored walks from both ends of a row.
func keySequence(length int) string {
	if length <= 0 {
		length = 3
	}

	var seq strings.Builder

	switch choice := random.Rand(19, 0, 1); choice {
	case 1:
		return window(seqLetters, length)
	case 2:
		return window(seqNumbers, length)
	case 3:
		return window(seqKey1, length)
	case 4:
		return window(seqKey2, length)
	case 5:
		return window(seqKey3, length)
	case 6:
		return window(seqKey4, length)
	case 7:
		return window(seqKey5, length)
	case 8:
		return window(seqKey6, length)

	case 9, 10:
		// One short run from each of the three letter rows.
		i := random.Rand(7, 1, 1)
		n := length / 3
		rows := []string{seqKey1, seqKey2, seqKey3}
		if choice == 10 {
			rows = []string{seqKey3, seqKey2, seqKey1}
		}
		for _, row := range rows {
			end := i + n
			if end > len(row) {
				end = len(row)
			}
			if i < len(row) {
				seq.WriteString(row[i:end])
			}
		}

	case 11, 12, 13:
		// Column walk alternating between the top two letter rows.
		i := random.Rand(len(seqKey2)-1, 1, 1)
		for seq.Len() < length {
			seq.WriteByte(seqKey1[i])
			seq.WriteByte(seqKey2[i])
			i = (i + 1) % len(seqKey2)
		}

	case 14:
		// Top letter row against the number row.
		i := random.Rand(9, 1, 1)
		for seq.Len() < length {
			seq.WriteByte(seqKey1[i])
			seq.WriteByte(seqNumbers[i])
			i = (i + 1) % len(seqKey1)
		}

	case 15, 16:
		// The same walk over the reversed rows.
		i := random.Rand(len(seqKey5)-1, 1, 1)
		for seq.Len() < length {
			seq.WriteByte(seqKey4[i])
			seq.WriteByte(seqKey5[i])
			i = (i + 1) % len(seqKey5)
		}

	case 17:
		mirrorWalk(&seq, seqKey1, length)
	case 18:
		mirrorWalk(&seq, seqKey2, length)
	default:
		mirrorWalk(&seq, seqKey3, length)
	}

	s := seq.String()
	if len(s) > length {
		s = s[:length]
	}
	return s
}

// mirrorWalk pairs each position with its mirror from the other end of the
// row, walking inward from a random start.
func mirrorWalk(seq *strings.Builder, row string, length int) {
	i := random.Rand(len(row)-1, 1, 1)
	for seq.Len() < length && i < len(row) {
		j := len(row) - i - 1
		seq.WriteByte(row[i])
		seq.WriteByte(row[j])
		i++
	}
}

// numberPattern builds a digit string where each digit after the first is
// either fresh, a copy of an earlier digit, or one off from its predecessor
// (falling back to a fresh digit at the 1/9 boundaries).
func numberPattern(length int) string {
	if length <= 0 {
		length = 3
	}

	digits := make([]int, length)
	digits[0] = random.Rand(9, 0, 1)

	for i := 1; i < length; i++ {
		prev := digits[i-1]
		switch random.Rand(3, 0, 1) {
		case 0:
			digits[i] = random.Rand(9, 0, 1)
		case 1:
			digits[i] = digits[random.Rand(i, 1, 1)-1]
		case 2:
			if prev > 1 {
				digits[i] = prev - 1
			} else {
				digits[i] = random.Rand(9, 0, 1)
			}
		default:
			if prev < 9 {
				digits[i] = prev + 1
			} else {
				digits[i] = random.Rand(9, 0, 1)
			}
		}
	}

	var b strings.Builder
	for _, d := range digits {
		b.WriteString(strconv.Itoa(d))
	}
	return b.String()
}

// numberCode builds a short digit code interleaved with a repeated digit or
// a delimiter, occasionally bracket-wrapped, never ending on a non-digit.
func numberCode() string {
	repeatDigit := strconv.Itoa(random.Rand(9, 0, 1))
	delim := random.PickOne(`- - - - - - - - . . . , / \ :`)

	code := ""
	for {
		x := strconv.Itoa(random.Rand(9, 0, 1))

		for {
			code += x

			if random.Chance(30) {
				code += repeatDigit
			} else if random.Chance(40) {
				code += delim
			}

			if len(code) > 2 {
				break
			}
			if !random.Chance(30) {
				break
			}
		}

		if len(code) > random.Rand(4, 3, 1) {
			break
		}

		if random.Chance(10) {
			code = bracketWord(code, "")
		}

		if random.Chance(15) && len(code) > 2 {
			break
		}
	}

	if len(code) > 0 && !isDigit(code[len(code)-1]) {
		code = code[:len(code)-1]
	}

	return code
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

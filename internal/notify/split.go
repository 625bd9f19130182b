package notify

import "strings"

// MaxMessageLength is the Telegram limit for one message, in characters.
const MaxMessageLength = 4096

// Split breaks text into chunks of at most limit runes, cutting on line
// boundaries where it can. A single line longer than limit is cut hard.
func Split(text string, limit int) []string {
	if limit <= 0 {
		limit = MaxMessageLength
	}
	if runeLen(text) <= limit {
		return []string{text}
	}

	var chunks []string
	var cur strings.Builder
	curLen := 0

	flush := func() {
		if curLen > 0 {
			chunks = append(chunks, strings.TrimRight(cur.String(), "\n"))
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		n := runeLen(line)
		if curLen+n > limit {
			flush()
		}
		for n > limit {
			r := []rune(line)
			chunks = append(chunks, string(r[:limit]))
			line = string(r[limit:])
			n -= limit
		}
		cur.WriteString(line)
		curLen += n
	}
	flush()

	return chunks
}

func runeLen(s string) int {
	return len([]rune(s))
}

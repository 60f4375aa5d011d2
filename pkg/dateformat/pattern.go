package dateformat

import (
	"fmt"
	"strings"
	"time"
)

// segment is either a literal or a Go layout fragment for one pattern field.
type segment struct {
	literal string
	layout  string
	millis  bool
}

// fieldLayouts maps a CLDR field (letter repeated n times) to a Go layout.
// Counts above the largest entry use the largest entry.
var fieldLayouts = map[byte][]string{
	'y': {"2006", "06", "2006", "2006"},
	'M': {"1", "01", "Jan", "January"},
	'd': {"2", "02"},
	'E': {"Mon", "Mon", "Mon", "Monday"},
	'H': {"15", "15"},
	'h': {"3", "03"},
	'm': {"4", "04"},
	's': {"5", "05"},
	'a': {"PM"},
	'Z': {"-0700", "-0700", "-0700", "-07:00"},
	'z': {"MST"},
}

func compile(pattern string) ([]segment, error) {
	var segments []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segments = append(segments, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		ch := pattern[i]
		switch {
		case ch == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			n, ok := quoted(pattern[i+1:], &lit)
			if !ok {
				return nil, fmt.Errorf("%w: unterminated literal in %q", ErrInvalidPattern, pattern)
			}
			i += n + 1

		case ch == 'S':
			n := run(pattern, i)
			flush()
			segments = append(segments, segment{millis: true})
			i += n

		case fieldLayouts[ch] != nil:
			n := run(pattern, i)
			layouts := fieldLayouts[ch]
			idx := min(n, len(layouts)) - 1
			flush()
			segments = append(segments, segment{layout: layouts[idx]})
			i += n

		default:
			lit.WriteByte(ch)
			i++
		}
	}
	flush()
	return segments, nil
}

// quoted copies a quoted literal (without its opening quote) into lit and
// returns the number of bytes consumed, closing quote included.
func quoted(s string, lit *strings.Builder) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] != '\'' {
			lit.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			lit.WriteByte('\'')
			i++
			continue
		}
		return i + 1, true
	}
	return len(s), false
}

func run(pattern string, i int) int {
	n := 1
	for i+n < len(pattern) && pattern[i+n] == pattern[i] {
		n++
	}
	return n
}

func render(segments []segment, t time.Time) string {
	var b strings.Builder
	for _, s := range segments {
		switch {
		case s.millis:
			fmt.Fprintf(&b, "%03d", t.Nanosecond()/int(time.Millisecond))
		case s.layout != "":
			b.WriteString(t.Format(s.layout))
		default:
			b.WriteString(s.literal)
		}
	}
	return b.String()
}

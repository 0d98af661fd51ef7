package command

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/sandevgo/quizzer/internal/core"
)

// ParseID validates the <id> argument of a command. Like a lenient integer
// parse it reads an optional sign and the longest run of leading digits and
// ignores whatever follows, so "3abc" is 3. Ids too large for int64
// saturate; the repository reports them as not found.
// Zero and negative ids are returned as parsed and left for the repository
// to reject as not found.
func ParseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, core.ErrMissingParameter
	}
	return parseLeadingInt(args[0])
}

func parseLeadingInt(raw string) (int64, error) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, core.ErrNotANumber
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
			if s[0] == '-' {
				return math.MinInt64, nil
			}
			return math.MaxInt64, nil
		}
		return 0, core.ErrNotANumber
	}
	return n, nil
}

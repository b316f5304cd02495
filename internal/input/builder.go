package input

import (
	"strconv"
	"strings"

	"github.com/KaramelBytes/pairstats/internal/dataset"
)

// Columns holds tokens distributed alternately into X and Y. Each column is
// capped at the comma count of the raw input.
type Columns struct {
	X []float64
	Y []float64
}

// Dataset pairs the columns index by index. An X value with no Y partner is
// dropped.
func (c Columns) Dataset() *dataset.Dataset {
	return dataset.New(c.X, c.Y)
}

// CountCommas returns the number of ',' bytes in raw. It sizes both columns.
func CountCommas(raw []byte) int {
	n := 0
	for _, c := range raw {
		if c == ',' {
			n++
		}
	}
	return n
}

// Split breaks raw into tokens on space, comma, tab and newline. Runs of
// separators produce no empty tokens.
func Split(raw []byte) []string {
	return strings.FieldsFunc(string(raw), func(r rune) bool {
		switch r {
		case ' ', ',', '\t', '\n':
			return true
		}
		return false
	})
}

// Build parses raw into columns: token 0 goes to X, token 1 to Y, token 2 to
// X and so on. Tokens beyond a column's capacity are ignored.
func Build(raw []byte) Columns {
	size := CountCommas(raw)
	cols := Columns{
		X: make([]float64, 0, size),
		Y: make([]float64, 0, size),
	}
	for i, tok := range Split(raw) {
		v := ParseNumber(tok)
		if i%2 == 0 {
			if len(cols.X) < size {
				cols.X = append(cols.X, v)
			}
		} else if len(cols.Y) < size {
			cols.Y = append(cols.Y, v)
		}
	}
	return cols
}

// ParseNumber converts the longest numeric prefix of tok to a float. A token
// without one parses as 0.
func ParseNumber(tok string) float64 {
	s := strings.TrimLeft(tok, " \t\n\v\f\r")
	end := numericPrefix(s)
	if end == 0 {
		return 0
	}
	// Out-of-range values still come back as ±Inf, which is what we want.
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}

func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return end
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

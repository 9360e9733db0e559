// Package token defines the format-pattern token model and the scanner that
// splits a pattern string into positioned, classified tokens.
//
// Tokenization is total: it succeeds for every finite input, including the
// empty string and malformed brace sequences.  Judging well-formedness is
// the validator's job, not the scanner's.  The concatenation of all token
// texts, in order, always reconstructs the input pattern exactly.
package token

import "fmt"

// Kind classifies a pattern token.
type Kind int

// The closed set of token kinds a pattern scan can produce.
const (
	Literal Kind = iota
	Separator
	NumberComponent
	CurrencySymbol
	DateComponent
	TimeComponent
	TextPlaceholder
	BraceOpen
	BraceClose
)

var kindNames = map[Kind]string{
	Literal:         "literal",
	Separator:       "separator",
	NumberComponent: "number_component",
	CurrencySymbol:  "currency_symbol",
	DateComponent:   "date_component",
	TimeComponent:   "time_component",
	TextPlaceholder: "text_placeholder",
	BraceOpen:       "brace_open",
	BraceClose:      "brace_close",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler so tokens serialize with
// readable kind names (used by the patfmt CLI's JSON output).
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is one classified, positioned substring of a pattern.
type Token struct {
	// Kind is the token's classification.
	Kind Kind `json:"kind"`
	// Text is the exact substring of the pattern covered by this token.
	Text string `json:"text"`
	// Pos is the 0-based code-point offset of the token's first character.
	Pos int `json:"pos"`
}

// IsCurrencyRune reports whether r is a currency marker: the generic
// placeholder '¤' or one of the literal signs $, €, £, ¥.
func IsCurrencyRune(r rune) bool {
	switch r {
	case '¤', '$', '€', '£', '¥':
		return true
	}
	return false
}

// IsDateRune reports whether r is a date-component symbol (year, month, day).
// Month is uppercase M; lowercase m is the minute time symbol.
func IsDateRune(r rune) bool {
	return r == 'y' || r == 'M' || r == 'd'
}

// IsTimeRune reports whether r is a time-component symbol (hour, minute,
// second).
func IsTimeRune(r rune) bool {
	return r == 'H' || r == 'h' || r == 'm' || r == 's'
}

// isDigitPlaceholder reports whether r is a numeric placeholder symbol.
func isDigitPlaceholder(r rune) bool {
	return r == '#' || r == '0'
}

// Tokenize scans pattern into an ordered token sequence.
//
// The scan is a single left-to-right pass over code points:
//
//   - runs of '#'/'0', with commas embedded between placeholders, form one
//     number_component token per contiguous run
//   - a standalone ',' or '.' adjacent to a numeric run is a separator
//   - '¤', '$', '€', '£', '¥' each form a single-character currency_symbol
//   - runs of the same date symbol (y, M, d) form one date_component each;
//     runs of the same time symbol (H, h, m, s) one time_component each
//   - '{' and '}' are brace_open/brace_close; the text between a brace pair
//     is a single text_placeholder token
//   - every other character is its own literal token
//
// Token positions are strictly increasing and partition the pattern without
// gaps or overlap.
func Tokenize(pattern string) []Token {
	runes := []rune(pattern)
	if len(runes) == 0 {
		return []Token{}
	}

	toks := make([]Token, 0, len(runes))
	braceDepth := 0

	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '{':
			toks = append(toks, Token{Kind: BraceOpen, Text: "{", Pos: i})
			braceDepth++
			i++

		case r == '}':
			toks = append(toks, Token{Kind: BraceClose, Text: "}", Pos: i})
			if braceDepth > 0 {
				braceDepth--
			}
			i++

		case braceDepth > 0:
			// Inside a placeholder: consume up to the next brace.
			start := i
			for i < len(runes) && runes[i] != '{' && runes[i] != '}' {
				i++
			}
			toks = append(toks, Token{Kind: TextPlaceholder, Text: string(runes[start:i]), Pos: start})

		case IsCurrencyRune(r):
			toks = append(toks, Token{Kind: CurrencySymbol, Text: string(r), Pos: i})
			i++

		case isDigitPlaceholder(r):
			// A numeric run: '#'/'0' with commas embedded only when the comma
			// sits between two placeholders ("#,##0").
			start := i
			for i < len(runes) {
				if isDigitPlaceholder(runes[i]) {
					i++
					continue
				}
				if runes[i] == ',' && i+1 < len(runes) && isDigitPlaceholder(runes[i+1]) {
					i++
					continue
				}
				break
			}
			toks = append(toks, Token{Kind: NumberComponent, Text: string(runes[start:i]), Pos: start})

		case r == ',' || r == '.':
			// Separator only when adjacent to a numeric run; otherwise a
			// plain literal (e.g. the dot in "v1.x").
			prevNumeric := len(toks) > 0 && toks[len(toks)-1].Kind == NumberComponent
			nextNumeric := i+1 < len(runes) && isDigitPlaceholder(runes[i+1])
			kind := Literal
			if prevNumeric || nextNumeric {
				kind = Separator
			}
			toks = append(toks, Token{Kind: kind, Text: string(r), Pos: i})
			i++

		case IsDateRune(r):
			start := i
			for i < len(runes) && runes[i] == r {
				i++
			}
			toks = append(toks, Token{Kind: DateComponent, Text: string(runes[start:i]), Pos: start})

		case IsTimeRune(r):
			start := i
			for i < len(runes) && runes[i] == r {
				i++
			}
			toks = append(toks, Token{Kind: TimeComponent, Text: string(runes[start:i]), Pos: start})

		default:
			toks = append(toks, Token{Kind: Literal, Text: string(r), Pos: i})
			i++
		}
	}
	return toks
}

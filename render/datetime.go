package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reportkit/go-patfmt/diag"
	"github.com/reportkit/go-patfmt/token"
)

// DateTime compiles a tokenized date/time/datetime pattern into a formatter.
// family names the pattern family for error messages ("date", "time",
// "datetime").
//
// Component tokens are case-sensitive: y/M/d select calendar fields, H/h/m/s
// clock fields.  Each token is substituted with the corresponding field of
// the runtime value, zero-padded to the token's run length; literal
// separators pass through unchanged.
func DateTime(toks []token.Token, family string) Func {
	// Copy so the compiled closure cannot observe later mutation of the
	// caller's slice.
	own := make([]token.Token, len(toks))
	copy(own, toks)

	return func(v any, _ CallOptions) (string, error) {
		t, ok := toTime(v)
		if !ok {
			return "", diag.NewValueError(family, v)
		}

		var sb strings.Builder
		for _, tok := range own {
			switch tok.Kind {
			case token.DateComponent:
				sb.WriteString(renderDateComponent(tok.Text, t))
			case token.TimeComponent:
				sb.WriteString(renderTimeComponent(tok.Text, t))
			default:
				sb.WriteString(tok.Text)
			}
		}
		return sb.String(), nil
	}
}

// renderDateComponent renders one calendar token (a run of y, M, or d).
func renderDateComponent(run string, t time.Time) string {
	n := len(run)
	switch run[0] {
	case 'y':
		if n == 2 {
			return fmt.Sprintf("%02d", t.Year()%100)
		}
		return pad(t.Year(), n)
	case 'M':
		switch {
		case n >= 4:
			return t.Month().String() // "January" … "December"
		case n == 3:
			return t.Month().String()[:3] // "Jan" … "Dec"
		default:
			return pad(int(t.Month()), n)
		}
	case 'd':
		switch {
		case n >= 4:
			return t.Weekday().String() // "Sunday" … "Saturday"
		case n == 3:
			return t.Weekday().String()[:3] // "Sun" … "Sat"
		default:
			return pad(t.Day(), n)
		}
	}
	return run
}

// renderTimeComponent renders one clock token (a run of H, h, m, or s).
func renderTimeComponent(run string, t time.Time) string {
	n := len(run)
	switch run[0] {
	case 'H':
		return pad(t.Hour(), n)
	case 'h':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return pad(h, n)
	case 'm':
		return pad(t.Minute(), n)
	case 's':
		return pad(t.Second(), n)
	}
	return run
}

// pad renders v zero-padded to at least width digits.
func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

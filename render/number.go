package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/nfp"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reportkit/go-patfmt/diag"
)

// numberMeta is the placeholder metadata collected from one pattern section
// before any value is rendered.
type numberMeta struct {
	hasPercent      bool
	hasThousands    bool
	decZeros        int // count of '0' placeholders after the decimal point
	decHashes       int // count of '#' placeholders after the decimal point
	intZeros        int // count of '0' placeholders before the decimal point
	hasDecimal      bool
	hasExplicitSign bool // literal '+' or '-' in the section
}

// numberSpec is the immutable compiled form of a numeric pattern.  It is
// shared by the number, currency, and percentage families; the families
// differ only in currency-marker substitution and value scaling, both of
// which the nfp token stream already encodes.
type numberSpec struct {
	sections []nfp.Section
	// substituteCurrency controls whether literal currency signs are
	// replaced by the resolved call-time currency.  The generic '¤' marker
	// is always replaced.
	substituteCurrency bool
	family             string
}

// Number compiles a plain numeric pattern ("#,##0.00") into a formatter.
func Number(pattern string) Func {
	return compileNumeric(pattern, "number", false)
}

// Currency compiles a currency pattern ("¤#,##0.00", "$#,##0") into a
// formatter.  The currency marker is replaced at format time with the symbol
// resolved from the call options (currency code > literal symbol > locale
// default).
func Currency(pattern string) Func {
	return compileNumeric(pattern, "currency", true)
}

// Percentage compiles a percentage pattern ("#0.##%").  The value is scaled
// by 100 before numeric rendering and the '%' sign is emitted at its
// position in the pattern.
func Percentage(pattern string) Func {
	return compileNumeric(pattern, "percentage", false)
}

func compileNumeric(pattern, family string, substituteCurrency bool) Func {
	if substituteCurrency {
		// Quote the currency markers so the format parser is guaranteed to
		// carry them through as literal tokens.
		for _, sym := range []string{"¤", "$", "€", "£", "¥"} {
			pattern = strings.ReplaceAll(pattern, sym, `"`+sym+`"`)
		}
	}
	ps := nfp.NumberFormatParser()
	spec := &numberSpec{
		sections:           ps.Parse(pattern),
		substituteCurrency: substituteCurrency,
		family:             family,
	}
	return spec.format
}

// format renders a numeric runtime value through the compiled sections.
func (ns *numberSpec) format(v any, opts CallOptions) (string, error) {
	val, ok := toFloat(v)
	if !ok {
		return "", diag.NewValueError(ns.family, v)
	}
	if len(ns.sections) == 0 {
		return generalNumber(val), nil
	}
	sec := selectSection(ns.sections, val)

	// ── pass 1: collect placeholder metadata ─────────────────────────────────
	var m numberMeta
	afterDecimal := false
	for _, tok := range sec.Items {
		switch tok.TType {
		case nfp.TokenTypePercent:
			m.hasPercent = true
		case nfp.TokenTypeThousandsSeparator:
			m.hasThousands = true
		case nfp.TokenTypeDecimalPoint:
			m.hasDecimal = true
			afterDecimal = true
		case nfp.TokenTypeZeroPlaceHolder:
			if afterDecimal {
				m.decZeros += len(tok.TValue)
			} else {
				m.intZeros += len(tok.TValue)
			}
		case nfp.TokenTypeHashPlaceHolder:
			if afterDecimal {
				m.decHashes += len(tok.TValue)
			}
		case nfp.TokenTypeLiteral:
			if tok.TValue == "+" || tok.TValue == "-" {
				m.hasExplicitSign = true
			}
		}
	}
	totalDecPlaces := m.decZeros + m.decHashes

	// ── scale ─────────────────────────────────────────────────────────────────
	absVal := math.Abs(val)
	if m.hasPercent {
		absVal *= 100
	}

	// ── format the absolute value ─────────────────────────────────────────────
	// strconv.FormatFloat rounds to nearest at the display precision with
	// ties resolved to even, which is the rounding rule this engine
	// guarantees.
	var intStr, fracStr string
	if m.hasDecimal {
		formatted := strconv.FormatFloat(absVal, 'f', totalDecPlaces, 64)
		if dotIdx := strings.IndexByte(formatted, '.'); dotIdx >= 0 {
			intStr = formatted[:dotIdx]
			fracStr = formatted[dotIdx+1:]
		} else {
			intStr = formatted
			fracStr = strings.Repeat("0", totalDecPlaces)
		}
		// '#' placeholders suppress insignificant trailing zeros; '0'
		// placeholders force them.
		if m.decHashes > 0 && len(fracStr) > m.decZeros {
			trimTo := len(fracStr)
			for trimTo > m.decZeros && fracStr[trimTo-1] == '0' {
				trimTo--
			}
			fracStr = fracStr[:trimTo]
		}
	} else {
		intStr = strconv.FormatFloat(absVal, 'f', 0, 64)
	}

	// Leading '0' placeholders force digits the value does not have.
	for len(intStr) < m.intZeros {
		intStr = "0" + intStr
	}

	if m.hasThousands && len(intStr) > 3 {
		intStr = insertThousandsSep(intStr)
	}

	// When the negative section is selected it encodes the sign visually
	// itself; only a single-section pattern needs an explicit minus.
	needsMinus := val < 0 && !m.hasExplicitSign && len(ns.sections) < 2

	// Currency resolution happens once per call, not per token.
	curSym := ""
	if ns.substituteCurrency {
		curSym = resolveCurrencySymbol(opts)
	}

	// ── pass 2: reassemble by walking tokens ─────────────────────────────────
	var sb strings.Builder
	if needsMinus {
		sb.WriteByte('-')
	}

	intConsumed := false
	fracConsumed := false
	afterDecimal = false

	explicitCur := opts.Currency != ""

	for _, tok := range sec.Items {
		switch tok.TType {
		case nfp.TokenTypeLiteral:
			sb.WriteString(ns.renderLiteral(tok.TValue, curSym, explicitCur))

		case nfp.TokenTypeDecimalPoint:
			if len(fracStr) > 0 {
				sb.WriteByte('.')
			}
			afterDecimal = true

		case nfp.TokenTypeZeroPlaceHolder, nfp.TokenTypeHashPlaceHolder:
			if afterDecimal {
				if !fracConsumed {
					sb.WriteString(fracStr)
					fracConsumed = true
				}
			} else if !intConsumed {
				sb.WriteString(intStr)
				intConsumed = true
			}

		case nfp.TokenTypePercent:
			sb.WriteByte('%')

		case nfp.TokenTypeThousandsSeparator:
			// Already applied to intStr; don't emit the raw comma token.

		case nfp.TokenTypeColor, nfp.TokenTypeCondition,
			nfp.TokenTypeCurrencyLanguage, nfp.TokenTypeAlignment:
			// Formatting-only tokens carry no output.
		}
	}

	// A pattern with no placeholder tokens still shows the value.
	if !intConsumed && !afterDecimal {
		sb.WriteString(intStr)
	}
	if sb.Len() == 0 {
		return generalNumber(val), nil
	}
	return sb.String(), nil
}

// renderLiteral emits a literal token, substituting currency markers when
// this spec is currency-aware.  The generic '¤' placeholder is always
// replaced; concrete signs ($, €, £, ¥) only when the call supplied a
// currency, so "$#,##0" keeps its authored dollar sign by default.
func (ns *numberSpec) renderLiteral(text, curSym string, explicit bool) string {
	if !ns.substituteCurrency || curSym == "" {
		return text
	}
	var sb strings.Builder
	for _, r := range text {
		switch {
		case r == '¤':
			sb.WriteString(curSym)
		case explicit && (r == '$' || r == '€' || r == '£' || r == '¥'):
			sb.WriteString(curSym)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// selectSection picks the pattern section that applies to val:
//
//	1 section  → all values
//	2 sections → [0]=positive+zero  [1]=negative
//	3+         → [0]=positive  [1]=negative  [2]=zero
func selectSection(sections []nfp.Section, val float64) nfp.Section {
	switch {
	case len(sections) == 1:
		return sections[0]
	case len(sections) == 2:
		if val < 0 {
			return sections[1]
		}
		return sections[0]
	default:
		switch {
		case val > 0:
			return sections[0]
		case val < 0:
			return sections[1]
		default:
			return sections[2]
		}
	}
}

// insertThousandsSep inserts commas every three digits from the right in an
// integer string (digits only, no sign).
func insertThousandsSep(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	b.Grow(n + n/3)
	rem := n % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(s[:rem])
	for i := rem; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// ── currency resolution ───────────────────────────────────────────────────────

// resolveCurrencySymbol maps the call options to a display symbol:
//
//   - an ISO 4217 code ("USD") resolves through the locale's symbol table
//   - anything else non-empty is taken as a literal symbol ("$")
//   - empty currency falls back to the locale's default unit, then to "$"
func resolveCurrencySymbol(opts CallOptions) string {
	tag := localeTag(opts.Locale)

	if opts.Currency != "" {
		if unit, err := currency.ParseISO(opts.Currency); err == nil {
			return symbolFor(unit, tag)
		}
		return opts.Currency
	}

	if opts.Locale != "" {
		if unit, conf := currency.FromTag(tag); conf != language.No {
			return symbolFor(unit, tag)
		}
	}
	return "$"
}

// symbolFor renders the locale-appropriate symbol for a currency unit.
func symbolFor(unit currency.Unit, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit))
}

// localeTag parses a BCP 47 tag, defaulting to English for empty or
// malformed input (symbol lookup needs some locale to resolve against).
func localeTag(locale string) language.Tag {
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Package patfmt is a format-pattern engine for report rendering.  Given a
// human-authored pattern string ("#,##0.00", "¤#,##0.00", "yyyy-MM-dd",
// "%{value}") it classifies the pattern's semantic type, tokenizes it into
// positioned components, validates structural well-formedness with rich
// diagnostics, and compiles it into a reusable formatting function.
//
// # Quick start
//
//	spec, err := patfmt.Parse("#,##0.00")
//	if err != nil { ... }
//
//	out, err := spec.Format(1234.56) // "1,234.56"
//
// # Pattern families
//
// A pattern belongs to exactly one of eight families: number, currency,
// percentage, date, time, datetime, text, or custom.  [DetectType] infers
// the family from the pattern's surface syntax; callers may assert a family
// via [FormatOptions.Type], which [Parse] cross-checks against detection.
// [PatternInfo] documents each family's symbols with examples.
//
// # Diagnostics
//
// Malformed patterns never panic.  [Parse] and [Validate] return a
// [*diag.ParseError] carrying the message, the code-point position, a
// context snippet of the pattern, and at least one actionable suggestion.
// Compiled formatters likewise return a [*diag.FormatError] for runtime
// values of the wrong shape, so one bad cell value cannot abort a whole
// report render.
//
// # Concurrency
//
// Parsing, validation, and tokenization are pure functions over immutable
// inputs.  A [CompiledFormatSpec] captures only immutable pattern data and
// may be invoked concurrently without locking.  The process-lifetime compile
// cache coordinates concurrent compilations of the same pattern so at most
// one runs per key.
package patfmt

import (
	"github.com/reportkit/go-patfmt/render"
	"github.com/reportkit/go-patfmt/token"
)

// Version is the current version of the go-patfmt library.
const Version = "1.0.0"

// FormatType is the semantic family a pattern belongs to.
type FormatType string

// The closed set of pattern families.  The zero value means "not asserted";
// TypeCustom is the detection fallback when no recognized family matches.
const (
	TypeNumber     FormatType = "number"
	TypeCurrency   FormatType = "currency"
	TypePercentage FormatType = "percentage"
	TypeDate       FormatType = "date"
	TypeTime       FormatType = "time"
	TypeDateTime   FormatType = "datetime"
	TypeText       FormatType = "text"
	TypeCustom     FormatType = "custom"
)

// FormatOptions configures parsing and formatting.  The zero value is the
// default behavior: auto-detected type, caching on, full compilation, and
// non-strict validation.
type FormatOptions struct {
	// Type asserts the pattern's family.  Parse fails with a "type
	// mismatch" diagnostic when the assertion disagrees with detection.
	// Empty means use the detected type.
	Type FormatType
	// Locale is a BCP 47 tag forwarded to formatting (currency symbol
	// resolution).  Locale data is not validated here; unrecognized tags
	// degrade to the default locale.
	Locale string
	// Currency is an ISO 4217 code ("USD") or a literal symbol ("$") used
	// by currency formatters.
	Currency string
	// NoCache bypasses the process-lifetime compile cache for this call.
	NoCache bool
	// ValidateOnly stops after validation: Parse returns (nil, nil) for a
	// valid pattern without building a formatter.
	ValidateOnly bool
	// Strict applies additional validation rules (family mixing, empty
	// placeholders).  Strict mode is never more permissive than default.
	Strict bool
}

// FormatFunc renders a runtime value to its display string using the
// per-call options.  The supported value variants are number (any Go
// integer or float), time.Time (date/time/datetime), bool, and string.
type FormatFunc func(value any, opts FormatOptions) (string, error)

// CompiledFormatSpec is the immutable artifact produced by [Parse]: the
// original pattern, its resolved family, and the formatting function.  It
// carries no reference back to the tokenizer or validator and is safe to
// share across goroutines.
type CompiledFormatSpec struct {
	// Pattern is the exact input pattern string, never rewritten.
	Pattern string
	// Type is the resolved family; stable across re-parses of the same
	// pattern and options.
	Type FormatType
	// Formatter renders one value.  Nil only on specs returned from a
	// ValidateOnly parse (which returns a nil spec anyway).
	Formatter FormatFunc
	// Tokens is the pattern's token sequence, retained for tooling.
	Tokens []token.Token
	// Options are the compile-time options the spec was built with;
	// per-call options override the locale and currency.
	Options FormatOptions
}

// Format invokes the compiled formatter.  opts, when given, overrides the
// compile-time locale and currency for this call only.
func (s *CompiledFormatSpec) Format(value any, opts ...FormatOptions) (string, error) {
	var o FormatOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return s.Formatter(value, o)
}

// callOptions merges per-call overrides over the compile-time defaults.
func (s *CompiledFormatSpec) callOptions(call FormatOptions) render.CallOptions {
	co := render.CallOptions{Locale: s.Options.Locale, Currency: s.Options.Currency}
	if call.Locale != "" {
		co.Locale = call.Locale
	}
	if call.Currency != "" {
		co.Currency = call.Currency
	}
	return co
}

// Tokenize scans a pattern into its ordered token sequence.  It is total:
// it never fails, even for malformed patterns (well-formedness is
// [Validate]'s concern).
func Tokenize(pattern string) []token.Token {
	return token.Tokenize(pattern)
}

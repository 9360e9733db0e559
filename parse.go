package patfmt

import (
	"github.com/reportkit/go-patfmt/render"
	"github.com/reportkit/go-patfmt/token"
)

// Parse compiles a format pattern into a [CompiledFormatSpec].
//
// The pipeline is: resolve the effective type (asserted > detected) →
// tokenize → validate → build the family's formatting function → cache.
// With [FormatOptions.ValidateOnly] the pipeline stops after validation and
// returns (nil, nil) for a valid pattern.  Results are cached per
// (pattern, type, locale, currency) unless [FormatOptions.NoCache] is set;
// caching never changes results, only repeated work.
func Parse(pattern string, opts ...FormatOptions) (*CompiledFormatSpec, error) {
	var o FormatOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	toks := token.Tokenize(pattern)
	if perr := validatePattern(pattern, toks, o); perr != nil {
		return nil, perr
	}
	if o.ValidateOnly {
		return nil, nil
	}

	typ := o.Type
	if typ == "" {
		typ = DetectType(pattern)
	}

	if o.NoCache {
		return compile(pattern, typ, toks, o), nil
	}
	return defaultCache.getOrCompile(pattern, typ, o, func() *CompiledFormatSpec {
		return compile(pattern, typ, toks, o)
	}), nil
}

// compile builds the immutable spec for an already-validated pattern.
func compile(pattern string, typ FormatType, toks []token.Token, o FormatOptions) *CompiledFormatSpec {
	spec := &CompiledFormatSpec{
		Pattern: pattern,
		Type:    typ,
		Tokens:  toks,
		Options: o,
	}
	rf := buildRenderFunc(pattern, typ, toks)
	spec.Formatter = func(value any, call FormatOptions) (string, error) {
		return rf(value, spec.callOptions(call))
	}
	return spec
}

// buildRenderFunc selects the family's rendering constructor.
func buildRenderFunc(pattern string, typ FormatType, toks []token.Token) render.Func {
	switch typ {
	case TypeNumber:
		return render.Number(pattern)
	case TypeCurrency:
		return render.Currency(pattern)
	case TypePercentage:
		return render.Percentage(pattern)
	case TypeDate, TypeTime, TypeDateTime:
		return render.DateTime(toks, string(typ))
	case TypeText:
		// Placeholder lookup is wired by the surrounding report system;
		// the library default stringifies the runtime value.
		return render.Text(toks, nil)
	default:
		return render.Passthrough()
	}
}

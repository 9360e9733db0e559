package patfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		pattern string
		want    FormatType
	}{
		// Currency markers override everything.
		{"¤#,##0.00", TypeCurrency},
		{"$#,##0", TypeCurrency},
		{"#,##0.00 €", TypeCurrency},
		{"£0", TypeCurrency},
		{"¥#,##0", TypeCurrency},
		{"$0.00%", TypeCurrency}, // currency beats percent
		{"$ yyyy", TypeCurrency}, // currency beats date

		// Percent.
		{"0%", TypePercentage},
		{"#0.##%", TypePercentage},
		{"% of total 0", TypePercentage},

		// Date / time / datetime.
		{"yyyy-MM-dd", TypeDate},
		{"dd/MM/yyyy", TypeDate},
		{"MMM d", TypeDate},
		{"HH:mm:ss", TypeTime},
		{"h:mm", TypeTime},
		{"yyyy-MM-dd HH:mm:ss", TypeDateTime},
		{"dd/MM/yyyy HH:mm", TypeDateTime},

		// Text placeholders, with and without the % sigil.
		{"%{value}", TypeText},
		{"{amount}", TypeText},
		{"Total: {x}", TypeText},

		// Plain numbers.
		{"#,##0.00", TypeNumber},
		{"0", TypeNumber},
		{"#0.#", TypeNumber},
		{"000", TypeNumber},

		// Fallback.
		{"", TypeCustom},
		{"abc", TypeCustom},
		{"???", TypeCustom},
		{"yyyy#0", TypeCustom}, // date symbols mixed with placeholders
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectType(tc.pattern))
		})
	}
}

func TestDetectTypeNeverFails(t *testing.T) {
	// Detection is total: any input classifies, garbage included.
	for _, p := range []string{"", "{{{", "}}}", "\x00", "¤¤¤¤", "....", "%%%"} {
		assert.NotEmpty(t, DetectType(p))
	}
}

func TestDetectTypeStable(t *testing.T) {
	for _, p := range []string{"#,##0.00", "yyyy-MM-dd", "%{v}", "¤0"} {
		assert.Equal(t, DetectType(p), DetectType(p))
	}
}

package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportkit/go-patfmt/diag"
	"github.com/reportkit/go-patfmt/token"
)

func mustFormat(t *testing.T, pattern string, v any) string {
	t.Helper()
	f := DateTime(token.Tokenize(pattern), "datetime")
	got, err := f(v, CallOptions{})
	require.NoError(t, err)
	return got
}

func TestDateTimeFormatting(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 5, 7, 0, time.UTC)

	tests := []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", "2024-03-15"},
		{"dd/MM/yyyy", "15/03/2024"},
		{"yy", "24"},
		{"M/d", "3/15"},
		{"MMM d, yyyy", "Mar 15, 2024"},
		{"MMMM", "March"},
		{"ddd", "Fri"},
		{"dddd", "Friday"},
		{"HH:mm:ss", "09:05:07"},
		{"H:m:s", "9:5:7"},
		{"yyyy-MM-dd HH:mm:ss", "2024-03-15 09:05:07"},
	}
	for _, tc := range tests {
		t.Run(tc.pattern, func(t *testing.T) {
			assert.Equal(t, tc.want, mustFormat(t, tc.pattern, ts))
		})
	}
}

func TestDateTimeTwelveHourClock(t *testing.T) {
	afternoon := time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "3:30", mustFormat(t, "h:mm", afternoon))

	midnight := time.Date(2024, 3, 15, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, "12:10", mustFormat(t, "h:mm", midnight))

	assert.Equal(t, "15:30", mustFormat(t, "HH:mm", afternoon))
}

func TestDateTimeRejectsNonTime(t *testing.T) {
	f := DateTime(token.Tokenize("yyyy-MM-dd"), "date")
	for _, v := range []any{42, "2024-03-15", nil, 3.14} {
		_, err := f(v, CallOptions{})
		require.Error(t, err, "value %v", v)
		var ferr *diag.FormatError
		require.ErrorAs(t, err, &ferr)
		assert.Equal(t, diag.InvalidValue, ferr.Kind)
	}
}

func TestDateTimeLiteralPassthrough(t *testing.T) {
	ts := time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "on 2030/12", mustFormat(t, "on yyyy/MM", ts))
}

package sample

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"one per line", "1\n2\n3\n", []float64{1, 2, 3}},
		{"commas", "1,2,3", []float64{1, 2, 3}},
		{"semicolons and spaces", "1; 2 ;3\t4", []float64{1, 2, 3, 4}},
		{"crlf", "1.5\r\n-2\r\n", []float64{1.5, -2}},
		{"comments and blanks", "# density\n\n  # indented comment\n7e1, 0.25\n", []float64{70, 0.25}},
		{"empty fields", "1,,2;;3", []float64{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadInvalidToken(t *testing.T) {
	_, err := Read(strings.NewReader("1 2\n# ok\n3 x4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"x4"`)
}

func TestReadEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", "# only a comment\n"} {
		_, err := Read(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrEmpty, "input %q", input)
	}
}

func TestReadPropagatesReaderError(t *testing.T) {
	_, err := Read(iotest.ErrReader(iotest.ErrTimeout))
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

// NaN and Inf parse here; classbreaks.New rejects them with a clearer error.
func TestReadKeepsNonFinite(t *testing.T) {
	got, err := Read(strings.NewReader("1 NaN Inf"))
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

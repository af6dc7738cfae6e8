package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases",
			input: "Acme Corporation",
			want:  "acme corporation",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  Acme Corp  ",
			want:  "acme corp",
		},
		{
			name:  "collapses interior whitespace",
			input: "Acme\t  Corp",
			want:  "acme corp",
		},
		{
			name:  "case folds beyond ascii",
			input: "Müller GmbH",
			want:  "müller gmbh",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeName_EqualAfterNormalization(t *testing.T) {
	assert.Equal(t, NormalizeName("ACME  Corp"), NormalizeName(" acme corp "))
	assert.NotEqual(t, NormalizeName("Acme Corp"), NormalizeName("Acme Corporation"))
}

package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitName(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name      string
		in        *string
		wantFirst *string
		wantLast  *string
	}{
		{"nil", nil, nil, nil},
		{"empty", str(""), nil, nil},
		{"blank", str("   \t"), nil, nil},
		{"single token", str("Prince"), str("Prince"), str("")},
		{"two tokens", str("Jane Doe"), str("Jane"), str("Doe")},
		{"three tokens", str("Mary Jane Watson"), str("Mary"), str("Jane Watson")},
		{"extra whitespace", str("  Mary   Jane\tWatson  "), str("Mary"), str("Jane Watson")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.in)
			if tt.wantFirst == nil {
				assert.Nil(t, first)
				assert.Nil(t, last)
				return
			}
			require.NotNil(t, first)
			require.NotNil(t, last)
			assert.Equal(t, *tt.wantFirst, *first)
			assert.Equal(t, *tt.wantLast, *last)
		})
	}
}

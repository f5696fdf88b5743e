package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple words",
			input: "start stop",
			want:  []string{"start", "stop"},
		},
		{
			name:  "quoted words",
			input: `start "two words" 'three more words'`,
			want:  []string{"start", "two words", "three more words"},
		},
		{
			name:  "escaped quotes",
			input: `say \"hello\"`,
			want:  []string{"say", `"hello"`},
		},
		{
			name:  "multiple spaces",
			input: "a   b    c",
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  []string{},
		},
		{
			name:  "comment is dropped",
			input: "a b # c d",
			want:  []string{"a", "b"},
		},
		{
			name:  "flags stay intact",
			input: "--verbose -q",
			want:  []string{"--verbose", "-q"},
		},
		{
			name:    "unterminated quote",
			input:   `start "stop`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "failed to split word list")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

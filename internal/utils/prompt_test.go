package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskConfirmation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		force bool
		want  bool
	}{
		{"yes", "yes\n", false, true},
		{"short yes", "Y\n", false, true},
		{"no", "n\n", false, false},
		{"empty line", "\n", false, false},
		{"eof", "", false, false},
		{"no newline", "y", false, true},
		{"forced", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			input := &InputUtils{In: strings.NewReader(tt.input), Out: &out}

			if got := input.AskConfirmation("Drop everything?", tt.force); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if tt.force && out.Len() != 0 {
				t.Error("Expected no prompt when forced")
			}
		})
	}
}

package nlu

import "testing"

func TestSanitizeSessionID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+919876543210", "919876543210"},
		{"user_42-a", "user_42-a"},
		{"++", "anonymous"},
		{"", "anonymous"},
	}
	for _, tt := range tests {
		if got := sanitizeSessionID(tt.in); got != tt.want {
			t.Errorf("sanitizeSessionID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

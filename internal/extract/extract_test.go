package extract

import "testing"

func TestLocation(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"I want a franchise in Chennai", "Chennai", true},
		{"any outlet in madras?", "Chennai", true},
		{"bengaluru please", "Bangalore", true},
		{"cbe", "Coimbatore", true},
		{"do you operate in the UAE", "Dubai", true},
		{"somewhere in Tamil Nadu", "Tamil Nadu", true},
		{"hello there", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Location(tt.text)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Location(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLocationPrefersLongerAlias(t *testing.T) {
	got, ok := Location("book me in tiruchirappalli")
	if !ok || got != "Trichy" {
		t.Errorf("expected Trichy, got (%q, %v)", got, ok)
	}
}

func TestDateTimeMention(t *testing.T) {
	dt, ok := DateTimeMention("can I come on Saturday at 6pm")
	if !ok {
		t.Fatal("expected a date/time match")
	}
	if dt.Day != "saturday" {
		t.Errorf("expected day saturday, got %q", dt.Day)
	}
	if dt.Time != "6pm" {
		t.Errorf("expected time 6pm, got %q", dt.Time)
	}

	dt, ok = DateTimeMention("tomorrow works")
	if !ok || dt.Day != "tomorrow" || dt.Time != "" {
		t.Errorf("expected bare relative day, got (%+v, %v)", dt, ok)
	}

	if _, ok := DateTimeMention("how much is a haircut"); ok {
		t.Error("expected no date/time match")
	}
}

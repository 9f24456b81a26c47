package intent

import "testing"

func TestMatchCommand(t *testing.T) {
	res, ok := MatchCommand("  MENU ")
	if !ok {
		t.Fatal("expected command match")
	}
	if res.Intent != IntentMenu || res.Confidence != 1.0 || res.Source != SourceCommand {
		t.Errorf("unexpected result %+v", res)
	}

	if _, ok := MatchCommand("show me the menu"); ok {
		t.Error("commands must match the whole message only")
	}
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		message string
		intent  string
	}{
		{"I need a haircut", IntentHaircut},
		{"hiarcut pls", IntentHaircut},
		{"beard trim tomorrow", IntentBeard},
		{"do you do keratin treatment", IntentSpa},
		{"franchise details please", IntentFranchise},
		{"franchaise enquiry", IntentFranchise},
		{"how much do you charge", IntentPrice},
		{"nearest outlet?", IntentLocation},
		{"what are your timings", IntentTiming},
		{"book an appointment", IntentBooking},
	}
	for _, tt := range tests {
		res, ok := MatchPattern(tt.message)
		if !ok {
			t.Errorf("MatchPattern(%q) found nothing", tt.message)
			continue
		}
		if res.Intent != tt.intent {
			t.Errorf("MatchPattern(%q) = %s, want %s", tt.message, res.Intent, tt.intent)
		}
		if res.Source != SourcePattern {
			t.Errorf("MatchPattern(%q) source = %s", tt.message, res.Source)
		}
	}
}

func TestMatchPatternThresholdIsExclusive(t *testing.T) {
	// A single related-term hit scores exactly 0.5 and must be rejected.
	if res, ok := MatchPattern("later"); ok {
		t.Errorf("single related term should not clear the threshold, got %+v", res)
	}
}

func TestMatchPatternOneTermPerTier(t *testing.T) {
	// "relax" and "stress" are both related terms of the massage intent.
	// Together they still only count the tier once, 0.5, which must not
	// clear the threshold.
	if res, ok := MatchPattern("relax the stress"); ok {
		t.Errorf("same-tier synonyms must not stack, got %+v", res)
	}

	// Distinct tiers of one intent do stack: "beard" (exact) plus
	// "beard trim" (question) clears the threshold comfortably.
	res, ok := MatchPattern("beard trim please")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Intent != IntentBeard || res.Confidence != 1.0 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMatchPatternConfidenceCapped(t *testing.T) {
	res, ok := MatchPattern("haircut and hairstyle price")
	if !ok {
		t.Fatal("expected a match")
	}
	if res.Confidence > 1.0 {
		t.Errorf("confidence must cap at 1.0, got %v", res.Confidence)
	}
}

func TestMatchPatternWordBoundaries(t *testing.T) {
	// "hi" inside "this" must not fire the greeting.
	if res, ok := MatchPattern("this thing"); ok {
		t.Errorf("expected no match for %q, got %+v", "this thing", res)
	}
}

func TestMatchPatternEmpty(t *testing.T) {
	if _, ok := MatchPattern("   "); ok {
		t.Error("blank message should not match")
	}
}

package intent

import "strings"

// Pattern tier weights. An exact service keyword is a certain match on its
// own; weaker tiers only clear the acceptance threshold when they stack.
const (
	weightExact    = 100
	weightQuestion = 80
	weightTypo     = 70
	weightRelated  = 50
)

// acceptThreshold is the exclusive confidence floor for a pattern match. A
// single related-term hit (0.5) is not enough to claim the message.
const acceptThreshold = 0.5

// pattern is one intent's weighted term lists. Terms are matched as
// lower-case substrings of the message.
type pattern struct {
	intent   string
	exact    []string
	question []string
	typo     []string
	related  []string
}

// patterns is consulted in declaration order; on equal scores the earlier
// intent wins, so service intents are listed before the broader ones.
var patterns = []pattern{
	{
		intent:   IntentHaircut,
		exact:    []string{"haircut", "hair cut", "hairstyle", "hair style"},
		question: []string{"cut my hair", "trim my hair", "hair trimming"},
		typo:     []string{"hiarcut", "haircutt", "hair cutt"},
		related:  []string{"hair", "trim", "barber"},
	},
	{
		intent:   IntentBeard,
		exact:    []string{"beard", "shave", "shaving", "moustache", "mustache"},
		question: []string{"beard trim", "beard style", "clean shave"},
		typo:     []string{"beared", "bread trim", "shav"},
		related:  []string{"stubble", "razor"},
	},
	{
		intent:   IntentColor,
		exact:    []string{"hair color", "hair colour", "coloring", "colouring", "highlights"},
		question: []string{"dye my hair", "color my hair", "colour my hair"},
		typo:     []string{"hair colr", "hilights"},
		related:  []string{"dye", "color", "colour", "grey coverage", "gray coverage"},
	},
	{
		intent:   IntentFacial,
		exact:    []string{"facial", "face clean", "cleanup", "clean up", "detan", "de-tan"},
		question: []string{"facial for men", "glow facial"},
		typo:     []string{"fecial", "facail"},
		related:  []string{"face", "glow", "skin"},
	},
	{
		intent:   IntentSpa,
		exact:    []string{"hair spa", "spa", "keratin", "smoothening", "straightening"},
		question: []string{"spa treatment", "hair treatment"},
		typo:     []string{"kertain", "smootening"},
		related:  []string{"dandruff", "hairfall", "hair fall", "treatment"},
	},
	{
		intent:   IntentMassage,
		exact:    []string{"massage", "head massage", "champi"},
		question: []string{"oil massage", "relaxing massage"},
		typo:     []string{"masage", "massge"},
		related:  []string{"relax", "stress"},
	},
	{
		intent:   IntentWedding,
		exact:    []string{"wedding", "groom package", "bridegroom", "marriage"},
		question: []string{"groom makeup", "wedding package", "wedding grooming"},
		typo:     []string{"weding", "marrige"},
		related:  []string{"groom", "engagement", "reception", "function"},
	},
	{
		intent:   IntentFranchise,
		exact:    []string{"franchise", "franchisee", "dealership"},
		question: []string{"open a salon", "start a salon", "own a salon", "business opportunity", "partner with"},
		typo:     []string{"franchaise", "franchice", "frenchise", "franshise"},
		related:  []string{"investment", "business", "roi", "partnership"},
	},
	{
		intent:   IntentPrice,
		exact:    []string{"price", "prices", "cost", "rate", "rates", "charges"},
		question: []string{"how much", "what is the price", "price list"},
		typo:     []string{"prise", "pricelist"},
		related:  []string{"fee", "amount", "expensive", "cheap"},
	},
	{
		intent:   IntentLocation,
		exact:    []string{"location", "address", "outlet", "outlets", "branch", "branches"},
		question: []string{"where are you", "near me", "nearest outlet", "nearest branch"},
		typo:     []string{"adress", "locaton"},
		related:  []string{"where", "city", "store", "shop"},
	},
	{
		intent:   IntentTiming,
		exact:    []string{"timing", "timings", "opening hours", "working hours"},
		question: []string{"what time do you open", "what time do you close", "are you open"},
		typo:     []string{"timming", "timmings"},
		related:  []string{"open", "close", "hours", "sunday", "holiday"},
	},
	{
		intent:   IntentBooking,
		exact:    []string{"appointment", "booking", "book a slot", "reserve"},
		question: []string{"book an appointment", "can i book", "slot available"},
		typo:     []string{"appoinment", "apointment", "bokking"},
		related:  []string{"book", "slot", "visit", "schedule"},
	},
	{
		intent:   IntentGreeting,
		exact:    []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening", "vanakkam", "namaste"},
		question: []string{},
		typo:     []string{"helo", "hii", "heyy"},
		related:  []string{},
	},
	{
		intent:   IntentThanks,
		exact:    []string{"thanks", "thank you", "thankyou"},
		question: []string{},
		typo:     []string{"thanku", "thnks", "tks"},
		related:  []string{"great", "awesome", "super"},
	},
	{
		intent:  IntentBye,
		exact:   []string{"bye", "goodbye", "see you"},
		typo:    []string{"byee", "gud bye"},
		related: []string{"later"},
	},
}

// MatchPattern scores the message against every intent's term lists and
// returns the best match. Each tier contributes at most once, so distinct
// tiers of the same intent stack (capped at full confidence) but piling up
// synonyms inside one tier does not inflate the score. Returns false when no
// intent clears the acceptance threshold.
func MatchPattern(message string) (Result, bool) {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return Result{}, false
	}

	var best Result
	for _, p := range patterns {
		score, term := p.score(lowered)
		conf := float64(score) / 100
		if conf > 1.0 {
			conf = 1.0
		}
		if conf > best.Confidence {
			best = Result{Intent: p.intent, Confidence: conf, Source: SourcePattern, Matched: term}
		}
	}
	if best.Confidence <= acceptThreshold {
		return Result{}, false
	}
	return best, true
}

// score sums the weights of the matched tiers, taking the first matching
// term per tier, and remembers the strongest single term for logging.
func (p pattern) score(lowered string) (int, string) {
	total := 0
	strongest := ""
	strongestWeight := 0
	tiers := []struct {
		terms  []string
		weight int
	}{
		{p.exact, weightExact},
		{p.question, weightQuestion},
		{p.typo, weightTypo},
		{p.related, weightRelated},
	}
	for _, tier := range tiers {
		for _, term := range tier.terms {
			if matchTerm(lowered, term) {
				total += tier.weight
				if tier.weight > strongestWeight {
					strongest = term
					strongestWeight = tier.weight
				}
				break
			}
		}
	}
	return total, strongest
}

// matchTerm does a word-boundary-aware substring test. Short single words
// are matched as whole words so "hi" does not fire inside "this".
func matchTerm(lowered, term string) bool {
	if len(term) > 3 || strings.Contains(term, " ") {
		return strings.Contains(lowered, term)
	}
	for _, word := range strings.FieldsFunc(lowered, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if word == term {
			return true
		}
	}
	return false
}

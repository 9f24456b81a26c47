package intent

import "strings"

// commands maps literal full-message keywords to intents. A command match is
// certain, so these resolve before any scoring runs.
var commands = map[string]string{
	"menu":     IntentMenu,
	"help":     IntentHelp,
	"hi":       IntentGreeting,
	"hello":    IntentGreeting,
	"start":    IntentMenu,
	"services": IntentMenu,
}

// MatchCommand resolves a message that is exactly one of the known command
// keywords, ignoring case and surrounding whitespace.
func MatchCommand(message string) (Result, bool) {
	key := strings.ToLower(strings.TrimSpace(message))
	it, ok := commands[key]
	if !ok {
		return Result{}, false
	}
	return Result{Intent: it, Confidence: 1.0, Source: SourceCommand}, true
}

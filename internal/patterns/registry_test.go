package patterns

import "testing"

func TestRegistry_LiteralWordBoundary(t *testing.T) {
	reg := NewRegistry(map[string][]string{
		"test": {"best"},
	})

	if !reg.MatchesAny("This is the BEST restaurant", "test") {
		t.Error("Expected case-insensitive literal match")
	}

	// "best" inside a longer word must not match
	if reg.MatchesAny("he bested his rival", "test") {
		t.Error("Expected word-boundary literal to not match inside a longer word")
	}
}

func TestRegistry_ExplicitRegex(t *testing.T) {
	reg := NewRegistry(map[string][]string{
		"years": {`re:\b(19|20)\d{2}\b`},
	})

	if !reg.MatchesAny("The law passed in 1998", "years") {
		t.Error("Expected regex entry to match a year")
	}
	if reg.MatchesAny("room 421 was empty", "years") {
		t.Error("Expected regex entry to not match a non-year number")
	}
}

func TestRegistry_CountMatches(t *testing.T) {
	reg := NewRegistry(map[string][]string{
		"vague": {"some say", "reportedly", "allegedly"},
	})

	text := "Some say the figure is wrong; reportedly it was revised."
	if got := reg.CountMatches(text, "vague"); got != 2 {
		t.Errorf("Expected 2 matches, got %d", got)
	}
}

func TestRegistry_UnknownGroup(t *testing.T) {
	reg := NewRegistry(nil)

	if reg.MatchesAny("anything", "no_such_group") {
		t.Error("Unknown group must never match")
	}
	if got := reg.CountMatches("anything", "no_such_group"); got != 0 {
		t.Errorf("Expected 0 matches for unknown group, got %d", got)
	}
}

func TestRegistry_InvalidRegexNeverMatches(t *testing.T) {
	reg := NewRegistry(map[string][]string{
		"broken": {`re:[unclosed`},
	})

	// Must not panic, must not match, first and second call alike
	for i := 0; i < 2; i++ {
		if reg.MatchesAny("unclosed bracket text", "broken") {
			t.Error("Invalid regex entry must never match")
		}
	}
}

func TestRegistry_FirstMatch(t *testing.T) {
	reg := NewRegistry(map[string][]string{
		"political": {"ministry", "opposition"},
	})

	got := reg.FirstMatch("The Opposition and the ministry disagree", "political")
	if got == "" {
		t.Fatal("Expected a match")
	}
	// Group order wins, not text order
	if got != "ministry" {
		t.Errorf("Expected first matcher in group order, got %q", got)
	}
}

func TestRegistry_GroupsPrefix(t *testing.T) {
	reg := NewRegistry(nil)

	cats := reg.Groups(PseudoPrefix)
	if len(cats) == 0 {
		t.Fatal("Expected default pseudoscience categories")
	}
	for _, name := range cats {
		if name[:len(PseudoPrefix)] != PseudoPrefix {
			t.Errorf("Group %q does not carry the prefix", name)
		}
	}
}

func TestRegistry_CompileMemoized(t *testing.T) {
	reg := NewRegistry(map[string][]string{"g": {"word"}})

	re1 := reg.compile("word")
	re2 := reg.compile("word")
	if re1 != re2 {
		t.Error("Expected the same compiled pattern instance on repeated lookups")
	}
}

package tokenbuilder

import "testing"

func abbrevs() map[string]string {
	return map[string]string{
		"st": "saint",
		"mo": "missouri",
		"no": "north",
	}
}

func typeWords() map[string]bool {
	return map[string]bool{
		"county":   true,
		"cemetery": true,
		"saint":    false,
	}
}

func TestBuild_TrailingTypeWordSplitsOff(t *testing.T) {
	r := Build([]string{"st", "louis", "cemetery"}, 0, abbrevs(), typeWords())
	if !r.HasName || r.NameToken != "saintlouis" {
		t.Fatalf("name token = %q, want saintlouis", r.NameToken)
	}
	if !r.HasType || r.TypeToken != "cemetery" {
		t.Fatalf("type token = %q, want cemetery", r.TypeToken)
	}
}

func TestBuild_AllTypeWordsYieldsNameOnly(t *testing.T) {
	r := Build([]string{"county"}, 0, abbrevs(), typeWords())
	if !r.HasName || r.NameToken != "county" {
		t.Fatalf("name token = %q, want county", r.NameToken)
	}
	if r.HasType {
		t.Fatalf("did not expect a type token, got %q", r.TypeToken)
	}
}

func TestBuild_SingleWordLevelNotExpanded(t *testing.T) {
	// "No" (Niigata shorthand) must not expand to "North" on a single-word level.
	r := Build([]string{"no"}, 0, abbrevs(), typeWords())
	if r.NameToken != "no" {
		t.Fatalf("name token = %q, want unexpanded no", r.NameToken)
	}
}

func TestBuild_MultiWordLevelExpands(t *testing.T) {
	r := Build([]string{"st", "louis", "mo"}, 0, abbrevs(), typeWords())
	if r.NameToken != "saintlouismissouri" {
		t.Fatalf("name token = %q, want saintlouismissouri", r.NameToken)
	}
}

func TestBuild_HaltsOnOrWithContent(t *testing.T) {
	// "Bad Axe or Bad River" -> halts on "or", discarding the left remainder.
	r := Build([]string{"bad", "axe", "or", "bad", "river"}, 0, abbrevs(), typeWords())
	if r.NameToken != "badriver" {
		t.Fatalf("name token = %q, want badriver", r.NameToken)
	}
}

func TestBuild_WordsToSkip(t *testing.T) {
	r := Build([]string{"st", "louis", "mo"}, 2, abbrevs(), typeWords())
	if r.NameToken != "mo" {
		t.Fatalf("name token = %q, want mo (single remaining word, unexpanded)", r.NameToken)
	}
}

func TestIsTypeWord_ExpandsAbbreviation(t *testing.T) {
	tw := map[string]bool{"saint": true}
	ab := map[string]string{"st": "saint"}
	if !IsTypeWord("st", ab, tw) {
		t.Fatal("expected st to expand to saint and match the type-word set")
	}
}

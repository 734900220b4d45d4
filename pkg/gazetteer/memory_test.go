package gazetteer

import (
	"strings"
	"testing"
)

const samplePlaces = `1|United States||country|0||1|1
2|Missouri||state|1||2|1
3|St. Louis|Saint Louis:census|city~county equivalent|2||3|1|38.6270|-90.1994|Wikipedia:enwiki-12345
`

const sampleWords = `unitedstates|1
missouri|2
stlouis|3
saintlouis|3
`

func TestLoadTextFiles(t *testing.T) {
	places, err := ParsePlaces(strings.NewReader(samplePlaces))
	if err != nil {
		t.Fatalf("ParsePlaces: %v", err)
	}
	words, err := ParseWords(strings.NewReader(sampleWords))
	if err != nil {
		t.Fatalf("ParseWords: %v", err)
	}
	store := NewMemoryStore(places, words)

	p, ok := store.Place(3)
	if !ok {
		t.Fatal("expected place 3 to be found")
	}
	if p.Name != "St. Louis" {
		t.Errorf("name = %q, want St. Louis", p.Name)
	}
	if len(p.AltNames) != 1 || p.AltNames[0].Text != "Saint Louis" || p.AltNames[0].Source != "census" {
		t.Errorf("alt names = %+v", p.AltNames)
	}
	if len(p.Types) != 2 || p.Types[1] != "county equivalent" {
		t.Errorf("types = %+v", p.Types)
	}
	if p.Latitude != 38.6270 || p.Longitude != -90.1994 {
		t.Errorf("lat/lon = %v/%v", p.Latitude, p.Longitude)
	}
	if len(p.Sources) != 1 || p.Sources[0].Text != "Wikipedia" || p.Sources[0].ID != "enwiki-12345" {
		t.Errorf("sources = %+v", p.Sources)
	}

	ids, ok := store.Word("stlouis")
	if !ok || len(ids) != 1 || ids[0] != 3 {
		t.Errorf("word lookup = %v, %v", ids, ok)
	}

	if _, ok := store.Place(999); ok {
		t.Error("expected place 999 to be absent")
	}
	if _, ok := store.Word("nowhere"); ok {
		t.Error("expected word 'nowhere' to be absent")
	}
}

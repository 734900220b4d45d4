package normalizer

import (
	"reflect"
	"testing"
)

func TestDefault_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "commas separate levels",
			input: "St. Louis, Missouri",
			want:  [][]string{{"st", "louis"}, {"missouri"}},
		},
		{
			name:  "no commas is a single level",
			input: "St Louis Mo",
			want:  [][]string{{"st", "louis", "mo"}},
		},
		{
			name:  "diacritics are stripped",
			input: "Île-de-France",
			want:  [][]string{{"ile-de-france"}},
		},
		{
			name:  "empty levels are dropped",
			input: "St. Louis,, Missouri",
			want:  [][]string{{"st", "louis"}, {"missouri"}},
		},
		{
			name:  "blank input yields no levels",
			input: "   ",
			want:  [][]string{},
		},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

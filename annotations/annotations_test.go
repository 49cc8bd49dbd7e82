package annotations

import (
	"errors"
	"reflect"
	"testing"
)

var testYAML = []byte(`"👍": ["thumbs up", "like", "+1"]
"👎": ["thumbs down", "dislike"]
"🤝": ["handshake", "deal", "agreement"]
"ẞ": ["straße"]
`)

func TestDecode(t *testing.T) {
	set, err := Decode(testYAML)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 4 {
		t.Errorf("Len() = %d, want 4", set.Len())
	}
	label, ok := set.Label("👍")
	if !ok || label != "thumbs up" {
		t.Errorf("Label(👍) = %q, %v", label, ok)
	}
	if _, ok := set.Label("🦶"); ok {
		t.Error("Label(🦶) ok, want miss")
	}
	kws := set.Keywords("👍")
	if !reflect.DeepEqual(kws, []string{"like", "+1"}) {
		t.Errorf("Keywords(👍) = %v", kws)
	}
	if kws := set.Keywords("ẞ"); kws != nil {
		t.Errorf("Keywords(ẞ) = %v, want none", kws)
	}
	if label, ok := set.Label("ẞ"); !ok || label != "straße" {
		t.Errorf("Label(ẞ) = %q, %v", label, ok)
	}
}

type decodeErrTest struct {
	name string
	in   []byte
}

func TestDecodeErrors(t *testing.T) {
	dts := []decodeErrTest{
		{
			name: "not a mapping",
			in:   []byte(`["👍"]`),
		},
		{
			name: "empty list",
			in:   []byte(`"👍": []`),
		},
		{
			name: "empty annotation",
			in:   []byte(`"👍": ["thumbs up", ""]`),
		},
		{
			name: "empty key",
			in:   []byte(`"": ["nothing"]`),
		},
	}
	for _, dt := range dts {
		if _, err := Decode(dt.in); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: err = %v, want ErrDecode", dt.name, err)
		}
	}
}

type searchTest struct {
	term string
	want []string
}

func TestSearch(t *testing.T) {
	set, err := Decode(testYAML)
	if err != nil {
		t.Fatal(err)
	}
	sts := []searchTest{
		{
			term: "thumb",
			want: []string{"👍", "👎"},
		},
		{
			// matching is case folded both ways
			term: "THUMBS UP",
			want: []string{"👍"},
		},
		{
			term: "deal",
			want: []string{"🤝"},
		},
		{
			// full case folding, not just lowercasing
			term: "STRASSE",
			want: []string{"ẞ"},
		},
		{
			term: "zzz",
		},
	}
	for _, st := range sts {
		got := set.Search(st.term)
		if !reflect.DeepEqual(got, st.want) {
			t.Errorf("Search(%q) = %v, want %v", st.term, got, st.want)
		}
	}
}

func TestBasesSorted(t *testing.T) {
	set, err := Decode(testYAML)
	if err != nil {
		t.Fatal(err)
	}
	bases := set.Bases()
	if len(bases) != 4 {
		t.Fatalf("Bases() = %v", bases)
	}
	for i := 1; i < len(bases); i++ {
		if bases[i-1] >= bases[i] {
			t.Errorf("Bases() not sorted: %v", bases)
			break
		}
	}
}

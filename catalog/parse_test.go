package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in         string
	maxVersion float64
	want       *Catalog
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:         "Smileys\n😀,,12.0\n",
			maxVersion: 12.0,
			want: &Catalog{Categories: []Category{
				{Name: "Smileys", Entries: []Entry{{Base: "😀"}}},
			}},
		},
		{
			// trailing fields omitted entirely
			in:         "Smileys\n😀",
			maxVersion: 1.0,
			want: &Catalog{Categories: []Category{
				{Name: "Smileys", Entries: []Entry{{Base: "😀"}}},
			}},
		},
		{
			// any non-empty header flag enables skin tones
			in:         "People,x\n👍,1,0.6,1.0\n",
			maxVersion: 15.1,
			want: &Catalog{Categories: []Category{
				{Name: "People", SkinTones: true, Entries: []Entry{
					{Base: "👍", ToneSupport: ToneOne},
				}},
			}},
		},
		{
			// a tone field other than "1" is a two tone template
			in:         "People,1\n🤝,🫱🏻‍🫲🏻,3.0,14.0\n",
			maxVersion: 15.1,
			want: &Catalog{Categories: []Category{
				{Name: "People", SkinTones: true, Entries: []Entry{
					{Base: "🤝", ToneSupport: ToneTwo, Template: "🫱🏻‍🫲🏻"},
				}},
			}},
		},
		{
			// entry above the ceiling is dropped
			in:         "People,1\n👍,1,0.6,1.0\n🫵,1,14.0,14.0\n",
			maxVersion: 13.1,
			want: &Catalog{Categories: []Category{
				{Name: "People", SkinTones: true, Entries: []Entry{
					{Base: "👍", ToneSupport: ToneOne},
				}},
			}},
		},
		{
			// tone version above the ceiling loses tone support only
			in:         "People,1\n🤝,🫱🏻‍🫲🏻,3.0,14.0\n",
			maxVersion: 13.1,
			want: &Catalog{Categories: []Category{
				{Name: "People", SkinTones: true, Entries: []Entry{
					{Base: "🤝"},
				}},
			}},
		},
		{
			// nameless groups are dropped with their entries
			in:         ",1\n👻\n\nSmileys\n😀\n",
			maxVersion: 15.1,
			want: &Catalog{Categories: []Category{
				{Name: "Smileys", Entries: []Entry{{Base: "😀"}}},
			}},
		},
		{
			// source order survives across groups and entries
			in:         "A\n🐶\n🐱\n\nB,1\n👍,1\n",
			maxVersion: 15.1,
			want: &Catalog{Categories: []Category{
				{Name: "A", Entries: []Entry{{Base: "🐶"}, {Base: "🐱"}}},
				{Name: "B", SkinTones: true, Entries: []Entry{
					{Base: "👍", ToneSupport: ToneOne},
				}},
			}},
		},
		{
			// surrounding blank lines are separators, not groups
			in:         "\n\nSmileys\n😀\n\n\n",
			maxVersion: 15.1,
			want: &Catalog{Categories: []Category{
				{Name: "Smileys", Entries: []Entry{{Base: "😀"}}},
			}},
		},
		{
			// a category may lose all entries and still load
			in:         "New\n🫨,,15.0\n",
			maxVersion: 14.0,
			want: &Catalog{Categories: []Category{
				{Name: "New"},
			}},
		},
		{
			in:         "",
			maxVersion: 15.1,
			want:       &Catalog{},
		},
	}
	for _, pt := range pts {
		got, err := Parse(pt.in, pt.maxVersion)
		if err != nil {
			t.Errorf("Parse(%q, %v): %v", pt.in, pt.maxVersion, err)
			continue
		}
		if diff := cmp.Diff(pt.want, got); diff != "" {
			t.Errorf("Parse(%q, %v) (-want +got):\n%s", pt.in, pt.maxVersion, diff)
		}
	}
}

type parseErrTest struct {
	in       string
	wantLine int
}

func TestParseErrors(t *testing.T) {
	pts := []parseErrTest{
		{
			in:       "Smileys,1,extra\n😀\n",
			wantLine: 1,
		},
		{
			in:       "Smileys\n😀,,notaversion\n",
			wantLine: 2,
		},
		{
			in:       "Smileys\n😀,,1.0,notaversion\n",
			wantLine: 2,
		},
		{
			in:       "Smileys\n😀,,1.0,1.0,extra\n",
			wantLine: 2,
		},
		{
			in:       "Smileys\n,1\n",
			wantLine: 2,
		},
		{
			// a whitespace base is no base
			in:       "Smileys\n \t,1\n",
			wantLine: 2,
		},
		{
			// malformed entries fail the load even in nameless groups
			in:       ",1\n😀,,bad\n",
			wantLine: 2,
		},
		{
			in:       "A\n🐶\n\nB\n🐱,,12.0\n🦊,,oops\n",
			wantLine: 6,
		},
	}
	for _, pt := range pts {
		_, err := Parse(pt.in, 15.1)
		if err == nil {
			t.Errorf("Parse(%q): no error", pt.in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) err = %v, want ErrParse", pt.in, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) err %T, want *ParseError", pt.in, err)
			continue
		}
		if perr.Line != pt.wantLine {
			t.Errorf("Parse(%q) failed at line %d, want %d", pt.in, perr.Line, pt.wantLine)
		}
	}
}

func TestParseAtomic(t *testing.T) {
	// the error at the end discards the valid categories before it
	cat, err := Parse("A\n🐶\n\nB\n🐱,,bad\n", 15.1)
	if err == nil {
		t.Fatal("no error")
	}
	if cat != nil {
		t.Errorf("got partial catalog %v, want nil", cat)
	}
}

func TestRenderRoundTrip(t *testing.T) {
	in := "Smileys\n😀\n🙂\n\nPeople,1\n👍,1\n🤝,🫱🏻‍🫲🏻\n🧞\n"
	cat, err := Parse(in, 15.1)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(cat.Render(), 15.1)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if diff := cmp.Diff(cat, again); diff != "" {
		t.Errorf("render round trip (-first +second):\n%s", diff)
	}
}

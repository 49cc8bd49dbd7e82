package catdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/emoji-format/go-emoji/catalog"
)

const handshakeT = "\U0001FAF1\U0001F3FB\u200D\U0001FAF2\U0001F3FB"

func TestStrings(t *testing.T) {
	from := "Smileys\n😀\n😎\n"
	to := "Smileys\n😀\n🥸\n"
	got := Strings(from, to)
	want := "  Smileys\n  😀\n- 😎\n+ 🥸\n"
	if got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestStringsEqual(t *testing.T) {
	text := "People,1\n👍,1\n"
	got := Strings(text, text)
	want := "  People,1\n  👍,1\n"
	if got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func TestStringsFromEmpty(t *testing.T) {
	got := Strings("", "Flags\n🏴\n")
	want := "+ Flags\n+ 🏴\n"
	if got != want {
		t.Errorf("got:\n%swant:\n%s", got, want)
	}
}

func mustParse(t *testing.T, text string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse(text, 99)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestEntries(t *testing.T) {
	from := mustParse(t, strings.Join([]string{
		"Smileys",
		"😀",
		"😎",
		"",
		"People,1",
		"👍,1",
		"🤝," + handshakeT,
		"",
	}, "\n"))
	to := mustParse(t, strings.Join([]string{
		"Smileys",
		"😀",
		"",
		"People,1",
		"👍,1",
		"🤝,1",
		"🫶,1",
		"",
	}, "\n"))
	got := Entries(from, to)
	want := &Report{
		Added: []catalog.Entry{
			{Base: "🫶", ToneSupport: catalog.ToneOne},
		},
		Removed: []catalog.Entry{
			{Base: "😎"},
		},
		Retoned: []Change{
			{Base: "🤝", From: catalog.ToneTwo, To: catalog.ToneOne},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Entries() (-want +got):\n%s", diff)
	}
	if got.Empty() {
		t.Error("Empty() on a report with changes")
	}
}

func TestEntriesEqual(t *testing.T) {
	text := strings.Join([]string{
		"People,1",
		"👍,1",
		"🤝," + handshakeT,
		"",
	}, "\n")
	rep := Entries(mustParse(t, text), mustParse(t, text))
	if !rep.Empty() {
		t.Errorf("Entries() = %+v, want empty", rep)
	}
}

func TestEntriesFirstWins(t *testing.T) {
	// 👍 appears twice in from with different supports; the first
	// occurrence stands for it, so nothing changed against to.
	from := mustParse(t, strings.Join([]string{
		"People,1",
		"👍,1",
		"",
		"Frequently Used",
		"👍",
		"",
	}, "\n"))
	to := mustParse(t, strings.Join([]string{
		"People,1",
		"👍,1",
		"",
	}, "\n"))
	rep := Entries(from, to)
	if !rep.Empty() {
		t.Errorf("Entries() = %+v, want empty", rep)
	}
}

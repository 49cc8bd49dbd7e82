package emoji

import (
	"strings"
	"testing"

	"github.com/signadot/emoji-format/go-emoji/catalog"
	"github.com/signadot/emoji-format/go-emoji/tone"
)

func TestFindBase(t *testing.T) {
	r := NewResolver(mustCatalog(t, testCatalogText))
	e, ok := r.Find(thumbsUp)
	if !ok || e.Base != thumbsUp || e.ToneSupport != catalog.ToneOne {
		t.Errorf("Find(%q) = %+v, %v", thumbsUp, e, ok)
	}
	e, ok = r.Find(grinning)
	if !ok || e.Base != grinning || e.ToneSupport != catalog.ToneNone {
		t.Errorf("Find(%q) = %+v, %v", grinning, e, ok)
	}
	if e, ok := r.Find("\U0001F9B6"); ok {
		t.Errorf("Find(🦶) = %+v, want miss", e)
	}
}

func TestFindToned(t *testing.T) {
	r := NewResolver(mustCatalog(t, testCatalogText))
	e, ok := r.Find(tone.Apply(thumbsUp, tone.Dark))
	if !ok || e.Base != thumbsUp {
		t.Errorf("Find(toned 👍) = %+v, %v", e, ok)
	}
	e, ok = r.Find(tone.ApplyPair(handshakeT, tone.Light, tone.Dark))
	if !ok || e.Base != handshake || e.ToneSupport != catalog.ToneTwo {
		t.Errorf("Find(mixed 🤝) = %+v, %v", e, ok)
	}
}

func TestFindTonedRestrictsCategories(t *testing.T) {
	// the same base in an untoned category first and a toned one later
	text := strings.Join([]string{
		"Frequently Used",
		thumbsUp,
		"",
		"People,1",
		thumbsUp + ",1",
	}, "\n") + "\n"
	r := NewResolver(mustCatalog(t, text))

	e, ok := r.Find(thumbsUp)
	if !ok || e.ToneSupport != catalog.ToneNone {
		t.Errorf("Find(base) = %+v, %v, want the first, untoned entry", e, ok)
	}
	e, ok = r.Find(tone.Apply(thumbsUp, tone.Medium))
	if !ok || e.ToneSupport != catalog.ToneOne {
		t.Errorf("Find(toned) = %+v, %v, want the skin tone category entry", e, ok)
	}
}

func TestFindTonedMissWithoutResolution(t *testing.T) {
	// genie is cataloged but takes no tones, so its toned form
	// cannot resolve and must not be found
	r := NewResolver(mustCatalog(t, testCatalogText))
	if e, ok := r.Find(tone.Apply(genie, tone.Light)); ok {
		t.Errorf("Find(toned 🧞) = %+v, want miss", e)
	}
}

func TestOneShots(t *testing.T) {
	cat := mustCatalog(t, testCatalogText)
	toned := tone.Apply(victory, tone.MediumLight)
	if got, ok := ResolveBase(cat, toned); !ok || got != victory {
		t.Errorf("ResolveBase(%q) = %q, %v, want %q", toned, got, ok, victory)
	}
	if e, ok := Find(cat, toned); !ok || e.Base != victory {
		t.Errorf("Find(%q) = %+v, %v", toned, e, ok)
	}
}

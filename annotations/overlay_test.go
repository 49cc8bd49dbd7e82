package annotations

import (
	"errors"
	"testing"
)

func TestOverlay(t *testing.T) {
	set, err := Decode(testYAML)
	if err != nil {
		t.Fatal(err)
	}
	patched, err := set.Overlay([]byte(`"🫶": ["heart hands", "love"]
"👍": ["yes"]
"👎": null
`))
	if err != nil {
		t.Fatal(err)
	}
	if label, ok := patched.Label("🫶"); !ok || label != "heart hands" {
		t.Errorf("Label(🫶) = %q, %v", label, ok)
	}
	if label, ok := patched.Label("👍"); !ok || label != "yes" {
		t.Errorf("Label(👍) = %q, %v", label, ok)
	}
	if _, ok := patched.Label("👎"); ok {
		t.Error("Label(👎) survived a null patch")
	}
	if label, ok := patched.Label("🤝"); !ok || label != "handshake" {
		t.Errorf("Label(🤝) = %q, %v", label, ok)
	}

	// the receiver is unchanged
	if _, ok := set.Label("🫶"); ok {
		t.Error("Overlay modified its receiver")
	}
	if label, _ := set.Label("👍"); label != "thumbs up" {
		t.Errorf("Overlay modified its receiver: Label(👍) = %q", label)
	}
}

func TestOverlayErrors(t *testing.T) {
	set, err := Decode(testYAML)
	if err != nil {
		t.Fatal(err)
	}
	bad := [][]byte{
		[]byte(`: [`),             // not yaml
		[]byte(`"👍": []`),         // patched entry loses all words
		[]byte(`"👍": ["ok", ""]`), // patched entry gains an empty word
	}
	for _, patch := range bad {
		if _, err := set.Overlay(patch); !errors.Is(err, ErrDecode) {
			t.Errorf("Overlay(%q) err = %v, want ErrDecode", patch, err)
		}
	}
}

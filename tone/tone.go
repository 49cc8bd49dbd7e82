package tone

import (
	"errors"
	"fmt"
)

// Tone is a skin tone, ordered light to dark. Each tone is bound
// one-to-one to a modifier scalar in [runeFirst, runeLast].
type Tone int

const (
	Light Tone = iota
	MediumLight
	Medium
	MediumDark
	Dark
)

const (
	runeFirst rune = 0x1F3FB
	runeLast  rune = 0x1F3FF
)

const (
	// VS16 selects emoji presentation.
	VS16 rune = 0xFE0F
	// ZWJ joins scalars into one composite glyph.
	ZWJ rune = 0x200D
)

var ErrBadTone = errors.New("bad tone")

func ParseTone(v string) (Tone, error) {
	t, ok := map[string]Tone{
		"light":        Light,
		"medium-light": MediumLight,
		"medium":       Medium,
		"medium-dark":  MediumDark,
		"dark":         Dark,
	}[v]
	if ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadTone, v)
}

func (t Tone) String() string {
	d, err := t.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (t Tone) MarshalText() ([]byte, error) {
	switch t {
	case Light:
		return []byte("light"), nil
	case MediumLight:
		return []byte("medium-light"), nil
	case Medium:
		return []byte("medium"), nil
	case MediumDark:
		return []byte("medium-dark"), nil
	case Dark:
		return []byte("dark"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a tone>", t)
	}
}

func (t *Tone) UnmarshalText(d []byte) error {
	pt, err := ParseTone(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// Rune returns the modifier scalar bound to t.
func (t Tone) Rune() (rune, bool) {
	if t < Light || t > Dark {
		return 0, false
	}
	return runeFirst + rune(t), true
}

// FromRune maps a modifier scalar back to its tone.
func FromRune(r rune) (Tone, bool) {
	if !IsTone(r) {
		return 0, false
	}
	return Tone(r - runeFirst), true
}

// IsTone reports whether r is a skin tone modifier scalar.
func IsTone(r rune) bool {
	return r >= runeFirst && r <= runeLast
}

// Tones returns all tones in order, light to dark.
func Tones() []Tone {
	return []Tone{Light, MediumLight, Medium, MediumDark, Dark}
}

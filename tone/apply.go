package tone

// WithPresentation appends the emoji presentation selector (U+FE0F).
// It is unconditional; callers must not apply it twice.
func WithPresentation(s string) string {
	return s + string(VS16)
}

// Apply renders base with one skin tone. The tone scalar replaces the
// first variation selector when one occurs before any joiner, is
// inserted immediately before the first joiner otherwise, and is
// appended when the sequence contains neither. Exactly one scalar is
// inserted or substituted; the rest pass through unchanged.
//
// An unbound tone leaves base unchanged.
func Apply(base string, t Tone) string {
	tr, ok := t.Rune()
	if !ok {
		return base
	}
	rs := []rune(base)
	for i, r := range rs {
		switch r {
		case VS16:
			out := make([]rune, len(rs))
			copy(out, rs)
			out[i] = tr
			return string(out)
		case ZWJ:
			out := make([]rune, 0, len(rs)+1)
			out = append(out, rs[:i]...)
			out = append(out, tr)
			out = append(out, rs[i:]...)
			return string(out)
		}
	}
	return base + string(tr)
}

// ApplyPair renders a two-tone template. Tone scalars present in the
// template act as placeholders: the first becomes t1, every later one
// becomes t2. Non-tone scalars pass through unchanged.
//
// Unbound tones leave the template unchanged.
func ApplyPair(template string, t1, t2 Tone) string {
	r1, ok := t1.Rune()
	if !ok {
		return template
	}
	r2, ok := t2.Rune()
	if !ok {
		return template
	}
	out := []rune(template)
	seen := 0
	for i, r := range out {
		if !IsTone(r) {
			continue
		}
		if seen == 0 {
			out[i] = r1
		} else {
			out[i] = r2
		}
		seen++
	}
	return string(out)
}

// Extract returns the tones present in s, in order of appearance,
// one per tone scalar.
func Extract(s string) []Tone {
	var tones []Tone
	for _, r := range s {
		if t, ok := FromRune(r); ok {
			tones = append(tones, t)
		}
	}
	return tones
}

// Strip removes all skin tone scalars from s.
func Strip(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if IsTone(r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

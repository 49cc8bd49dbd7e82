package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/emoji-format/go-emoji/debug"
)

// ParseError locates a catalog load failure on its 1-based line.
type ParseError struct {
	Err  error
	Line int
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Err.Error(), e.Line)
}

func errAt(line int, format string, args ...any) error {
	return &ParseError{
		Err:  fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...)),
		Line: line,
	}
}

// Parse loads catalog text, keeping only entries compatible with
// maxVersion. Entries whose version exceeds the ceiling are dropped;
// entries whose tone version exceeds it survive without tone support.
// The load is atomic: any malformed line fails the whole catalog.
func Parse(text string, maxVersion float64) (*Catalog, error) {
	lines := strings.Split(text, "\n")
	cat := &Catalog{}
	i := 0
	for i < len(lines) {
		if blank(lines[i]) {
			i++
			continue
		}
		group, next, err := parseGroup(lines, i, maxVersion)
		if err != nil {
			return nil, err
		}
		i = next
		if group == nil {
			continue
		}
		cat.Categories = append(cat.Categories, *group)
	}
	if debug.Load() {
		debug.Logf("loaded %d categories at ceiling %v\n", len(cat.Categories), maxVersion)
	}
	return cat, nil
}

func parseGroup(lines []string, at int, maxVersion float64) (*Category, int, error) {
	name, flag, err := parseHeader(lines[at], at)
	if err != nil {
		return nil, 0, err
	}
	group := &Category{Name: name, SkinTones: flag}
	i := at + 1
	for i < len(lines) && !blank(lines[i]) {
		e, keep, err := parseEntry(lines[i], i, maxVersion)
		if err != nil {
			return nil, 0, err
		}
		if keep {
			group.Entries = append(group.Entries, e)
		}
		i++
	}
	if strings.TrimSpace(name) == "" {
		// Nameless groups carry no usable data.
		return nil, i, nil
	}
	return group, i, nil
}

func parseHeader(line string, at int) (string, bool, error) {
	fields := strings.Split(line, ",")
	if len(fields) > 2 {
		return "", false, errAt(at+1, "header has %d fields, want at most 2", len(fields))
	}
	flag := len(fields) == 2 && fields[1] != ""
	return fields[0], flag, nil
}

func parseEntry(line string, at int, maxVersion float64) (Entry, bool, error) {
	fields := strings.Split(line, ",")
	if len(fields) > 4 {
		return Entry{}, false, errAt(at+1, "entry has %d fields, want at most 4", len(fields))
	}
	if strings.TrimSpace(fields[0]) == "" {
		return Entry{}, false, errAt(at+1, "entry has no emoji")
	}
	e := Entry{Base: fields[0]}
	if len(fields) > 1 {
		switch fields[1] {
		case "":
		case "1":
			e.ToneSupport = ToneOne
		default:
			e.ToneSupport = ToneTwo
			e.Template = fields[1]
		}
	}
	version, err := parseVersion(fields, 2, at)
	if err != nil {
		return Entry{}, false, err
	}
	toneVersion, err := parseVersion(fields, 3, at)
	if err != nil {
		return Entry{}, false, err
	}
	if version > maxVersion {
		return Entry{}, false, nil
	}
	if toneVersion > maxVersion {
		e.ToneSupport = ToneNone
		e.Template = ""
	}
	return e, true, nil
}

// parseVersion reads the optional version at field i; absent fields
// are version 0 and so always compatible.
func parseVersion(fields []string, i, at int) (float64, error) {
	if len(fields) <= i || fields[i] == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(fields[i], 64)
	if err != nil {
		return 0, errAt(at+1, "bad version %q", fields[i])
	}
	return v, nil
}

func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

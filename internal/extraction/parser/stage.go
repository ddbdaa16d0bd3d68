package parser

import (
	"regexp"
	"strings"
)

// Stage narrows raw model output towards a JSON document. ok is false when
// the stage does not apply.
type Stage func(s string) (out string, ok bool)

type namedStage struct {
	name string
	run  Stage
}

var (
	fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	// Greedy: spans from the first "[{" to the last "}]".
	arrayRe = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
)

// locators are tried in order after trimming and fence removal; the first
// that applies wins.
var locators = []namedStage{
	{"array", findArray},
	{"object", findObject},
}

func trim(s string) (string, bool) {
	return strings.TrimSpace(s), true
}

func unfence(s string) (string, bool) {
	m := fenceRe.FindStringSubmatch(s)
	if m == nil {
		return s, false
	}
	return strings.TrimSpace(m[1]), true
}

func findArray(s string) (string, bool) {
	m := arrayRe.FindString(s)
	return m, m != ""
}

// findObject returns the first balanced {...} wrapped in an array. Braces
// inside JSON strings are ignored.
func findObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return s, false
	}

	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return "[" + s[start:i+1] + "]", true
			}
		}
	}
	return s, false
}

// Locate applies trim, fence removal and the locators to raw and returns the
// JSON candidate plus the name of the locator that produced it ("raw" when
// none applied).
func Locate(raw string) (string, string) {
	s, _ := trim(raw)
	if inner, ok := unfence(s); ok {
		s = inner
	}
	for _, st := range locators {
		if out, ok := st.run(s); ok {
			return out, st.name
		}
	}
	return s, "raw"
}

package entity

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// RenderTemplate replaces every {{a.b.c}} placeholder with the value found by
// walking the dotted path through data. Missing paths and nil values render
// as the empty string. Values are inserted verbatim: callers emitting HTML
// must escape untrusted data before passing it in.
func RenderTemplate(tpl string, data map[string]any) string {
	return placeholderPattern.ReplaceAllStringFunc(tpl, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		if len(sub) < 2 {
			return ""
		}
		v, ok := lookupPath(data, sub[1])
		if !ok || v == nil {
			return ""
		}
		return stringify(v)
	})
}

// Placeholders lists the distinct dotted paths referenced by tpl, in order of
// first appearance.
func Placeholders(tpl string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(tpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

func lookupPath(data map[string]any, path string) (any, bool) {
	var cur any = data
	for _, key := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		case Metadata:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		case map[string]string:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		default:
			return nil, false
		}
	}
	return cur, true
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Package render substitutes {{variable}} placeholders in notification templates.
//
// Variable names are matched after normalization (NFD decomposition, combining
// marks removed, lowercased), so {{Vehículo}}, {{vehiculo}} and {{VEHICULO}}
// all refer to the same context key. Normalize is the single identity relation
// used by rendering, validation and context enrichment.
package render

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// placeholder matches {{name}} where name has no braces and no whitespace.
var placeholder = regexp.MustCompile(`\{\{([^{}\s\p{Z}]+)\}\}`)

// Normalize returns the canonical form of a variable name.
func Normalize(key string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

	out, _, err := transform.String(t, key)
	if err != nil {
		out = key
	}

	return strings.ToLower(out)
}

// Index maps normalized keys to their values. When two keys normalize to the
// same form the lexically smallest original key wins.
func Index(context map[string]string) map[string]string {
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	idx := make(map[string]string, len(keys))
	for _, k := range keys {
		nk := Normalize(k)
		if _, ok := idx[nk]; !ok {
			idx[nk] = context[k]
		}
	}

	return idx
}

// Render replaces every placeholder whose normalized name is present in
// context. Unmatched placeholders are left verbatim.
func Render(body string, context map[string]string) string {
	if body == "" || len(context) == 0 {
		return body
	}

	idx := Index(context)

	return placeholder.ReplaceAllStringFunc(body, func(m string) string {
		name := m[2 : len(m)-2]
		if v, ok := idx[Normalize(name)]; ok {
			return v
		}
		return m
	})
}

// ExtractVariables returns the distinct variable names used in body, as
// written, in order of first appearance.
func ExtractVariables(body string) []string {
	matches := placeholder.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		vars = append(vars, m[1])
	}

	return vars
}

// HasKey reports whether context holds key after normalization.
func HasKey(context map[string]string, key string) bool {
	nk := Normalize(key)
	for k := range context {
		if Normalize(k) == nk {
			return true
		}
	}

	return false
}

// MissingVariables returns the names in vars that context does not provide.
// Names that differ only by normalization are reported once.
func MissingVariables(vars []string, context map[string]string) []string {
	idx := Index(context)

	var missing []string
	reported := make(map[string]struct{})
	for _, v := range vars {
		nv := Normalize(v)
		if _, ok := idx[nv]; ok {
			continue
		}
		if _, ok := reported[nv]; ok {
			continue
		}
		reported[nv] = struct{}{}
		missing = append(missing, v)
	}

	return missing
}

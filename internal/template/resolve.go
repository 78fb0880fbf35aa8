package template

import (
	"sort"
	"strings"

	"report-srv/internal/model"
)

// Resolve substitutes every {key} in pattern with vars[key]. Unknown
// placeholders are left untouched and values are inserted verbatim.
func Resolve(pattern string, vars map[string]string) string {
	if len(vars) == 0 {
		return pattern
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(pattern)
}

func ResolveSubject(t model.ReportTemplate, vars map[string]string) string {
	return Resolve(t.Subject, vars)
}

func ResolveBody(t model.ReportTemplate, vars map[string]string) string {
	return Resolve(t.Body, vars)
}

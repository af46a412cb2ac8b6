// internal/view/funcs.go
//
// Template helpers available to every set:
//
//	{{ dict "k" 1 "k2" "v" }}   – ad-hoc map for partials
//	{{ zahl .Page.TotalElements }} – German digit grouping (12.345)
//	{{ plus .Seite 1 }} {{ minus .Seite 1 }}

package view

import (
	"fmt"
	"html/template"

	"github.com/yanizio/badnews/internal/headline"
)

// FuncMap returns the default helpers.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"dict":  dict,
		"zahl":  zahl,
		"plus":  func(a, b int) int { return a + b },
		"minus": func(a, b int) int { return a - b },
	}
}

// dict builds a map in templates.
func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		m[key] = kv[i+1]
	}
	return m
}

// zahl formats integers of any width with German grouping.
func zahl(v any) string {
	switch n := v.(type) {
	case int:
		return headline.FormatNumber(int64(n))
	case int64:
		return headline.FormatNumber(n)
	case int32:
		return headline.FormatNumber(int64(n))
	}
	return fmt.Sprint(v)
}

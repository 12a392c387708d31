package common

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/chriso345/soya/core"
)

var (
	soyaType    = reflect.TypeFor[core.Soya]()
	helpType    = reflect.TypeFor[core.Help]()
	versionType = reflect.TypeFor[core.Version]()
)

// Meta is what the marker fields of a struct declare about the program.
type Meta struct {
	Name       string
	About      string
	Version    string
	HasHelp    bool
	HasVersion bool
}

// GetMeta collects the marker fields (Soya, Help, Version) of t.
func GetMeta(t reflect.Type) Meta {
	var meta Meta
	for i := range t.NumField() {
		field := t.Field(i)
		switch field.Type {
		case soyaType:
			meta.Name = field.Tag.Get("name")
			meta.About = field.Tag.Get("help")
		case helpType:
			meta.HasHelp = true
		case versionType:
			meta.HasVersion = true
			meta.Version = field.Tag.Get("version")
		}
	}
	return meta
}

// IsMeta reports whether the field is one of the marker types.
func IsMeta(field reflect.StructField) bool {
	return field.Type == soyaType || field.Type == helpType || field.Type == versionType
}

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// GetStructType returns the reflect.Type of the underlying struct pointer.
func GetStructType(v any) reflect.Type {
	return reflect.TypeOf(v).Elem()
}

// KebabCase turns a Go field name into its command line spelling, e.g.
// MaxItems becomes max-items and URL becomes url.
func KebabCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SplitList splits a comma separated tag value, dropping empty entries.
func SplitList(tag string) []string {
	return lo.FilterMap(strings.Split(tag, ","), func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}

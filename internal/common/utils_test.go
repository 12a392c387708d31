package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chriso345/soya/core"
)

func TestKebabCase(t *testing.T) {
	cases := map[string]string{
		"Name":       "name",
		"MaxItems":   "max-items",
		"URL":        "url",
		"HTTPServer": "http-server",
		"DryRun":     "dry-run",
		"V":          "v",
	}
	for in, want := range cases {
		assert.Equal(t, want, KebabCase(in), in)
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"-d", "-D"}, SplitList(" -d, ,-D "))
	assert.Empty(t, SplitList(""))
}

func TestGetMeta(t *testing.T) {
	cli := struct {
		core.Soya    `name:"tool" help:"About"`
		core.Version `version:"1.0.0"`
		Name         string
	}{}

	meta := GetMeta(GetStructType(&cli))
	assert.Equal(t, Meta{Name: "tool", About: "About", Version: "1.0.0", HasVersion: true}, meta)
	assert.True(t, IsStructPtr(&cli))
	assert.False(t, IsStructPtr(cli))
	assert.False(t, IsStructPtr(nil))
}

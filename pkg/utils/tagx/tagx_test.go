package tagx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		expect []string
	}{
		{"empty", "", []string{}},
		{"blank", "  , ,", []string{}},
		{"comma", "go,gin, gorm", []string{"go", "gin", "gorm"}},
		{"space", "go  gin\tgorm", []string{"go", "gin", "gorm"}},
		{"fullwidth", "笔记，随笔、生活", []string{"笔记", "随笔", "生活"}},
		{"duplicated", "go, gin, go", []string{"go", "gin"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, Parse(c.text))
		})
	}
}

func TestParseTruncate(t *testing.T) {
	tags := Parse(strings.Repeat("a", MaxTagLength+10))
	assert.Len(t, tags, 1)
	assert.Len(t, tags[0], MaxTagLength)
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "go, gin", Join(Parse("go gin")))
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_SortedAndReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	require.NotEmpty(t, sections)
	assert.IsIncreasing(t, sections)

	var back Config
	require.NoError(t, toml.Unmarshal(content, &back))
	assert.Equal(t, *DefaultConfig(), back)
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[sync]
watch = true

[http]
timeout_seconds = 0
`
	want := `title = 'x'

[http]
timeout_seconds = 0

[sync]
watch = true
`
	assert.Equal(t, want, sortTOMLSections(input))
	assert.Equal(t, "", sortTOMLSections(""))
}

func TestSchema_UsesTOMLNames(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"override_cache_size"`)
	assert.Contains(t, string(data), `"timeout_seconds"`)
	assert.NotContains(t, string(data), `"OverrideCacheSize"`)
}

package ailink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks_Literal(t *testing.T) {
	links, residual := ExtractLinks("docs at https://example.com/a?b=1 here")
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/a?b=1", links[0].URL)
	assert.False(t, links[0].Suspect)
	assert.Equal(t, "docs at __LINK_0__ here", residual)
}

func TestExtractLinks_SuspectDefault(t *testing.T) {
	links, residual := ExtractLinks("try golang.org or pkg.dev today")
	require.Len(t, links, 2)
	assert.Equal(t, "https://golang.org", links[0].URL)
	assert.True(t, links[0].Suspect)
	assert.Equal(t, "https://pkg.dev", links[1].URL)
	assert.Equal(t, "try __LINK_0__ or __LINK_1__ today", residual)
}

func TestExtractLinks_ProtocolInheritance(t *testing.T) {
	links, _ := ExtractLinks("see http://a.com and b.io now")
	require.Len(t, links, 2)
	// Literal URLs come first, then completed suspects.
	assert.Equal(t, "http://a.com", links[0].URL)
	assert.Equal(t, "http://b.io", links[1].URL)
	assert.True(t, links[1].Suspect)
}

func TestExtractLinks_OrderingLiteralsFirst(t *testing.T) {
	links, residual := ExtractLinks("b.io then https://a.com")
	require.Len(t, links, 2)
	assert.Equal(t, "https://a.com", links[0].URL)
	assert.Equal(t, "https://b.io", links[1].URL)
	// Placeholder numbering follows the output ordering.
	assert.Equal(t, "__LINK_1__ then __LINK_0__", residual)
}

func TestExtractLinks_Exclusions(t *testing.T) {
	links, residual := ExtractLinks("bump package.version and release.info notes")
	assert.Nil(t, links)
	assert.Equal(t, "bump package.version and release.info notes", residual)
}

func TestExtractLinks_NonDomainSuffix(t *testing.T) {
	links, _ := ExtractLinks("file main.rs and mod.tsx are fine")
	assert.Nil(t, links)
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(Placeholder(3)))
	assert.False(t, IsPlaceholder("__LINK__"))
	assert.False(t, IsPlaceholder("hello"))
}

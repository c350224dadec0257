package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/content"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

var testLinks = []domain.AffiliateLink{
	{URL: "https://example.com/serums?a=1&b=2", AnchorText: "Browse serums"},
	{URL: "https://example.com/creams", AnchorText: "Browse creams"},
}

func TestInjector_InjectLinks(t *testing.T) {
	inj := content.NewInjector()

	t.Run("prepends disclaimer", func(t *testing.T) {
		out, err := inj.InjectLinks("<p>intro</p>", nil)

		require.NoError(t, err)
		assert.Contains(t, out, content.DefaultDisclaimer)
		assert.Less(t, strings.Index(out, content.DefaultDisclaimer), strings.Index(out, "intro"))
	})

	t.Run("inserts first link after first paragraph", func(t *testing.T) {
		out, err := inj.InjectLinks("<p>intro</p><p>more</p>", testLinks)

		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "affiliate-link"), "only the first link is embedded inline")
		assert.Contains(t, out, "Browse serums")
		assert.NotContains(t, out, "Browse creams")

		intro := strings.Index(out, "intro")
		anchor := strings.Index(out, "affiliate-link")
		more := strings.Index(out, "more")
		assert.Less(t, intro, anchor)
		assert.Less(t, anchor, more)
	})

	t.Run("appends anchor when no paragraph boundary exists", func(t *testing.T) {
		out, err := inj.InjectLinks("<ul><li>one</li><li>two</li></ul>", testLinks)

		require.NoError(t, err)
		assert.Contains(t, out, "Browse serums")
		assert.Less(t, strings.Index(out, "two"), strings.Index(out, "Browse serums"))
	})

	t.Run("empty links yields content with disclaimer only", func(t *testing.T) {
		out, err := inj.InjectLinks("<p>intro</p>", nil)

		require.NoError(t, err)
		assert.NotContains(t, out, "affiliate-link")
		assert.Contains(t, out, "intro")
	})

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		first, err := inj.InjectLinks("<p>intro</p><p>more</p>", testLinks)
		require.NoError(t, err)

		second, err := inj.InjectLinks("<p>intro</p><p>more</p>", testLinks)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("does not corrupt markup or double-encode entities", func(t *testing.T) {
		in := `<p>Fish &amp; chips</p><p>more</p>`
		out, err := inj.InjectLinks(in, testLinks)

		require.NoError(t, err)
		assert.Contains(t, out, "Fish &amp; chips")
		assert.NotContains(t, out, "&amp;amp;")
		// URL query ampersand is escaped exactly once inside the attribute
		assert.Contains(t, out, "a=1&amp;b=2")
	})

	t.Run("escapes anchor text", func(t *testing.T) {
		links := []domain.AffiliateLink{{URL: "https://example.com", AnchorText: `<script>alert("x")</script>`}}
		out, err := inj.InjectLinks("<p>intro</p>", links)

		require.NoError(t, err)
		assert.NotContains(t, out, "<script>")
	})
}

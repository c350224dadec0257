package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
	"github.com/premiumsigns1/nl-beauty-pipeline/internal/validator"
)

func TestValidator_ValidateTopic(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateTopic("engraved signs london"))

	err := v.ValidateTopic("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic_required")

	err = v.ValidateTopic(strings.Repeat("x", 201))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic_too_long")
}

func TestValidator_ValidateDraftSubmission(t *testing.T) {
	v := validator.NewValidator()

	valid := &domain.Draft{
		Title:           "Best Serums",
		MetaDescription: "A short guide",
		Content:         "<p>intro</p>",
		FocusKeyword:    "serum",
	}

	t.Run("accepts complete submission", func(t *testing.T) {
		assert.NoError(t, v.ValidateDraftSubmission("serum", valid))
	})

	t.Run("meta description is optional", func(t *testing.T) {
		d := *valid
		d.MetaDescription = ""
		assert.NoError(t, v.ValidateDraftSubmission("serum", &d))
	})

	t.Run("rejects missing keyword", func(t *testing.T) {
		err := v.ValidateDraftSubmission("", valid)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "keyword_required")
	})

	t.Run("rejects missing title", func(t *testing.T) {
		d := *valid
		d.Title = ""
		err := v.ValidateDraftSubmission("serum", &d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "title_required")
	})

	t.Run("rejects missing content", func(t *testing.T) {
		d := *valid
		d.Content = ""
		err := v.ValidateDraftSubmission("serum", &d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content_required")
	})

	t.Run("rejects oversized meta description", func(t *testing.T) {
		d := *valid
		d.MetaDescription = strings.Repeat("m", 321)
		err := v.ValidateDraftSubmission("serum", &d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "meta_description_too_long")
	})
}

func TestValidator_ValidateSlug(t *testing.T) {
	v := validator.NewValidator()

	assert.NoError(t, v.ValidateSlug("best-moisturiser-2026"))

	for _, slug := range []string{"", "Best-Moisturiser", "double--hyphen", "-leading", "trailing-"} {
		assert.Error(t, v.ValidateSlug(slug), "slug %q should be rejected", slug)
	}
}

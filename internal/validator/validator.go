package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation for pipeline inputs. All checks run before
// any store mutation.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTopic validates a keyword-discovery topic.
func (v *Validator) ValidateTopic(topic string) error {
	return validation.Errors{
		"topic": validation.Validate(topic,
			validation.Required.Error("topic_required"),
			validation.Length(0, 200).Error("topic_too_long"),
		),
	}.Filter()
}

// ValidateKeyword validates a generation keyword.
func (v *Validator) ValidateKeyword(keyword string) error {
	return validation.Errors{
		"keyword": validation.Validate(keyword,
			validation.Required.Error("keyword_required"),
			validation.Length(0, 200).Error("keyword_too_long"),
		),
	}.Filter()
}

// ValidateDraftSubmission validates the fields required to create a draft
// article: keyword, title and content must all be present.
func (v *Validator) ValidateDraftSubmission(keyword string, draft *domain.Draft) error {
	err := v.ValidateKeyword(keyword)
	if err != nil {
		return err
	}

	return validation.ValidateStruct(draft,
		validation.Field(&draft.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&draft.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&draft.MetaDescription,
			validation.Length(0, 320).Error("meta_description_too_long"),
		),
	)
}

// ValidateSlug checks a derived slug against the URL-safe format.
func (v *Validator) ValidateSlug(slug string) error {
	return validation.Errors{
		"slug": validation.Validate(slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	}.Filter()
}

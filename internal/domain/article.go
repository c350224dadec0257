package domain

import "time"

// Status is the lifecycle state of an article. Transitions only move
// forward: draft -> previewed -> published. Published is terminal.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPreviewed Status = "previewed"
	StatusPublished Status = "published"
)

// statusRank orders statuses for transition checks.
var statusRank = map[Status]int{
	StatusDraft:     0,
	StatusPreviewed: 1,
	StatusPublished: 2,
}

// IsValidStatus checks if a status is valid.
func IsValidStatus(s Status) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an article may move from one status to the
// next. Only forward moves are allowed; publish is legal straight from draft.
func CanTransition(from, to Status) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// AffiliateLink is a single selected affiliate anchor.
type AffiliateLink struct {
	URL        string `json:"url"`
	AnchorText string `json:"anchor_text"`
}

// Article is the central entity moving through the pipeline.
type Article struct {
	ID              string          `json:"id"`
	Keyword         string          `json:"keyword"`
	Title           string          `json:"title"`
	MetaDescription string          `json:"meta_description"`
	Content         string          `json:"content"`
	AffiliateLinks  []AffiliateLink `json:"affiliate_links"`
	Status          Status          `json:"status"`
	PublishedRef    string          `json:"published_ref,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ArticleSummary is the list-view projection of an article.
type ArticleSummary struct {
	ID      string `json:"id"`
	Keyword string `json:"keyword"`
	Title   string `json:"title"`
	Status  Status `json:"status"`
}

// Summary returns the list-view projection of the article.
func (a *Article) Summary() ArticleSummary {
	return ArticleSummary{
		ID:      a.ID,
		Keyword: a.Keyword,
		Title:   a.Title,
		Status:  a.Status,
	}
}

// Editable reports whether content fields may still be mutated.
func (a *Article) Editable() bool {
	return a.Status == StatusDraft || a.Status == StatusPreviewed
}

// Draft holds the fields produced by the text generator for one keyword.
type Draft struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	Content         string `json:"content"`
	FocusKeyword    string `json:"focus_keyword"`
}

// KeywordSuggestion is one candidate keyword discovered for a seed topic.
type KeywordSuggestion struct {
	Keyword string `json:"keyword"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// PublishedPost is an already-published CMS post, used as an internal
// linking candidate when generating new content.
type PublishedPost struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Slug  string `json:"slug"`
}

// PreviewPayload is the snapshot returned by the preview operation.
type PreviewPayload struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	MetaDescription string          `json:"meta_description"`
	Content         string          `json:"content"`
	FocusKeyword    string          `json:"focus_keyword"`
	Slug            string          `json:"slug"`
	AffiliateLinks  []AffiliateLink `json:"affiliate_links"`
	Status          Status          `json:"status"`
}

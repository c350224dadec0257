// Package content transforms generated HTML fragments before they are
// stored: it adds the affiliate disclaimer and weaves in the first
// selected affiliate link.
package content

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// DefaultDisclaimer is prepended to every article that went through the
// injector, whether or not any link was selected.
const DefaultDisclaimer = "This content may contain affiliated links."

// Injector inserts affiliate links into generated HTML. The content is
// parsed rather than byte-spliced, so insertion can never land inside a
// tag or corrupt existing markup.
type Injector struct {
	disclaimer string
}

// NewInjector creates an Injector with the default disclaimer text.
func NewInjector() *Injector {
	return &Injector{disclaimer: DefaultDisclaimer}
}

// InjectLinks prepends the disclaimer and inserts an anchor for the first
// link after the first closing paragraph of the fragment. When the
// fragment has no paragraph, the anchor is appended at the end instead of
// being dropped. Only the first link is embedded inline; the rest stay on
// the article record for separate display. Output is deterministic for
// fixed inputs.
func (inj *Injector) InjectLinks(htmlContent string, links []domain.AffiliateLink) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse content: %w", err)
	}

	body := doc.Find("body")

	if len(links) > 0 {
		anchor := anchorBlock(links[0])
		if first := body.Find("p").First(); first.Length() > 0 {
			first.AfterHtml(anchor)
		} else {
			body.AppendHtml(anchor)
		}
	}

	body.PrependHtml(fmt.Sprintf(`<p class="affiliate-disclaimer"><em>%s</em></p>`, html.EscapeString(inj.disclaimer)))

	out, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("render content: %w", err)
	}

	return out, nil
}

func anchorBlock(link domain.AffiliateLink) string {
	return fmt.Sprintf(`<p class="affiliate-link"><a href="%s" rel="sponsored nofollow" target="_blank">%s</a></p>`,
		html.EscapeString(link.URL), html.EscapeString(link.AnchorText))
}

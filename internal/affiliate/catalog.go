// Package affiliate holds the static offer catalog and the link selection
// logic used when a draft is created.
package affiliate

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Offer is a promotable external link with its eligible anchor texts and
// the keyword substrings that make it relevant. Offers are read-only
// reference data loaded once at startup.
type Offer struct {
	ID          string   `yaml:"id"`
	URL         string   `yaml:"url"`
	AnchorTexts []string `yaml:"anchor_texts"`
	Keywords    []string `yaml:"keywords"`
	Default     bool     `yaml:"default"`
}

// Catalog is an ordered set of offers. Order is significant: selection
// walks the catalog in declaration order so output composition is
// reproducible for a given keyword.
type Catalog struct {
	Offers []Offer `yaml:"offers"`
}

// LoadCatalog reads an offer catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Offers) == 0 {
		return fmt.Errorf("catalog has no offers")
	}

	seen := map[string]struct{}{}
	defaults := 0
	for i, o := range c.Offers {
		if o.ID == "" {
			return fmt.Errorf("offer %d has no id", i)
		}
		if _, ok := seen[o.ID]; ok {
			return fmt.Errorf("duplicate offer id %q", o.ID)
		}
		seen[o.ID] = struct{}{}

		if o.URL == "" {
			return fmt.Errorf("offer %q has no url", o.ID)
		}
		if len(o.AnchorTexts) == 0 {
			return fmt.Errorf("offer %q has no anchor texts", o.ID)
		}
		if o.Default {
			defaults++
		}
	}

	if defaults != 1 {
		return fmt.Errorf("catalog must have exactly one default offer, found %d", defaults)
	}

	return nil
}

// DefaultOffer returns the catalog's general-purpose offer.
func (c *Catalog) DefaultOffer() Offer {
	for _, o := range c.Offers {
		if o.Default {
			return o
		}
	}
	// validate() guarantees one default exists
	return c.Offers[0]
}

// DefaultCatalog returns the built-in NL Beauty catalog, used when no
// catalog file is configured.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Offers: []Offer{
			{
				ID:  "lookfantastic-general",
				URL: "https://www.lookfantastic.com/offers.list?affil=nlbeauty",
				AnchorTexts: []string{
					"Browse the full beauty range at LookFantastic",
					"See current offers at LookFantastic",
					"Shop our favourite beauty picks",
				},
				Default: true,
			},
			{
				ID:  "elemis",
				URL: "https://www.elemis.com/uk/skincare?affil=nlbeauty",
				AnchorTexts: []string{
					"Explore the Elemis skincare collection",
					"Shop Elemis serums and creams",
					"View the full Elemis range",
				},
				Keywords: []string{"serum", "elemis", "collagen", "marine cream", "anti ageing", "anti-ageing"},
			},
			{
				ID:  "moisturiser-edit",
				URL: "https://www.lookfantastic.com/health-beauty/face/moisturisers.list?affil=nlbeauty",
				AnchorTexts: []string{
					"Compare bestselling moisturisers",
					"Find a moisturiser for your skin type",
				},
				Keywords: []string{"moisturiser", "moisturizer", "hydration", "dry skin", "face cream"},
			},
			{
				ID:  "haircare-edit",
				URL: "https://www.lookfantastic.com/health-beauty/hair.list?affil=nlbeauty",
				AnchorTexts: []string{
					"Shop salon-grade haircare",
					"Browse shampoos and conditioners",
				},
				Keywords: []string{"hair", "shampoo", "conditioner", "scalp"},
			},
			{
				ID:  "spf-edit",
				URL: "https://www.lookfantastic.com/health-beauty/sun-care.list?affil=nlbeauty",
				AnchorTexts: []string{
					"See our recommended SPF protection",
					"Shop facial sunscreens",
				},
				Keywords: []string{"spf", "sunscreen", "sun cream", "uv"},
			},
		},
	}
}

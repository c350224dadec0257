package affiliate

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/premiumsigns1/nl-beauty-pipeline/internal/domain"
)

// DefaultMaxLinks caps how many affiliate links a single article carries.
const DefaultMaxLinks = 3

// Selector picks affiliate links for a keyword. Offer composition is a pure
// function of (keyword, catalog, maxCount); only the anchor text choice is
// random, drawn from the injected source so tests can seed it.
type Selector struct {
	catalog *Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector creates a Selector over the given catalog and random source.
func NewSelector(catalog *Catalog, rng *rand.Rand) *Selector {
	return &Selector{catalog: catalog, rng: rng}
}

// SelectLinks returns at most maxCount links for the keyword. The default
// offer always comes first; remaining offers are included in catalog order
// when the lower-cased keyword contains one of their category substrings.
// At most one link per offer.
func (s *Selector) SelectLinks(keyword string, maxCount int) []domain.AffiliateLink {
	if maxCount <= 0 || len(s.catalog.Offers) == 0 {
		return nil
	}

	lowered := strings.ToLower(keyword)
	links := make([]domain.AffiliateLink, 0, maxCount)

	def := s.catalog.DefaultOffer()
	links = append(links, s.link(def))

	for _, offer := range s.catalog.Offers {
		if len(links) >= maxCount {
			break
		}
		if offer.Default {
			continue
		}
		if matchesKeyword(lowered, offer) {
			links = append(links, s.link(offer))
		}
	}

	return links
}

func matchesKeyword(loweredKeyword string, offer Offer) bool {
	for _, sub := range offer.Keywords {
		if sub == "" {
			continue
		}
		if strings.Contains(loweredKeyword, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

func (s *Selector) link(offer Offer) domain.AffiliateLink {
	return domain.AffiliateLink{
		URL:        offer.URL,
		AnchorText: s.pickAnchor(offer.AnchorTexts),
	}
}

// pickAnchor draws uniformly from the offer's anchor texts. rand.Rand is not
// safe for concurrent use, so draws are serialized.
func (s *Selector) pickAnchor(anchors []string) string {
	if len(anchors) == 1 {
		return anchors[0]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return anchors[s.rng.Intn(len(anchors))]
}

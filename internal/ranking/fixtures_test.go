package ranking

import (
	"context"
	"errors"
	"math"
	"strings"
	"sync"

	"github.com/jonathan/internship-matcher/internal/types"
)

// staticProvider serves a fixed corpus.
type staticProvider struct {
	mu         sync.Mutex
	listings   []types.Listing
	err        error
	categories []string
}

func (p *staticProvider) Listings(_ context.Context, category string) ([]types.Listing, error) {
	p.mu.Lock()
	p.categories = append(p.categories, category)
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	out := make([]types.Listing, 0, len(p.listings))
	for _, l := range p.listings {
		if category == "" || strings.EqualFold(l.Category, category) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (p *staticProvider) Listing(_ context.Context, id string) (*types.Listing, error) {
	if p.err != nil {
		return nil, p.err
	}
	for i := range p.listings {
		if p.listings[i].ID == id {
			l := p.listings[i]
			return &l, nil
		}
	}
	return nil, nil
}

// blockingProvider never answers until released.
type blockingProvider struct {
	release chan struct{}
}

func (p *blockingProvider) Listings(context.Context, string) ([]types.Listing, error) {
	<-p.release
	return nil, nil
}

func (p *blockingProvider) Listing(context.Context, string) (*types.Listing, error) {
	<-p.release
	return nil, nil
}

type staticProfile struct {
	profile *types.CandidateProfile
	err     error
}

func (p staticProfile) Profile(context.Context) (*types.CandidateProfile, error) {
	return p.profile, p.err
}

var errProviderDown = errors.New("provider down")

func frontendProfile() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:       "student-1",
		Skills:   []string{"React", "JavaScript", "HTML", "CSS"},
		Major:    "Computer Science",
		Location: "Singapore",
	}
}

func frontendListing() types.Listing {
	return types.Listing{
		ID:           "frontend",
		Title:        "Frontend Developer Intern",
		Company:      "Acme",
		Description:  "Software programming internship for students",
		Category:     "technology",
		Location:     "Singapore",
		Skills:       []string{"React", "JavaScript", "HTML", "CSS"},
		Requirements: []string{"Entry level", "Student welcome"},
	}
}

func marketingListing() types.Listing {
	return types.Listing{
		ID:           "marketing",
		Title:        "Marketing Intern",
		Description:  "Social media campaigns and brand outreach",
		Category:     "marketing",
		Location:     "Singapore",
		Skills:       []string{"SEO", "Copywriting"},
		Requirements: []string{"Creative mindset"},
	}
}

func financeListing() types.Listing {
	return types.Listing{
		ID:           "finance",
		Title:        "Finance Analyst Intern",
		Description:  "Budget forecasting spreadsheets",
		Category:     "finance",
		Location:     "Jakarta",
		Skills:       []string{"Excel"},
		Requirements: []string{"Senior analyst mentorship"},
	}
}

func corpus() []types.Listing {
	return []types.Listing{frontendListing(), marketingListing(), financeListing()}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func roundHalf(v float64) float64 { return math.Round(v) }

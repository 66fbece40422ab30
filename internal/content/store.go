package content

import (
	"sort"
	"strings"
	"sync"

	"github.com/byestunting/byestunting/pkg/errors"
)

// Store is the in-memory article catalog. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	articles []Article
}

// NewStore creates a store over the built-in seed catalog.
func NewStore() *Store {
	articles := make([]Article, len(seedArticles))
	copy(articles, seedArticles)
	return &Store{articles: articles}
}

// NewStoreWith creates a store over the given articles.
func NewStoreWith(articles []Article) *Store {
	copied := make([]Article, len(articles))
	copy(copied, articles)
	return &Store{articles: copied}
}

// ListFilter narrows a List call. Zero values mean "no constraint".
type ListFilter struct {
	// Category matches case-insensitively.
	Category string
	// ExcludeSlug drops one article, used by "related articles" widgets so a
	// page never recommends itself.
	ExcludeSlug string
	// Limit caps the result count when positive.
	Limit int
}

// List returns articles in seed order, filtered.
func (s *Store) List(filter ListFilter) []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Article
	for _, a := range s.articles {
		if filter.Category != "" && !strings.EqualFold(a.Category, filter.Category) {
			continue
		}
		if filter.ExcludeSlug != "" && a.Slug == filter.ExcludeSlug {
			continue
		}
		result = append(result, a)
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result
}

// GetByID returns the article with the given id.
func (s *Store) GetByID(id int) (Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, errors.NotFound("artikel tidak ditemukan")
}

// GetBySlug returns the article with the given slug.
func (s *Store) GetBySlug(slug string) (Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return Article{}, errors.NotFound("artikel tidak ditemukan")
}

// Popular returns up to limit articles ordered by view count descending.
func (s *Store) Popular(limit int) []Article {
	s.mu.RLock()
	popular := make([]Article, len(s.articles))
	copy(popular, s.articles)
	s.mu.RUnlock()

	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].ViewCount > popular[j].ViewCount
	})

	if limit > 0 && limit < len(popular) {
		popular = popular[:limit]
	}
	return popular
}

// AddView increments the view counter and returns the new count.
func (s *Store) AddView(id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].ViewCount++
			return s.articles[i].ViewCount, nil
		}
	}
	return 0, errors.NotFound("artikel tidak ditemukan")
}

// AddLike applies a like increment of +1 or -1 and returns the new count.
// The count never goes below zero.
func (s *Store) AddLike(id, increment int) (int, error) {
	if increment != 1 && increment != -1 {
		return 0, errors.InvalidParam("increment harus 1 atau -1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles[i].LikeCount += increment
			if s.articles[i].LikeCount < 0 {
				s.articles[i].LikeCount = 0
			}
			return s.articles[i].LikeCount, nil
		}
	}
	return 0, errors.NotFound("artikel tidak ditemukan")
}

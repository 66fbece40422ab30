package content

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byestunting/byestunting/pkg/errors"
)

func TestStore_ListFilters(t *testing.T) {
	store := NewStore()

	all := store.List(ListFilter{})
	assert.Len(t, all, 10)

	nutrition := store.List(ListFilter{Category: "nutrisi"})
	require.NotEmpty(t, nutrition)
	for _, a := range nutrition {
		assert.Equal(t, CategoryNutrition, a.Category)
	}

	excluded := store.List(ListFilter{ExcludeSlug: "mengatasi-anak-susah-makan"})
	assert.Len(t, excluded, 9)
	for _, a := range excluded {
		assert.NotEqual(t, 8, a.ID)
	}

	limited := store.List(ListFilter{Limit: 3})
	assert.Len(t, limited, 3)
}

func TestStore_Lookup(t *testing.T) {
	store := NewStore()

	byID, err := store.GetByID(4)
	require.NoError(t, err)
	assert.Equal(t, "Pentingnya 1000 Hari Pertama Kehidupan", byID.Title)

	bySlug, err := store.GetBySlug("peran-asi-dalam-mencegah-stunting")
	require.NoError(t, err)
	assert.Equal(t, 9, bySlug.ID)

	_, err = store.GetByID(999)
	assert.True(t, errors.IsNotFound(err))

	_, err = store.GetBySlug("tidak-ada")
	assert.True(t, errors.IsNotFound(err))
}

func TestStore_Popular(t *testing.T) {
	store := NewStore()

	popular := store.Popular(4)
	require.Len(t, popular, 4)
	for i := 1; i < len(popular); i++ {
		assert.GreaterOrEqual(t, popular[i-1].ViewCount, popular[i].ViewCount)
	}
	assert.Equal(t, 1, popular[0].ID)
}

func TestStore_Counters(t *testing.T) {
	store := NewStore()

	before, err := store.GetByID(2)
	require.NoError(t, err)

	views, err := store.AddView(2)
	require.NoError(t, err)
	assert.Equal(t, before.ViewCount+1, views)

	likes, err := store.AddLike(2, 1)
	require.NoError(t, err)
	assert.Equal(t, before.LikeCount+1, likes)

	likes, err = store.AddLike(2, -1)
	require.NoError(t, err)
	assert.Equal(t, before.LikeCount, likes)

	_, err = store.AddLike(2, 5)
	assert.True(t, errors.IsValidation(err))

	_, err = store.AddView(999)
	assert.True(t, errors.IsNotFound(err))
}

func TestStore_LikeFloor(t *testing.T) {
	store := NewStoreWith([]Article{{ID: 1, Slug: "a", LikeCount: 0}})

	likes, err := store.AddLike(1, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, likes)
}

func TestStore_ConcurrentCounters(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddView(1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	article, err := store.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, seedArticles[0].ViewCount+50, article.ViewCount)
}

package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/taproom/pkg/adapters/memory"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
	"github.com/aretw0/taproom/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMemoryCache_Contract(t *testing.T) {
	ports.RunTurnCacheContract(t, memory.NewCache(0))
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := memory.NewCache(50*time.Millisecond, memory.WithCleanupInterval(0))
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", domain.NewEmptyOrderOutcome()))
	_, err := cache.Get(ctx, "short")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = cache.Get(ctx, "short")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_Janitor(t *testing.T) {
	defer goleak.VerifyNone(t)

	cache := memory.NewCache(30*time.Millisecond, memory.WithCleanupInterval(20*time.Millisecond))
	defer cache.Close()
	ctx := context.Background()

	for _, key := range []string{"one", "two", "three"} {
		require.NoError(t, cache.Set(ctx, key, domain.NewEmptyOrderOutcome()))
	}
	require.Equal(t, 3, cache.Len())

	// Nothing reads the keys again; only the janitor can remove them.
	assert.Eventually(t, func() bool { return cache.Len() == 0 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(3), cache.Evictions())
}

func TestMemoryCache_CloseStopsJanitor(t *testing.T) {
	defer goleak.VerifyNone(t)

	cache := memory.NewCache(time.Minute)
	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close())
}

func TestMemoryCache_MaxEntries(t *testing.T) {
	cache := memory.NewCache(0, memory.WithMaxEntries(2))
	defer cache.Close()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c", "d"} {
		require.NoError(t, cache.Set(ctx, key, domain.NewEmptyOrderOutcome()))
	}
	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, int64(2), cache.Evictions())

	_, err := cache.Get(ctx, "d")
	assert.NoError(t, err, "the newest entry is always kept")

	// Overwriting a stored key does not evict.
	require.NoError(t, cache.Set(ctx, "d", domain.NewEmptyOrderOutcome()))
	assert.Equal(t, int64(2), cache.Evictions())
}

func TestMemoryCache_Isolation(t *testing.T) {
	cache := memory.NewCache(0)
	ctx := context.Background()

	outcome := domain.NewProposalOutcome(domain.Proposal{Table: 3, Summary: []string{"1 x Nuts"}})
	require.NoError(t, cache.Set(ctx, "k", outcome))
	outcome.Proposal.Summary[0] = "mutated"

	loaded, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1 x Nuts", loaded.Proposal.Summary[0])
}

func TestCatalog_Contract(t *testing.T) {
	tests.CatalogContractTest(t, memory.NewDefaultCatalog(), memory.DefaultMenu)

	custom := []domain.MenuItem{
		{ID: "wine_red_glass", Name: "Red Wine", PricePence: 650, Tags: []string{"wine", "glass"}},
		{ID: "crisps_prawn", Name: "Prawn Cocktail Crisps", PricePence: 110, Tags: []string{"snacks", "crisps"}},
	}
	catalog, err := memory.NewCatalog(custom)
	require.NoError(t, err)
	tests.CatalogContractTest(t, catalog, custom)
}

func TestNewCatalog_Validation(t *testing.T) {
	_, err := memory.NewCatalog([]domain.MenuItem{
		{ID: "a", Name: "A"},
		{ID: "a", Name: "Again"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)

	_, err = memory.NewCatalog([]domain.MenuItem{{ID: "a", Name: "A", PricePence: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)

	_, err = memory.NewCatalog([]domain.MenuItem{{Name: "nameless"}})
	assert.ErrorIs(t, err, domain.ErrInvalidMenu)
}

package refdata

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewCache(client, time.Minute)
	return NewService(DefaultCatalog(), cache), mr
}

func TestServicePopulatesCache(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	products, err := svc.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 5)

	keys := mr.Keys()
	assert.Contains(t, keys, "refdata:products:1")
}

func TestServiceServesFromCache(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CnOffices(ctx)
	require.NoError(t, err)
	second, err := svc.CnOffices(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestInvalidateBumpsVersion(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	before, err := svc.cache.Version(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Invalidate(ctx))

	after, err := svc.cache.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestServiceWorksWithoutRedis(t *testing.T) {
	svc := NewService(DefaultCatalog(), NewCache(nil, time.Minute))

	uoms, err := svc.Uoms(context.Background())
	require.NoError(t, err)
	assert.Len(t, uoms, 5)
}

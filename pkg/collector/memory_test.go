package collector_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mobiledetect/pkg/collector"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("save and get", func(t *testing.T) {
		t.Parallel()
		s := collector.NewMemoryStore(3)

		require.NoError(t, s.Save(ctx, collector.Profile{Token: "a", Method: "GET"}))
		p, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "GET", p.Method)

		_, err = s.Get(ctx, "missing")
		assert.ErrorIs(t, err, collector.ErrProfileNotFound)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		err := collector.NewMemoryStore(1).Save(ctx, collector.Profile{})
		assert.ErrorIs(t, err, collector.ErrEmptyToken)
	})

	t.Run("evicts least recently used", func(t *testing.T) {
		t.Parallel()
		s := collector.NewMemoryStore(3)
		for _, tok := range []string{"a", "b", "c"} {
			require.NoError(t, s.Save(ctx, collector.Profile{Token: tok}))
		}

		_, err := s.Get(ctx, "a")
		require.NoError(t, err)
		require.NoError(t, s.Save(ctx, collector.Profile{Token: "d"}))

		assert.Equal(t, 3, s.Len())
		_, err = s.Get(ctx, "b")
		assert.ErrorIs(t, err, collector.ErrProfileNotFound)
		_, err = s.Get(ctx, "a")
		assert.NoError(t, err)
	})

	t.Run("update keeps size", func(t *testing.T) {
		t.Parallel()
		s := collector.NewMemoryStore(2)
		require.NoError(t, s.Save(ctx, collector.Profile{Token: "a", StatusCode: 200}))
		require.NoError(t, s.Save(ctx, collector.Profile{Token: "a", StatusCode: 302}))

		assert.Equal(t, 1, s.Len())
		p, err := s.Get(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, 302, p.StatusCode)
	})

	t.Run("list newest first", func(t *testing.T) {
		t.Parallel()
		s := collector.NewMemoryStore(0)
		for i := range 5 {
			require.NoError(t, s.Save(ctx, collector.Profile{
				Token: fmt.Sprintf("t%d", i),
				Time:  base.Add(time.Duration(i) * time.Minute),
			}))
		}
		_, _ = s.Get(ctx, "t0")

		list, err := s.List(ctx, 3)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "t4", list[0].Token)
		assert.Equal(t, "t3", list[1].Token)
		assert.Equal(t, "t2", list[2].Token)

		all, err := s.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 5)
	})
}

package tokenutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNext(t *testing.T) {
	t.Parallel()

	token1, serial1 := Next()
	token2, serial2 := Next()

	require.NotEqual(t, token1, token2)
	require.NotEqual(t, uuid.Nil, token1)
	require.Greater(t, serial2, serial1)
}

func TestNextConcurrent(t *testing.T) {
	t.Parallel()

	const numTokens = 200

	var (
		group   errgroup.Group
		serials = make([]uint64, numTokens)
		tokens  = make([]uuid.UUID, numTokens)
	)
	for i := range numTokens {
		group.Go(func() error {
			tokens[i], serials[i] = Next()
			return nil
		})
	}
	require.NoError(t, group.Wait())

	seenSerials := make(map[uint64]struct{}, numTokens)
	seenTokens := make(map[uuid.UUID]struct{}, numTokens)
	for i := range numTokens {
		require.NotContains(t, seenSerials, serials[i])
		require.NotContains(t, seenTokens, tokens[i])
		seenSerials[serials[i]] = struct{}{}
		seenTokens[tokens[i]] = struct{}{}
	}
}

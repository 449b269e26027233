package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryFindFirst(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	// absent collection yields empty, non-nil slice
	docs, err := r.FindFirst(ctx, "askedQuestions", 4)
	require.NoError(t, err)
	require.NotNil(t, docs)
	require.Len(t, docs, 0)

	r.Seed("askedQuestions",
		Document{"question": "q1", "answer": "a1"},
		Document{"question": "q2", "answer": "a2"},
	)

	// fewer than limit returns everything
	docs, err = r.FindFirst(ctx, "askedQuestions", 4)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// more than limit is truncated
	r.Seed("askedQuestions",
		Document{"question": "q3"},
		Document{"question": "q4"},
		Document{"question": "q5"},
	)
	docs, err = r.FindFirst(ctx, "askedQuestions", 4)
	require.NoError(t, err)
	require.Len(t, docs, 4)
}

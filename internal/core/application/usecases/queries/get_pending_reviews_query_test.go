package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPendingReviewsQuery_Valid(t *testing.T) {
	query := queries.NewGetPendingReviewsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPendingReviewsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPendingReviewsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPendingReviewsQueryIsNotConstructed)
}

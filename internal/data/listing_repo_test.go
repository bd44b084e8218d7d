package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekwell/jobboard/internal/domain/model"
	"github.com/seekwell/jobboard/internal/testutil"
)

func setupListingRepo(t *testing.T) *ListingRepo {
	t.Helper()
	db := testutil.SetupTestMongo(t)
	return NewListingRepoWithTimeProvider(db, NewFixedTimeProvider(testutil.TestTime()))
}

func newListingRequest(title, postID string) *model.CreateListingRequest {
	return &model.CreateListingRequest{
		Title:           title,
		ExternalPostID:  postID,
		YearsExperience: "3",
		Description:     "Build things",
		CreatedBy:       "alice",
	}
}

func TestListingRepo_CreateRoundTrip(t *testing.T) {
	repo := setupListingRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.CreateListingRequest{
		Title:           "Engineer",
		ExternalPostID:  "E1",
		YearsExperience: "3",
		Description:     "Build things",
		Logo:            []byte{0x89, 0x50, 0x4e, 0x47},
		CreatedBy:       "alice",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 1)

	got := listings[0]
	assert.Equal(t, "Engineer", got.Title)
	assert.Equal(t, "E1", got.ExternalPostID)
	assert.Equal(t, "3", got.YearsExperience)
	assert.Equal(t, "Build things", got.Description)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got.Logo)
	assert.Equal(t, "alice", got.CreatedBy)
}

func TestListingRepo_CreateValidates(t *testing.T) {
	repo := setupListingRepo(t)

	req := newListingRequest("", "E1")
	_, err := repo.Create(context.Background(), req)
	assert.Error(t, err)
}

func TestListingRepo_ListPreservesInsertionOrder(t *testing.T) {
	repo := setupListingRepo(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		_, err := repo.Create(ctx, newListingRequest(title, "P-"+title))
		require.NoError(t, err)
	}

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "First", listings[0].Title)
	assert.Equal(t, "Second", listings[1].Title)
	assert.Equal(t, "Third", listings[2].Title)

	// Order must hold after a delete and re-insert, not just for a fresh
	// collection's natural order.
	deleted, err := repo.Delete(ctx, listings[1].ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = repo.Create(ctx, newListingRequest("Fourth", "P-Fourth"))
	require.NoError(t, err)

	listings, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 3)
	assert.Equal(t, "First", listings[0].Title)
	assert.Equal(t, "Third", listings[1].Title)
	assert.Equal(t, "Fourth", listings[2].Title)
}

func TestListingRepo_GetByID(t *testing.T) {
	repo := setupListingRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newListingRequest("Engineer", "E1"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByID(ctx, "64f000000000000000000000")
	assert.ErrorIs(t, err, ErrListingNotFound)

	_, err = repo.GetByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestListingRepo_Delete(t *testing.T) {
	repo := setupListingRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newListingRequest("Engineer", "E1"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	listings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	// Second delete of the same id reports no match.
	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

package repo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()

	var created domain.Venue
	err := repo.NewTxManager(tx).WithinTx(ctx, func(r repo.Repos) error {
		var err error
		created, err = r.Venues.Create(ctx, venueFixture())
		return err
	})
	require.NoError(t, err)

	_, err = repo.NewVenueRepo(tx).GetByID(ctx, created.ID)
	assert.NoError(t, err, "venue should be visible after the unit of work commits")
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	boom := errors.New("boom")

	var created domain.Venue
	err := repo.NewTxManager(tx).WithinTx(ctx, func(r repo.Repos) error {
		var err error
		created, err = r.Venues.Create(ctx, venueFixture())
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repo.NewVenueRepo(tx).GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "no partial row may survive a failed unit of work")
}

package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/janasiksha/jpk-web/internal/core/domain"
)

func TestCredentialStore(t *testing.T) {
	ctx := context.Background()
	store := NewCredentialStore(map[string]string{"a@b.com": "pw"})

	pw, ok, err := store.Lookup(ctx, "a@b.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "pw", pw)

	require.ErrorIs(t, store.Create(ctx, "a@b.com", "x"), domain.ErrUserExists)
	require.NoError(t, store.Create(ctx, "anita", "x"))
	_, ok, _ = store.Lookup(ctx, "anita")
	require.True(t, ok)
}

func TestSessionStore_CopiesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	sess := domain.NewSession("s1", time.Now(), time.Hour)
	require.NoError(t, store.Save(ctx, sess))

	sess.Login("a@b.com")
	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.False(t, got.IsLoggedIn, "store must not alias the caller's session")

	got.PushHistory("/x")
	again, _ := store.Get(ctx, "s1")
	require.Empty(t, again.History)
}

func TestSessionStore_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	now := time.Date(2025, 9, 6, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, domain.NewSession("old", now.Add(-2*time.Hour), time.Hour)))
	require.NoError(t, store.Save(ctx, domain.NewSession("fresh", now, time.Hour)))

	_, err := store.Get(ctx, "old")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	n, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 1, store.Len())
}

func TestAdminUserStore(t *testing.T) {
	ctx := context.Background()
	store := NewAdminUserStore(SeedUsers())

	users, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, 13, domain.NextUserID(users))

	_, err = store.Create(ctx, domain.MockUser{ID: 12})
	require.ErrorIs(t, err, domain.ErrUserExists)

	_, err = store.Update(ctx, domain.MockUser{ID: 11, Username: "renamed"})
	require.NoError(t, err)
	users, _ = store.List(ctx)
	require.Equal(t, "renamed", users[0].Username)

	require.NoError(t, store.Delete(ctx, 11))
	require.ErrorIs(t, store.Delete(ctx, 11), domain.ErrUserNotFound)
	_, err = store.Update(ctx, domain.MockUser{ID: 11})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAdminUserStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewAdminUserStore(SeedUsers())

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, domain.MockUser{Username: "new"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	users, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, n+2)
	seen := make(map[int]bool, len(users))
	for _, u := range users {
		require.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
	require.True(t, seen[13])
	require.True(t, seen[12+n])
}

func TestLedger_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger(SeedTransactions(), SeedMonthlyTotals())

	txs, err := ledger.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 4)
	txs[0].Amount = 0

	again, _ := ledger.Transactions(ctx)
	require.Equal(t, int64(2500), again[0].Amount)

	months, err := ledger.MonthlyTotals(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.MonthlyTotal{Month: "Jun", Total: 55250}, months[len(months)-1])
}

func TestDonationStore(t *testing.T) {
	store := NewDonationStore()
	require.NoError(t, store.Create(context.Background(), &domain.Donation{ID: "d1", Amount: 100}))
	require.Len(t, store.All(), 1)
}

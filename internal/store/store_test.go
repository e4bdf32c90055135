package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HotaroAce/CineXerve/internal/model"
	"github.com/HotaroAce/CineXerve/internal/store"
)

func TestCreateShowtimeBuildsSeatGrid(t *testing.T) {
	db := store.New()
	st, created := db.CreateShowtime(1, time.Now().Add(24*time.Hour), "Hall 1")

	assert.Len(t, created, 40, "rows A-D, ten seats per row")
	for _, seat := range created {
		assert.Equal(t, st.ID, seat.ShowtimeID)
		assert.Equal(t, model.SeatAvailable, seat.Status)
	}

	seat, ok := db.FindSeat(st.ID, "D10")
	require.True(t, ok)
	assert.Equal(t, model.SeatAvailable, seat.Status)
	_, ok = db.FindSeat(st.ID, "E1")
	assert.False(t, ok)

	listed := db.SeatsByShowtime(st.ID)
	assert.Len(t, listed, 40)
	for i := 1; i < len(listed); i++ {
		assert.LessOrEqual(t, listed[i-1].SeatNumber, listed[i].SeatNumber)
	}
}

func TestBookingIDsAreMonotonic(t *testing.T) {
	db := store.New()
	st, _ := db.CreateShowtime(1, time.Now(), "Hall 1")

	b1 := db.AppendBooking("alice", st.ID, "A1")
	b2 := db.AppendBooking("bob", st.ID, "A2")
	b3 := db.AppendBooking("alice", st.ID, "A3")
	assert.Equal(t, uint64(1), b1.ID)
	assert.Equal(t, uint64(2), b2.ID)
	assert.Equal(t, uint64(3), b3.ID)

	alice := db.BookingsByUser("alice")
	require.Len(t, alice, 2)
	// Newest first.
	assert.Equal(t, b3.ID, alice[0].ID)
	assert.Equal(t, b1.ID, alice[1].ID)
}

func TestDeleteShowtimeConflictsWithBookings(t *testing.T) {
	db := store.New()
	st, _ := db.CreateShowtime(1, time.Now(), "Hall 1")
	db.AppendBooking("alice", st.ID, "A1")

	_, err := db.DeleteShowtime(st.ID)
	assert.ErrorIs(t, err, store.ErrConflict)

	b, err := db.BookingByID(1)
	require.NoError(t, err)
	require.NoError(t, db.DeleteBooking(b.ID))

	removed, err := db.DeleteShowtime(st.ID)
	require.NoError(t, err)
	assert.Len(t, removed, 40)
	_, ok := db.FindSeat(st.ID, "A1")
	assert.False(t, ok)
	_, err = db.ShowtimeByID(st.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteMovieCascades(t *testing.T) {
	db := store.New()
	m := db.CreateMovie(model.Movie{Title: "Inception"})
	st, _ := db.CreateShowtime(m.ID, time.Now(), "Hall 1")

	db.AppendBooking("alice", st.ID, "A1")
	_, err := db.DeleteMovie(m.ID)
	assert.ErrorIs(t, err, store.ErrConflict)

	require.NoError(t, db.DeleteBooking(1))
	removed, err := db.DeleteMovie(m.ID)
	require.NoError(t, err)
	assert.Len(t, removed, 40)
	_, err = db.MovieByID(m.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, db.ShowtimesByMovie(m.ID))
}

func TestMoviePatchAndGenreFilter(t *testing.T) {
	db := store.New()
	db.CreateMovie(model.Movie{Title: "Inception", Genre: "Sci-Fi"})
	db.CreateMovie(model.Movie{Title: "John Wick", Genre: "Action"})

	assert.Len(t, db.Movies(""), 2)
	scifi := db.Movies("Sci-Fi")
	require.Len(t, scifi, 1)
	assert.Equal(t, "Inception", scifi[0].Title)

	title := "Inception (Remastered)"
	updated, err := db.UpdateMovie(scifi[0].ID, store.MoviePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "Sci-Fi", updated.Genre, "untouched fields survive a patch")
}

func TestUsersFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	db := store.New()
	_, err := db.CreateUser("alice@example.com", "Alice", "$2a$10$hash")
	require.NoError(t, err)
	require.NoError(t, db.SaveUsersFile(dir))

	// A fresh store picks the persisted account back up.
	db2 := store.New()
	require.NoError(t, db2.LoadUsersFile(dir))
	u, err := db2.UserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)

	// Seeded accounts with the same email win over the file.
	db3 := store.New()
	_, err = db3.CreateUser("alice@example.com", "Seeded", "other")
	require.NoError(t, err)
	require.NoError(t, db3.LoadUsersFile(dir))
	u, err = db3.UserByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Seeded", u.Name)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := store.New()
	_, err := db.CreateUser("alice@example.com", "", "hash")
	require.NoError(t, err)
	_, err = db.CreateUser("alice@example.com", "", "hash")
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

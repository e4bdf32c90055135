package store

import (
	"fmt"
	"time"

	"github.com/HotaroAce/CineXerve/internal/model"
	"github.com/HotaroAce/CineXerve/internal/reservation"
	"github.com/HotaroAce/CineXerve/internal/utils"
)

// AdminEmail is the account seeded for the admin dashboard.
const AdminEmail = "admin@cinexerve.local"

const adminPassword = "admin123"

var seedMovies = []model.Movie{
	{Title: "Moana 2", Genre: "Animation", Duration: 105, Description: "Animated adventure", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Deadpool and Wolverine", Genre: "Action", Duration: 125, Description: "Superhero action", Rating: "R-16", Formats: []string{"2D", "IMAX"}},
	{Title: "Freakier  Friday", Genre: "Comedy", Duration: 110, Description: "Body-swap comedy", Rating: "PG-13", Formats: []string{"2D"}},
	{Title: "Thunderbolts", Genre: "Action", Duration: 122, Description: "Marvel ensemble", Rating: "PG-13", Formats: []string{"2D", "IMAX"}},
	{Title: "The Little Mermaid", Genre: "Fantasy", Duration: 120, Description: "Underwater tale", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Elemental", Genre: "Animation", Duration: 102, Description: "Elements collide", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Haunted Mansion", Genre: "Horror", Duration: 100, Description: "Spooky fun", Rating: "PG-13", Formats: []string{"2D"}},
	{Title: "Snow White", Genre: "Fantasy", Duration: 95, Description: "Classic fairy tale", Rating: "PG", Formats: []string{"2D"}},
	{Title: "The Fantastic Four First Steps", Genre: "Sci-Fi", Duration: 118, Description: "Heroic origins", Rating: "PG-13", Formats: []string{"2D", "IMAX"}},
	{Title: "Elio", Genre: "Animation", Duration: 98, Description: "Out-of-this-world kid", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Lilo and Stitch", Genre: "Animation", Duration: 92, Description: "Ohana means family", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Tron Ares", Genre: "Sci-Fi", Duration: 130, Description: "Digital frontier", Rating: "PG-13", Formats: []string{"2D", "IMAX"}},
	{Title: "A Goofy Movie", Genre: "Animation", Duration: 90, Description: "Father-son road trip", Rating: "G", Formats: []string{"2D"}},
	{Title: "Hoppers", Genre: "Animation", Duration: 88, Description: "Adventurous critters", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Snowwhite", Genre: "Fantasy", Duration: 95, Description: "Classic fairy tale", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Wish", Genre: "Animation", Duration: 100, Description: "Magical wish", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Spider Man Homecoming", Genre: "Action", Duration: 133, Description: "Friendly neighborhood hero", Rating: "PG-13", Formats: []string{"2D", "IMAX"}},
	{Title: "The Notebook", Genre: "Romance", Duration: 123, Description: "Timeless love story", Rating: "PG-13", Formats: []string{"2D"}},
	{Title: "How to Train Your Dragon", Genre: "Animation", Duration: 98, Description: "Dragon friendship", Rating: "PG", Formats: []string{"2D"}},
	{Title: "Inception", Genre: "Sci-Fi", Duration: 148, Description: "Mind-bending heist", Rating: "PG-13", Formats: []string{"2D", "IMAX"}},
	{Title: "Jumanji", Genre: "Adventure", Duration: 119, Description: "Game world adventure", Rating: "PG-13", Formats: []string{"2D"}},
	{Title: "John Wick", Genre: "Action", Duration: 101, Description: "Relentless hitman", Rating: "R-16", Formats: []string{"2D"}},
	{Title: "Interstellar", Genre: "Sci-Fi", Duration: 169, Description: "Space epic", Rating: "PG-13", Formats: []string{"2D", "IMAX"}},
	{Title: "Train to Busan", Genre: "Horror", Duration: 118, Description: "Zombie thriller", Rating: "R-16", Formats: []string{"2D"}},
	{Title: "Goblin", Genre: "Fantasy", Duration: 120, Description: "Mystical tale", Rating: "PG-13", Formats: []string{"2D"}},
	{Title: "The First Omen", Genre: "Horror", Duration: 140, Description: "Mysterious supernatural horror", Rating: "R-16", Formats: []string{"2D"}},
	{Title: "Zootopia 2", Genre: "Animation", Duration: 168, Description: "Zootopia adventures", Rating: "PG-13", Formats: []string{"2D"}},
}

// Seed populates the store with the launch catalog: every seed movie
// gets one showtime tomorrow in Hall 1 with a full grid of available
// seats, each mirrored into the seat-status index, plus the admin
// account.
func Seed(s *Store, index *reservation.SeatMap, bcryptCost int) error {
	showAt := time.Now().Add(24 * time.Hour)
	for _, m := range seedMovies {
		movie := s.CreateMovie(m)
		_, seats := s.CreateShowtime(movie.ID, showAt, "Hall 1")
		for _, seat := range seats {
			index.Set(seat.ShowtimeID, seat.SeatNumber, seat.Status)
		}
	}
	hash, err := utils.HashPassword(adminPassword, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if _, err := s.CreateUser(AdminEmail, "Admin", hash); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}

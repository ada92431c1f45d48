package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinebook/internal/catalog"
	"cinebook/internal/shared/config"
	"cinebook/internal/shared/database"

	"github.com/joho/godotenv"
)

// Seeder loads a demo catalog so the booking flow can be exercised
// against a fresh database.
type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("Starting CineBook database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}
	if err := seeder.SeedShows(context.Background()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	fmt.Println("Seeding completed successfully")
}

// SeedShows inserts a spread of screenings: some imminent, some days out,
// some in the evening peak window, so dynamic pricing has something to bite on.
func (s *Seeder) SeedShows(ctx context.Context) error {
	repo := catalog.NewRepository(s.db.GetPostgreSQL())
	now := time.Now()

	shows := []catalog.Show{
		{
			Title:         "Interstellar",
			Theater:       "Screen 1",
			StartTime:     now.Add(45 * time.Minute),
			PriceSilver:   150,
			PriceGold:     250,
			PricePlatinum: 450,
			SeatsSilver:   60,
			SeatsGold:     30,
			SeatsPlatinum: 10,
		},
		{
			Title:         "Dune: Part Two",
			Theater:       "Screen 2",
			StartTime:     now.Add(5 * time.Hour),
			PriceSilver:   180,
			PriceGold:     280,
			PricePlatinum: 500,
			SeatsSilver:   80,
			SeatsGold:     40,
			SeatsPlatinum: 12,
		},
		{
			Title:         "The Grand Budapest Hotel",
			Theater:       "Screen 3",
			StartTime:     nextEveningSlot(now),
			PriceSilver:   120,
			PriceGold:     200,
			PricePlatinum: 350,
			SeatsSilver:   50,
			SeatsGold:     25,
			SeatsPlatinum: 8,
		},
		{
			Title:         "Spirited Away",
			Theater:       "Screen 1",
			StartTime:     now.Add(72 * time.Hour),
			PriceSilver:   100,
			PriceGold:     180,
			PricePlatinum: 300,
			SeatsSilver:   60,
			SeatsGold:     30,
			SeatsPlatinum: 10,
		},
	}

	for i := range shows {
		if err := repo.Create(ctx, &shows[i]); err != nil {
			return fmt.Errorf("failed to create show %q: %w", shows[i].Title, err)
		}
		fmt.Printf("Created show: %s at %s (%s)\n",
			shows[i].Title, shows[i].Theater, shows[i].StartTime.Format(time.RFC3339))
	}

	return nil
}

// nextEveningSlot returns tomorrow at 20:00 local time, inside the peak
// pricing window
func nextEveningSlot(now time.Time) time.Time {
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 20, 0, 0, 0, now.Location())
}

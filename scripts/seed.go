package main

import (
	"context"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/lib/pq"

	"github.com/studynest/studyspaces-backend/internal/domain/entities"
	"github.com/studynest/studyspaces-backend/internal/infrastructure/clients/postgres"
	"github.com/studynest/studyspaces-backend/pkg/config"
)

var sampleSpaces = []entities.StudySpace{
	{
		Name:         "Atrium Commons",
		Building:     "Main Library",
		Campus:       "North",
		Description:  "Open collaborative area on the ground floor with natural light.",
		NoiseLevel:   "moderate",
		PrivacyLevel: "open",
		Amenities:    []string{"wifi", "outlets", "whiteboards"},
	},
	{
		Name:         "Quiet Reading Room",
		Building:     "Main Library",
		Campus:       "North",
		Description:  "Silent study hall on the fourth floor, individual desks only.",
		NoiseLevel:   "silent",
		PrivacyLevel: "individual",
		Amenities:    []string{"wifi", "outlets", "desk lamps"},
	},
	{
		Name:         "Engineering Lounge",
		Building:     "Engineering Hall",
		Campus:       "West",
		Description:  "24/7 lounge with group tables near the maker space.",
		NoiseLevel:   "loud",
		PrivacyLevel: "open",
		Amenities:    []string{"wifi", "outlets", "vending machines", "24/7 access"},
	},
	{
		Name:         "Graduate Carrels",
		Building:     "Research Library",
		Campus:       "North",
		Description:  "Reservable enclosed carrels for graduate students.",
		NoiseLevel:   "quiet",
		PrivacyLevel: "enclosed",
		Amenities:    []string{"wifi", "outlets", "lockable storage"},
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				favorites,
				reviews,
				submissions,
				profiles,
				study_spaces
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to truncate tables: %v", err)
		}
	}

	dialect := goqu.Dialect("postgres")
	for _, space := range sampleSpaces {
		query, args, err := dialect.Insert("study_spaces").Rows(goqu.Record{
			"name":          space.Name,
			"building":      space.Building,
			"campus":        space.Campus,
			"description":   space.Description,
			"image_url":     space.ImageURL,
			"noise_level":   space.NoiseLevel,
			"privacy_level": space.PrivacyLevel,
			"amenities":     pq.Array(space.Amenities),
		}).OnConflict(goqu.DoNothing()).ToSQL()
		if err != nil {
			log.Fatalf("Failed to build insert for %q: %v", space.Name, err)
		}
		if _, err := pgClient.DB().ExecContext(ctx, query, args...); err != nil {
			log.Fatalf("Failed to seed %q: %v", space.Name, err)
		}
		log.Printf("Seeded study space %q", space.Name)
	}

	log.Printf("Done: %d study spaces", len(sampleSpaces))
}

// Command seed fills the remote lead store with realistic demo data so
// the dashboard has something to show in development.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/jordanlanch/realtycrm/config"
	"github.com/jordanlanch/realtycrm/pkg/models"
	"github.com/jordanlanch/realtycrm/pkg/reference"
	"github.com/jordanlanch/realtycrm/pkg/store"
)

var streetSuffixes = []string{"St W", "Ave", "Blvd", "Rd", "Crescent", "Lane"}

func main() {
	count := flag.Int("count", 50, "number of leads to create")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	if *seed != 0 {
		gofakeit.Seed(*seed)
		rand.Seed(*seed)
	}

	cfg := config.Load()
	client := store.NewClient(cfg.StoreBaseURL, time.Duration(cfg.StoreTimeoutSeconds)*time.Second)

	log.Printf("🌱 Seeding %d leads into %s", *count, cfg.StoreBaseURL)

	created := 0
	for i := 0; i < *count; i++ {
		lead := generateLead()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, err := client.SaveLead(ctx, lead)
		cancel()
		if err != nil {
			log.Printf("⚠️  Failed to create lead %q: %v", lead.Name, err)
			continue
		}
		created++
	}

	log.Printf("✅ Seeded %d/%d leads", created, *count)
}

func generateLead() models.Lead {
	created := gofakeit.DateRange(
		time.Now().AddDate(-1, 0, 0),
		time.Now(),
	)

	lead := models.Lead{
		Name:       gofakeit.Name(),
		Email:      gofakeit.Email(),
		Phone:      fmt.Sprintf("+1416555%04d", gofakeit.Number(0, 9999)),
		Property:   property(),
		Status:     models.Status(pick(reference.Statuses)),
		Type:       models.LeadType(pick(reference.LeadTypes)),
		Source:     models.Source(pick(reference.Sources)),
		Response:   models.Response(pick(reference.Responses)),
		ClientType: models.ClientType(pick(reference.ClientTypes)),
		Location:   models.Location(pick(reference.Locations)),
		Conversion: pick(reference.Conversions),
		Age:        gofakeit.Number(24, 75),
		Gender:     gofakeit.Gender(),
		Language:   pick(reference.Languages),
		Religion:   pick(reference.Religions),
		AssignedTo: models.Unassigned,
		CreatedAt:  created,
	}

	lead.PropertyPreferences = models.PropertyPreferences{
		Budget: models.BudgetRange{
			Min: gofakeit.Number(4, 8) * 100000,
			Max: gofakeit.Number(9, 20) * 100000,
		},
		PropertyTypes: []string{gofakeit.RandomString([]string{"Condo", "Detached", "Semi-Detached", "Townhouse"})},
		Bedrooms:      gofakeit.Number(1, 5),
		Bathrooms:     gofakeit.Number(1, 4),
		Locations: []models.Location{
			models.Location(pick(reference.Locations)),
			models.Location(pick(reference.Locations)),
		},
		Features: []string{gofakeit.RandomString([]string{"parking", "balcony", "backyard", "finished basement", "lake view"})},
	}

	// Roughly a third of seeded leads have closed business already.
	if gofakeit.Number(0, 2) == 0 {
		closedAt := gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now())
		lead.SalesHistory = models.SalesHistory{
			ClosedSales:    gofakeit.Number(1, 6),
			LastClosedDate: &closedAt,
		}
	}

	if gofakeit.Number(0, 1) == 0 {
		lead.CallHistory = []models.CallEntry{{
			Date:     gofakeit.DateRange(created, time.Now()),
			Duration: gofakeit.Number(2, 40),
			Points: []models.CallPoint{{
				Text:      gofakeit.Sentence(6),
				Timestamp: time.Now().UTC(),
			}},
		}}
	}

	return lead
}

func property() string {
	return fmt.Sprintf("%d %s %s",
		gofakeit.Number(1, 400),
		gofakeit.LastName(),
		streetSuffixes[rand.Intn(len(streetSuffixes))])
}

func pick(options []reference.Option) string {
	return options[rand.Intn(len(options))].Value
}

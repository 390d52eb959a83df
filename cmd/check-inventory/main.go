package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"bloodbank-data/internal/config"
	"bloodbank-data/internal/database"
	"bloodbank-data/internal/repository"
)

// Diagnostic: dump the storage_house ledger and flag blood groups whose
// total is below the threshold. Handy when supply numbers look off.
func main() {
	threshold := flag.Int("threshold", 10, "flag groups with fewer total units than this")
	flag.Parse()

	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repo := repository.NewPostgresInventoryRepository(db)

	lots, err := repo.ListLots(ctx)
	if err != nil {
		log.Fatalf("Failed to list lots: %v", err)
	}
	fmt.Printf("storage_house: %d lots\n", len(lots))
	for _, lot := range lots {
		fmt.Printf("  %-20s %-4s %5d\n", lot.StorageID, lot.BloodGroup, lot.Quantity)
	}

	summary, err := repo.Availability(ctx)
	if err != nil {
		log.Fatalf("Failed to read availability: %v", err)
	}
	fmt.Println("\navailability:")
	for _, g := range summary {
		marker := ""
		if g.TotalUnits < *threshold {
			marker = "  <-- LOW"
		}
		fmt.Printf("  %-4s %5d%s\n", g.BloodGroup, g.TotalUnits, marker)
	}
}

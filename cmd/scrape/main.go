package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/limaJavier/semplanner/pkg/scrape"
	"github.com/limaJavier/semplanner/pkg/store"
)

func main() {
	// Define arguments
	outFilePathPtr := flag.String("out", "catalog.json", "Path to the file where the scraped catalog will be written")
	databasePtr := flag.Bool("db", false, "Also store the scraped catalog in PostgreSQL")
	connectionStringPtr := flag.String("connection", "", "PostgreSQL connection string; if empty, DATABASE_CONNECTION_STRING is used")
	workersPtr := flag.Int("workers", 8, "Number of course pages fetched simultaneously")
	listingUrlPtr := flag.String("listing", scrape.DefaultListingUrl, "URL of the course listing, to which the page number is appended")
	courseUrlPtr := flag.String("course", scrape.DefaultCourseUrl, "URL of the course preview, to which the course preview id is appended")
	flag.Parse()

	// Validate arguments
	if *workersPtr <= 0 {
		log.Fatalf("workers must be positive: %v", *workersPtr)
	} else if *outFilePathPtr == "" && !*databasePtr {
		log.Fatal("an output file or a database must be specified")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Scrape catalog
	scraper := scrape.NewScraper()
	scraper.ListingUrl = *listingUrlPtr
	scraper.CourseUrl = *courseUrlPtr
	scraper.Workers = *workersPtr

	rawCatalog, err := scraper.Catalog(ctx)
	if err != nil {
		log.Fatalf("cannot scrape catalog: %v", err)
	}
	log.Printf("scraped %v courses", len(rawCatalog.Courses))

	// Write catalog
	if *outFilePathPtr != "" {
		catalogJson, err := json.MarshalIndent(rawCatalog, "", "  ")
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
		if err := os.WriteFile(*outFilePathPtr, catalogJson, 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	// Store catalog
	if *databasePtr {
		database, err := store.Connect(ctx, *connectionStringPtr)
		if err != nil {
			log.Fatal(err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			log.Fatal(err)
		}
		if err := database.InsertCourses(ctx, rawCatalog.Courses); err != nil {
			log.Fatal(err)
		}
	}
}

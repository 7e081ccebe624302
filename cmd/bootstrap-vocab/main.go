package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/catalog"
	"github.com/VicRabbit89/Mandarin-Chatbot1/internal/vocab"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to coach.db")
	catalogPath := flag.String("catalog", "", "optional catalog YAML (default: built-in)")
	weight := flag.Float64("weight", 0.1, "initial edge weight")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: bootstrap-vocab --db coach.db [--catalog units.yaml] [--weight w]")
		os.Exit(2)
	}

	if err := run(*dbPath, *catalogPath, *weight); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, catalogPath string, weight float64) error {
	cat := catalog.DefaultCatalog()
	if catalogPath != "" {
		loaded, err := catalog.LoadCatalog(catalogPath)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
		cat = loaded
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("pragma: %w", err)
	}

	store, err := vocab.NewAssocStore(db)
	if err != nil {
		return err
	}

	fmt.Println("=== Vocab Association Bootstrap ===")
	total := 0
	for _, u := range cat.Units() {
		n, err := vocab.SeedStore(store, u, weight)
		if err != nil {
			return fmt.Errorf("seed %s: %w", u.ID, err)
		}
		fmt.Printf("  %-8s %-22s %d edges\n", u.ID, u.Title, n)
		total += n
	}
	fmt.Printf("Done. %d edges total.\n", total)
	return nil
}

// #endregion main

// Command seed loads the initial genre list and a handful of sample books
// into whichever store backend the configuration selects. Running it twice
// is safe: genres upsert and existing books are left alone.
package main

import (
	"errors"
	"log"
	"sort"

	"github.com/joho/godotenv"

	"github.com/pviana/bookshelf/internal/config"
	"github.com/pviana/bookshelf/internal/entities"
	"github.com/pviana/bookshelf/internal/entrypoint"
	"github.com/pviana/bookshelf/internal/store"
)

var initialGenres = []string{
	"Science Fiction",
	"Fantasy",
	"Romance",
	"Biography",
	"History",
	"Programming",
	"Psychology",
	"Philosophy",
}

var initialBooks = []entities.Book{
	{
		ID:        "b1",
		Title:     "The Road",
		Author:    "Cormac McCarthy",
		GenreName: "Science Fiction",
		Year:      2006,
		Pages:     300,
		Rating:    5,
		Synopsis:  "A father and his son walk a devastated, cold, post-apocalyptic landscape, fighting to survive and to stay human.",
		Notes:     "Bleak and moving; hope in the middle of despair.",
		Status:    entities.StatusRead,
	},
	{
		ID:        "b2",
		Title:     "Clean Code",
		Author:    "Robert C. Martin",
		GenreName: "Programming",
		Year:      2008,
		Pages:     462,
		Rating:    4,
		Synopsis:  "Even bad code can function, but code that is not clean can bring a project down. A handbook for writing elegant, effective software.",
		Status:    entities.StatusReading,
	},
	{
		ID:        "b3",
		Title:     "One Hundred Years of Solitude",
		Author:    "Gabriel García Márquez",
		GenreName: "Magical Realism",
		Year:      1967,
		Pages:     417,
		Rating:    5,
		Synopsis:  "The story of the Buendía family in the village of Macondo, a masterpiece weaving fantasy into historical reality.",
		Status:    entities.StatusWantToRead,
	},
	{
		ID:        "b4",
		Title:     "Sapiens: A Brief History of Humankind",
		Author:    "Yuval Noah Harari",
		GenreName: "History",
		Year:      2011,
		Pages:     498,
		Rating:    4,
		Synopsis:  "A sweeping account of humanity from the Stone Age to the present, asking how Homo sapiens came to dominate the planet.",
		Status:    entities.StatusPaused,
	},
	{
		ID:        "b5",
		Title:     "The Fellowship of the Ring",
		Author:    "J.R.R. Tolkien",
		GenreName: "Fantasy",
		Year:      1954,
		Pages:     423,
		Rating:    5,
		Synopsis:  "The start of the epic journey to destroy the One Ring, gathering the Fellowship against the forces of darkness.",
		Status:    entities.StatusRead,
	},
}

func main() {
	_ = godotenv.Load()

	cfg := config.NewConfig()
	entityStore, closeStore, err := entrypoint.NewStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer closeStore()

	if err := seed(entityStore); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func seed(s store.Store) error {
	// Genres referenced by the books join the base list. Names go in as
	// written; only user-typed additions get case-normalized.
	unique := make(map[string]struct{}, len(initialGenres))
	for _, name := range initialGenres {
		unique[name] = struct{}{}
	}
	for _, book := range initialBooks {
		unique[book.GenreName] = struct{}{}
	}

	genres := make([]string, 0, len(unique))
	for name := range unique {
		genres = append(genres, name)
	}
	sort.Strings(genres)

	for _, name := range genres {
		if err := s.UpsertGenre(name); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d genres", len(genres))

	created := 0
	for i := range initialBooks {
		book := initialBooks[i]
		if _, err := s.FindBook(book.ID); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if _, err := s.InsertBook(&book); err != nil {
			return err
		}
		created++
	}
	log.Printf("Seeded %d books (%d already present)", created, len(initialBooks)-created)

	return nil
}

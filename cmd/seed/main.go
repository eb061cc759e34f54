package main

import (
	"context"
	"log"

	"libreria/internal/author"
	"libreria/internal/book"
	"libreria/internal/config"
	"libreria/internal/editorial"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeds a handful of authors, editorials and books through the services,
// so the data goes through the same validation and snapshotting as API
// writes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	authorService := author.NewService(author.NewPostgresRepo(pool, cfg.QueryTimeout))
	editorialService := editorial.NewService(editorial.NewPostgresRepo(pool, cfg.QueryTimeout))
	bookService := book.NewService(book.NewPostgresRepo(pool, cfg.QueryTimeout), authorService, editorialService)

	authors := []author.Input{
		{FirstName: "Gabriel", LastName: "García Márquez", DNI: "12345678", Nationality: "Colombiana"},
		{FirstName: "Julio", LastName: "Cortázar", DNI: "23456789", Nationality: "Argentina"},
		{FirstName: "Jorge Luis", LastName: "Borges", DNI: "34567890", Nationality: "Argentina"},
	}
	authorIDs := make([]string, 0, len(authors))
	for _, in := range authors {
		a, err := authorService.Create(ctx, in)
		if err != nil {
			log.Fatalf("Failed to seed author %s %s: %v", in.FirstName, in.LastName, err)
		}
		authorIDs = append(authorIDs, a.ID)
	}

	editorials := []editorial.Input{
		{Name: "Editorial Sudamericana", Address: "Humberto I 545, Buenos Aires", CUIT: "30-12345678-9"},
		{Name: "Emecé Editores", Address: "Av. Independencia 1668, Buenos Aires", CUIT: "30-87654321-2"},
	}
	editorialIDs := make([]string, 0, len(editorials))
	for _, in := range editorials {
		e, err := editorialService.Create(ctx, in)
		if err != nil {
			log.Fatalf("Failed to seed editorial %s: %v", in.Name, err)
		}
		editorialIDs = append(editorialIDs, e.ID)
	}

	books := []book.Input{
		{
			AuthorIDs:   []string{authorIDs[0]},
			PublisherID: editorialIDs[0],
			Title:       "Cien años de soledad",
			Genre:       "Realismo mágico",
			Price:       19.99,
			ReleaseDate: "30/05/1967",
			Description: "La historia de la familia Buendía en Macondo.",
		},
		{
			AuthorIDs:   []string{authorIDs[1]},
			PublisherID: editorialIDs[0],
			Title:       "Rayuela",
			Genre:       "Novela",
			Price:       15.50,
			ReleaseDate: "28/06/1963",
			Description: "Una novela que puede leerse de múltiples maneras.",
		},
		{
			AuthorIDs:   []string{authorIDs[2]},
			PublisherID: editorialIDs[1],
			Title:       "Ficciones",
			Genre:       "Cuentos",
			Price:       12.00,
			ReleaseDate: "04/12/1944",
			Description: "Colección de cuentos fantásticos.",
		},
	}
	for _, in := range books {
		if _, err := bookService.Create(ctx, in); err != nil {
			log.Fatalf("Failed to seed book %s: %v", in.Title, err)
		}
	}

	log.Printf("Seeded %d authors, %d editorials, %d books", len(authors), len(editorials), len(books))
}

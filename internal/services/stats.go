package services

import (
	"math"

	"github.com/pviana/bookshelf/internal/entities"
)

// ReadingStats are the aggregate counters shown on the dashboard.
type ReadingStats struct {
	TotalBooks      int     `json:"total_books"`
	Reading         int     `json:"reading"`
	Finished        int     `json:"finished"`
	WantToRead      int     `json:"want_to_read"`
	Paused          int     `json:"paused"`
	Abandoned       int     `json:"abandoned"`
	PagesRead       int     `json:"pages_read"`
	PercentFinished float64 `json:"percent_finished"`
}

// ComputeStats derives the reading statistics from one pass over the
// books. A READ book counts all of its pages as read.
func ComputeStats(books []entities.Book) ReadingStats {
	stats := ReadingStats{TotalBooks: len(books)}
	for _, book := range books {
		switch book.Status {
		case entities.StatusReading:
			stats.Reading++
		case entities.StatusRead:
			stats.Finished++
			stats.PagesRead += book.Pages
		case entities.StatusWantToRead:
			stats.WantToRead++
		case entities.StatusPaused:
			stats.Paused++
		case entities.StatusAbandoned:
			stats.Abandoned++
		}
	}
	if stats.TotalBooks > 0 {
		percent := float64(stats.Finished) / float64(stats.TotalBooks) * 100
		stats.PercentFinished = math.Round(percent*10) / 10
	}
	return stats
}

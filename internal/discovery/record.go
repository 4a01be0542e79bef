package discovery

import "math"

const (
	msPerMinute = 60_000
	msPerHour   = 3_600_000
)

// newAudiobookRecord maps a raw work record (plus its optional chapter
// sub-record) into the canonical shape. Duration comes from whichever
// runtime field is present, most direct source first: work minutes, work
// seconds, chapter milliseconds, chapter seconds.
func newAudiobookRecord(w *WorkData, ch *ChapterData) *AudiobookRecord {
	rec := &AudiobookRecord{
		HasMatch:    true,
		AuthorFound: true,
		ExternalID:  w.ID,
		Title:       w.Title,
		Authors:     w.Authors,
		Narrators:   w.Narrators,
		Genres:      w.Genres,
		Publisher:   w.Publisher,
		Description: w.Description,
		Summary:     w.Summary,
		Rating:      w.Rating,
		ReleaseDate: w.ReleaseDate,
		ISBN:        w.ISBN,
		Language:    w.Language,
		CoverURL:    w.Image,
	}

	if ms := durationMs(w, ch); ms > 0 {
		rec.TotalDurationMs = ms
		rec.TotalDurationMinutes = ms / msPerMinute
		rec.TotalDurationHours = math.Round(float64(ms)/msPerHour*10) / 10
	}
	if ch != nil {
		rec.ChapterCount = len(ch.Titles)
	}
	return rec
}

func durationMs(w *WorkData, ch *ChapterData) int64 {
	switch {
	case w.RuntimeMinutes > 0:
		return int64(w.RuntimeMinutes) * msPerMinute
	case w.RuntimeSeconds > 0:
		return int64(w.RuntimeSeconds) * 1000
	case ch != nil && ch.RuntimeMs > 0:
		return ch.RuntimeMs
	case ch != nil && ch.RuntimeSeconds > 0:
		return ch.RuntimeSeconds * 1000
	default:
		return 0
	}
}

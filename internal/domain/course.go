package domain

// Course is a row of the courses table. Nullable columns are pointers so
// they serialize as JSON null.
type Course struct {
	ID            int64    `db:"id" json:"id"`
	Title         string   `db:"title" json:"title"`
	Description   string   `db:"description" json:"description"`
	ThumbnailURL  *string  `db:"thumbnail_url" json:"thumbnail_url"`
	Price         float64  `db:"price" json:"price"`
	CategoryID    *int64   `db:"category_id" json:"category_id"`
	InstructorID  *int64   `db:"instructor_id" json:"instructor_id"`
	AverageRating *float64 `db:"average_rating" json:"average_rating"`
	TotalRatings  *int64   `db:"total_ratings" json:"total_ratings"`
	IsPublished   *bool    `db:"is_published" json:"is_published"`
}

// CourseInput carries the nine mutable columns of a create or update.
// A nil field is written as NULL; there is no merge with the stored row.
type CourseInput struct {
	Title         *string  `json:"title" example:"JavaScript Fundamentals"`
	Description   *string  `json:"description" example:"Belajar dasar-dasar JavaScript"`
	ThumbnailURL  *string  `json:"thumbnail_url" example:"https://example.com/thumbnail.jpg"`
	Price         *float64 `json:"price" example:"199000"`
	CategoryID    *int64   `json:"category_id" example:"1"`
	InstructorID  *int64   `json:"instructor_id" example:"1"`
	AverageRating *float64 `json:"average_rating" example:"4.5"`
	TotalRatings  *int64   `json:"total_ratings" example:"100"`
	IsPublished   *bool    `json:"is_published" example:"true"`
}

// Args returns the columns in the positional order used by INSERT and UPDATE.
func (in CourseInput) Args() []any {
	return []any{
		deref(in.Title),
		deref(in.Description),
		deref(in.ThumbnailURL),
		deref(in.Price),
		deref(in.CategoryID),
		deref(in.InstructorID),
		deref(in.AverageRating),
		deref(in.TotalRatings),
		deref(in.IsPublished),
	}
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

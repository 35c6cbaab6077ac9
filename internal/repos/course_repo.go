package repos

import (
	"context"

	"videobelajar/internal/domain"
)

const courseColumns = `
    id, title, description, thumbnail_url, price, category_id,
    instructor_id, average_rating, total_ratings, is_published`

type CourseRepo struct{ db *DB }

func NewCourseRepo(db *DB) *CourseRepo { return &CourseRepo{db: db} }

// ListAll returns every course in insertion order. An empty table gives an
// empty, non-nil slice.
func (r *CourseRepo) ListAll(ctx context.Context) ([]domain.Course, error) {
	out := []domain.Course{}
	err := r.db.Select(ctx, &out, `
  SELECT`+courseColumns+`
  FROM courses
  ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID looks a course up by id. The id is bound as given; a value that
// matches nothing yields ErrNoRows.
func (r *CourseRepo) GetByID(ctx context.Context, id string) (domain.Course, error) {
	var c domain.Course
	err := r.db.Get(ctx, &c, `
  SELECT`+courseColumns+`
  FROM courses
  WHERE id = ?
`, id)
	return c, err
}

// Create inserts a course and returns the id the engine assigned.
func (r *CourseRepo) Create(ctx context.Context, in domain.CourseInput) (int64, error) {
	res, err := r.db.Exec(ctx, `
  INSERT INTO courses
    (title, description, thumbnail_url, price, category_id, instructor_id, average_rating, total_ratings, is_published)
  VALUES
    (?,     ?,           ?,             ?,     ?,           ?,             ?,              ?,             ?)
`, in.Args()...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertID, nil
}

// Update overwrites all nine mutable columns and returns the affected count.
func (r *CourseRepo) Update(ctx context.Context, id string, in domain.CourseInput) (int64, error) {
	args := append(in.Args(), id)
	res, err := r.db.Exec(ctx, `
  UPDATE courses
  SET title = ?, description = ?, thumbnail_url = ?, price = ?, category_id = ?,
      instructor_id = ?, average_rating = ?, total_ratings = ?, is_published = ?
  WHERE id = ?
`, args...)
	if err != nil {
		return 0, err
	}
	return res.Affected, nil
}

// Delete hard-deletes a course and returns the affected count.
func (r *CourseRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.Affected, nil
}

package services_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"videobelajar/internal/domain"
	"videobelajar/internal/repos"
	"videobelajar/internal/services"
)

func memdb(t *testing.T) *repos.DB {
	t.Helper()
	db, err := repos.OpenDB(repos.Options{DSN: ":memory:", Bootstrap: true})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func str(s string) *string { return &s }
func num(f float64) *float64 { return &f }

// failingStore simulates an engine that rejects every statement.
type failingStore struct{ err error }

func (f failingStore) ListAll(context.Context) ([]domain.Course, error) { return nil, f.err }
func (f failingStore) GetByID(context.Context, string) (domain.Course, error) {
	return domain.Course{}, f.err
}
func (f failingStore) Create(context.Context, domain.CourseInput) (int64, error) { return 0, f.err }
func (f failingStore) Update(context.Context, string, domain.CourseInput) (int64, error) {
	return 0, f.err
}
func (f failingStore) Delete(context.Context, string) (int64, error) { return 0, f.err }

func TestCourseService_NotFoundOutcomes(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCourseService(repos.NewCourseRepo(memdb(t)))

	if _, err := svc.Get(ctx, "999999"); !errors.Is(err, services.ErrCourseNotFound) {
		t.Fatalf("get: want ErrCourseNotFound, got %v", err)
	}
	in := domain.CourseInput{Title: str("t"), Description: str("d"), Price: num(1)}
	if err := svc.Update(ctx, "999999", in); !errors.Is(err, services.ErrCourseNotFound) {
		t.Fatalf("update: want ErrCourseNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, "999999"); !errors.Is(err, services.ErrCourseNotFound) {
		t.Fatalf("delete: want ErrCourseNotFound, got %v", err)
	}
}

func TestCourseService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCourseService(repos.NewCourseRepo(memdb(t)))

	id, err := svc.Create(ctx, domain.CourseInput{Title: str("Go"), Description: str("Basics"), Price: num(100)})
	if err != nil {
		t.Fatal(err)
	}
	sid := strconv.FormatInt(id, 10)

	if err := svc.Update(ctx, sid, domain.CourseInput{Title: str("Go 2"), Description: str("More"), Price: num(150)}); err != nil {
		t.Fatal(err)
	}
	c, err := svc.Get(ctx, sid)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "Go 2" || c.Price != 150 {
		t.Fatalf("unexpected %+v", c)
	}

	if err := svc.Delete(ctx, sid); err != nil {
		t.Fatal(err)
	}
	if err := svc.Delete(ctx, sid); !errors.Is(err, services.ErrCourseNotFound) {
		t.Fatalf("second delete: want ErrCourseNotFound, got %v", err)
	}
	list, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("want empty list, got %d", len(list))
	}
}

func TestCourseService_StorageErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	storeErr := &repos.StorageError{Op: "exec", Err: errors.New("connection refused")}
	svc := services.NewCourseService(failingStore{err: storeErr})

	checks := map[string]error{}
	_, checks["list"] = svc.List(ctx)
	_, checks["get"] = svc.Get(ctx, "1")
	_, checks["create"] = svc.Create(ctx, domain.CourseInput{})
	checks["update"] = svc.Update(ctx, "1", domain.CourseInput{})
	checks["delete"] = svc.Delete(ctx, "1")

	for op, err := range checks {
		var se *repos.StorageError
		if !errors.As(err, &se) {
			t.Fatalf("%s: want StorageError, got %v", op, err)
		}
		if errors.Is(err, services.ErrCourseNotFound) {
			t.Fatalf("%s: storage error must not look like not-found", op)
		}
	}
}

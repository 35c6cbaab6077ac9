package handlers

import (
	"videobelajar/internal/config"
	"videobelajar/internal/repos"
	"videobelajar/internal/services"
)

type Deps struct {
	CourseHandler *CourseHandler
	DocsHandler   *DocsHandler
	HealthHandler *HealthHandler
}

func NewDeps(db *repos.DB, cfg config.Config) *Deps {
	courseRepo := repos.NewCourseRepo(db)
	courseSvc := services.NewCourseService(courseRepo)

	return &Deps{
		CourseHandler: &CourseHandler{Courses: courseSvc, HideStorageErrors: cfg.HideStorageErrors},
		DocsHandler:   &DocsHandler{},
		HealthHandler: &HealthHandler{DB: db},
	}
}

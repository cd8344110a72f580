package http

import (
	"github.com/MKhiriev/go-student-desk/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/admin/login", h.loginAdmin)
		r.Post("/admin/create", h.createAdmin)
		r.Post("/student/login", h.loginStudent)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RoleAdmin))

		r.Post("/students", h.createStudent)
		r.Get("/students", h.listStudents)
		r.Get("/students/{studentID}", h.getStudent)
		r.Put("/students/{studentID}", h.updateStudent)
		r.Delete("/students/{studentID}", h.deleteStudent)

		r.Post("/courses", h.createCourse)
		r.Get("/courses", h.listCourses)
		r.Post("/enroll", h.enroll)
		r.Get("/students/{studentID}/courses", h.listCoursesOfStudent)

		r.Post("/grades", h.assignGrade)
		r.Get("/students/{studentID}/grades", h.listGradesOfStudent)

		r.Post("/attendance", h.markAttendance)
		r.Get("/students/{studentID}/attendance", h.listAttendanceOfStudent)
	})

	// student-only routes; identity comes from the token subject, never
	// from a path parameter
	router.Group(func(r chi.Router) {
		r.Use(h.auth(models.RoleStudent))

		r.Get("/me/grades", h.myGrades)
		r.Get("/me/attendance", h.myAttendance)
	})

	return router
}

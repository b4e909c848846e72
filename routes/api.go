package routes

import (
	"net/http"
	"time"

	"github.com/AndradeRafael41/EducaGamfy/controllers"
	"github.com/AndradeRafael41/EducaGamfy/controllers/auth"
	"github.com/AndradeRafael41/EducaGamfy/controllers/students"
	"github.com/AndradeRafael41/EducaGamfy/controllers/teachers"
	"github.com/AndradeRafael41/EducaGamfy/middleware"

	"github.com/gorilla/mux"
)

// APIRoutes registers every endpoint on the versioned subrouter.
func APIRoutes(api *mux.Router) {
	// Rate limiter login/register: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// Rate limiter session: 120 read, 60 write per user per minute
	userLimiter := middleware.NewUserRateLimiter(120, 60, 60)
	// Rate limiter for unauthenticated reads: 300 per IP per 5 minutes
	publicLimiter := middleware.NewIPRateLimiter(300, 5*time.Minute)

	// Auth must run before the user limiter, which keys on the context user id.
	protected := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(userLimiter.Middleware(http.HandlerFunc(h)))
	}
	teacherOnly := func(h http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(middleware.RequireTeacher(userLimiter.Middleware(http.HandlerFunc(h))))
	}
	public := func(h http.HandlerFunc) http.Handler {
		return publicLimiter.Middleware(http.HandlerFunc(h))
	}

	// Register & Login
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", protected(auth.LogoutHandler)).Methods(http.MethodPost)

	// Classes
	api.Handle("/classes", public(controllers.ListClassesHandler)).Methods(http.MethodGet)
	api.Handle("/class", public(controllers.GetClassHandler)).Methods(http.MethodGet)

	// Students
	api.Handle("/students", protected(students.GetStudentHandler)).Methods(http.MethodGet)
	api.Handle("/students/badges", protected(students.ListBadgesHandler)).Methods(http.MethodGet)
	api.Handle("/students/notifications", protected(students.ListNotificationsHandler)).Methods(http.MethodGet)
	api.Handle("/students/notifications/{id:[0-9]+}/read", protected(students.MarkNotificationReadHandler)).Methods(http.MethodPut)

	// Tasks
	api.Handle("/tasks", teacherOnly(controllers.CreateTaskHandler)).Methods(http.MethodPost)
	api.Handle("/tasks/student", public(controllers.StudentTasksHandler)).Methods(http.MethodGet)
	api.Handle("/tasks/teacher", public(controllers.TeacherClassTasksHandler)).Methods(http.MethodGet)

	// Teacher task board + grading
	api.Handle("/teacher/tasks", teacherOnly(teachers.TeacherTasksHandler)).Methods(http.MethodGet)
	api.Handle("/teacher/tasks", teacherOnly(teachers.GradeSubmissionHandler)).Methods(http.MethodPut)

	// Submissions
	api.Handle("/task-submissions", protected(students.ListSubmissionsHandler)).Methods(http.MethodGet)
	api.Handle("/task-submissions", protected(students.CreateSubmissionHandler)).Methods(http.MethodPost)

	// Rewards
	api.Handle("/rewards", public(teachers.ListRewardsHandler)).Methods(http.MethodGet)
	api.Handle("/rewards", teacherOnly(teachers.CreateRewardHandler)).Methods(http.MethodPost)
	api.Handle("/students/redeem", protected(students.RedeemRewardHandler)).Methods(http.MethodPost)
	api.Handle("/students/redemptions", protected(students.ListRedemptionsHandler)).Methods(http.MethodGet)
}

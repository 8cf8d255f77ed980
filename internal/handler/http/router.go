package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	logLevel slog.Level,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	expenseHandler ExpenseHandler,
	onboardingHandler OnboardingHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/check-in", attendanceHandler.CheckIn)
			r.Post("/check-out", attendanceHandler.CheckOut)
			r.Get("/status", attendanceHandler.GetStatus)
			r.Get("/my", attendanceHandler.GetMyRecords)
			r.Get("/", attendanceHandler.List)
			r.Put("/{id}", attendanceHandler.Update)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", employeeHandler.Create)
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Deactivate)
		})

		r.Route("/leave", func(r chi.Router) {
			r.Get("/types", leaveHandler.ListTypes)
			r.Get("/balance", leaveHandler.Balance)

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/", leaveHandler.List)
				r.Get("/{id}", leaveHandler.Get)
				r.Post("/{id}/approve", leaveHandler.Approve)
				r.Post("/{id}/reject", leaveHandler.Reject)
				r.Post("/{id}/cancel", leaveHandler.Cancel)
			})
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", expenseHandler.Submit)
			r.Get("/", expenseHandler.List)
			r.Get("/{id}", expenseHandler.Get)
			r.Post("/{id}/approve", expenseHandler.Approve)
			r.Post("/{id}/reject", expenseHandler.Reject)
			r.Post("/{id}/reimburse", expenseHandler.MarkReimbursed)
		})

		r.Route("/onboarding", func(r chi.Router) {
			r.Post("/start", onboardingHandler.Start)
			r.Get("/employees/{employeeID}/tasks", onboardingHandler.ListTasks)
			r.Get("/employees/{employeeID}/progress", onboardingHandler.Progress)
			r.Post("/tasks/{taskID}/complete", onboardingHandler.CompleteTask)
			r.Post("/tasks/{taskID}/skip", onboardingHandler.SkipTask)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/attendance/monthly", reportHandler.MonthlySummary)
			r.Get("/attendance/monthly/export", reportHandler.ExportMonthly)
		})
	})

	return r
}

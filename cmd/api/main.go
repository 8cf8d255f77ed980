package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/config"
	"github.com/fieldhr/hrms-backend-go/internal/domain/geofence"
	appHTTP "github.com/fieldhr/hrms-backend-go/internal/handler/http"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/clock"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/cron"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/fieldhr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fieldhr/hrms-backend-go/internal/service/attendance"
	employeeService "github.com/fieldhr/hrms-backend-go/internal/service/employee"
	expenseService "github.com/fieldhr/hrms-backend-go/internal/service/expense"
	leaveService "github.com/fieldhr/hrms-backend-go/internal/service/leave"
	onboardingService "github.com/fieldhr/hrms-backend-go/internal/service/onboarding"
	reportService "github.com/fieldhr/hrms-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	onboardingRepo := postgresql.NewOnboardingRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	systemClock := clock.System()
	geofences := geofence.NewStaticProvider(geofence.Config{
		Name:            cfg.Geofence.Name,
		CenterLatitude:  cfg.Geofence.CenterLatitude,
		CenterLongitude: cfg.Geofence.CenterLongitude,
		RadiusMeters:    cfg.Geofence.RadiusMeters,
		Enabled:         cfg.Geofence.Enabled,
		ReasonRequired:  cfg.Geofence.ReasonRequired,
	})

	attendanceSvc := attendanceService.NewService(attendanceRepo, geofences, systemClock)
	employeeSvc := employeeService.NewService(employeeRepo)
	leaveSvc := leaveService.NewService(leaveTypeRepo, leaveRequestRepo)
	expenseSvc := expenseService.NewService(expenseRepo)
	onboardingSvc := onboardingService.NewService(onboardingRepo, employeeRepo, systemClock)
	reportSvc := reportService.NewService(reportRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	onboardingHandler := appHTTP.NewOnboardingHandler(onboardingSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, systemClock).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.SlogLevel(),
		attendanceHandler,
		employeeHandler,
		leaveHandler,
		expenseHandler,
		onboardingHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

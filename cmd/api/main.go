package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/hrms-lite/hrms-go/internal/config"
	"github.com/hrms-lite/hrms-go/internal/domain/attendance"
	"github.com/hrms-lite/hrms-go/internal/domain/employee"
	appHTTP "github.com/hrms-lite/hrms-go/internal/handler/http"
	"github.com/hrms-lite/hrms-go/internal/pkg/database"
	"github.com/hrms-lite/hrms-go/internal/repository/memory"
	"github.com/hrms-lite/hrms-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-lite/hrms-go/internal/service/attendance"
	employeeService "github.com/hrms-lite/hrms-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		tx             database.Transactor
		employeeRepo   employee.EmployeeRepository
		attendanceRepo attendance.AttendanceRepository
	)

	switch cfg.Storage.Driver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			slog.Error("Error connecting to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := postgresql.EnsureSchema(ctx, db); err != nil {
			slog.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}

		tx = postgresql.NewTransactor(db)
		employeeRepo = postgresql.NewEmployeeRepository(db)
		attendanceRepo = postgresql.NewAttendanceRepository(db)
	case "memory":
		store := memory.NewStore()
		tx = store
		employeeRepo = store.Employees()
		attendanceRepo = store.Attendance()
		slog.Warn("Using in-memory storage, data is lost on restart")
	default:
		slog.Error("Unsupported storage driver", "driver", cfg.Storage.Driver)
		os.Exit(1)
	}

	employeeSvc := employeeService.NewEmployeeService(tx, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.App.Timezone)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", "http://localhost"+srv.Addr, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}

func newLogger(app config.AppConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(app.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(app.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-lite"),
		slog.String("version", "v1.0.0"),
		slog.String("env", app.Env),
	)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/dosewise/internal/cli"
	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/alexanderramin/dosewise/internal/config"
	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/dosing"
	"github.com/alexanderramin/dosewise/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cfg.LogUseCases {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	if envErr != nil {
		slog.Info("No .env file found, using environment variables")
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	times := formatter.NewTimeFormatter(nil)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	defaults := service.SessionDefaults{
		PatientName: cfg.DefaultPatientName,
		PatientAge:  cfg.DefaultPatientAge,
	}
	clockSvc := service.NewClockService(uow, defaults, dosing.SystemClock{}, observer)
	if err := clockSvc.EnsureInitialized(context.Background()); err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}

	app := &cli.App{
		CheckIns: service.NewCheckInService(uow, nil, times, observer),
		Intakes:  service.NewIntakeService(uow, times, observer),
		Patient:  service.NewPatientService(uow, observer),
		Clock:    clockSvc,
		Status:   service.NewStatusService(uow, times),
		Times:    times,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

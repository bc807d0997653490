package driver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"ordenes_xpto/internal/adapter/notification"
	"ordenes_xpto/internal/adapter/persistence/repository"
	"ordenes_xpto/internal/adapter/persistence/sink"
	"ordenes_xpto/internal/adapter/scenario"
	"ordenes_xpto/internal/config"
	"ordenes_xpto/internal/infrastructure/database"
	"ordenes_xpto/internal/usecase"
	"ordenes_xpto/internal/usecase/interfaces"
	"ordenes_xpto/pkg"
)

// Run will execute the configured scenario against stdout
func Run() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := Execute(context.Background(), cfg, os.Stdout); err != nil {
		appErr := mapError(err)
		log.Fatalf("Failed to run the demo: code=%s kind=%s err=%v", appErr.Code, appErr.Kind, err)
	}
}

// Execute builds the object graph for cfg and plays the scenario, writing
// domain output to out.
func Execute(ctx context.Context, cfg config.Config, out io.Writer) error {
	sc, err := scenario.Load(cfg.ScenarioFile)
	if err != nil {
		return err
	}

	provider := database.NewConnectionProvider()

	recordSink, closeSink, err := buildSink(ctx, cfg, out)
	if err != nil {
		return err
	}
	defer closeSink()

	a := newApp(recordSink, provider.Get(), out)
	return a.play(ctx, sc)
}

type app struct {
	clients  usecase.IClientUseCase
	services usecase.IServiceUseCase
	orders   usecase.IWorkOrderUseCase
	out      io.Writer
}

func newApp(recordSink interfaces.IPersistenceSink, conn interfaces.IConnection, out io.Writer) *app {
	orderRepo := repository.NewWorkOrderMemoryRepository()
	return &app{
		clients:  usecase.NewClientUseCase(recordSink, conn),
		services: usecase.NewServiceUseCase(out),
		orders:   usecase.NewWorkOrderUseCase(orderRepo, recordSink, conn),
		out:      out,
	}
}

func (a *app) play(ctx context.Context, sc scenario.Scenario) error {
	client := sc.Client

	svc, err := a.services.CreateService(sc.Service.Kind, sc.Service.ID, sc.Service.Description, sc.Service.Cost)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	order, err := a.orders.OpenOrder(ctx, sc.Order.ID, &client, svc)
	if err != nil {
		return fmt.Errorf("open order: %w", err)
	}

	for _, tech := range sc.Technicians {
		if _, err := a.orders.AddRecipient(ctx, order.ID, notification.NewTechnicianNotifier(tech, a.out)); err != nil {
			return fmt.Errorf("add technician %d: %w", tech.ID, err)
		}
	}

	if err := a.clients.SaveClient(ctx, client); err != nil {
		return fmt.Errorf("save client: %w", err)
	}
	if err := a.orders.SaveOrder(ctx, order.ID); err != nil {
		return fmt.Errorf("save order: %w", err)
	}

	for _, status := range sc.StatusChanges {
		if _, err := a.orders.ChangeStatus(ctx, order.ID, status); err != nil {
			return fmt.Errorf("change status to %q: %w", status, err)
		}
	}

	if sc.PerformService {
		if err := a.services.PerformService(ctx, svc); err != nil {
			return fmt.Errorf("perform service: %w", err)
		}
	}

	log.Printf("[demo][driver] scenario finished order_id=%d status=%q", order.ID, order.Status())
	return nil
}

// buildSink always keeps the console lines; durable sinks are teed behind them.
func buildSink(ctx context.Context, cfg config.Config, out io.Writer) (interfaces.IPersistenceSink, func(), error) {
	console := sink.NewConsoleSink(out)
	noop := func() {}

	switch cfg.PersistenceSink {
	case config.SinkDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, fmt.Errorf("connect dynamodb: %w", err)
		}
		log.Printf("[demo][driver] persistence sink=dynamodb table=%s", cfg.DynamoDB.TableName)
		return sink.NewTee(console, repository.NewRecordDynamoRepository(ddb, cfg.DynamoDB.TableName)), noop, nil

	case config.SinkSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open sqlite: %w", err)
		}
		repo, err := repository.NewRecordSQLiteRepository(db)
		if err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("prepare sqlite: %w", err)
		}
		log.Printf("[demo][driver] persistence sink=sqlite path=%s", cfg.SQLitePath)
		return sink.NewTee(console, repo), closeDB(db), nil

	default:
		return console, noop, nil
	}
}

func closeDB(db *sql.DB) func() {
	return func() {
		if err := db.Close(); err != nil {
			log.Printf("[demo][driver] closing sqlite err=%v", err)
		}
	}
}

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidWorkOrderClient),
		errors.Is(err, usecase.ErrInvalidWorkOrderSvc), errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidRecipient), errors.Is(err, usecase.ErrInvalidServiceCost),
		errors.Is(err, usecase.ErrInvalidService),
		errors.Is(err, scenario.ErrMissingClient), errors.Is(err, scenario.ErrMissingOrderID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, pkg.KindInvalidArgument)
	case errors.Is(err, usecase.ErrWorkOrderAlreadyExists):
		return pkg.NewDomainError("WORK_ORDER_ALREADY_EXISTS", "Work order already exists", err, pkg.KindConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainError("WORK_ORDER_NOT_FOUND", "Work order not found", err, pkg.KindNotFound)
	default:
		// Domain AppErrors (UNKNOWN_SERVICE_TYPE, RECIPIENT_NOT_FOUND) pass through.
		return pkg.Classify(err)
	}
}

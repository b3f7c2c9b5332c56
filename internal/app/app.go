// Package app assembles the carrier integration from configuration. The
// host ERP builds one App at startup and resolves carrier operations for
// a shipment batch through the registry.
package app

import (
	"go.uber.org/zap"

	shippingapp "github.com/erp/carrier-mrw/internal/application/shipping"
	"github.com/erp/carrier-mrw/internal/domain/carrier"
	"github.com/erp/carrier-mrw/internal/infrastructure/config"
	"github.com/erp/carrier-mrw/internal/infrastructure/labelstore"
	"github.com/erp/carrier-mrw/internal/infrastructure/logger"
	"github.com/erp/carrier-mrw/internal/infrastructure/mrw"
	"github.com/erp/carrier-mrw/internal/infrastructure/persistence"
)

// App wires the shipment services, the MRW session opener, the label
// store and the GORM repository behind a carrier registry.
type App struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *persistence.Database
	shipments *persistence.GormShipmentRepository
	registry  *carrier.Registry
}

// New loads configuration and assembles the application.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig assembles the application from an already loaded
// configuration.
func NewWithConfig(cfg *config.Config) (*App, error) {
	log, err := logger.FromSettings(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		return nil, err
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		return nil, err
	}

	shipments := persistence.NewGormShipmentRepository(db.DB)
	store := labelstore.NewTempFileStore(cfg.MRW.LabelDir, log)

	opener := mrw.NewOpener(log)
	opener.BaseURL = cfg.MRW.BaseURL

	labels := shippingapp.NewLabelService(opener, shipments, store, log)
	send := shippingapp.NewSendService(opener, shipments, labels, log)

	registry := carrier.NewRegistry()
	shippingapp.NewMRWOperations(send, labels, opener, log).Register(registry)

	return &App{
		cfg:       cfg,
		logger:    log,
		db:        db,
		shipments: shipments,
		registry:  registry,
	}, nil
}

// Registry returns the carrier operations registry.
func (a *App) Registry() *carrier.Registry {
	return a.registry
}

// Shipments returns the shipment repository.
func (a *App) Shipments() *persistence.GormShipmentRepository {
	return a.shipments
}

// DB returns the database handle, used by the host for migrations.
func (a *App) DB() *persistence.Database {
	return a.db
}

// Logger returns the root logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Close releases the database connection.
func (a *App) Close() error {
	_ = a.logger.Sync()
	return a.db.Close()
}

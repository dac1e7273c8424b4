package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"passport/config"
	"passport/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// requiredRelations must exist before the API serves traffic; see db/schema.sql.
var requiredRelations = []string{
	"countries",
	"recipes",
	"ingredients",
	"instructions",
	"nutrition_benefits",
	"user_favorites",
	"profiles",
	"credentials",
	"recipe_search_history",
	"recipes_with_countries",
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the catalog database. Start-up fails when the database is
// unreachable or the schema has not been applied.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Sign-up is the only multi-step write and uses txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if err := verifySchema(ctx, db); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// verifySchema reports every missing table or view at once.
func verifySchema(ctx context.Context, db *gorm.DB) error {
	var missing []string
	for _, name := range requiredRelations {
		var found sql.NullString
		if err := db.WithContext(ctx).Raw("SELECT to_regclass(?)::text", "public."+name).Scan(&found).Error; err != nil {
			return errors.Wrapf(err, "failed to look up relation %s", name)
		}
		if !found.Valid {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("database schema is missing %s; apply db/schema.sql", strings.Join(missing, ", "))
	}

	return nil
}

// monitorDBPool logs when requests had to wait for a pooled connection.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waitDelta <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waitDurationDelta >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool wait",
				slog.Int64("wait_count", waitDelta),
				slog.Duration("wait_duration", waitDurationDelta),
				slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
				slog.Int("max_open_conns", cur.MaxOpenConnections),
				slog.Int("in_use_conns", cur.InUse),
				slog.Int("idle_conns", cur.Idle),
			)
		}
	}
}

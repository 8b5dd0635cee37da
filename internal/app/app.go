package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/config"
	v1 "github.com/kurochkinivan/food_classifier/internal/controller/http/v1"
	"github.com/kurochkinivan/food_classifier/internal/domain"
	"github.com/kurochkinivan/food_classifier/internal/infrastructure/classifier_client"
	"github.com/kurochkinivan/food_classifier/internal/infrastructure/gdrive"
	"github.com/kurochkinivan/food_classifier/internal/infrastructure/objectstore"
	"github.com/kurochkinivan/food_classifier/internal/infrastructure/vision"
	"github.com/kurochkinivan/food_classifier/internal/pipeline"
	"github.com/kurochkinivan/food_classifier/internal/repository/mongodb"
	"github.com/kurochkinivan/food_classifier/internal/repository/postgresql"
	"github.com/kurochkinivan/food_classifier/internal/repository/redis"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/drive/v3"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

type store struct {
	images     pipeline.ImageRecords
	watermarks pipeline.Watermarks
	close      func()
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("project_id", a.cfg.App.ProjectID),
		slog.String("folder_id", a.cfg.Google.FolderID),
		slog.String("bucket", a.cfg.Storage.BucketName),
		slog.String("discovery_mode", a.cfg.App.DiscoveryMode),
		slog.String("store", a.cfg.Store.Driver),
	)

	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer st.close()

	var locker pipeline.Locker
	if a.cfg.Redis.Addr != "" {
		a.log.InfoContext(ctx, "establishing redis connection", slog.String("redis_addr", a.cfg.Redis.Addr))

		client, err := redis.NewConnection(ctx, a.log, a.cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to create redis connection: %w", err)
		}
		defer client.Close()

		locker = redis.NewLocker(client)
	}

	bucket, err := objectstore.New(ctx, a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create object storage: %w", err)
	}

	driveClient, err := gdrive.New(ctx, a.cfg.Google.CredentialsJSON, drive.DriveReadonlyScope)
	if err != nil {
		return fmt.Errorf("failed to create drive client: %w", err)
	}

	labeler, err := vision.New(ctx, a.cfg.App.ProjectID, a.cfg.Google.CredentialsJSON)
	if err != nil {
		return fmt.Errorf("failed to create labeler: %w", err)
	}
	defer func() {
		if err := labeler.Close(); err != nil {
			a.log.WarnContext(ctx, "failed to close labeler", slog.String("err", err.Error()))
		}
	}()

	transfer := pipeline.NewTransfer(a.log, a.cfg.App.TempDirectory, driveClient, bucket)
	requester := classifier_client.New(a.cfg.App.ClassifierURL, a.cfg.App.ClassifierTimeout)
	discovery := pipeline.NewDiscovery(
		a.log,
		a.cfg.Google.FolderID,
		a.cfg.App.DiscoveryMode,
		driveClient,
		transfer,
		requester,
		st.watermarks,
	)
	classifier := pipeline.NewImageClassifier(
		a.log,
		pipeline.ClassifierSettings{
			BucketName:    bucket.Bucket(),
			PublicURLBase: a.cfg.App.PublicURLBase,
			Vocabulary:    domain.NewVocabulary(a.cfg.App.FoodVocabulary),
			LockTTL:       a.cfg.App.LockTTL,
		},
		labeler,
		st.images,
		locker,
	)

	return a.serve(ctx, v1.NewServer(a.log, a.cfg.HTTP, classifier, discovery))
}

func (a *App) openStore(ctx context.Context) (*store, error) {
	switch a.cfg.Store.Driver {
	case config.StoreMongoDB:
		a.log.InfoContext(ctx, "establishing mongodb connection",
			slog.String("mongodb_database", a.cfg.MongoDB.Database),
		)

		db, err := mongodb.NewConnection(ctx, a.log, a.cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create db connection: %w", err)
		}

		return &store{
			images:     mongodb.NewImagesRepository(db, a.cfg.MongoDB.ImagesCollection),
			watermarks: mongodb.NewWatermarksRepository(db, a.cfg.MongoDB.WatermarksCollection),
			close: func() {
				if err := db.Client().Disconnect(context.WithoutCancel(ctx)); err != nil {
					a.log.WarnContext(ctx, "failed to disconnect mongodb", slog.String("err", err.Error()))
				}
			},
		}, nil
	default:
		a.log.InfoContext(ctx, "establishing postgresql connection",
			slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
			slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
			slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
		)

		pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
		if err != nil {
			return nil, fmt.Errorf("failed to create db connection: %w", err)
		}

		return &store{
			images:     postgresql.NewImagesRepository(pool),
			watermarks: postgresql.NewWatermarksRepository(pool),
			close:      pool.Close,
		}, nil
	}
}

func (a *App) serve(ctx context.Context, server *v1.Server) error {
	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "server stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "server stopped gracefully")

	return nil
}

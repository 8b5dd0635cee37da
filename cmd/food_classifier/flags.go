package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/food_classifier/internal/app"
	"github.com/kurochkinivan/food_classifier/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "food_classifier",
		Usage:   "Drive folder image classification service",
		Version: version,
		Commands: []*cli.Command{
			serveCmd(),
			watchCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the classification and Drive webhook endpoints",
		Flags: serveFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFromContext(ctx)
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Register a webhook channel for changes in a Drive folder",
		Flags: watchFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := loggerFromContext(ctx)
			if err != nil {
				return err
			}

			cfg := config.LoadWatch(cmd)

			if file := cmd.String("credentials-file"); file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read credentials file: %w", err)
				}
				cfg.CredentialsJSON = string(data)
			}

			return app.RegisterWatch(ctx, log, cfg)
		},
	}
}

func loggerFromContext(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}
	return log, nil
}

func sources(env, key string, configFile *string) cli.ValueSourceChain {
	return cli.NewValueSourceChain(
		cli.EnvVar(env),
		yaml.YAML(key, altsrc.NewStringPtrSourcer(configFile)),
	)
}

func configFlag(configFile *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Validator:   validateConfig,
		Usage:       "Load configuration from `FILE`",
		Destination: configFile,
	}
}

func googleFlags(configFile *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "credentials-json",
			Usage:   "Set Google service account credentials payload",
			Sources: sources("GOOGLE_APPLICATION_CREDENTIALS_JSON", "google.credentials_json", configFile),
		},
		&cli.StringFlag{
			Name:    "folder-id",
			Aliases: []string{"f"},
			Usage:   "Set Drive folder to watch for new images",
			Sources: sources("DRIVE_FOLDER_ID", "google.folder_id", configFile),
		},
	}
}

func serveFlags() []cli.Flag {
	var configFile string

	flags := []cli.Flag{
		configFlag(&configFile),
		&cli.StringFlag{
			Name:    "project-id",
			Usage:   "Set Google Cloud project identifier",
			Sources: sources("PROJECT_ID", "app.project_id", &configFile),
		},
		&cli.StringFlag{
			Name:      "discovery-mode",
			Usage:     "Set how new files are discovered: latest or watermark",
			Value:     config.DiscoveryLatest,
			Sources:   sources("DISCOVERY_MODE", "app.discovery_mode", &configFile),
			Validator: validateOneOf(config.DiscoveryLatest, config.DiscoveryWatermark),
		},
		&cli.StringFlag{
			Name:      "temp-dir",
			Usage:     "Set directory for temporary transfer files",
			Value:     os.TempDir(),
			Sources:   sources("TEMP_DIR", "app.temp_dir", &configFile),
			Validator: validateDirectory,
		},
		&cli.StringSliceFlag{
			Name:  "food-vocabulary",
			Usage: "Set substrings that mark a label as food",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FOOD_VOCABULARY"),
				yaml.YAML("app.food_vocabulary", altsrc.NewStringPtrSourcer(&configFile)),
			),
		},
		&cli.StringFlag{
			Name:    "public-url-base",
			Usage:   "Set base URL images are publicly served from",
			Value:   "https://storage.googleapis.com",
			Sources: sources("PUBLIC_URL_BASE", "app.public_url_base", &configFile),
		},
		&cli.StringFlag{
			Name:    "classifier-url",
			Usage:   "Set classification endpoint called for new files",
			Sources: sources("CLASSIFIER_URL", "app.classifier_url", &configFile),
		},
		&cli.DurationFlag{
			Name:    "classifier-timeout",
			Usage:   "Set classification request timeout",
			Value:   1 * time.Minute,
			Sources: sources("CLASSIFIER_TIMEOUT", "app.classifier_timeout", &configFile),
		},
		&cli.DurationFlag{
			Name:    "lock-ttl",
			Usage:   "Set how long a file stays locked while being classified",
			Value:   2 * time.Minute,
			Sources: sources("LOCK_TTL", "app.lock_ttl", &configFile),
		},
		&cli.StringFlag{
			Name:    "storage-endpoint",
			Usage:   "Set S3-compatible object storage endpoint",
			Value:   "storage.googleapis.com",
			Sources: sources("STORAGE_ENDPOINT", "storage.endpoint", &configFile),
		},
		&cli.StringFlag{
			Name:    "storage-access-key",
			Usage:   "Set object storage access key",
			Sources: sources("STORAGE_ACCESS_KEY", "storage.access_key", &configFile),
		},
		&cli.StringFlag{
			Name:    "storage-secret-key",
			Usage:   "Set object storage secret key",
			Sources: sources("STORAGE_SECRET_KEY", "storage.secret_key", &configFile),
		},
		&cli.BoolFlag{
			Name:  "storage-use-ssl",
			Usage: "Use TLS for object storage requests",
			Value: true,
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("STORAGE_USE_SSL"),
				yaml.YAML("storage.use_ssl", altsrc.NewStringPtrSourcer(&configFile)),
			),
		},
		&cli.StringFlag{
			Name:    "bucket-name",
			Aliases: []string{"b"},
			Usage:   "Set bucket images are copied into",
			Sources: sources("BUCKET_NAME", "storage.bucket_name", &configFile),
		},
		&cli.StringFlag{
			Name:    "storage-region",
			Usage:   "Set object storage region",
			Sources: sources("STORAGE_REGION", "storage.region", &configFile),
		},
		&cli.StringFlag{
			Name:      "store",
			Usage:     "Set document store for processed images: postgres or mongodb",
			Value:     config.StorePostgreSQL,
			Sources:   sources("STORE", "store.driver", &configFile),
			Validator: validateOneOf(config.StorePostgreSQL, config.StoreMongoDB),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: sources("PG_HOST", "postgresql.host", &configFile),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: sources("PG_PORT", "postgresql.port", &configFile),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: sources("PG_USERNAME", "postgresql.username", &configFile),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: sources("PG_PASSWORD", "postgresql.password", &configFile),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "food_classifier",
			Sources: sources("PG_DBNAME", "postgresql.dbname", &configFile),
		},
		&cli.StringFlag{
			Name:    "mongo-uri",
			Usage:   "Set MongoDB connection URI",
			Value:   "mongodb://localhost:27017",
			Sources: sources("MONGODB_URI", "mongodb.uri", &configFile),
		},
		&cli.StringFlag{
			Name:    "mongo-database",
			Usage:   "Set MongoDB database name",
			Value:   "food_classifier",
			Sources: sources("MONGODB_DATABASE", "mongodb.database", &configFile),
		},
		&cli.StringFlag{
			Name:    "mongo-images-collection",
			Usage:   "Set MongoDB collection for processed images",
			Value:   "processed_images",
			Sources: sources("MONGODB_IMAGES_COLLECTION", "mongodb.images_collection", &configFile),
		},
		&cli.StringFlag{
			Name:    "mongo-watermarks-collection",
			Usage:   "Set MongoDB collection for folder watermarks",
			Value:   "folder_watermarks",
			Sources: sources("MONGODB_WATERMARKS_COLLECTION", "mongodb.watermarks_collection", &configFile),
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address for processing locks, empty disables locking",
			Sources: sources("REDIS_ADDR", "redis.addr", &configFile),
		},
		&cli.StringFlag{
			Name:    "redis-password",
			Usage:   "Set Redis password",
			Sources: sources("REDIS_PASSWORD", "redis.password", &configFile),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "0.0.0.0",
			Sources: sources("HTTP_HOST", "http.host", &configFile),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: sources("PORT", "http.port", &configFile),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources("HTTP_IDLE_TIMEOUT", "http.idle_timeout", &configFile),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: sources("HTTP_READ_TIMEOUT", "http.read_timeout", &configFile),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   5 * time.Minute,
			Sources: sources("HTTP_WRITE_TIMEOUT", "http.write_timeout", &configFile),
		},
	}

	return append(flags, googleFlags(&configFile)...)
}

func watchFlags() []cli.Flag {
	var configFile string

	flags := []cli.Flag{
		configFlag(&configFile),
		&cli.StringFlag{
			Name:     "webhook-url",
			Aliases:  []string{"u"},
			Usage:    "Set URL Drive delivers change notifications to",
			Sources:  sources("WEBHOOK_URL", "watch.webhook_url", &configFile),
			Required: true,
		},
		&cli.DurationFlag{
			Name:    "expiration",
			Usage:   "Set how long the notification channel stays open",
			Value:   7 * 24 * time.Hour,
			Sources: sources("WATCH_EXPIRATION", "watch.expiration", &configFile),
		},
		&cli.StringFlag{
			Name:      "credentials-file",
			Usage:     "Load service account credentials from `FILE`",
			Sources:   sources("GOOGLE_APPLICATION_CREDENTIALS", "google.credentials_file", &configFile),
			Validator: validateFile,
		},
	}

	return append(flags, googleFlags(&configFile)...)
}

func validateOneOf(allowed ...string) func(string) error {
	return func(value string) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return fmt.Errorf("%q must be one of %q", value, allowed)
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateFile(file string) error {
	info, err := os.Stat(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", file)
		}
		return fmt.Errorf("failed to stat %q: %w", file, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", file)
	}

	return nil
}

func validateConfig(config string) error {
	if err := validateFile(config); err != nil {
		return err
	}

	ext := filepath.Ext(config)
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}

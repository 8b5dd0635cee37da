package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	DiscoveryLatest    = "latest"
	DiscoveryWatermark = "watermark"

	StorePostgreSQL = "postgres"
	StoreMongoDB    = "mongodb"
)

type Config struct {
	App
	Google
	Storage
	Store
	HTTP
	PostgreSQL
	MongoDB
	Redis
}

type App struct {
	ProjectID         string
	DiscoveryMode     string
	TempDirectory     string
	FoodVocabulary    []string
	PublicURLBase     string
	ClassifierURL     string
	ClassifierTimeout time.Duration
	LockTTL           time.Duration
}

type Google struct {
	CredentialsJSON string
	FolderID        string
}

// Storage describes the S3-compatible bucket images are copied into.
type Storage struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	UseSSL     bool
	BucketName string
	Region     string
}

type Store struct {
	Driver string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type MongoDB struct {
	URI                  string
	Database             string
	ImagesCollection     string
	WatermarksCollection string
}

// Redis is optional; an empty Addr disables the processing lock.
type Redis struct {
	Addr     string
	Password string
}

type Watch struct {
	Google
	WebhookURL string
	Expiration time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			ProjectID:         cmd.String("project-id"),
			DiscoveryMode:     cmd.String("discovery-mode"),
			TempDirectory:     cmd.String("temp-dir"),
			FoodVocabulary:    cmd.StringSlice("food-vocabulary"),
			PublicURLBase:     cmd.String("public-url-base"),
			ClassifierURL:     cmd.String("classifier-url"),
			ClassifierTimeout: cmd.Duration("classifier-timeout"),
			LockTTL:           cmd.Duration("lock-ttl"),
		},
		Google: loadGoogle(cmd),
		Storage: Storage{
			Endpoint:   cmd.String("storage-endpoint"),
			AccessKey:  cmd.String("storage-access-key"),
			SecretKey:  cmd.String("storage-secret-key"),
			UseSSL:     cmd.Bool("storage-use-ssl"),
			BucketName: cmd.String("bucket-name"),
			Region:     cmd.String("storage-region"),
		},
		Store: Store{
			Driver: cmd.String("store"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		MongoDB: MongoDB{
			URI:                  cmd.String("mongo-uri"),
			Database:             cmd.String("mongo-database"),
			ImagesCollection:     cmd.String("mongo-images-collection"),
			WatermarksCollection: cmd.String("mongo-watermarks-collection"),
		},
		Redis: Redis{
			Addr:     cmd.String("redis-addr"),
			Password: cmd.String("redis-password"),
		},
	}
}

func LoadWatch(cmd *cli.Command) *Watch {
	return &Watch{
		Google:     loadGoogle(cmd),
		WebhookURL: cmd.String("webhook-url"),
		Expiration: cmd.Duration("expiration"),
	}
}

func loadGoogle(cmd *cli.Command) Google {
	return Google{
		CredentialsJSON: cmd.String("credentials-json"),
		FolderID:        cmd.String("folder-id"),
	}
}

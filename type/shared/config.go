package shared

import "time"

type Config struct {
	Environment     *bool     `yaml:"environment"`
	Port            *string   `yaml:"port" validate:"required"`
	Cors            []*string `yaml:"cors"`
	Store           *string   `yaml:"store" validate:"required,oneof=mongo postgres"`
	Mongo           *string   `yaml:"mongo" validate:"required"`
	MongoDatabase   *string   `yaml:"mongo_database" validate:"required"`
	MongoCollection *string   `yaml:"mongo_collection" validate:"required"`
	Postgres        *string   `yaml:"postgres"`
	PostgresReplica []*string `yaml:"postgres_replica"`
	UploadDir       *string   `yaml:"upload_dir" validate:"required"`
	TemplateDir     *string   `yaml:"template_dir" validate:"required"`
	VerifyURL       *string   `yaml:"verify_url" validate:"omitempty,url"`

	ChatBaseURL     *string  `yaml:"chat_base_url" validate:"required,url"`
	ChatModel       *string  `yaml:"chat_model" validate:"required"`
	ChatTemperature *float64 `yaml:"chat_temperature" validate:"required,min=0,max=2"`
	ChatAPIKey      *string  `yaml:"chat_api_key"`

	SigningEnabled  *bool   `yaml:"signing_enabled"`
	SigningCertPath *string `yaml:"signing_cert_path"`
	SigningKeyPath  *string `yaml:"signing_key_path"`

	MinIoEndpoint     *string `yaml:"minio_endpoint"`
	MinIoAccessKey    *string `yaml:"minio_access_key"`
	MinIoSecretKey    *string `yaml:"minio_secret_key"`
	MinIoSecure       *bool   `yaml:"minio_secure"`
	BucketCertificate *string `yaml:"bucket_certificate"`

	MailHost *string `yaml:"mail_host"`
	MailPort *int    `yaml:"mail_port"`
	MailUser *string `yaml:"mail_user"`
	MailPass *string `yaml:"mail_pass"`
	MailFrom *string `yaml:"mail_from"`

	UploadRetention *string `yaml:"upload_retention"`
	SweepSchedule   *string `yaml:"sweep_schedule" validate:"required"`

	// UploadMaxAge is UploadRetention parsed by the loader; zero disables the sweeper.
	UploadMaxAge time.Duration `yaml:"-"`
}

// ArchiveEnabled reports whether generated PDFs are copied to object storage.
func (c *Config) ArchiveEnabled() bool {
	return nonEmpty(c.MinIoEndpoint) && nonEmpty(c.MinIoAccessKey) && nonEmpty(c.MinIoSecretKey) && nonEmpty(c.BucketCertificate)
}

// MailEnabled reports whether certificates can be delivered by mail.
func (c *Config) MailEnabled() bool {
	return nonEmpty(c.MailHost) && nonEmpty(c.MailUser)
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

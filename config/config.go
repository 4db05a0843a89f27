package config

import (
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

type ServerConfig struct {
	Addr      string `conf:"NLT_ADDR,:8080"`
	JWTSecret string `conf:"NLT_JWT_SECRET"`

	DatabasePath string `conf:"NLT_DB_PATH,nlt.db"`

	// BootstrapPin is used to create the initial admin agent when the
	// agents table is empty.
	BootstrapPin string `conf:"NLT_BOOTSTRAP_PIN,0000"`
}

type BackupConfig struct {
	// Backend selects the snapshot store: "fs" or "s3".
	Backend string `conf:"NLT_BACKUP_BACKEND,fs"`

	// Dir is the local bucket directory for the "fs" backend.
	Dir string `conf:"NLT_BACKUP_DIR,backups"`

	Prefix   string `conf:"NLT_BACKUP_PREFIX,nlt-backup-"`
	Schedule string `conf:"NLT_BACKUP_SCHEDULE,@daily"`
}

type S3Config struct {
	Bucket string `conf:"NLT_S3_BUCKET"`
	Region string `conf:"NLT_S3_REGION,eu-west-1"`

	// Endpoint overrides the AWS endpoint for S3-compatible services.
	Endpoint  string `conf:"NLT_S3_ENDPOINT"`
	AccessKey string `conf:"NLT_S3_ACCESS_KEY"`
	SecretKey string `conf:"NLT_S3_SECRET_KEY"`
}

type Config struct {
	Server ServerConfig
	Backup BackupConfig
	S3     S3Config
}

// validate configuration
func (c *Config) validate() error {
	if c.Server.JWTSecret == "" {
		return errors.New("NLT_JWT_SECRET is required")
	}

	switch c.Backup.Backend {
	case "fs":
		if c.Backup.Dir == "" {
			return errors.New("fs backup backend given but backup dir is missing")
		}
	case "s3":
		if c.S3.Bucket == "" {
			return errors.New("s3 backup backend given but bucket is missing")
		}
	default:
		return errors.New("unknown backup backend: " + c.Backup.Backend)
	}

	if c.Backup.Prefix == "" {
		return errors.New("backup prefix must not be empty")
	}

	return nil
}

// Load configuration from environment
func Load() (Config, error) {
	var conf Config
	loadStruct(reflect.ValueOf(&conf).Elem())
	return conf, conf.validate()
}

func loadStruct(st reflect.Value) {
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		fieldType := st.Type().Field(i)

		// load sub structures
		if fieldType.Type.Kind() == reflect.Struct {
			loadStruct(field)
			continue
		}

		// get conf tag and skip this field if tag does not exist
		tag, ok := fieldType.Tag.Lookup("conf")
		if !ok {
			continue
		}
		splitTag := strings.Split(tag, ",")

		// check if default value exists
		var defaultValue string
		if len(splitTag) > 1 {
			defaultValue = splitTag[1]
		}

		// get value from env
		value, valueGiven := os.LookupEnv(splitTag[0])
		if !valueGiven {
			value = defaultValue
		}

		// set value in struct
		switch fieldType.Type.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Int:
			field.SetInt(cast.ToInt64(value))
		case reflect.Bool:
			field.SetBool(cast.ToBool(value))

		default:
			panic("unsupported struct field type")
		}
	}
}

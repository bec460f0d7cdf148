// Package envfile renders, writes and loads the .env file consumed by
// Docker Compose.
package envfile

import (
	"fmt"
	"strings"
)

// Keys of the env file, in the order they are rendered
const (
	KeyPostgresUser          = "POSTGRES_USER"
	KeyPostgresPassword      = "POSTGRES_PASSWORD"
	KeyPostgresDB            = "POSTGRES_DB"
	KeyPostgresContainerName = "POSTGRES_CONTAINER_NAME"
	KeyPostgresPort          = "POSTGRES_PORT"
	KeyPgAdminEmail          = "PGADMIN_DEFAULT_EMAIL"
	KeyPgAdminPassword       = "PGADMIN_DEFAULT_PASSWORD"
	KeyPgAdminPort           = "PGADMIN_PORT"
)

// Keys lists every key in render order
var Keys = []string{
	KeyPostgresUser,
	KeyPostgresPassword,
	KeyPostgresDB,
	KeyPostgresContainerName,
	KeyPostgresPort,
	KeyPgAdminEmail,
	KeyPgAdminPassword,
	KeyPgAdminPort,
}

// Values holds the Postgres and pgAdmin connection parameters
type Values struct {
	PostgresUser          string `yaml:"postgres_user"`
	PostgresPassword      string `yaml:"postgres_password"`
	PostgresDB            string `yaml:"postgres_db"`
	PostgresContainerName string `yaml:"postgres_container_name"`
	PostgresPort          string `yaml:"postgres_port"`
	PgAdminEmail          string `yaml:"pgadmin_email"`
	PgAdminPassword       string `yaml:"pgadmin_password"`
	PgAdminPort           string `yaml:"pgadmin_port"`
}

// Defaults returns the values used when the user just hits enter
func Defaults() Values {
	return Values{
		PostgresUser:          "admin",
		PostgresPassword:      "password123",
		PostgresDB:            "api_db",
		PostgresContainerName: "postgres_container",
		PostgresPort:          "5432",
		PgAdminEmail:          "example@email.com",
		PgAdminPassword:       "admin123",
		PgAdminPort:           "8080",
	}
}

// fields maps each key to its field so conversions stay in key order
func (v *Values) fields() []*string {
	return []*string{
		&v.PostgresUser,
		&v.PostgresPassword,
		&v.PostgresDB,
		&v.PostgresContainerName,
		&v.PostgresPort,
		&v.PgAdminEmail,
		&v.PgAdminPassword,
		&v.PgAdminPort,
	}
}

// Get returns the value stored under key
func (v Values) Get(key string) (string, bool) {
	for i, k := range Keys {
		if k == key {
			return *v.fields()[i], true
		}
	}
	return "", false
}

// WithDefaults trims every field and fills blank ones from base
func (v Values) WithDefaults(base Values) Values {
	out := v
	dst := out.fields()
	src := base.fields()
	for i := range dst {
		*dst[i] = strings.TrimSpace(*dst[i])
		if *dst[i] == "" {
			*dst[i] = strings.TrimSpace(*src[i])
		}
	}
	return out
}

// Map returns the values keyed by env var name
func (v Values) Map() map[string]string {
	m := make(map[string]string, len(Keys))
	for i, f := range v.fields() {
		m[Keys[i]] = *f
	}
	return m
}

// FromMap builds Values from env var pairs. Missing or blank keys take
// the default.
func FromMap(m map[string]string) Values {
	var v Values
	for i, f := range v.fields() {
		*f = m[Keys[i]]
	}
	return v.WithDefaults(Defaults())
}

// Validate checks that every value is non-empty and survives a write
// and load unchanged
func (v Values) Validate() error {
	for i, f := range v.fields() {
		if strings.TrimSpace(*f) == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidValue, Keys[i])
		}
		if err := CheckValue(*f); err != nil {
			return fmt.Errorf("%s: %w", Keys[i], err)
		}
	}
	return nil
}

// Environ returns KEY=value pairs in render order
func (v Values) Environ() []string {
	env := make([]string, 0, len(Keys))
	for i, f := range v.fields() {
		env = append(env, Keys[i]+"="+*f)
	}
	return env
}

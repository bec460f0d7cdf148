package envfile

import (
	"fmt"
	"strings"
)

// Render formats the env file. Blank fields are replaced by their
// defaults so every key is written with a value.
func Render(v Values) string {
	v = v.WithDefaults(Defaults())

	var b strings.Builder
	b.WriteString("# PostgreSQL\n")
	writePair(&b, KeyPostgresUser, v.PostgresUser)
	writePair(&b, KeyPostgresPassword, v.PostgresPassword)
	writePair(&b, KeyPostgresDB, v.PostgresDB)
	writePair(&b, KeyPostgresContainerName, v.PostgresContainerName)
	writePair(&b, KeyPostgresPort, v.PostgresPort)
	b.WriteString("\n# pgAdmin\n")
	writePair(&b, KeyPgAdminEmail, v.PgAdminEmail)
	writePair(&b, KeyPgAdminPassword, v.PgAdminPassword)
	writePair(&b, KeyPgAdminPort, v.PgAdminPort)
	return b.String()
}

func writePair(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quote(value))
	b.WriteByte('\n')
}

// quoteTriggers are the characters an unquoted value loses or changes
// when godotenv or docker compose read it back: comments, variable
// expansion and escapes
const quoteTriggers = " \t\v\f\u0085\u00a0#$\"\\`"

func needsQuotes(value string) bool {
	return strings.ContainsAny(value, quoteTriggers) || strings.HasPrefix(value, "'")
}

// quote wraps value in single quotes when it would not survive
// unquoted. Single-quoted values are taken literally.
func quote(value string) string {
	if needsQuotes(value) {
		return "'" + value + "'"
	}
	return value
}

// CheckValue reports whether value can be written to the env file and
// loaded back unchanged. A single quote cannot appear in a value that
// has to be quoted, and a quoted value cannot end in a backslash.
func CheckValue(value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: line breaks are not allowed", ErrInvalidValue)
	}
	if needsQuotes(value) && strings.Contains(value, "'") {
		return fmt.Errorf("%w: a single quote cannot be combined with spaces, #, $, \\, \" or `", ErrInvalidValue)
	}
	if needsQuotes(value) && strings.HasSuffix(value, `\`) {
		return fmt.Errorf("%w: a value cannot end with \\", ErrInvalidValue)
	}
	return nil
}

// affirmative answers accepted when asked to overwrite
var affirmative = map[string]bool{
	"y":    true,
	"yes":  true,
	"yeah": true,
	"yep":  true,
	"true": true,
	"1":    true,
}

// IsAffirmative reports whether a free-form answer means yes. An empty
// answer means no.
func IsAffirmative(answer string) bool {
	return affirmative[strings.ToLower(strings.TrimSpace(answer))]
}

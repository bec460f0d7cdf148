package prompt

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/pgsetup/internal/cli/styles"
	"github.com/thenoetrevino/pgsetup/internal/envfile"
)

// VenvQuestion asks which virtual environment to create or reuse
const VenvQuestion = "Please enter existing venv you would like to use or if none exists the name you wish to give it"

// OverwriteQuestion asks before replacing an existing .env file
const OverwriteQuestion = "Do you want to overwrite the existing .env file (y/n)?"

// VenvName asks for the venv directory name
func VenvName(ctx context.Context, p Prompter, def string) (string, error) {
	return p.Ask(ctx, VenvQuestion, def)
}

// maxAttempts bounds how often a question is repeated for an answer the
// env file cannot hold
const maxAttempts = 3

// EnvInputs asks the eight connection questions in order. Blank answers
// take the matching field of defaults. The password question names the
// chosen user, highlighted with st. Answers rejected by
// envfile.CheckValue are asked again.
func EnvInputs(ctx context.Context, p Prompter, defaults envfile.Values, st *styles.Styles) (envfile.Values, error) {
	if st == nil {
		st = styles.Plain()
	}
	defaults = defaults.WithDefaults(envfile.Defaults())

	var v envfile.Values
	steps := []struct {
		question func() string
		def      string
		dst      *string
	}{
		{
			question: func() string { return "Please enter the username you would like to use when connecting to the DB" },
			def:      defaults.PostgresUser,
			dst:      &v.PostgresUser,
		},
		{
			question: func() string {
				return "Please enter the password for user " + st.Info(v.PostgresUser) + " when connecting to the DB"
			},
			def: defaults.PostgresPassword,
			dst: &v.PostgresPassword,
		},
		{
			question: func() string { return "What would you like to name your DB?" },
			def:      defaults.PostgresDB,
			dst:      &v.PostgresDB,
		},
		{
			question: func() string {
				return "What do you want to name your Docker container?  This will also be used in your DB."
			},
			def: defaults.PostgresContainerName,
			dst: &v.PostgresContainerName,
		},
		{
			question: func() string { return "What port would you like to use for your DB?" },
			def:      defaults.PostgresPort,
			dst:      &v.PostgresPort,
		},
		{
			question: func() string { return "What email would you like to use for pgAdmin?" },
			def:      defaults.PgAdminEmail,
			dst:      &v.PgAdminEmail,
		},
		{
			question: func() string { return "What password would you like to use for pgAdmin?" },
			def:      defaults.PgAdminPassword,
			dst:      &v.PgAdminPassword,
		},
		{
			question: func() string { return "What port would you like to use for pgAdmin?" },
			def:      defaults.PgAdminPort,
			dst:      &v.PgAdminPort,
		},
	}

	for _, step := range steps {
		answer, err := askValid(ctx, p, step.question(), step.def)
		if err != nil {
			return envfile.Values{}, err
		}
		*step.dst = answer
	}

	return v.WithDefaults(defaults), nil
}

func askValid(ctx context.Context, p Prompter, question, def string) (string, error) {
	q := question
	var invalid error
	for range maxAttempts {
		answer, err := p.Ask(ctx, q, def)
		if err != nil {
			return "", err
		}
		if invalid = envfile.CheckValue(answer); invalid == nil {
			return answer, nil
		}
		q = fmt.Sprintf("%s (%v)", question, invalid)
	}
	return "", fmt.Errorf("%s: %w", question, invalid)
}

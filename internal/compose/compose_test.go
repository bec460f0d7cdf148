package compose

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/pgsetup/internal/runner"
)

func TestUp(t *testing.T) {
	ctx := context.Background()

	t.Run("default command with dir and env", func(t *testing.T) {
		fake := runner.NewFake()
		c, err := New(fake, "", "", WithDir("/project"), WithEnv([]string{"POSTGRES_USER=admin"}))
		require.NoError(t, err)

		_, err = c.Up(ctx)
		require.NoError(t, err)

		require.Len(t, fake.Calls, 1)
		call := fake.Calls[0]
		assert.Equal(t, "docker compose up -d --build", call.String())
		assert.Equal(t, "/project", call.Dir)
		assert.Equal(t, []string{"POSTGRES_USER=admin"}, call.Env)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		fake := runner.NewFake().On("docker compose up", runner.Result{ExitCode: 1, Stderr: "no configuration file provided"}, nil)
		c, err := New(fake, "", "")
		require.NoError(t, err)

		_, err = c.Up(ctx)
		require.ErrorIs(t, err, ErrComposeFailed)
		assert.Contains(t, err.Error(), "no configuration file provided")
	})

	t.Run("docker missing", func(t *testing.T) {
		fake := runner.NewFake().Missing("docker")
		c, err := New(fake, "", "")
		require.NoError(t, err)

		_, err = c.Up(ctx)
		assert.ErrorIs(t, err, ErrDockerNotFound)
		assert.Empty(t, fake.Calls)
	})

	t.Run("custom command line", func(t *testing.T) {
		fake := runner.NewFake()
		c, err := New(fake, `podman compose -f "dev compose.yml" up -d`, "podman ps")
		require.NoError(t, err)

		_, err = c.Up(ctx)
		require.NoError(t, err)
		assert.Equal(t, "podman", fake.Calls[0].Name)
		assert.Equal(t, []string{"compose", "-f", "dev compose.yml", "up", "-d"}, fake.Calls[0].Args)
	})
}

func TestPs(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stdout", func(t *testing.T) {
		fake := runner.NewFake().On("docker ps", runner.Result{Stdout: "CONTAINER ID   IMAGE\nabc123   postgres\n"}, nil)
		c, err := New(fake, "", "")
		require.NoError(t, err)

		out, err := c.Ps(ctx)
		require.NoError(t, err)
		assert.Contains(t, out, "postgres")
	})

	t.Run("failure", func(t *testing.T) {
		fake := runner.NewFake().On("docker ps", runner.Result{ExitCode: 1, Stderr: "Cannot connect to the Docker daemon"}, nil)
		c, err := New(fake, "", "")
		require.NoError(t, err)

		_, err = c.Ps(ctx)
		assert.ErrorIs(t, err, ErrPsFailed)
	})
}

func TestNewRejectsBlankCommands(t *testing.T) {
	_, err := New(runner.NewFake(), "   ", "")
	assert.ErrorIs(t, err, runner.ErrEmptyCommand)
}

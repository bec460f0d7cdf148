package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, result map[string]any)
	}{
		{
			name: "env map",
			data: map[string]string{"POSTGRES_USER": "admin"},
			validate: func(t *testing.T, result map[string]any) {
				data := result["data"].(map[string]any)
				assert.Equal(t, "admin", data["POSTGRES_USER"])
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, result map[string]any) {
				assert.Equal(t, "simple string", result["data"])
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]any) {
				assert.Nil(t, result["data"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(true, false)
			require.NoError(t, f.Success(tt.data))

			var result map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &result), out.String())
			assert.Equal(t, true, result["success"])
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f, out, _ := newFormatter(false, true)
	require.NoError(t, f.Success(map[string]string{"A": "1"}))
	assert.Empty(t, out.String())
}

func TestOutputFormatter_Success_HumanMapSorted(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	require.NoError(t, f.Success(map[string]string{
		"POSTGRES_USER": "admin",
		"PGADMIN_PORT":  "8080",
	}))
	assert.Equal(t, "PGADMIN_PORT=8080\nPOSTGRES_USER=admin\n", out.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		f, out, errOut := newFormatter(true, false)
		require.NoError(t, f.ErrorWithSuggestion("ENV_NOT_FOUND", "no .env", "run pgsetup"))

		var result map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		assert.Equal(t, false, result["success"])
		errData := result["error"].(map[string]any)
		assert.Equal(t, "ENV_NOT_FOUND", errData["code"])
		assert.Equal(t, "run pgsetup", errData["suggestion"])
		assert.Empty(t, errOut.String())
	})

	t.Run("human", func(t *testing.T) {
		f, out, errOut := newFormatter(false, false)
		require.NoError(t, f.Error("COMPOSE_FAILED", "compose exited 1"))
		assert.Empty(t, out.String())
		assert.Equal(t, "❌ Error: compose exited 1\n", errOut.String())
	})
}

func TestExitCodeError(t *testing.T) {
	inner := assert.AnError
	err := WithExitCode(ExitError, inner)

	var coded *ExitCodeError
	require.ErrorAs(t, err, &coded)
	assert.Equal(t, ExitError, coded.Code)
	assert.ErrorIs(t, err, inner)
}

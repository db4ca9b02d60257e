package system_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arthur-debert/hop/pkg/errors"
	"github.com/arthur-debert/hop/pkg/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lines []string
	}{
		{"single line", "Y\n", []string{"Y"}},
		{"no trailing newline", "Y", []string{"Y"}},
		{"windows line ending", "y\r\n", []string{"y"}},
		{"empty line", "\n", []string{""}},
		{"one line per call", "n\nY\n", []string{"n", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prod := system.New(system.Options{In: strings.NewReader(tt.input), Out: &bytes.Buffer{}})

			for _, want := range tt.lines {
				got, err := prod.Readln()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestConsole_ReadlnAtEOF(t *testing.T) {
	prod := system.New(system.Options{In: strings.NewReader(""), Out: &bytes.Buffer{}})

	_, err := prod.Readln()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInput))
}

func TestConsole_Println(t *testing.T) {
	var out bytes.Buffer
	prod := system.New(system.Options{In: strings.NewReader(""), Out: &out})

	prod.Println("first")
	prod.Println("second")

	assert.Equal(t, "first\nsecond\n", out.String())
}

func TestScriptedIO(t *testing.T) {
	var out bytes.Buffer
	io := system.NewScriptedIO(&out, "y")

	io.Println("Are you sure?")
	line, err := io.Readln()
	require.NoError(t, err)
	assert.Equal(t, "y", line)

	_, err = io.Readln()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInput))
	assert.Equal(t, "Are you sure?\n", out.String())
}

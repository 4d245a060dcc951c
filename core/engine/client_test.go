package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"NoWhitespace", "Dune", "Dune"},
		{"SingleSpace", "Frank Herbert", "Frank_Herbert"},
		{"Run", "The  Left   Hand", "The_Left_Hand"},
		{"Tabs", "a\tb", "a_b"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeArg(tt.in))
		})
	}
}

func TestDecodeSnapshot(t *testing.T) {
	t.Run("Empty output is an empty collection", func(t *testing.T) {
		books, err := decodeSnapshot([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, books)
		assert.NotNil(t, books)
	})

	t.Run("Null normalizes to empty", func(t *testing.T) {
		books, err := decodeSnapshot([]byte("null"))
		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("Valid array", func(t *testing.T) {
		payload := `[{"id":7,"title":"Dune","author":"Frank_Herbert","category":"scifi","totalCopies":2,"available":1}]`
		books, err := decodeSnapshot([]byte(payload))
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, 7, books[0].ID)
		assert.Equal(t, "Dune", books[0].Title)
		assert.Equal(t, 2, books[0].TotalCopies)
		assert.Equal(t, 1, books[0].Available)
	})

	t.Run("Non-array payload is a failure", func(t *testing.T) {
		_, err := decodeSnapshot([]byte(`{"error":"boom"}`))
		assert.Error(t, err)
	})

	t.Run("Truncated payload is a failure", func(t *testing.T) {
		_, err := decodeSnapshot([]byte(`[{"id":7,`))
		assert.Error(t, err)
	})
}

func TestNewClient_MissingBinary(t *testing.T) {
	_, err := NewClient(Config{Binary: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

// writeFakeEngine drops a shell script that plays the engine role.
func writeFakeEngine(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "library_cli")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

func TestClient_RunSuccess(t *testing.T) {
	bin := writeFakeEngine(t, `printf '[{"id":1,"title":"Dune","author":"Frank_Herbert","category":"scifi","totalCopies":2,"available":2}]'`)

	client, err := NewClient(Config{Binary: bin, Dir: filepath.Dir(bin), TimeoutSeconds: 5})
	require.NoError(t, err)

	books, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestClient_RunFailure(t *testing.T) {
	bin := writeFakeEngine(t, `echo "no such book" >&2; exit 1`)

	client, err := NewClient(Config{Binary: bin, Dir: filepath.Dir(bin), TimeoutSeconds: 5})
	require.NoError(t, err)

	_, err = client.Issue(context.Background(), 42)
	require.Error(t, err)

	var engErr *Error
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, "issue", engErr.Command)
	assert.Contains(t, engErr.Stderr, "no such book")
}

func TestClient_MalformedOutputIsFailure(t *testing.T) {
	bin := writeFakeEngine(t, `printf 'not json at all'`)

	client, err := NewClient(Config{Binary: bin, Dir: filepath.Dir(bin), TimeoutSeconds: 5})
	require.NoError(t, err)

	_, err = client.List(context.Background())
	var engErr *Error
	require.ErrorAs(t, err, &engErr)
}

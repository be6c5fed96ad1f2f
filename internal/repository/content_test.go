package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validContent = `[
  {"titulo": "Primera", "pista": "una pista", "respuesta": "Rio"},
  {"titulo": "Segunda", "respuesta": "Sol", "felicidades": "¡Bien!"}
]`

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contenido.json")
	require.NoError(t, os.WriteFile(path, []byte(validContent), 0o644))

	repo := NewContentRepository(path, time.Second)
	questions, err := repo.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, questions, 2)
	assert.Equal(t, "Rio", questions[0].Respuesta)
	assert.Equal(t, "¡Bien!", questions[1].Felicidades)
}

func TestLoadFromFileRereadsOnEveryCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contenido.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	repo := NewContentRepository(path, time.Second)
	questions, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, questions)

	require.NoError(t, os.WriteFile(path, []byte(validContent), 0o644))
	questions, err = repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestLoadFromHTTP(t *testing.T) {
	var gotTS []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTS = append(gotTS, r.URL.Query().Get("ts"))
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		_, _ = w.Write([]byte(validContent))
	}))
	defer srv.Close()

	repo := NewContentRepository(srv.URL+"/contenido.json", time.Second)

	questions, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, questions, 2)

	_, err = repo.Load(context.Background())
	require.NoError(t, err)

	// Every request carries a fresh cache-busting parameter.
	require.Len(t, gotTS, 2)
	assert.NotEmpty(t, gotTS[0])
	assert.NotEmpty(t, gotTS[1])
	assert.NotEqual(t, gotTS[0], gotTS[1])
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	repo := NewContentRepository(srv.URL, time.Second)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrContentUnavailable)
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewContentRepository(filepath.Join(t.TempDir(), "nope.json"), time.Second)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrContentUnavailable)
}

func TestLoadNonArrayPayload(t *testing.T) {
	payloads := map[string]string{
		"object": `{"titulo": "no soy una lista"}`,
		"null":   `null`,
		"string": `"hola"`,
		"number": `42`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "contenido.json")
			require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

			repo := NewContentRepository(path, time.Second)
			_, err := repo.Load(context.Background())
			assert.ErrorIs(t, err, ErrContentMalformed)
		})
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contenido.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{`), 0o644))

	repo := NewContentRepository(path, time.Second)
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrContentMalformed)
}

func TestProbe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contenido.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

	assert.NoError(t, NewContentRepository(path, time.Second).Probe())
	assert.Error(t, NewContentRepository("", time.Second).Probe())
	assert.Error(t, NewContentRepository("/no/such/file.json", time.Second).Probe())
	assert.NoError(t, NewContentRepository("http://localhost:5173/contenido.json", time.Second).Probe())
}

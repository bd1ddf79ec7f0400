package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/infrastructure/storage"
)

func newTestStorage(t *testing.T) (*storage.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := storage.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)
	return s, dir
}

func TestSave_EscribeArchivoYDevuelveRutaPublica(t *testing.T) {
	s, dir := newTestStorage(t)

	url, err := s.Save(context.Background(), "foto producto.jpg", "image/jpeg", []byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/"), "la URL debe usar el prefijo público")
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
}

func TestSave_NombresUnicosParaElMismoArchivo(t *testing.T) {
	s, _ := newTestStorage(t)

	url1, err := s.Save(context.Background(), "foto.png", "image/png", []byte{1})
	require.NoError(t, err)
	url2, err := s.Save(context.Background(), "foto.png", "image/png", []byte{2})
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2, "dos uploads del mismo nombre no deben colisionar")
}

func TestSave_SaneaNombresPeligrosos(t *testing.T) {
	s, dir := newTestStorage(t)

	_, err := s.Save(context.Background(), "../../etc/passwd.png", "image/png", []byte{1})
	require.NoError(t, err)

	// El archivo queda dentro del directorio de uploads, sin path traversal.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "..")
}

func TestSave_RechazaTiposNoPermitidos(t *testing.T) {
	s, _ := newTestStorage(t)

	cases := []string{"image/gif", "application/pdf", "text/html", ""}
	for _, contentType := range cases {
		_, err := s.Save(context.Background(), "archivo", contentType, []byte{1})
		assert.Error(t, err, "content type %q debe rechazarse", contentType)
	}
}

func TestSave_RechazaVacioYDemasiadoGrande(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.Save(context.Background(), "foto.jpg", "image/jpeg", nil)
	assert.Error(t, err, "archivo vacío debe rechazarse")

	huge := make([]byte, (5<<20)+1)
	_, err = s.Save(context.Background(), "foto.jpg", "image/jpeg", huge)
	assert.Error(t, err, "archivo sobre el límite debe rechazarse")
}

package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/ports"
)

var _ ports.ImageStorage = (*LocalStorage)(nil)

// Tipos de imagen aceptados para fotos de producto.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

const maxImageSize = 5 << 20 // 5 MiB

// LocalStorage guarda imágenes de producto en disco local y devuelve la ruta
// pública con la que el frontend puede servirlas.
type LocalStorage struct {
	dir          string
	publicPrefix string
}

// NewLocalStorage crea el directorio de uploads si no existe.
func NewLocalStorage(dir, publicPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalStorage{dir: dir, publicPrefix: publicPrefix}, nil
}

// Save valida tipo y tamaño, escribe el archivo con un nombre único y
// devuelve la URL pública relativa (por ejemplo "/uploads/ab12cd34_foto.jpg").
func (s *LocalStorage) Save(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("storage: archivo vacío")
	}
	if len(data) > maxImageSize {
		return "", fmt.Errorf("storage: archivo demasiado grande (%d bytes, máximo %d)", len(data), maxImageSize)
	}

	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("storage: tipo de imagen no permitido: %s", contentType)
	}

	name := uniqueName(filename, ext)
	dst := filepath.Join(s.dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir %s: %w", dst, err)
	}

	return path.Join(s.publicPrefix, name), nil
}

// uniqueName antepone un prefijo aleatorio al nombre saneado para evitar
// colisiones y path traversal.
func uniqueName(filename, ext string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = sanitize(base)
	if base == "" {
		base = "imagen"
	}
	prefix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s_%s%s", prefix, base, ext)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

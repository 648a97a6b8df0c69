// Package storage guarda los archivos subidos por el panel de administración
// en disco, bajo nombres únicos, y los expone por una ruta pública estática.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// MaxUploadBytes límite de tamaño por archivo.
const MaxUploadBytes = 10 << 20 // 10 MiB

// thumbWidth ancho de la miniatura generada para los listados del panel.
const thumbWidth = 400

var allowedExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// Store escribe archivos bajo baseDir y devuelve rutas bajo publicPath.
// La escritura es append-only: los nombres generados nunca colisionan, así
// que subidas concurrentes no se pisan. Los archivos no se limpian cuando
// el registro dueño se borra (limitación conocida).
type Store struct {
	baseDir    string
	publicPath string
}

// NewStore crea el directorio base (y el de miniaturas) si no existen.
func NewStore(baseDir, publicPath string) (*Store, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("storage: directorio base requerido")
	}
	if err := os.MkdirAll(filepath.Join(baseDir, "thumbs"), 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &Store{baseDir: baseDir, publicPath: strings.TrimRight(publicPath, "/")}, nil
}

// Save escribe el archivo con un nombre único y devuelve su ruta pública
// (/uploads/<generado>). Rechaza extensiones no permitidas y archivos que
// superen MaxUploadBytes.
func (s *Store) Save(originalName string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExts[ext] {
		return "", fmt.Errorf("tipo de archivo no permitido: %q", ext)
	}
	if size > MaxUploadBytes {
		return "", fmt.Errorf("archivo demasiado grande: %d bytes (máx %d)", size, MaxUploadBytes)
	}

	name := generateName(originalName)
	target := filepath.Join(s.baseDir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, io.LimitReader(r, MaxUploadBytes+1)); err != nil {
		return "", fmt.Errorf("escribir archivo: %w", err)
	}

	// Miniatura best-effort: si el archivo no decodifica como imagen se
	// conserva igual el original.
	s.makeThumbnail(target, name)

	return path.Join(s.publicPath, name), nil
}

// Dir devuelve el directorio base, para montarlo como estático.
func (s *Store) Dir() string { return s.baseDir }

// PublicPath devuelve el prefijo público bajo el que se sirven los archivos.
func (s *Store) PublicPath() string { return s.publicPath }

func (s *Store) makeThumbnail(target, name string) {
	img, err := imaging.Open(target, imaging.AutoOrientation(true))
	if err != nil {
		return
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	_ = imaging.Save(thumb, filepath.Join(s.baseDir, "thumbs", name))
}

// generateName produce <unixMilli>-<uuid corto>-<nombre saneado>. El sufijo
// aleatorio evita colisiones entre dos subidas del mismo nombre dentro del
// mismo milisegundo.
func generateName(originalName string) string {
	return fmt.Sprintf("%d-%s-%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		safeFilename(originalName),
	)
}

func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.TrimSpace(name)
	if name == "" || name == "." {
		return "upload"
	}
	return name
}

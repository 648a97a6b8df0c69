// Package imageprobe resuelve la imagen de un formulario de contenido: un
// archivo local seleccionado o una URL remota verificada con una sonda
// asíncrona (GET + decodificación de cabecera de imagen).
package imageprobe

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"sync"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// State estado de resolución de imagen de una sesión.
type State int

const (
	// StateEmpty sin archivo ni URL.
	StateEmpty State = iota
	// StateFileSelected hay archivo local; gana sobre cualquier URL.
	StateFileSelected
	// StateURLPending hay una sonda en vuelo para la última URL.
	StateURLPending
	// StateURLValid la última sonda confirmó que la URL es una imagen.
	StateURLValid
	// StateURLInvalid la última sonda falló (red, status o decodificación).
	StateURLInvalid
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateFileSelected:
		return "file_selected"
	case StateURLPending:
		return "url_pending"
	case StateURLValid:
		return "url_valid"
	case StateURLInvalid:
		return "url_invalid"
	}
	return "unknown"
}

// ErrNoImage la sesión no tiene imagen utilizable para enviar.
var ErrNoImage = errors.New("imageprobe: sin imagen válida")

// Prober verifica que una URL apunte a una imagen. Se abstrae para los tests;
// el default hace GET y decodifica la cabecera.
type Prober interface {
	Probe(ctx context.Context, url string) error
}

// HTTPProber sonda real sobre http.Client.
type HTTPProber struct {
	Client *http.Client
}

// Probe hace GET y decodifica la cabecera de imagen del cuerpo.
func (p *HTTPProber) Probe(ctx context.Context, url string) error {
	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("imageprobe: status %d", resp.StatusCode)
	}
	if _, _, err := image.DecodeConfig(resp.Body); err != nil {
		return fmt.Errorf("imageprobe: no es una imagen: %w", err)
	}
	return nil
}

// Session resolución de imagen de UN formulario. Estado explícito por
// instancia; nada a nivel de paquete.
//
// Cada SetURL lanza una sonda con un token creciente; al completar, la sonda
// solo aplica su resultado si su token sigue siendo el vigente. Así una URL
// corregida rápido nunca es pisada por el resultado tardío de la anterior.
type Session struct {
	mu sync.Mutex

	state        State
	filePath     string
	url          string
	lastValidURL string

	token uint64
	done  chan struct{} // se cierra al aterrizar la sonda vigente

	prober Prober
}

// NewSession crea una sesión vacía con la sonda dada (nil = HTTP real).
func NewSession(p Prober) *Session {
	if p == nil {
		p = &HTTPProber{}
	}
	return &Session{state: StateEmpty, prober: p}
}

// State devuelve el estado actual.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SelectFile fija un archivo local. Gana sobre cualquier URL en curso.
func (s *Session) SelectFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = path
	s.state = StateFileSelected
}

// ClearFile quita el archivo. Si hubo una URL válida antes, vuelve a ella;
// si no, a vacío.
func (s *Session) ClearFile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = ""
	if s.lastValidURL != "" {
		s.url = s.lastValidURL
		s.state = StateURLValid
		return
	}
	s.state = StateEmpty
}

// SetURL registra la URL y lanza la sonda asíncrona. Supersede cualquier
// sonda previa: su resultado, cuando llegue, será descartado por token.
// Con archivo seleccionado la sonda corre igual (para tener lastValidURL al
// hacer ClearFile) pero el estado visible sigue siendo FileSelected.
func (s *Session) SetURL(url string) {
	s.mu.Lock()
	s.url = url
	s.token++
	token := s.token
	done := make(chan struct{})
	s.done = done
	if s.filePath == "" {
		s.state = StateURLPending
	}
	s.mu.Unlock()

	go s.probe(url, token, done)
}

func (s *Session) probe(url string, token uint64, done chan struct{}) {
	err := s.prober.Probe(context.Background(), url)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		// Resultado viejo: otra SetURL lo superó. No se toca nada.
		return
	}
	if err == nil {
		s.lastValidURL = url
		if s.filePath == "" {
			s.state = StateURLValid
		}
	} else if s.filePath == "" {
		s.state = StateURLInvalid
	}
	close(done)
}

// WaitValid espera a que la imagen quede utilizable: archivo seleccionado o
// URL validada. Resuelve por canal de completación contra el timeout y el
// contexto; nunca sondea estado en bucle. Pendiente al vencer el plazo cuenta
// como inválida.
func (s *Session) WaitValid(ctx context.Context, timeout time.Duration) bool {
	s.mu.Lock()
	state := s.state
	done := s.done
	token := s.token
	s.mu.Unlock()

	switch state {
	case StateFileSelected, StateURLValid:
		return true
	case StateEmpty, StateURLInvalid:
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Si entró otra SetURL mientras esperábamos, el resultado ya no habla
	// de la URL vigente.
	return s.token == token && s.state == StateURLValid
}

// Resolved devuelve la imagen a enviar: (ruta de archivo, "", nil),
// ("", url, nil) o ErrNoImage si la sesión no pasa la compuerta de envío.
func (s *Session) Resolved(ctx context.Context, timeout time.Duration) (filePath, url string, err error) {
	s.mu.Lock()
	if s.state == StateFileSelected {
		path := s.filePath
		s.mu.Unlock()
		return path, "", nil
	}
	u := s.url
	s.mu.Unlock()

	if u == "" {
		return "", "", ErrNoImage
	}
	if !s.WaitValid(ctx, timeout) {
		return "", "", ErrNoImage
	}
	return "", u, nil
}

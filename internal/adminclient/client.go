// Package adminclient es el cliente tipado del panel de administración:
// login, alta y borrado de contenido y estadísticas contra la API del portal.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/museum-portal/internal/application/dto"
	"github.com/jhoicas/museum-portal/pkg/imageprobe"
)

// Kind clase de error del cliente, verificable con errors.As + switch.
type Kind string

const (
	KindNetwork    Kind = "network"    // la petición no llegó o no volvió
	KindAuth       Kind = "auth"       // 401/403: credenciales o permisos
	KindValidation Kind = "validation" // 400 con campos o mensajes
	KindNotFound   Kind = "not_found"  // 404
	KindServer     Kind = "server"     // 5xx
	KindImage      Kind = "image"      // la imagen del draft no pasó la compuerta
	KindCancelled  Kind = "cancelled"  // el usuario no confirmó el borrado
)

// APIError error único del cliente, construido una sola vez en el borde de
// la respuesta HTTP.
type APIError struct {
	Kind        Kind
	Message     string
	FieldErrors []string
}

func (e *APIError) Error() string {
	if len(e.FieldErrors) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(e.FieldErrors, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Notifier recibe el desenlace de cada submit/delete. La UI del panel lo
// implementa con toasts; los tests con un recorder.
type Notifier interface {
	Success(operation, message string)
	Failure(operation string, err error)
}

// ConfirmFunc pregunta antes de un borrado. false = no se emite la petición.
type ConfirmFunc func(resource, id string) bool

// Client cliente HTTP del panel. El token se guarda tras Login y se descarta
// ante cualquier 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	notifier   Notifier

	mu    sync.Mutex
	token string
}

// New construye el cliente.
func New(baseURL string, notifier Notifier) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		notifier:   notifier,
	}
}

// Token devuelve el token vigente ("" si no hay sesión).
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Login autentica y guarda el token para las siguientes llamadas.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	body, _ := json.Marshal(dto.LoginRequest{Email: email, Password: password})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFrom(resp)
	}
	var out dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &APIError{Kind: KindServer, Message: "respuesta de login ilegible"}
	}
	c.mu.Lock()
	c.token = out.Token
	c.mu.Unlock()
	return &out, nil
}

// SubmitDraft crea contenido bajo /api/admin/<resource> ("collections",
// "events"...) con los campos dados. La imagen sale de la sesión de imageprobe: archivo → multipart,
// URL validada → JSON con imageUrl, nada → KindImage si la compuerta no abre.
// session puede ser nil cuando el formulario no maneja imagen.
func (c *Client) SubmitDraft(ctx context.Context, resource string, fields map[string]string, session *imageprobe.Session) error {
	const op = "create"
	err := c.submitDraft(ctx, resource, fields, session)
	if err != nil {
		c.notifier.Failure(op+" "+resource, err)
		return err
	}
	c.notifier.Success(op+" "+resource, resource+" creado")
	return nil
}

func (c *Client) submitDraft(ctx context.Context, resource string, fields map[string]string, session *imageprobe.Session) error {
	var filePath string
	payload := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}

	if session != nil {
		path, url, err := session.Resolved(ctx, 5*time.Second)
		switch {
		case err != nil && session.State() != imageprobe.StateEmpty:
			// Había imagen en juego pero no quedó utilizable.
			return &APIError{Kind: KindImage, Message: "la imagen no está validada"}
		case path != "":
			filePath = path
		case url != "":
			payload["imageUrl"] = url
		}
	}

	var req *http.Request
	var err error
	if filePath != "" {
		req, err = c.multipartRequest(ctx, resource, payload, filePath)
	} else {
		req, err = c.jsonRequest(ctx, resource, payload)
	}
	if err != nil {
		return err
	}
	return c.do(req, http.StatusCreated)
}

// Delete borra resource/id previa confirmación. Sin confirmación no se emite
// petición alguna y el desenlace es KindCancelled.
func (c *Client) Delete(ctx context.Context, resource, id string, confirm ConfirmFunc) error {
	op := "delete " + resource
	if confirm == nil || !confirm(resource, id) {
		err := &APIError{Kind: KindCancelled, Message: "borrado no confirmado"}
		c.notifier.Failure(op, err)
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		fmt.Sprintf("%s/api/admin/%s/%s", c.baseURL, resource, id), nil)
	if err != nil {
		err := &APIError{Kind: KindNetwork, Message: err.Error()}
		c.notifier.Failure(op, err)
		return err
	}
	if err := c.do(req, http.StatusOK); err != nil {
		c.notifier.Failure(op, err)
		return err
	}
	c.notifier.Success(op, resource+" eliminado")
	return nil
}

// Stats trae los contadores del dashboard.
func (c *Client) Stats(ctx context.Context) (*dto.StatsDTO, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/stats", nil)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	c.authorize(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFrom(resp)
	}
	var wrapper struct {
		Data dto.StatsDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, &APIError{Kind: KindServer, Message: "respuesta de stats ilegible"}
	}
	return &wrapper.Data, nil
}

// ── construcción de peticiones ──────────────────────────────────────────────

func (c *Client) jsonRequest(ctx context.Context, resource string, fields map[string]string) (*http.Request, error) {
	body, _ := json.Marshal(fields)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/"+resource, bytes.NewReader(body))
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) multipartRequest(ctx context.Context, resource string, fields map[string]string, filePath string) (*http.Request, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
		}
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, &APIError{Kind: KindImage, Message: "no se pudo abrir el archivo: " + err.Error()}
	}
	defer f.Close()
	part, err := w.CreateFormFile("image", filepath.Base(filePath))
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	if err := w.Close(); err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/"+resource, &buf)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}

// ── ejecución y borde de errores ────────────────────────────────────────────

func (c *Client) authorize(req *http.Request) {
	if t := c.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
}

func (c *Client) do(req *http.Request, wantStatus int) error {
	c.authorize(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		return c.errorFrom(resp)
	}
	return nil
}

// errorFrom construye el APIError único a partir de la respuesta. Un 401
// invalida el token guardado: la sesión del panel expiró.
func (c *Client) errorFrom(resp *http.Response) *APIError {
	var body dto.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	msg := body.Message
	if msg == "" {
		msg = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		return &APIError{Kind: KindAuth, Message: msg}
	case resp.StatusCode == http.StatusForbidden:
		return &APIError{Kind: KindAuth, Message: msg}
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{Kind: KindNotFound, Message: msg}
	case resp.StatusCode == http.StatusBadRequest:
		fieldErrs := body.Errors
		if len(fieldErrs) == 0 {
			fieldErrs = body.Fields
		}
		return &APIError{Kind: KindValidation, Message: msg, FieldErrors: fieldErrs}
	default:
		return &APIError{Kind: KindServer, Message: msg}
	}
}

package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/museum-portal/internal/application/auth"
	"github.com/jhoicas/museum-portal/internal/application/usecase"
	"github.com/jhoicas/museum-portal/internal/domain/entity"
	infrapdf "github.com/jhoicas/museum-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/museum-portal/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/museum-portal/internal/interfaces/http"
	"github.com/jhoicas/museum-portal/pkg/logger"
)

type testEnv struct {
	app         *fiber.App
	users       *fakeUserRepo
	collections *fakeCollectionRepo
	events      *fakeEventRepo
	news        *fakeNewsRepo
	contacts    *fakeContactRepo
	exhibitions *fakeExhibitionRepo
}

// newTestEnv monta la API completa sobre repos en memoria, con un admin y un
// viewer ya registrados.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:       &fakeUserRepo{},
		collections: newFakeCollectionRepo(),
		events:      newFakeEventRepo(),
		news:        &fakeNewsRepo{},
		contacts:    &fakeContactRepo{},
		exhibitions: newFakeExhibitionRepo(),
	}

	seedUser(t, env.users, "admin@museum.gov.in", "Admin@123", entity.RoleAdmin, entity.StatusActive)
	seedUser(t, env.users, "viewer@museum.gov.in", "Viewer@123", entity.RoleViewer, entity.StatusActive)
	seedUser(t, env.users, "inactive@museum.gov.in", "Inactive@123", entity.RoleEditor, entity.StatusInactive)

	store, err := storage.NewStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	log := logger.New(logger.Config{Env: "production", Level: "error"})

	env.app = fiber.New()
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(env.users, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		CollectionUC: usecase.NewCollectionUseCase(env.collections),
		ExhibitionUC: usecase.NewExhibitionUseCase(env.exhibitions),
		EventUC:      usecase.NewEventUseCase(env.events),
		NewsUC:       usecase.NewNewsUseCase(env.news),
		ContactUC:    usecase.NewContactUseCase(env.contacts),
		StatsUC:      usecase.NewStatsUseCase(env.collections, env.exhibitions, env.events, env.news, env.contacts),
		Store:        store,
		Report:       infrapdf.NewStatsReportGenerator("Museo Test"),
		JWTSecret:    testJWTSecret,
		SiteURL:      "http://museum.test",
		StoreReady:   func() bool { return true },
		Log:          log,
		Dev:          false,
	})
	return env
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role, status string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(nil, &entity.User{
		Name: email, Email: email, PasswordHash: string(hash),
		Role: role, Status: status, CreatedAt: time.Now(),
	}))
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (env *testEnv) loginToken(t *testing.T, email, password string) string {
	t.Helper()
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@museum.gov.in", "password": "Admin@123",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])
}

// Email desconocido y password incorrecto devuelven la misma respuesta 401.
func TestLogin_CredencialesInvalidasNoDistinguen(t *testing.T) {
	env := newTestEnv(t)

	respUnknown := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nadie@museum.gov.in", "password": "Admin@123",
	})
	bodyUnknown := decodeBody(t, respUnknown)

	respWrong := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "admin@museum.gov.in", "password": "incorrecta",
	})
	bodyWrong := decodeBody(t, respWrong)

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, bodyUnknown["message"], bodyWrong["message"],
		"email desconocido y password incorrecto no deben distinguirse")
}

func TestLogin_CuentaInactiva(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "inactive@museum.gov.in", "password": "Inactive@123",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INACTIVE_ACCOUNT", body["code"],
		"cuenta inactiva se reporta con su propio código")
}

func TestRegister_SoloAdmin(t *testing.T) {
	env := newTestEnv(t)
	viewerTok := env.loginToken(t, "viewer@museum.gov.in", "Viewer@123")

	resp := env.do(t, http.MethodPost, "/api/auth/register", viewerTok, map[string]string{
		"name": "X", "email": "x@museum.gov.in", "password": "Password1",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminTok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	resp = env.do(t, http.MethodPost, "/api/auth/register", adminTok, map[string]string{
		"name": "X", "email": "x@museum.gov.in", "password": "Password1", "role": "editor",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	env := newTestEnv(t)
	adminTok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")

	resp := env.do(t, http.MethodPost, "/api/auth/register", adminTok, map[string]string{
		"name": "Otro", "email": "viewer@museum.gov.in", "password": "Password1",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", body["code"])
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	resp := env.do(t, http.MethodGet, "/api/auth/me", tok, nil)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "admin@museum.gov.in", data["email"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Collections
// ──────────────────────────────────────────────────────────────────────────────

func createCollection(t *testing.T, env *testEnv, tok string) string {
	t.Helper()
	resp := env.do(t, http.MethodPost, "/api/admin/collections", tok, map[string]string{
		"title": "Kangla Sha", "description": "d", "category": "Archaeology",
		"period": "s. XIX", "origin": "Imphal",
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "%v", body)
	return body["data"].(map[string]any)["id"].(string)
}

func TestCollection_CrearFaltanCampos(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")

	resp := env.do(t, http.MethodPost, "/api/admin/collections", tok, map[string]string{
		"title": "solo título",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	fields := body["fields"].([]any)
	assert.Len(t, fields, 4, "debe enumerar todos los campos faltantes: %v", fields)
}

func TestCollection_GetIncrementaVistas(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	id := createCollection(t, env, tok)

	for want := 1; want <= 3; want++ {
		resp := env.do(t, http.MethodGet, "/api/collections/"+id, "", nil)
		body := decodeBody(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(want), data["viewCount"],
			"cada lectura secuencial suma exactamente una vista")
	}
}

// Dos lecturas concurrentes del mismo id. El contador se actualiza con
// leer-modificar-escribir, así que una vista puede perderse, pero el total
// nunca queda en cero ni pasa de dos.
func TestCollection_VistasConcurrentes(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	id := createCollection(t, env, tok)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/collections/"+id, nil)
			resp, err := env.app.Test(req, -1)
			if err != nil {
				errs <- err
				return
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				errs <- fmt.Errorf("status inesperado %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	env.collections.mu.Lock()
	count := env.collections.items[id].ViewCount
	env.collections.mu.Unlock()
	assert.GreaterOrEqual(t, count, 1, "al menos una de las dos vistas debe contarse")
	assert.LessOrEqual(t, count, 2, "dos lecturas no pueden sumar más de dos vistas")
}

func TestCollection_GetInexistente404(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/collections/64f000000000000000000099", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCollection_DeleteNoEsIdempotente(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	id := createCollection(t, env, tok)

	resp := env.do(t, http.MethodDelete, "/api/admin/collections/"+id, tok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// El segundo borrado del mismo id falla: el contrato no es idempotente.
	resp = env.do(t, http.MethodDelete, "/api/admin/collections/"+id, tok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCollection_DeleteRequiereAdmin(t *testing.T) {
	env := newTestEnv(t)
	adminTok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	id := createCollection(t, env, adminTok)

	viewerTok := env.loginToken(t, "viewer@museum.gov.in", "Viewer@123")
	resp := env.do(t, http.MethodDelete, "/api/admin/collections/"+id, viewerTok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Sin token es 401, no 403.
	resp = env.do(t, http.MethodDelete, "/api/admin/collections/"+id, "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCollection_ListPublica(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	createCollection(t, env, tok)

	resp := env.do(t, http.MethodGet, "/api/collections", "", nil)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 1)
}

func TestCollection_Update(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	id := createCollection(t, env, tok)

	resp := env.do(t, http.MethodPut, "/api/admin/collections/"+id, tok, map[string]string{
		"material": "Bronce",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Bronce", data["material"])
	assert.Equal(t, "Kangla Sha", data["title"], "el update parcial no debe tocar otros campos")
}

// ──────────────────────────────────────────────────────────────────────────────
// News, eventos y contacto
// ──────────────────────────────────────────────────────────────────────────────

func TestNews_CrearYListar(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")

	resp := env.do(t, http.MethodPost, "/api/admin/news", tok, map[string]string{
		"title":   "Nueva sala",
		"excerpt": "Se inaugura la sala de textiles",
		"content": `<p>Detalle</p><script>alert(1)</script>`,
	})
	body := decodeBody(t, resp)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "%v", body)
	data := body["data"].(map[string]any)
	assert.NotContains(t, data["content"], "script", "el HTML debe llegar sanitizado")

	resp = env.do(t, http.MethodGet, "/api/news", "", nil)
	body = decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 1)
}

func TestNews_FeedRSS(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	resp := env.do(t, http.MethodPost, "/api/admin/news", tok, map[string]string{
		"title": "Nueva sala", "excerpt": "resumen", "content": "cuerpo",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/news/feed", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "rss")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	feed := string(raw)
	assert.Contains(t, feed, "<rss")
	assert.Contains(t, feed, "<title>Nueva sala</title>")
	assert.Contains(t, feed, "http://museum.test/news/")
}

func TestEvent_FechaInvalida(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")

	resp := env.do(t, http.MethodPost, "/api/admin/events", tok, map[string]string{
		"title": "t", "description": "d", "date": "pasado mañana", "location": "hall",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_DATE", body["code"])
}

func TestContact_Publico(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Visitante", "email": "v@example.test", "message": "¿Horarios?",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "Visitante",
	})
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	fields := body["fields"].([]any)
	assert.ElementsMatch(t, []any{"email", "message"}, fields)
}

// ──────────────────────────────────────────────────────────────────────────────
// Admin
// ──────────────────────────────────────────────────────────────────────────────

func TestAdmin_ListarUsuariosSoloAdmin(t *testing.T) {
	env := newTestEnv(t)
	adminTok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")

	resp := env.do(t, http.MethodGet, "/api/admin/users", adminTok, nil)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]any), 3)

	viewerTok := env.loginToken(t, "viewer@museum.gov.in", "Viewer@123")
	resp = env.do(t, http.MethodGet, "/api/admin/users", viewerTok, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestStats_Contadores(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")
	createCollection(t, env, tok)

	resp := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name": "V", "email": "v@example.test", "message": "hola",
	})
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/admin/stats", tok, nil)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(1), data["collections"])
	assert.Equal(t, float64(1), data["contacts"])
	assert.Equal(t, float64(0), data["events"])
}

func TestStats_ReportePDF(t *testing.T) {
	env := newTestEnv(t)
	tok := env.loginToken(t, "admin@museum.gov.in", "Admin@123")

	resp := env.do(t, http.MethodGet, "/api/admin/stats/report", tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"), "el cuerpo debe ser un PDF")
}

func TestAPI_RutaDesconocida404JSON(t *testing.T) {
	env := newTestEnv(t)
	resp := env.do(t, http.MethodGet, "/api/nope", "", nil)
	body := decodeBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"

	"vaka.link/configs/configsdatabase"
	"vaka.link/configs/configslog"
	"vaka.link/database/seeders"
	"vaka.link/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	os.Exit(m.Run())
}

// newTestApp uygulamayı in-memory veritabanı ve geçici upload dizini ile
// uçtan uca ayağa kaldırır. Handler'lar paylaşılan bağlantıyı kullandığı için
// bağlantı rotalar kurulmadan önce enjekte edilir.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Havuzdaki her bağlantı ayrı bir in-memory veritabanı görür
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Organization{},
		&models.Tag{},
		&models.Case{},
		&models.Admin{},
	))
	require.NoError(t, seeders.SeedDefaultAdmin(db))

	configsdatabase.SetDB(db)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	app := fiber.New()
	SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, cookie *http.Cookie) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func loginAsAdmin(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"username": models.DefaultAdminUsername,
		"password": models.DefaultAdminPassword,
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "vaka_session" {
			return cookie
		}
	}
	t.Fatal("login cevabında vaka_session çerezi yok")
	return nil
}

func multipartCaseRequest(t *testing.T, method, target string, fields map[string]string, filename string, content []byte, cookie *http.Cookie) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	return req
}

func TestAuthStatusAndLoginFlow(t *testing.T) {
	app := newTestApp(t)

	var status struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	resp := doJSON(t, app, fiber.MethodGet, "/api/auth/status", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.Authenticated)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"username": models.DefaultAdminUsername,
		"password": "yanlis-parola",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	cookie := loginAsAdmin(t, app)

	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/status", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.True(t, status.Authenticated)
	assert.Equal(t, models.DefaultAdminUsername, status.Username)

	resp = doJSON(t, app, fiber.MethodPost, "/api/auth/logout", nil, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/api/auth/status", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &status)
	assert.False(t, status.Authenticated, "oturum sunucu tarafında kapatıldı")
}

func TestWriteEndpointsRequireSession(t *testing.T) {
	app := newTestApp(t)

	targets := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/cases"},
		{fiber.MethodPut, "/api/cases/1"},
		{fiber.MethodDelete, "/api/cases/1"},
		{fiber.MethodPost, "/api/organizations"},
		{fiber.MethodPut, "/api/organizations/1"},
		{fiber.MethodDelete, "/api/organizations/1"},
		{fiber.MethodPost, "/api/auth/logout"},
	}
	for _, target := range targets {
		resp := doJSON(t, app, target.method, target.path, nil, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", target.method, target.path)

		var body struct {
			Kind string `json:"kind"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "auth_error", body.Kind)
	}
}

func TestCaseLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cookie := loginAsAdmin(t, app)

	// Kurum oluştur
	var org models.Organization
	resp := doJSON(t, app, fiber.MethodPost, "/api/organizations", fiber.Map{
		"name": "Test Bankası",
	}, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &org)
	require.NotZero(t, org.ID)

	// Multipart ile vaka oluştur
	req := multipartCaseRequest(t, fiber.MethodPost, "/api/cases", map[string]string{
		"name":            "HTTP Vakası",
		"description":     "uçtan uca test",
		"organization_id": strconv.FormatUint(uint64(org.ID), 10),
		"tags":            `["finans","kredi"]`,
	}, "vaka.pdf", []byte("%PDF-1.4"), cookie)
	httpResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, httpResp.StatusCode)

	var created models.CaseView
	decodeBody(t, httpResp, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Test Bankası", created.OrganizationName)
	assert.ElementsMatch(t, []string{"finans", "kredi"}, created.Tags)

	// Public liste ve etiket uçları
	var listed []models.CaseView
	resp = doJSON(t, app, fiber.MethodGet, "/api/cases?search=http", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	var tags []models.Tag
	resp = doJSON(t, app, fiber.MethodGet, "/api/cases/meta/tags", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &tags)
	tagNames := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagNames = append(tagNames, tag.Name)
	}
	assert.ElementsMatch(t, []string{"finans", "kredi"}, tagNames)

	// İndirme takibi anonimdir ve sayacı artırır
	resp = doJSON(t, app, fiber.MethodPost, "/api/statistics/track/"+strconv.FormatUint(uint64(created.ID), 10), nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var fetched models.CaseView
	resp = doJSON(t, app, fiber.MethodGet, "/api/cases/"+strconv.FormatUint(uint64(created.ID), 10), nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &fetched)
	assert.EqualValues(t, 1, fetched.DownloadCount)

	// İstatistik raporu
	var stats []models.OrgStats
	resp = doJSON(t, app, fiber.MethodGet, "/api/statistics", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &stats)
	require.Len(t, stats, 1)
	assert.Equal(t, "Test Bankası", stats[0].Name)
	assert.EqualValues(t, 1, stats[0].TotalDownloads)

	// Sil ve yokluğunu doğrula
	resp = doJSON(t, app, fiber.MethodDelete, "/api/cases/"+strconv.FormatUint(uint64(created.ID), 10), nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/api/cases/"+strconv.FormatUint(uint64(created.ID), 10), nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateCaseRejectsBadUploadOverHTTP(t *testing.T) {
	app := newTestApp(t)
	cookie := loginAsAdmin(t, app)

	req := multipartCaseRequest(t, fiber.MethodPost, "/api/cases", map[string]string{
		"name": "Kötü Uzantı",
	}, "zararli.exe", []byte("MZ"), cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, resp.StatusCode)

	var body struct {
		Kind string `json:"kind"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "unsupported_media_type", body.Kind)

	// Dosyasız istek 400 döner
	req = multipartCaseRequest(t, fiber.MethodPost, "/api/cases", map[string]string{
		"name": "Dosyasız",
	}, "", nil, cookie)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestUnknownAPIRouteReturnsJSON404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/olmayan-uc", nil, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body struct {
		Kind string `json:"kind"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "not_found", body.Kind)
	assert.False(t, strings.Contains(resp.Header.Get("Content-Type"), "text/html"))
}

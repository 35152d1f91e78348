package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/attachment"
	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/reporting"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/infrastructure/excel"
	"github.com/jhoicas/Activos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Activos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Activos-api/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/Activos-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Activos-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "activos-api-test"
	testExpMin    = 60
)

// testEnv aplicación completa sobre repos en memoria y un afero.MemMapFs.
type testEnv struct {
	app *fiber.App
	fs  afero.Fs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := memory.NewDB()
	repos := db.Repos()
	fs := afero.NewMemMapFs()
	store, err := storage.NewFSStoreWithFs(fs)
	require.NoError(t, err)

	branchUC := usecase.NewBranchUseCase(repos.Branches, repos.Warehouses)
	warehouseUC := usecase.NewWarehouseUseCase(repos.Warehouses, repos.Branches)
	assetUC := usecase.NewAssetUseCase(db, repos.Assets, repos.Warehouses, repos.Attachments, store)
	attachmentUC := attachment.NewUseCase(db, repos.Assets, repos.Attachments, store)
	reportUC := reporting.NewUseCase(repos.Assets, repos.Warehouses, repos.Branches,
		pdf.NewMarotoLabelGenerator(), excel.NewAssetExporter())
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		BranchUC:     branchUC,
		WarehouseUC:  warehouseUC,
		AssetUC:      assetUC,
		AttachmentUC: attachmentUC,
		ReportUC:     reportUC,
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(repos.Users),
		StatsUC:      usecase.NewStatsUseCase(repos.Stats),
		JWTSecret:    testJWTSecret,
		Metrics:      apphttp.NewMetrics(prometheus.NewRegistry()),
	})
	return &testEnv{app: app, fs: fs}
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func (e *testEnv) do(t *testing.T, method, path, role string, body any) *http.Response {
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
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) upload(t *testing.T, assetID, filename, contentType string, content []byte) *http.Response {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/assets/"+assetID+"/attachment", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (e *testEnv) createBranch(t *testing.T, name string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/branches", "admin", map[string]any{"name": name, "address": "Calle " + name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)["id"].(string)
}

func (e *testEnv) createWarehouse(t *testing.T, branchID, name string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/warehouses", "admin", map[string]any{
		"branch_id": branchID, "name": name, "address": "Bodega " + name,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)["id"].(string)
}

func (e *testEnv) createAsset(t *testing.T, warehouseID, name string) map[string]any {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/assets", "admin", map[string]any{
		"warehouse_id": warehouseID, "name": name, "quantity": 1, "acquisition_value": "100.00",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)
}

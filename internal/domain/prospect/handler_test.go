package prospect

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"prospectcrm/internal/middleware"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewRepository(setupTestDB(t))
	h := NewHandler(NewService(repo, zap.NewNop()), NewImporter(repo, 100, zap.NewNop()))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-Test-User-ID"); userID != "" {
			middleware.SetIdentity(c, middleware.Identity{UserID: userID, Name: "Tester", Role: "sales"})
		}
		c.Next()
	})
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-User-ID", "u-1")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestHandler_CreateGetList(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSON(r, http.MethodPost, "/api/v1/prospects", map[string]string{"company_name": "Acme"})
	require.Equal(t, http.StatusCreated, rr.Code)

	var created struct {
		Data Prospect `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, StatusPending, created.Data.Status)

	rr = doJSON(r, http.MethodGet, "/api/v1/prospects/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = doJSON(r, http.MethodGet, "/api/v1/prospects?status=pending", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list struct {
		Data ProspectListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, int64(1), list.Data.Total)

	rr = doJSON(r, http.MethodGet, "/api/v1/prospects/stats", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"pending":1`)
}

func TestHandler_Create_Validation(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSON(r, http.MethodPost, "/api/v1/prospects", map[string]string{"contact_email": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_Get_NotFound(t *testing.T) {
	r := setupTestRouter(t)

	rr := doJSON(r, http.MethodGet, "/api/v1/prospects/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "PROSPECT_NOT_FOUND")
}

func TestHandler_Import(t *testing.T) {
	r := setupTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "leads.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("company,email\nAcme,a@acme.example\nGlobex,\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prospects/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Test-User-ID", "u-1")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"imported":2`)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/prospects/import", nil)
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mdf_gestor/internal/controller"
	"mdf_gestor/internal/middleware"
	"mdf_gestor/internal/model"
	"mdf_gestor/internal/repository"
	"mdf_gestor/internal/router"
	"mdf_gestor/internal/service"
)

// ==================== test stack ====================

type apiTest struct {
	db     *gorm.DB
	engine *gin.Engine
	auth   *service.AuthService
}

func setupAPITest(t *testing.T, requireAuth bool) *apiTest {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Brand{}, &model.Line{}, &model.Board{}, &model.User{}))

	brandRepo := repository.NewBrandRepository(db)
	lineRepo := repository.NewLineRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	userRepo := repository.NewUserRepository(db)

	storage, err := service.NewLocalStorage(&service.StorageConfig{BasePath: t.TempDir()})
	require.NoError(t, err)

	refCodes := service.NewRefCodeService(brandRepo, lineRepo)
	pricing := service.NewPriceService(service.PricingConfig{})
	boardSvc := service.NewBoardService(boardRepo, refCodes, storage, pricing)
	authSvc := service.NewAuthService(userRepo, service.AuthConfig{SecretKey: "test-secret"})

	ctls := &router.Controllers{
		Board:  controller.NewBoardController(boardSvc),
		Brand:  controller.NewBrandController(service.NewBrandService(brandRepo)),
		Line:   controller.NewLineController(service.NewLineService(lineRepo)),
		Import: controller.NewImportController(service.NewImportService(boardSvc)),
		Auth:   controller.NewAuthController(authSvc),
	}

	engine := router.SetupRouter(zap.NewNop(), ctls, middleware.JWTAuth(authSvc), router.Options{
		RequireAuth: requireAuth,
	})

	return &apiTest{db: db, engine: engine, auth: authSvc}
}

func (a *apiTest) doJSON(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decodeBoard(t *testing.T, w *httptest.ResponseRecorder) model.Board {
	var board model.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	return board
}

// multipartBoard builds the browser-style form submission: plain fields,
// thicknesses as JSON text and an optional image file.
func multipartBoard(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if withImage {
		fw, err := mw.CreateFormFile("imagem", "foto.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake-jpeg-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// ==================== end to end ====================

func TestCreateBoardEndToEnd(t *testing.T) {
	api := setupAPITest(t, false)

	w := api.doJSON(t, http.MethodPost, "/api/marcas", map[string]string{
		"name": "Arauco", "shortCode": "M1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body, contentType := multipartBoard(t, map[string]string{
		"brandName":   "Arauco",
		"name":        "Carvalho",
		"thicknesses": `[{"thicknessMm":15}]`,
	}, true)
	req := httptest.NewRequest(http.MethodPost, "/api/chapas", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	api.engine.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	board := decodeBoard(t, rec)
	require.Len(t, board.Thicknesses, 1)
	assert.Equal(t, "M1.4.99-CAR", board.Thicknesses[0].InternalRef)
	assert.Contains(t, board.ImageURL, "/uploads/")
}

func TestCreateBoardWithoutThicknessesFails(t *testing.T) {
	api := setupAPITest(t, false)

	w := api.doJSON(t, http.MethodPost, "/api/chapas", map[string]interface{}{
		"brandName": "Arauco",
		"name":      "Carvalho",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["message"])
	assert.NotEmpty(t, resp["error"])

	list := api.doJSON(t, http.MethodGet, "/api/chapas", nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.JSONEq(t, "[]", list.Body.String())
}

func TestListBoardsFilteredAndOrdered(t *testing.T) {
	api := setupAPITest(t, false)

	for _, b := range []map[string]interface{}{
		{"brandName": "A", "name": "Zeta", "thicknesses": []map[string]float64{{"thicknessMm": 15}}},
		{"brandName": "A", "name": "Alfa", "thicknesses": []map[string]float64{{"thicknessMm": 15}}},
		{"brandName": "B", "name": "Beta", "thicknesses": []map[string]float64{{"thicknessMm": 15}}},
	} {
		w := api.doJSON(t, http.MethodPost, "/api/chapas", b)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := api.doJSON(t, http.MethodGet, "/api/chapas?marca=A", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var boards []model.Board
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &boards))
	require.Len(t, boards, 2)
	assert.Equal(t, "Alfa", boards[0].Name)
	assert.Equal(t, "Zeta", boards[1].Name)
}

func TestGetBoardByID(t *testing.T) {
	api := setupAPITest(t, false)

	w := api.doJSON(t, http.MethodPost, "/api/chapas", map[string]interface{}{
		"brandName":   "Arauco",
		"name":        "Carvalho",
		"thicknesses": []map[string]float64{{"thicknessMm": 15}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBoard(t, w)

	got := api.doJSON(t, http.MethodGet, fmt.Sprintf("/api/chapas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, created.ID, decodeBoard(t, got).ID)

	missing := api.doJSON(t, http.MethodGet, "/api/chapas/99999", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestUpdateBoardRenameRefreshesReferences(t *testing.T) {
	api := setupAPITest(t, false)

	w := api.doJSON(t, http.MethodPost, "/api/chapas", map[string]interface{}{
		"brandName":   "Arauco",
		"name":        "Carvalho",
		"thicknesses": []map[string]float64{{"thicknessMm": 15}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBoard(t, w)

	upd := api.doJSON(t, http.MethodPut, fmt.Sprintf("/api/chapas/%d", created.ID), map[string]interface{}{
		"name":        "Nogueira",
		"thicknesses": []map[string]float64{{"thicknessMm": 15}},
	})
	require.Equal(t, http.StatusOK, upd.Code)

	board := decodeBoard(t, upd)
	require.Len(t, board.Thicknesses, 1)
	assert.Equal(t, "X.4.99-NOG", board.Thicknesses[0].InternalRef)

	missing := api.doJSON(t, http.MethodPut, "/api/chapas/99999", map[string]interface{}{
		"name": "Nada",
	})
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestDeleteThicknessAndBoard(t *testing.T) {
	api := setupAPITest(t, false)

	w := api.doJSON(t, http.MethodPost, "/api/chapas", map[string]interface{}{
		"brandName": "Arauco",
		"name":      "Carvalho",
		"thicknesses": []map[string]float64{
			{"thicknessMm": 15},
			{"thicknessMm": 18},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBoard(t, w)

	// unknown thickness reference
	miss := api.doJSON(t, http.MethodDelete,
		fmt.Sprintf("/api/chapas/%d?refEspessura=Z9.9.99-ZZZ", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, miss.Code)

	// pull one thickness, the sibling stays
	del := api.doJSON(t, http.MethodDelete,
		fmt.Sprintf("/api/chapas/%d?refEspessura=%s", created.ID, created.Thicknesses[0].InternalRef), nil)
	require.Equal(t, http.StatusOK, del.Code)

	got := api.doJSON(t, http.MethodGet, fmt.Sprintf("/api/chapas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, got.Code)
	board := decodeBoard(t, got)
	require.Len(t, board.Thicknesses, 1)
	assert.Equal(t, float64(18), board.Thicknesses[0].ThicknessMm)

	// whole-board delete
	delAll := api.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/chapas/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, delAll.Code)

	again := api.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/chapas/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestImportTemplateDownload(t *testing.T) {
	api := setupAPITest(t, false)

	w := api.doJSON(t, http.MethodGet, "/api/chapas/template", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, w.Body.Len())
}

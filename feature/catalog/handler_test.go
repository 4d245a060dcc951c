package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"library-manager/core/engine"
	enginemocks "library-manager/core/engine/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *enginemocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	db, dbMock := setupMockDB(t)
	engMock := new(enginemocks.Client)
	svc := NewService(engMock, NewStore(db), zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, engMock, dbMock
}

func TestHandleList(t *testing.T) {
	app, engMock, dbMock := setupTestApp(t)

	snapshot := []engine.Book{{ID: 7, Title: "Dune", Author: "Frank_Herbert", Category: "scifi", TotalCopies: 2, Available: 2}}
	engMock.On("List", mock.Anything).Return(snapshot, nil)

	rows := sqlmock.NewRows(catalogColumns()).
		AddRow(7, "Dune", "Frank_Herbert", "scifi", 2, 2, 0)
	expectInstall(dbMock, rows, 1)

	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var books []engine.Book
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&books))
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
}

func TestHandleList_EngineFault(t *testing.T) {
	app, engMock, _ := setupTestApp(t)

	engMock.On("List", mock.Anything).Return(nil, &engine.Error{Command: "list", Err: assert.AnError})

	resp, err := app.Test(httptest.NewRequest("GET", "/items", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleAdd_MissingFields(t *testing.T) {
	app, engMock, _ := setupTestApp(t)

	body := `{"id":7,"title":"Dune"}`
	req := httptest.NewRequest("POST", "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	// Validation failures never reach the engine.
	engMock.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestHandleAdd_ZeroCopies(t *testing.T) {
	app, _, _ := setupTestApp(t)

	body := `{"id":7,"title":"Dune","author":"Frank Herbert","category":"scifi","totalCopies":0}`
	req := httptest.NewRequest("POST", "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleAdd(t *testing.T) {
	app, engMock, dbMock := setupTestApp(t)

	snapshot := []engine.Book{{ID: 7, Title: "Dune", Author: "Frank_Herbert", Category: "scifi", TotalCopies: 2, Available: 2}}
	engMock.On("Add", mock.Anything, mock.Anything).Return(snapshot, nil)

	rows := sqlmock.NewRows(catalogColumns()).
		AddRow(7, "Dune", "Frank_Herbert", "scifi", 2, 2, 0)
	expectInstall(dbMock, rows, 1)

	body := `{"id":7,"title":"Dune","author":"Frank Herbert","category":"scifi","totalCopies":2}`
	req := httptest.NewRequest("POST", "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleDelete_InvalidID(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/items/notanumber", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, engMock, dbMock := setupTestApp(t)

	engMock.On("Delete", mock.Anything, 7).Return([]engine.Book{}, nil)
	expectInstall(dbMock, sqlmock.NewRows(catalogColumns()), 0)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/items/7", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

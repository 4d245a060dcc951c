package catalog

import (
	"context"
	"testing"

	"library-manager/core/engine"
	enginemocks "library-manager/core/engine/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupService(t *testing.T) (*Service, *enginemocks.Client, sqlmock.Sqlmock) {
	db, dbMock := setupMockDB(t)
	engMock := new(enginemocks.Client)
	svc := NewService(engMock, NewStore(db), zap.NewNop())
	return svc, engMock, dbMock
}

func expectInstall(dbMock sqlmock.Sqlmock, rows *sqlmock.Rows, inserted int64) {
	dbMock.ExpectBegin()
	dbMock.ExpectExec("DELETE FROM `catalog_books`").WillReturnResult(sqlmock.NewResult(0, 0))
	if inserted > 0 {
		dbMock.ExpectExec("INSERT INTO `catalog_books`").WillReturnResult(sqlmock.NewResult(0, inserted))
	}
	dbMock.ExpectCommit()
	dbMock.ExpectQuery("SELECT \\* FROM `catalog_books` ORDER BY position").WillReturnRows(rows)
}

func TestService_List_ResyncsMirror(t *testing.T) {
	svc, engMock, dbMock := setupService(t)

	snapshot := []engine.Book{{ID: 7, Title: "Dune", Author: "Frank_Herbert", Category: "scifi", TotalCopies: 2, Available: 2}}
	engMock.On("List", mock.Anything).Return(snapshot, nil)

	rows := sqlmock.NewRows(catalogColumns()).
		AddRow(7, "Dune", "Frank_Herbert", "scifi", 2, 2, 0)
	expectInstall(dbMock, rows, 1)

	books, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)

	engMock.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_List_EngineFailureLeavesMirrorUntouched(t *testing.T) {
	svc, engMock, dbMock := setupService(t)

	engMock.On("List", mock.Anything).Return(nil, &engine.Error{Command: "list", Err: assert.AnError})

	// No database expectations: any query here would fail the test.
	_, err := svc.List(context.Background())
	assert.Error(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_Add(t *testing.T) {
	svc, engMock, dbMock := setupService(t)

	book := engine.Book{ID: 7, Title: "Dune", Author: "Frank Herbert", Category: "scifi", TotalCopies: 2}
	snapshot := []engine.Book{{ID: 7, Title: "Dune", Author: "Frank_Herbert", Category: "scifi", TotalCopies: 2, Available: 2}}
	engMock.On("Add", mock.Anything, book).Return(snapshot, nil)

	rows := sqlmock.NewRows(catalogColumns()).
		AddRow(7, "Dune", "Frank_Herbert", "scifi", 2, 2, 0)
	expectInstall(dbMock, rows, 1)

	books, err := svc.Add(context.Background(), book)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, 2, books[0].Available)
}

func TestService_Delete_EmptiesMirror(t *testing.T) {
	svc, engMock, dbMock := setupService(t)

	engMock.On("Delete", mock.Anything, 7).Return([]engine.Book{}, nil)
	expectInstall(dbMock, sqlmock.NewRows(catalogColumns()), 0)

	books, err := svc.Delete(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, books)
}

package archive

import (
	"context"
	"testing"
	"time"

	storagemocks "library-manager/core/storage/mocks"
	"library-manager/feature/catalog"
	"library-manager/feature/circulation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupService(t *testing.T) (*Service, *storagemocks.Client, sqlmock.Sqlmock) {
	db, dbMock := setupMockDB(t)
	storeMock := new(storagemocks.Client)
	svc := NewService(storeMock, "library-backups", catalog.NewStore(db), circulation.NewLedger(db), zap.NewNop())
	return svc, storeMock, dbMock
}

func TestBackup(t *testing.T) {
	svc, storeMock, dbMock := setupService(t)

	storeMock.On("BucketExists", mock.Anything, "library-backups").Return(true, nil)

	dbMock.ExpectQuery("SELECT \\* FROM `catalog_books` ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "title", "author", "category", "total_copies", "available", "position"}).
			AddRow(7, "Dune", "Frank_Herbert", "scifi", 2, 1, 0))
	dbMock.ExpectQuery("SELECT \\* FROM `loans` ORDER BY issued_at DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "borrower_name", "borrower_id", "issued_at", "returned_at"}).
			AddRow("loan-1", 7, "Bob", "S100", time.Now(), nil))

	storeMock.On("PutObject", mock.Anything, "library-backups", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Twice()

	objects, err := svc.Backup(context.Background())
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Contains(t, objects[0], "catalog.json")
	assert.Contains(t, objects[1], "loans.json")

	storeMock.AssertExpectations(t)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestBackup_CreatesMissingBucket(t *testing.T) {
	svc, storeMock, dbMock := setupService(t)

	storeMock.On("BucketExists", mock.Anything, "library-backups").Return(false, nil)
	storeMock.On("MakeBucket", mock.Anything, "library-backups", mock.Anything).Return(nil)

	dbMock.ExpectQuery("SELECT \\* FROM `catalog_books`").
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "title", "author", "category", "total_copies", "available", "position"}))
	dbMock.ExpectQuery("SELECT \\* FROM `loans`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "borrower_name", "borrower_id", "issued_at", "returned_at"}))

	storeMock.On("PutObject", mock.Anything, "library-backups", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Twice()

	_, err := svc.Backup(context.Background())
	require.NoError(t, err)
	storeMock.AssertExpectations(t)
}

func TestBackup_StorageFault(t *testing.T) {
	svc, storeMock, _ := setupService(t)

	storeMock.On("BucketExists", mock.Anything, "library-backups").Return(false, assert.AnError)

	_, err := svc.Backup(context.Background())
	assert.Error(t, err)
}

func TestListBackups(t *testing.T) {
	svc, storeMock, _ := setupService(t)

	storeMock.On("BucketExists", mock.Anything, "library-backups").Return(true, nil)

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "backups/2026-08-29T10-00-00Z/catalog.json"}
	ch <- minio.ObjectInfo{Key: "backups/2026-08-29T10-00-00Z/loans.json"}
	close(ch)
	storeMock.On("ListObjects", mock.Anything, "library-backups", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	names, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestListBackups_NoBucket(t *testing.T) {
	svc, storeMock, _ := setupService(t)

	storeMock.On("BucketExists", mock.Anything, "library-backups").Return(false, nil)

	names, err := svc.ListBackups(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

package database_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/testutil"
)

func TestSellerRepo_InsertAndFind(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	repo := database.NewSellerRepo(db)
	deptID := testutil.CreateTestDepartment(t, db, "Electronics")

	s := &models.Seller{
		Name:       "Maria Green",
		Email:      "maria@gmail.com",
		BirthDate:  testutil.Date(1979, 12, 31),
		BaseSalary: decimal.NewNullDecimal(decimal.RequireFromString("3500.50")),
		Department: &models.Department{ID: models.IntPtr(deptID), Name: "Electronics"},
	}
	require.NoError(t, repo.Insert(context.Background(), s))
	require.NotNil(t, s.ID)

	stored, err := repo.FindByID(context.Background(), *s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Green", stored.Name)
	assert.Equal(t, "maria@gmail.com", stored.Email)
	assert.True(t, stored.BirthDate.Equal(testutil.Date(1979, 12, 31)), "birth date = %v", stored.BirthDate)
	require.True(t, stored.BaseSalary.Valid)
	assert.Equal(t, "3500.50", stored.BaseSalary.Decimal.StringFixed(2))
	require.NotNil(t, stored.Department)
	assert.Equal(t, deptID, *stored.Department.ID)
	assert.Equal(t, "Electronics", stored.Department.Name)
}

func TestSellerRepo_InsertWithoutDepartmentOrSalary(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	repo := database.NewSellerRepo(db)

	s := &models.Seller{Name: "Alex", Email: "alex@gmail.com", BirthDate: testutil.Date(2000, 1, 2)}
	require.NoError(t, repo.Insert(context.Background(), s))

	stored, err := repo.FindByID(context.Background(), *s.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Department)
	assert.False(t, stored.BaseSalary.Valid)
}

func TestSellerRepo_InsertUnknownDepartment(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	repo := database.NewSellerRepo(db)

	s := &models.Seller{
		Name:       "Alex",
		Email:      "alex@gmail.com",
		BirthDate:  testutil.Date(2000, 1, 2),
		Department: &models.Department{ID: models.IntPtr(77)},
	}
	err := repo.Insert(context.Background(), s)
	assert.ErrorIs(t, err, database.ErrIntegrity)
	assert.Nil(t, s.ID)
}

func TestSellerRepo_Update(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	repo := database.NewSellerRepo(db)
	books := testutil.CreateTestDepartment(t, db, "Books")
	id := testutil.CreateTestSeller(t, db, "Bob", 0)

	s, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	s.Name = "Bob Brown"
	s.Department = &models.Department{ID: models.IntPtr(books)}
	require.NoError(t, repo.Update(context.Background(), s))

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Bob Brown", stored.Name)
	require.NotNil(t, stored.Department)
	assert.Equal(t, "Books", stored.Department.Name)
}

func TestSellerRepo_FindAllAndByDepartment(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	repo := database.NewSellerRepo(db)
	books := testutil.CreateTestDepartment(t, db, "Books")
	testutil.CreateTestSeller(t, db, "Zed", books)
	testutil.CreateTestSeller(t, db, "Ann", 0)
	testutil.CreateTestSeller(t, db, "Mia", books)

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Ann", all[0].Name)
	assert.Equal(t, "Zed", all[2].Name)

	inBooks, err := repo.FindByDepartment(context.Background(), books)
	require.NoError(t, err)
	require.Len(t, inBooks, 2)
	assert.Equal(t, "Mia", inBooks[0].Name)
}

func TestSellerRepo_DeleteByID(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	repo := database.NewSellerRepo(db)
	id := testutil.CreateTestSeller(t, db, "Bob", 0)

	require.NoError(t, repo.DeleteByID(context.Background(), id))
	assert.Equal(t, 0, testutil.CountRows(t, db, "seller"))
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), id), database.ErrNotFound)
}

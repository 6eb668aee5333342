package seller

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

type recordingRepo struct {
	calls []string
}

func (r *recordingRepo) FindAll(ctx context.Context) ([]*models.Seller, error) {
	r.calls = append(r.calls, "findAll")
	return nil, nil
}

func (r *recordingRepo) FindByDepartment(ctx context.Context, departmentID int) ([]*models.Seller, error) {
	r.calls = append(r.calls, "findByDepartment")
	return nil, nil
}

func (r *recordingRepo) Insert(ctx context.Context, s *models.Seller) error {
	r.calls = append(r.calls, "insert")
	s.ID = models.IntPtr(1)
	return nil
}

func (r *recordingRepo) Update(ctx context.Context, s *models.Seller) error {
	r.calls = append(r.calls, "update")
	return nil
}

func (r *recordingRepo) DeleteByID(ctx context.Context, id int) error {
	r.calls = append(r.calls, "deleteById")
	return nil
}

func TestSaveOrUpdate_Routing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   *int
		want string
	}{
		{"absent id inserts", nil, "insert"},
		{"present id updates", models.IntPtr(5), "update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingRepo{}
			svc := NewService(repo, nil)

			err := svc.SaveOrUpdate(context.Background(), &models.Seller{ID: tt.id, Name: "Bob"})
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, repo.calls)
		})
	}
}

func TestSaveOrUpdate_NilSeller(t *testing.T) {
	t.Parallel()
	err := NewService(&recordingRepo{}, nil).SaveOrUpdate(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilSeller)
}

func TestRemove_RequiresID(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{}
	svc := NewService(repo, nil)

	assert.ErrorIs(t, svc.Remove(context.Background(), &models.Seller{}), ErrInvalidID)
	require.NoError(t, svc.Remove(context.Background(), &models.Seller{ID: models.IntPtr(2)}))
	assert.Equal(t, []string{"deleteById"}, repo.calls)
}

func TestSaveOrUpdate_AgainstStore(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewSellerRepo(db), nil)
	deptID := testutil.CreateTestDepartment(t, db, "Books")

	s := &models.Seller{
		Name:       "Donald Blue",
		Email:      "donald@gmail.com",
		BirthDate:  testutil.Date(1985, 6, 15),
		BaseSalary: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
		Department: &models.Department{ID: models.IntPtr(deptID), Name: "Books"},
	}
	require.NoError(t, svc.SaveOrUpdate(context.Background(), s))
	require.NotNil(t, s.ID)

	s.Email = "donald.blue@gmail.com"
	require.NoError(t, svc.SaveOrUpdate(context.Background(), s))

	sellers, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, "donald.blue@gmail.com", sellers[0].Email)
	assert.Equal(t, *s.ID, *sellers[0].ID)
}

func TestFindByDepartment(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewSellerRepo(db), nil)
	books := testutil.CreateTestDepartment(t, db, "Books")
	fashion := testutil.CreateTestDepartment(t, db, "Fashion")
	testutil.CreateTestSeller(t, db, "Ann", books)
	testutil.CreateTestSeller(t, db, "Bob", fashion)

	sellers, err := svc.FindByDepartment(context.Background(), &models.Department{ID: models.IntPtr(fashion)})
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, "Bob", sellers[0].Name)

	_, err = svc.FindByDepartment(context.Background(), &models.Department{})
	assert.ErrorIs(t, err, ErrInvalidID)
}

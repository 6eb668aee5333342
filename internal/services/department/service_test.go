package department

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/staffdesk/internal/database"
	"github.com/thenoetrevino/staffdesk/internal/models"
	"github.com/thenoetrevino/staffdesk/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// recordingRepo records which DAO operation the service chose
type recordingRepo struct {
	calls   []string
	nextID  int
	failErr error
}

func (r *recordingRepo) FindAll(ctx context.Context) ([]*models.Department, error) {
	r.calls = append(r.calls, "findAll")
	return []*models.Department{{ID: models.IntPtr(1), Name: "Books"}}, r.failErr
}

func (r *recordingRepo) Insert(ctx context.Context, d *models.Department) error {
	r.calls = append(r.calls, "insert")
	if r.failErr != nil {
		return r.failErr
	}
	r.nextID++
	d.ID = models.IntPtr(r.nextID)
	return nil
}

func (r *recordingRepo) Update(ctx context.Context, d *models.Department) error {
	r.calls = append(r.calls, "update")
	return r.failErr
}

func (r *recordingRepo) DeleteByID(ctx context.Context, id int) error {
	r.calls = append(r.calls, "deleteById")
	return r.failErr
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestSaveOrUpdate_NewRoutesToInsert(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{nextID: 10}
	svc := NewService(repo, nil)

	d := &models.Department{Name: "Toys"}
	require.NoError(t, svc.SaveOrUpdate(context.Background(), d))

	assert.Equal(t, []string{"insert"}, repo.calls)
	require.NotNil(t, d.ID)
	assert.Equal(t, 11, *d.ID)
}

func TestSaveOrUpdate_ExistingRoutesToUpdate(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{}
	svc := NewService(repo, nil)

	// Every present identifier, including zero, means update
	for _, id := range []int{0, 1, 99} {
		repo.calls = nil
		require.NoError(t, svc.SaveOrUpdate(context.Background(), &models.Department{ID: models.IntPtr(id), Name: "X"}))
		assert.Equal(t, []string{"update"}, repo.calls, "id %d", id)
	}
}

func TestSaveOrUpdate_Nil(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{}
	err := NewService(repo, nil).SaveOrUpdate(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNilDepartment)
	assert.Empty(t, repo.calls)
}

func TestSaveOrUpdate_WrapsStoreError(t *testing.T) {
	t.Parallel()
	storeErr := errors.New("disk I/O error")
	svc := NewService(&recordingRepo{failErr: storeErr}, nil)

	err := svc.SaveOrUpdate(context.Background(), &models.Department{Name: "Toys"})
	assert.ErrorIs(t, err, storeErr)
}

func TestRemove_RequiresID(t *testing.T) {
	t.Parallel()
	repo := &recordingRepo{}
	svc := NewService(repo, nil)

	assert.ErrorIs(t, svc.Remove(context.Background(), nil), ErrInvalidID)
	assert.ErrorIs(t, svc.Remove(context.Background(), &models.Department{Name: "new"}), ErrInvalidID)
	assert.Empty(t, repo.calls)

	require.NoError(t, svc.Remove(context.Background(), &models.Department{ID: models.IntPtr(3)}))
	assert.Equal(t, []string{"deleteById"}, repo.calls)
}

func TestRemove_ReferencedDepartmentKeepsIntegritySignal(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewDepartmentRepo(db), nil)

	deptID := testutil.CreateTestDepartment(t, db, "Computers")
	testutil.CreateTestSeller(t, db, "Bob Brown", deptID)

	err := svc.Remove(context.Background(), &models.Department{ID: models.IntPtr(deptID)})

	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrIntegrity)

	departments, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 1, "collection must be unchanged")
	assert.Equal(t, deptID, *departments[0].ID)
}

func TestFindAll_AgainstStore(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewDepartmentRepo(db), nil)

	require.NoError(t, svc.SaveOrUpdate(context.Background(), &models.Department{Name: "Books"}))
	require.NoError(t, svc.SaveOrUpdate(context.Background(), &models.Department{Name: "Art"}))

	departments, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Art", departments[0].Name)
}

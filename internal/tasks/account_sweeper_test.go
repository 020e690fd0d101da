package tasks_test

import (
	"fmt"
	"testing"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/tasks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Cart{}, &models.CartItem{},
		&models.Product{}, &models.Order{}, &models.ProductOrder{}, &models.Review{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string, lockoutEnd *time.Time, deletionRequested bool) *models.User {
	t.Helper()

	user := &models.User{
		ID:                       uuid.New().String(),
		FirstName:                "Test",
		LastName:                 "User",
		Email:                    email,
		Password:                 "hashed",
		LockoutEnd:               lockoutEnd,
		AccountDeletionRequested: deletionRequested,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSweep_DeletesDueAccounts(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	sweeper := tasks.NewAccountSweeper(repo, time.Minute)

	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	due := createUser(t, db, "due@example.com", &past, true)
	inGrace := createUser(t, db, "grace@example.com", &future, true)
	lockedOnly := createUser(t, db, "locked@example.com", &past, false)
	normal := createUser(t, db, "normal@example.com", nil, false)

	sweeper.Sweep(now)

	_, err := repo.GetByID(due.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	for _, kept := range []*models.User{inGrace, lockedOnly, normal} {
		_, err := repo.GetByID(kept.ID)
		assert.NoError(t, err, "user %s should survive the sweep", kept.Email)
	}
}

func TestSweep_RecoveredAccountSurvives(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	sweeper := tasks.NewAccountSweeper(repo, time.Minute)

	past := time.Now().Add(-time.Minute)
	user := createUser(t, db, "recovered@example.com", &past, true)

	// A login inside the grace period clears the request; the sweep that
	// follows must leave the account alone.
	user.LockoutEnd = nil
	user.AccountDeletionRequested = false
	require.NoError(t, repo.Update(user))

	sweeper.Sweep(time.Now())

	_, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
}

func TestSweeper_StartStop(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	past := time.Now().Add(-time.Second)
	user := createUser(t, db, "ticker@example.com", &past, true)

	sweeper := tasks.NewAccountSweeper(repo, 20*time.Millisecond)
	sweeper.Start()
	defer sweeper.Stop()

	assert.Eventually(t, func() bool {
		_, err := repo.GetByID(user.ID)
		return err != nil
	}, time.Second, 10*time.Millisecond, "due account should be swept by the ticker")
}

//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
)

// Run against a throwaway database:
//   go test -tags integration ./internal/repository/

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=orbit password=orbit dbname=orbit_hrms_test sslmode=disable TimeZone=UTC"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to test database: %v\n", err)
		os.Exit(1)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Attendance{},
		&model.Leave{},
		&model.Payrun{},
		&model.PayrollSettings{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func seedUser(t *testing.T) (*model.User, func()) {
	t.Helper()
	ctx := context.Background()

	nano := time.Now().UnixNano()
	user := &model.User{
		LoginID:       fmt.Sprintf("OITEST%d", nano),
		Name:          "Test User",
		Email:         fmt.Sprintf("test%d@example.com", nano),
		PasswordHash:  "$2a$10$placeholder",
		Role:          model.RoleEmployee,
		Department:    "Engineering",
		YearOfJoining: 2024,
		BasicSalary:   50000,
		HRA:           10000,
		OtherEarnings: 2000,
		AnnualLeave:   12,
		SickLeave:     6,
	}
	if err := testDB.WithContext(ctx).Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	cleanup := func() {
		testDB.Unscoped().Where("user_id = ?", user.ID).Delete(&model.Attendance{})
		testDB.Unscoped().Where("user_id = ?", user.ID).Delete(&model.Leave{})
		testDB.Unscoped().Where("id = ?", user.ID).Delete(&model.User{})
	}
	return user, cleanup
}

func TestAttendanceUniquePerUserAndDate(t *testing.T) {
	user, cleanup := seedUser(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	first := &model.Attendance{
		UserID: user.ID,
		Date:   "2026-03-09",
		InTime: "09:00",
		Status: model.AttendancePresent,
	}
	if err := repo.Attendance.Create(ctx, first); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := &model.Attendance{
		UserID: user.ID,
		Date:   "2026-03-09",
		InTime: "09:01",
		Status: model.AttendancePresent,
	}
	err := repo.Attendance.Create(ctx, dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate create err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestUserUniqueLoginID(t *testing.T) {
	user, cleanup := seedUser(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	dup := &model.User{
		LoginID:       user.LoginID,
		Name:          "Other User",
		Email:         fmt.Sprintf("other%d@example.com", time.Now().UnixNano()),
		PasswordHash:  "$2a$10$placeholder",
		Role:          model.RoleEmployee,
		Department:    "Engineering",
		YearOfJoining: 2024,
	}
	err := repo.User.Create(ctx, dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate login id err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestPayrunUniqueMonth(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	month := fmt.Sprintf("A%06d", time.Now().UnixNano()%1000000)
	first := &model.Payrun{
		Month:        month,
		TotalPayroll: 100,
		Items:        model.PayrunItems{},
	}
	if err := repo.Payrun.Create(ctx, first); err != nil {
		t.Fatalf("first create: %v", err)
	}
	defer testDB.Unscoped().Where("id = ?", first.ID).Delete(&model.Payrun{})

	dup := &model.Payrun{Month: month, Items: model.PayrunItems{}}
	if err := repo.Payrun.Create(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("duplicate month err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestPayrunItemsRoundTrip(t *testing.T) {
	user, cleanup := seedUser(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	payrun := &model.Payrun{
		Month:        fmt.Sprintf("B%06d", time.Now().UnixNano()%1000000),
		TotalPayroll: 55800,
		Items: model.PayrunItems{
			{UserID: user.ID, Gross: 62000, Deductions: 6200, Net: 55800},
		},
	}
	if err := repo.Payrun.Create(ctx, payrun); err != nil {
		t.Fatalf("create: %v", err)
	}
	defer testDB.Unscoped().Where("id = ?", payrun.ID).Delete(&model.Payrun{})

	got, err := repo.Payrun.GetByID(ctx, payrun.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Net != 55800 {
		t.Errorf("items round trip failed: %+v", got.Items)
	}
}

func TestCountByJoiningYear(t *testing.T) {
	user, cleanup := seedUser(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	before, err := repo.User.CountByJoiningYear(ctx, user.YearOfJoining)
	if err != nil {
		t.Fatalf("CountByJoiningYear: %v", err)
	}
	if before < 1 {
		t.Errorf("count = %d, want at least the seeded user", before)
	}

	none, err := repo.User.CountByJoiningYear(ctx, 1901)
	if err != nil {
		t.Fatalf("CountByJoiningYear(1901): %v", err)
	}
	if none != 0 {
		t.Errorf("count for empty year = %d, want 0", none)
	}
}

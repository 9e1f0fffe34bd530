package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
	order []string
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.LoginID == user.LoginID || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.ID == "" {
		m.seq++
		user.ID = fmt.Sprintf("user-%d", m.seq)
	}
	cp := *user
	m.users[user.ID] = &cp
	m.order = append(m.order, user.ID)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.order))
	for _, id := range m.order {
		if u, ok := m.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, u := range m.users {
		if id != user.ID && (u.LoginID == user.LoginID || u.Email == user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) CountByJoiningYear(_ context.Context, year int) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.YearOfJoining == year {
			n++
		}
	}
	return n, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance // keyed by id
	seq     int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance)}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.Attendance) error {
	for _, r := range m.records {
		if r.UserID == record.UserID && r.Date == record.Date {
			return gorm.ErrDuplicatedKey
		}
	}
	m.seq++
	record.ID = fmt.Sprintf("att-%d", m.seq)
	cp := *record
	m.records[record.ID] = &cp
	return nil
}

func (m *mockAttendanceRepo) GetByUserAndDate(_ context.Context, userID, date string) (*model.Attendance, error) {
	for _, r := range m.records {
		if r.UserID == userID && r.Date == date {
			cp := *r
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) ListByUser(_ context.Context, userID string) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.records {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockAttendanceRepo) List(_ context.Context) ([]model.Attendance, error) {
	result := make([]model.Attendance, 0, len(m.records))
	for _, r := range m.records {
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, record *model.Attendance) error {
	if _, ok := m.records[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *record
	m.records[record.ID] = &cp
	return nil
}

// ── Mock LeaveRepository ──

type mockLeaveRepo struct {
	leaves map[string]*model.Leave
	order  []string
	seq    int
}

func newMockLeaveRepo() *mockLeaveRepo {
	return &mockLeaveRepo{leaves: make(map[string]*model.Leave)}
}

func (m *mockLeaveRepo) Create(_ context.Context, leave *model.Leave) error {
	m.seq++
	leave.ID = fmt.Sprintf("leave-%d", m.seq)
	cp := *leave
	m.leaves[leave.ID] = &cp
	m.order = append(m.order, leave.ID)
	return nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id string) (*model.Leave, error) {
	l, ok := m.leaves[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *mockLeaveRepo) ListByUser(_ context.Context, userID string) ([]model.Leave, error) {
	var result []model.Leave
	for _, id := range m.order {
		if l := m.leaves[id]; l != nil && l.UserID == userID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) List(_ context.Context) ([]model.Leave, error) {
	result := make([]model.Leave, 0, len(m.order))
	for _, id := range m.order {
		if l := m.leaves[id]; l != nil {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *mockLeaveRepo) Update(_ context.Context, leave *model.Leave) error {
	if _, ok := m.leaves[leave.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *leave
	m.leaves[leave.ID] = &cp
	return nil
}

// ── Mock PayrunRepository ──

type mockPayrunRepo struct {
	payruns map[string]*model.Payrun
	order   []string
	seq     int
}

func newMockPayrunRepo() *mockPayrunRepo {
	return &mockPayrunRepo{payruns: make(map[string]*model.Payrun)}
}

func (m *mockPayrunRepo) Create(_ context.Context, payrun *model.Payrun) error {
	for _, p := range m.payruns {
		if p.Month == payrun.Month {
			return gorm.ErrDuplicatedKey
		}
	}
	m.seq++
	payrun.ID = fmt.Sprintf("payrun-%d", m.seq)
	cp := *payrun
	m.payruns[payrun.ID] = &cp
	m.order = append(m.order, payrun.ID)
	return nil
}

func (m *mockPayrunRepo) GetByID(_ context.Context, id string) (*model.Payrun, error) {
	p, ok := m.payruns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPayrunRepo) GetByMonth(_ context.Context, month string) (*model.Payrun, error) {
	for _, p := range m.payruns {
		if p.Month == month {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPayrunRepo) List(_ context.Context) ([]model.Payrun, error) {
	result := make([]model.Payrun, 0, len(m.order))
	for _, id := range m.order {
		if p := m.payruns[id]; p != nil {
			result = append(result, *p)
		}
	}
	return result, nil
}

// ── Mock SettingsRepository ──

type mockSettingsRepo struct {
	settings *model.PayrollSettings
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{}
}

func (m *mockSettingsRepo) Get(_ context.Context) (*model.PayrollSettings, error) {
	if m.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.settings
	return &cp, nil
}

func (m *mockSettingsRepo) Update(_ context.Context, settings *model.PayrollSettings) error {
	cp := *settings
	m.settings = &cp
	return nil
}

// ── Test fixture ──

func newTestRepo() *repository.Repository {
	return &repository.Repository{
		User:       newMockUserRepo(),
		Attendance: newMockAttendanceRepo(),
		Leave:      newMockLeaveRepo(),
		Payrun:     newMockPayrunRepo(),
		Settings:   newMockSettingsRepo(),
	}
}

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"orbit-hrms/backend/internal/model"
	"orbit-hrms/backend/internal/repository"
)

var ErrExportGenerateFail = errors.New("generate export file failed")

// ExportService renders ledgers into files: a payrun as an Excel sheet
// for the payroll office, approved leaves as an iCalendar feed.
//
// Exports return a buffer plus a suggested filename; the handler sets the
// response headers and streams the bytes.
type ExportService interface {
	PayrunSheet(ctx context.Context, payrunID string) (*bytes.Buffer, string, error)
	LeaveCalendar(ctx context.Context, userID string, role model.Role) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ────────────────────── PayrunSheet ──────────────────────

// PayrunSheet renders one payrun as an .xlsx workbook: one row per item
// with login id, name and department resolved from the directory, and a
// totals row that restates the snapshot's stored totalPayroll.
func (s *exportService) PayrunSheet(ctx context.Context, payrunID string) (*bytes.Buffer, string, error) {
	payrun, err := s.repo.Payrun.GetByID(ctx, payrunID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPayrunNotFound
		}
		s.logger.Error("lookup payrun failed", zap.Error(err))
		return nil, "", err
	}

	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, "", err
	}
	userByID := make(map[string]*model.User, len(users))
	for i := range users {
		userByID[users[i].ID] = &users[i]
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Login ID", "Name", "Department", "Gross", "Deductions", "Net"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, item := range payrun.Items {
		loginID, name, dept := item.UserID, "(removed)", ""
		if u, ok := userByID[item.UserID]; ok {
			loginID, name, dept = u.LoginID, u.Name, u.Department
		}
		values := []interface{}{loginID, name, dept, item.Gross, item.Deductions, item.Net}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("E%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", row), payrun.TotalPayroll)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("write excel failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("payroll-%s.xlsx", payrun.Month)
	return buf, filename, nil
}

// ────────────────────── LeaveCalendar ──────────────────────

// LeaveCalendar serializes approved leaves as an iCalendar feed: the
// caller's own leaves for employees, everyone's for the other roles.
// Leave days are all-day events; the DTEND day is exclusive per RFC 5545,
// hence the +1 on the end date.
func (s *exportService) LeaveCalendar(ctx context.Context, userID string, role model.Role) (string, error) {
	var (
		leaves []model.Leave
		err    error
	)
	if role.SeesAllRecords() {
		leaves, err = s.repo.Leave.List(ctx)
	} else {
		leaves, err = s.repo.Leave.ListByUser(ctx, userID)
	}
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return "", err
	}

	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return "", err
	}
	nameByID := make(map[string]string, len(users))
	for i := range users {
		nameByID[users[i].ID] = users[i].Name
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Orbit HRMS//Leave Calendar//EN")

	for _, leave := range leaves {
		if leave.Status != model.LeaveApproved {
			continue
		}

		start, err := time.Parse("2006-01-02", leave.StartDate)
		if err != nil {
			s.logger.Warn("skip leave with bad start date",
				zap.String("id", leave.ID), zap.String("start", leave.StartDate))
			continue
		}
		end, err := time.Parse("2006-01-02", leave.EndDate)
		if err != nil {
			s.logger.Warn("skip leave with bad end date",
				zap.String("id", leave.ID), zap.String("end", leave.EndDate))
			continue
		}

		name := nameByID[leave.UserID]
		if name == "" {
			name = leave.UserID
		}

		event := cal.AddEvent(leave.ID + "@orbit-hrms")
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s - %s leave", name, leave.Type))
		event.SetDescription(leave.Reason)
	}

	return cal.Serialize(), nil
}

package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/knockbase/knockbase/ent"
	"github.com/knockbase/knockbase/ent/scheduledassignment"
	"github.com/knockbase/knockbase/ent/zone"
	"github.com/knockbase/knockbase/pkg/ledger"
	"github.com/xuri/excelize/v2"
)

// Service generates assignment history exports for a zone.
type Service struct {
	db          *ent.Client
	ledger      *ledger.Service
	storagePath string
}

// NewService creates a new export service
func NewService(db *ent.Client, ledgerSvc *ledger.Service, storagePath string) *Service {
	// Ensure storage directory exists
	os.MkdirAll(storagePath, 0755)

	return &Service{
		db:          db,
		ledger:      ledgerSvc,
		storagePath: storagePath,
	}
}

// historyRow is one flattened line of a zone's assignment history.
type historyRow struct {
	ID            int
	Kind          string // immediate or scheduled
	TargetKind    string
	TargetName    string
	Status        string
	EffectiveFrom string
	EffectiveTo   string
	ScheduledDate string
}

// ExportZoneHistory writes the zone's full assignment history (immediate and
// scheduled ledgers) to a file in the storage directory and returns its path.
// format is "csv" or "excel".
func (s *Service) ExportZoneHistory(ctx context.Context, zoneID int, format string) (string, error) {
	if format != "csv" && format != "excel" {
		return "", fmt.Errorf("invalid format: must be csv or excel")
	}

	z, err := s.db.Zone.Query().Where(zone.ID(zoneID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("zone not found")
		}
		return "", fmt.Errorf("failed to get zone: %w", err)
	}

	rows, err := s.collectRows(ctx, zoneID)
	if err != nil {
		return "", err
	}

	ext := "csv"
	if format == "excel" {
		ext = "xlsx"
	}
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("zone-%d-history-%s.%s", z.ID, timestamp, ext)
	path := filepath.Join(s.storagePath, filename)

	if format == "csv" {
		err = s.generateCSV(path, rows)
	} else {
		err = s.generateExcel(path, rows)
	}
	if err != nil {
		return "", err
	}

	return path, nil
}

func (s *Service) collectRows(ctx context.Context, zoneID int) ([]historyRow, error) {
	immediate, err := s.ledger.HistoryForZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	scheduled, err := s.db.ScheduledAssignment.Query().
		Where(scheduledassignment.ZoneID(zoneID)).
		Order(ent.Desc(scheduledassignment.FieldScheduledDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query scheduled history: %w", err)
	}

	rows := make([]historyRow, 0, len(immediate)+len(scheduled))

	for _, a := range immediate {
		target := ledger.TargetOf(a)
		row := historyRow{
			ID:            a.ID,
			Kind:          "immediate",
			TargetKind:    string(target.Kind()),
			TargetName:    s.resolveTargetName(ctx, target),
			Status:        string(a.Status),
			EffectiveFrom: a.EffectiveFrom.Format(time.RFC3339),
		}
		if a.EffectiveTo != nil {
			row.EffectiveTo = a.EffectiveTo.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	for _, a := range scheduled {
		target := ledger.TargetOfScheduled(a)
		rows = append(rows, historyRow{
			ID:            a.ID,
			Kind:          "scheduled",
			TargetKind:    string(target.Kind()),
			TargetName:    s.resolveTargetName(ctx, target),
			Status:        string(a.Status),
			EffectiveFrom: a.EffectiveFrom.Format(time.RFC3339),
			ScheduledDate: a.ScheduledDate.Format(time.RFC3339),
		})
	}

	return rows, nil
}

func (s *Service) resolveTargetName(ctx context.Context, target ledger.Target) string {
	switch {
	case target.IsAgent():
		if u, err := s.db.User.Get(ctx, target.ID()); err == nil {
			return u.Name
		}
	case target.IsTeam():
		if t, err := s.db.Team.Get(ctx, target.ID()); err == nil {
			return t.Name
		}
	}
	return fmt.Sprintf("#%d", target.ID())
}

var historyHeaders = []string{
	"ID", "Kind", "Target Type", "Target", "Status",
	"Effective From", "Effective To", "Scheduled Date",
}

// generateCSV generates a CSV file from history rows
func (s *Service) generateCSV(path string, rows []historyRow) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(historyHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.ID),
			r.Kind,
			r.TargetKind,
			r.TargetName,
			r.Status,
			r.EffectiveFrom,
			r.EffectiveTo,
			r.ScheduledDate,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// generateExcel generates an Excel file from history rows
func (s *Service) generateExcel(path string, rows []historyRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Assignment History"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range historyHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, r := range rows {
		row := rowIdx + 2 // Start from row 2 (after header)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.TargetKind)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.TargetName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), r.EffectiveFrom)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), r.EffectiveTo)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), r.ScheduledDate)
	}

	for i := range historyHeaders {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pkordes/courseinfo/backend/internal/domain"
	"github.com/pkordes/courseinfo/backend/internal/handler/gen"
)

// rosterHeaders defines the column names written as the first row of the CSV
// and XLSX exports. One row per person; role is "instructor" or "student".
var rosterHeaders = []string{"section", "role", "slug", "last_name", "first_name", "nick_name", "display"}

// GetRoster handles GET /sections/{slug}/roster.
// ?format=csv or ?format=xlsx downloads a flat table as an attachment;
// the default is JSON.
func (s *Server) GetRoster(ctx context.Context, req gen.GetRosterRequestObject) (gen.GetRosterResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	switch format {
	case gen.Json, gen.Csv, gen.Xlsx:
	default:
		return gen.GetRoster400JSONResponse(requestBody("format must be json, csv or xlsx")), nil
	}

	roster, err := s.rosters.Roster(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetRoster404JSONResponse(notFoundBody(err, "section not found")), nil
		}
		return nil, err
	}

	switch format {
	case gen.Csv:
		buf, err := rosterCSV(roster)
		if err != nil {
			return nil, err
		}
		return gen.GetRoster200TextcsvResponse{
			Body:          buf,
			ContentLength: int64(buf.Len()),
			Headers:       gen.GetRoster200ResponseHeaders{ContentDisposition: attachment(roster, "csv")},
		}, nil
	case gen.Xlsx:
		buf, err := rosterWorkbook(roster)
		if err != nil {
			return nil, err
		}
		return gen.GetRoster200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse{
			Body:          buf,
			ContentLength: int64(buf.Len()),
			Headers:       gen.GetRoster200ResponseHeaders{ContentDisposition: attachment(roster, "xlsx")},
		}, nil
	}
	return gen.GetRoster200JSONResponse{
		Body:    rosterToResponse(roster),
		Headers: gen.GetRoster200ResponseHeaders{ContentDisposition: "inline"},
	}, nil
}

func rosterToResponse(ro domain.Roster) gen.Roster {
	return gen.Roster{
		Section:     sectionToResponse(ro.Section),
		Instructors: convertAll(ro.Instructors, instructorToResponse),
		Students:    convertAll(ro.Students, studentToResponse),
	}
}

// rosterRecords flattens a roster into rows matching rosterHeaders.
// Instructors come first, then students, each in the order the service
// returned them.
func rosterRecords(ro domain.Roster) [][]string {
	sec := ro.Section.Slug
	rows := make([][]string, 0, len(ro.Instructors)+len(ro.Students))
	for _, i := range ro.Instructors {
		rows = append(rows, []string{sec, "instructor", i.Slug, i.LastName, i.FirstName, "", i.String()})
	}
	for _, st := range ro.Students {
		rows = append(rows, []string{sec, "student", st.Slug, st.LastName, st.FirstName, st.NickName, st.String()})
	}
	return rows
}

// rosterCSV buffers the whole file so an encoding failure can still be
// reported as a 500 before any bytes are sent.
func rosterCSV(ro domain.Roster) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(rosterHeaders); err != nil {
		return nil, fmt.Errorf("handler.rosterCSV: header: %w", err)
	}
	if err := cw.WriteAll(rosterRecords(ro)); err != nil {
		return nil, fmt.Errorf("handler.rosterCSV: %w", err)
	}
	return &buf, nil
}

// rosterWorkbook renders the roster into a single-sheet workbook named after
// the section slug, with a bold header row.
func rosterWorkbook(ro domain.Roster) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Roster"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("handler.rosterWorkbook: rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("handler.rosterWorkbook: style: %w", err)
	}

	rows := append([][]string{rosterHeaders}, rosterRecords(ro)...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("handler.rosterWorkbook: %w", err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("handler.rosterWorkbook: row %d: %w", i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rosterHeaders), 1)
	if err != nil {
		return nil, fmt.Errorf("handler.rosterWorkbook: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("handler.rosterWorkbook: header style: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("handler.rosterWorkbook: write: %w", err)
	}
	return buf, nil
}

// attachment names the download after the section slug,
// e.g. attachment; filename="cs-101-001-roster.csv".
func attachment(ro domain.Roster, ext string) string {
	return `attachment; filename="` + ro.Section.Slug + "-roster." + ext + `"`
}

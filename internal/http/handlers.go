package http

import (
	"errors"
	"log/slog"
	"net/http"

	"ore/internal/core"
	"ore/internal/editor"
	"ore/internal/export"
	"ore/internal/log"
	"ore/internal/store"
)

type calculateRequest struct {
	TimeValue  string `json:"timeValue"`
	Unit       string `json:"unit"`
	HourlyRate string `json:"hourlyRate"`
}

type wageRecordRequest struct {
	Name  *string `json:"name"`
	Time  *string `json:"time"`
	Wage  *string `json:"wage"`
	Total *string `json:"total"`
}

type manualRecordRequest struct {
	Date       *string `json:"date"`
	StartTime  *string `json:"startTime"`
	EndTime    *string `json:"endTime"`
	BreakTime  *string `json:"breakTime"`
	TotalHours *string `json:"totalHours"`
	Project    *string `json:"project"`
}

type exportRequest struct {
	Format string `json:"format"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPost) {
		return
	}
	var req calculateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	unit := core.DefaultUnit
	if req.Unit != "" {
		var err error
		if unit, err = core.ParseUnit(req.Unit); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calc.TimeValue = sanitizeInput(req.TimeValue)
	s.calc.Unit = unit
	s.calc.HourlyRate = sanitizeInput(req.HourlyRate)

	if err := s.calc.Calculate(); err != nil {
		// The previous result, if any, stays in place.
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	slog.InfoContext(r.Context(), "Calculation completed",
		"unit", string(unit),
		"time", s.calc.Result.Time,
		"pay", s.calc.Result.Pay,
		log.FieldOperation, log.OpCalculate)
	writeJSON(w, http.StatusOK, s.calc.Result)
}

func (s *Server) handleCalculateReset(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPost) {
		return
	}
	s.mu.Lock()
	s.calc.Reset()
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCalculateCopy(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPost) {
		return
	}
	s.mu.Lock()
	result := s.calc.Result
	s.mu.Unlock()

	if result == nil {
		writeError(w, http.StatusUnprocessableEntity, "calculate a result first before copying")
		return
	}

	text := result.ClipboardText()
	if err := s.clip.Copy(r.Context(), text); err != nil {
		slog.ErrorContext(r.Context(), "Clipboard copy failed", log.FieldError, err, log.FieldOperation, log.OpCopy)
		writeError(w, http.StatusInternalServerError, "could not copy result")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"copied": text})
}

func (s *Server) handleCalculateAddRecord(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPost) {
		return
	}
	var req wageRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.calc.Result == nil {
		writeError(w, http.StatusUnprocessableEntity, "calculate a result first before adding to records")
		return
	}

	name := ""
	if req.Name != nil {
		name = sanitizeInput(*req.Name)
	}
	s.editor.OpenAddWage(editor.Form{
		Name:  name,
		Time:  s.calc.Result.Time,
		Wage:  core.WageDisplay(s.calc.HourlyRate),
		Total: s.calc.Result.Pay,
	})

	id, err := s.editor.Save()
	if err != nil {
		status, msg := saveStatus(err)
		writeError(w, status, msg)
		return
	}

	record, _ := s.store.WageByID(id)
	slog.InfoContext(r.Context(), "Wage record created from calculation",
		log.FieldRecordID, id,
		log.FieldRecordKind, log.KindWage,
		log.FieldOperation, log.OpCreate)
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodGet) {
		return
	}
	filter := sanitizeInput(r.URL.Query().Get("filter"))
	wage, manual := s.store.Snapshot()
	if filter != "" {
		slog.InfoContext(r.Context(), "Records filtered",
			log.FieldFilter, filter, log.FieldOperation, log.OpList)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"calculationRecords": editor.FilterWage(wage, filter),
		"manualTimeRecords":  editor.FilterManual(manual, filter),
	})
}

func (s *Server) handleCreateWage(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPost) {
		return
	}
	var req wageRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.OpenAddWage(editor.Form{
		Name:  sanitized(req.Name),
		Time:  sanitized(req.Time),
		Wage:  sanitized(req.Wage),
		Total: sanitized(req.Total),
	})
	id, err := s.editor.Save()
	if err != nil {
		status, msg := saveStatus(err)
		writeError(w, status, msg)
		return
	}

	record, _ := s.store.WageByID(id)
	slog.InfoContext(r.Context(), "Wage record created",
		log.FieldRecordID, id, log.FieldRecordKind, log.KindWage, log.FieldOperation, log.OpCreate)
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleUpdateWage(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPut) {
		return
	}
	id := pathID(r.URL.Path, "/records/wage/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}
	var req wageRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editor.OpenEditWage(id); err != nil {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}

	form := s.editor.Form()
	if req.Name != nil {
		form.Name = sanitizeInput(*req.Name)
	}
	if req.Time != nil {
		form.Time = sanitizeInput(*req.Time)
	}
	if req.Wage != nil {
		form.Wage = sanitizeInput(*req.Wage)
	}
	if req.Total != nil {
		form.Total = sanitizeInput(*req.Total)
	}
	s.editor.SetForm(form)

	if _, err := s.editor.Save(); err != nil {
		status, msg := saveStatus(err)
		writeError(w, status, msg)
		return
	}

	record, _ := s.store.WageByID(id)
	slog.InfoContext(r.Context(), "Wage record updated",
		log.FieldRecordID, id, log.FieldRecordKind, log.KindWage, log.FieldOperation, log.OpUpdate)
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleCreateManual(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPost) {
		return
	}
	var req manualRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.OpenAddManual()
	s.editor.SetForm(editor.Form{
		Date:       sanitized(req.Date),
		StartTime:  sanitized(req.StartTime),
		EndTime:    sanitized(req.EndTime),
		BreakTime:  sanitized(req.BreakTime),
		TotalHours: sanitized(req.TotalHours),
		Project:    sanitized(req.Project),
	})
	id, err := s.editor.Save()
	if err != nil {
		status, msg := saveStatus(err)
		writeError(w, status, msg)
		return
	}

	record, _ := s.store.ManualByID(id)
	slog.InfoContext(r.Context(), "Manual record created",
		log.FieldRecordID, id, log.FieldRecordKind, log.KindManual, log.FieldOperation, log.OpCreate)
	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleUpdateManual(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPut) {
		return
	}
	id := pathID(r.URL.Path, "/records/manual/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing record id")
		return
	}
	var req manualRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.editor.OpenEditManual(id); err != nil {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}

	form := s.editor.Form()
	if req.Date != nil {
		form.Date = sanitizeInput(*req.Date)
	}
	if req.StartTime != nil {
		form.StartTime = sanitizeInput(*req.StartTime)
	}
	if req.EndTime != nil {
		form.EndTime = sanitizeInput(*req.EndTime)
	}
	if req.BreakTime != nil {
		form.BreakTime = sanitizeInput(*req.BreakTime)
	}
	if req.TotalHours != nil {
		form.TotalHours = sanitizeInput(*req.TotalHours)
	}
	if req.Project != nil {
		form.Project = sanitizeInput(*req.Project)
	}
	s.editor.SetForm(form)

	if _, err := s.editor.Save(); err != nil {
		status, msg := saveStatus(err)
		writeError(w, status, msg)
		return
	}

	record, _ := s.store.ManualByID(id)
	slog.InfoContext(r.Context(), "Manual record updated",
		log.FieldRecordID, id, log.FieldRecordKind, log.KindManual, log.FieldOperation, log.OpUpdate)
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !methodGuard(w, r, http.MethodPost) {
		return
	}
	var req exportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := s.exports.Export(r.Context(), format)
	if err != nil {
		if errors.Is(err, export.ErrNoData) {
			writeError(w, http.StatusUnprocessableEntity, "no data to export; add some records first")
			return
		}
		slog.ErrorContext(r.Context(), "Export failed",
			log.FieldError, err, log.FieldFormat, string(format), log.FieldOperation, log.OpExport)
		writeError(w, http.StatusInternalServerError, "an error occurred while exporting your data")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"format":   string(format),
		"filename": result.File.Filename,
		"mimeType": result.File.MIMEType,
		"note":     result.Note,
		"summary":  result.Summary,
	})
}

// saveStatus maps an editor save error to a status code and a message
// safe to show the user.
func saveStatus(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrEmptyName), errors.Is(err, core.ErrMissingShift):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, store.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	default:
		return http.StatusInternalServerError, "could not save record"
	}
}

func sanitized(p *string) string {
	if p == nil {
		return ""
	}
	return sanitizeInput(*p)
}

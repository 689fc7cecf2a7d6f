// Package server exposes the amortization engine over a small HTTP JSON API.
// Rendering and plotting of the returned series belong to external clients.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/loan-projection/internal/config"
	"github.com/iwvelando/loan-projection/internal/sweep"
	"github.com/iwvelando/loan-projection/pkg/amortize"
	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/mathutil"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the projection API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Schedule API endpoint (YAML config upload)
	mux.HandleFunc("/api/schedule", h.handleSchedule)

	// Sweep API endpoint (YAML config upload with a sweep block)
	mux.HandleFunc("/api/sweep", h.handleSweep)

	// Rate solver endpoint (YAML config upload plus a target query param)
	mux.HandleFunc("/api/rate", h.handleRate)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type scheduleResponse struct {
	Currency  string          `json:"currency"`
	Repayment float64         `json:"repayment"`
	Rows      []scheduleRow   `json:"rows"`
	Metrics   scheduleMetrics `json:"metrics"`
	Warnings  []string        `json:"warnings,omitempty"`
	Duration  string          `json:"duration"`
}

type scheduleRow struct {
	Time               float64 `json:"time"`
	LoanOutstanding    float64 `json:"loanOutstanding"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
	CumulativePayments float64 `json:"cumulativePayments"`
}

type scheduleMetrics struct {
	Principal     float64 `json:"principal"`
	TotalInterest float64 `json:"totalInterest"`
	TotalPayments float64 `json:"totalPayments"`
	InterestRatio float64 `json:"interestRatio"`
}

type sweepResponse struct {
	Variable      string     `json:"variable"`
	Values        []float64  `json:"values"`
	Repayments    []float64  `json:"repayments"`
	TotalPayments []float64  `json:"totalPayments"`
	PaymentsRange jsonRange  `json:"paymentsRange"`
	TimeRange     *jsonRange `json:"timeRange,omitempty"`
	Warnings      []string   `json:"warnings,omitempty"`
	Duration      string     `json:"duration"`
}

type jsonRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type rateResponse struct {
	TargetRepayment float64  `json:"targetRepayment"`
	Rate            float64  `json:"rate"`
	Repayment       float64  `json:"repayment"`
	Warnings        []string `json:"warnings,omitempty"`
	Duration        string   `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := time.Now()
	conf, err := h.readConfiguration(w, r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := conf.Mortgage()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	schedule := amortize.Compute(loan)
	resp := scheduleResponse{
		Currency:  schedule.Currency.Symbol(),
		Repayment: schedule.Repayment,
		Rows:      make([]scheduleRow, schedule.Points()),
		Warnings:  conf.ValidateConfiguration(),
		Duration:  time.Since(start).String(),
	}
	for j := range schedule.Time {
		resp.Rows[j] = scheduleRow{
			Time:               schedule.Time[j],
			LoanOutstanding:    schedule.LoanOutstanding[j],
			CumulativeInterest: schedule.CumulativeInterest[j],
			CumulativePayments: schedule.CumulativePayments[j],
		}
	}
	resp.Metrics.Principal = loan.Principal()
	if last := schedule.Points() - 1; last >= 0 {
		resp.Metrics.TotalInterest = schedule.CumulativeInterest[last]
		resp.Metrics.TotalPayments = schedule.CumulativePayments[last]
		if !mathutil.IsZero(resp.Metrics.TotalPayments) {
			resp.Metrics.InterestRatio = resp.Metrics.TotalInterest / resp.Metrics.TotalPayments
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := time.Now()
	conf, err := h.readConfiguration(w, r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if conf.Sweep == nil {
		h.writeError(w, http.StatusBadRequest, "configuration has no sweep block")
		return
	}

	loan, err := conf.Mortgage()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	variable, err := sweep.ParseVariable(conf.Sweep.Variable)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	runner := sweep.NewRunner(h.logger, 0)
	result, err := runner.Run(loan, variable, conf.Sweep.Values)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := sweepResponse{
		Variable:      result.Variable.String(),
		Values:        result.Values,
		Repayments:    result.Repayments,
		TotalPayments: make([]float64, len(result.Schedules)),
		PaymentsRange: jsonRange{Min: result.PaymentsRange.Min, Max: result.PaymentsRange.Max},
		Warnings:      conf.ValidateConfiguration(),
		Duration:      time.Since(start).String(),
	}
	for n, s := range result.Schedules {
		if last := s.Points() - 1; last >= 0 {
			resp.TotalPayments[n] = s.CumulativePayments[last]
		}
	}
	if result.TimeRange != nil {
		resp.TimeRange = &jsonRange{Min: result.TimeRange.Min, Max: result.TimeRange.Max}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleRate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	start := time.Now()
	target, err := strconv.ParseFloat(r.URL.Query().Get("target"), 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "target query parameter must be a number")
		return
	}

	conf, err := h.readConfiguration(w, r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := conf.Mortgage()
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rate, err := amortize.RateForRepayment(h.logger, loan, target)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	solved, err := loan.WithRate(rate)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, rateResponse{
		TargetRepayment: target,
		Rate:            rate,
		Repayment:       amortize.Repayment(solved),
		Warnings:        conf.ValidateConfiguration(),
		Duration:        time.Since(start).String(),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) readConfiguration(w http.ResponseWriter, r *http.Request) (*config.Configuration, error) {
	body := http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	defer func() {
		_ = body.Close()
	}()

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %v", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("request body is empty")
	}

	var conf config.Configuration
	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %v", err)
	}
	return &conf, nil
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorResponse{Error: message})
}

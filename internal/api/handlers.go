package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/reporting"
	"solana-signal-lab/internal/signals"
	"solana-signal-lab/internal/strategies"
	"solana-signal-lab/internal/timerange"
	"solana-signal-lab/internal/tokens"
)

var errMetadataDisabled = errors.New("token metadata lookup is not configured")

func (s *Server) listTokens(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := domain.TokenCategory(q.Get("category"))
	if q.Get("popular") == "true" {
		writeJSON(w, http.StatusOK, tokens.Popular())
		return
	}
	writeJSON(w, http.StatusOK, tokens.Search(q.Get("q"), category))
}

func (s *Server) tokenMetadata(w http.ResponseWriter, r *http.Request) {
	if s.metadata == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: errMetadataDisabled.Error()})
		return
	}
	meta, err := s.metadata.Resolve(r.Context(), chi.URLParam(r, "mint"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (s *Server) listIntervals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Intervals())
}

func (s *Server) listPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, timerange.Presets())
}

func (s *Server) listSignals(w http.ResponseWriter, r *http.Request) {
	rows, err := s.signals.Summaries(r.Context(), signals.ParseFilter(r.URL.Query().Get("direction")))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (s *Server) signalDetail(w http.ResponseWriter, r *http.Request) {
	tf := domain.ParseTimeframe(r.URL.Query().Get("timeframe"))
	d, err := s.signals.Detail(r.Context(), chi.URLParam(r, "id"), tf)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeReport(w, r, s.reports.FromDetail(d), d)
}

func (s *Server) signalChart(w http.ResponseWriter, r *http.Request) {
	tf := domain.ParseTimeframe(r.URL.Query().Get("timeframe"))
	d, err := s.signals.Detail(r.Context(), chi.URLParam(r, "id"), tf)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeChart(w, r, s.reports.FromDetail(d))
}

func (s *Server) listStrategies(w http.ResponseWriter, r *http.Request) {
	list, err := s.strategies.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) addStrategy(w http.ResponseWriter, r *http.Request) {
	var req strategies.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	st, err := s.strategies.Add(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) removeStrategy(w http.ResponseWriter, r *http.Request) {
	if err := s.strategies.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearStrategies(w http.ResponseWriter, r *http.Request) {
	if err := s.strategies.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) compareStrategies(w http.ResponseWriter, r *http.Request) {
	c, err := s.strategies.Compare(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeReport(w, r, s.reports.FromComparison(c), c)
}

func (s *Server) strategiesChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.strategies.Compare(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeChart(w, r, s.reports.FromComparison(c))
}

// writeReport renders by ?format=: json (default, writes v), csv, markdown
// or table.
func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, rep *reporting.Report, v interface{}) {
	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, http.StatusOK, v)
	case "csv":
		var buf bytes.Buffer
		if err := reporting.WriteCSV(&buf, rep); err != nil {
			s.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write(buf.Bytes())
	case "markdown", "md":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(reporting.RenderMarkdown(rep)))
	case "table":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(reporting.RenderTable(rep)))
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("unknown format %q", format)})
	}
}

func (s *Server) writeChart(w http.ResponseWriter, r *http.Request, rep *reporting.Report) {
	var buf bytes.Buffer
	if err := reporting.RenderChart(&buf, rep); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dygy/wavegen/internal/config"
	werrors "github.com/dygy/wavegen/internal/errors"
	"github.com/dygy/wavegen/internal/pipeline"
	"github.com/dygy/wavegen/internal/sequence"
)

const maxBodySize = 64 * 1024

// renderRequest describes one signal to render. The parameter shape
// matches the preset file format, carried as JSON.
type renderRequest struct {
	Waveform  string  `json:"waveform"`
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Phase     float64 `json:"phase,omitempty"`
	Duty      float64 `json:"duty_cycle,omitempty"`
	Slope     float64 `json:"slope,omitempty"`

	Modulation *modulationRequest `json:"modulation,omitempty"`

	// Format selects the response body: "text" (default) returns the
	// ASCII canvas, "json" the full sample data.
	Format string `json:"format,omitempty"`
}

type modulationRequest struct {
	Scheme      string  `json:"scheme"`
	CarrierAmp  float64 `json:"carrier_amplitude"`
	CarrierFreq float64 `json:"carrier_frequency"`
	Index       float64 `json:"index,omitempty"`
}

type renderResponse struct {
	Table     []sequence.Sample `json:"table"`
	Plot      []float64         `json:"plot"`
	Lines     []string          `json:"lines"`
	Amplitude float64           `json:"amplitude"`
	Period    float64           `json:"period"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleRender runs the pipeline for the posted parameters.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	res, err := runRequest(&req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, werrors.ErrUnknownKind) ||
			errors.Is(err, werrors.ErrUnknownScheme) ||
			errors.Is(err, werrors.ErrNonPositiveFrequency) {
			status = http.StatusBadRequest
		}
		s.logger.Warn("render failed", slog.String("error", err.Error()))
		s.writeError(w, err.Error(), status)
		return
	}

	if req.Format == "json" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(renderResponse{
			Table:     res.Table,
			Plot:      res.Plot,
			Lines:     res.Canvas.Lines(),
			Amplitude: res.Amp,
			Period:    res.Period,
		})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(res.Canvas.String()))
}

// runRequest reuses the preset builders so HTTP and preset parameters
// stay one format.
func runRequest(req *renderRequest) (*pipeline.Result, error) {
	p := config.Preset{
		Waveform:  req.Waveform,
		Frequency: req.Frequency,
		Amplitude: req.Amplitude,
		Phase:     req.Phase,
		Duty:      req.Duty,
		Slope:     req.Slope,
	}
	if req.Modulation != nil {
		p.Modulation = &config.ModulationPreset{
			Scheme:      req.Modulation.Scheme,
			CarrierAmp:  req.Modulation.CarrierAmp,
			CarrierFreq: req.Modulation.CarrierFreq,
			Index:       req.Modulation.Index,
		}
	}

	base, err := p.Build()
	if err != nil {
		return nil, err
	}
	mod, err := p.BuildModulator(base)
	if err != nil {
		return nil, err
	}
	if mod != nil {
		return pipeline.RunModulated(mod)
	}
	return pipeline.Run(base)
}

func (s *Server) writeError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/bricklayer/pkg/buildinfo"
	bio "github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// seedHeader reports the seed a layout was generated with.
const seedHeader = "X-Bricklayer-Seed"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": buildinfo.Info().Version,
	})
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"patterns": bond.PatternNames()})
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"strategies": plan.Strategies()})
}

// handleLayout generates a wall: GET /layouts/{pattern}?width=&height=&seed=
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Pattern = chi.URLParam(r, "pattern")

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	l, err := s.runner.Generate(ctx, &opts)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set(seedHeader, strconv.FormatUint(opts.Seed, 10))
	writeJSON(w, http.StatusOK, l)
}

// planResponse is returned by GET /plans/{strategy}.
type planResponse struct {
	RunID  string      `json:"run_id"`
	Seed   uint64      `json:"seed,omitempty"`
	Layout wall.Layout `json:"layout"`
	Plan   plan.Plan   `json:"plan"`
}

// handleGeneratePlan generates a wall and plans it:
// GET /plans/{strategy}?pattern=&width=&height=&seed=
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.Strategy = chi.URLParam(r, "strategy")
	if err := opts.ValidateForPlan(); err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	l, err := s.runner.Generate(ctx, &opts)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := s.runner.Plan(ctx, l, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{RunID: uuid.NewString(), Seed: opts.Seed, Layout: l, Plan: p})
}

// handlePlanLayout plans an uploaded wall: POST /plans/{strategy} with a
// layout JSON body.
func (s *Server) handlePlanLayout(w http.ResponseWriter, r *http.Request) {
	opts := s.defaults
	opts.Strategy = chi.URLParam(r, "strategy")
	if err := opts.ValidateForPlan(); err != nil {
		writeError(w, err)
		return
	}

	l, err := bio.ReadLayout(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	p, err := s.runner.Plan(ctx, l, opts)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// comparison is one row of the /compare response.
type comparison struct {
	Strategy   string      `json:"strategy"`
	Status     plan.Status `json:"status"`
	Placed     int         `json:"placed"`
	Strides    int         `json:"strides"`
	DurationMS float64     `json:"duration_ms"`
}

type compareResponse struct {
	RunID       string       `json:"run_id"`
	Pattern     string       `json:"pattern"`
	Seed        uint64       `json:"seed,omitempty"`
	TotalBricks int          `json:"total_bricks"`
	Results     []comparison `json:"results"`
}

// handleCompare plans one wall with every strategy:
// GET /compare?pattern=&width=&height=&seed=
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	l, err := s.runner.Generate(ctx, &opts)
	if err != nil {
		writeError(w, err)
		return
	}
	results, err := s.runner.Compare(ctx, l, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := compareResponse{
		RunID:       uuid.NewString(),
		Pattern:     l.Pattern,
		Seed:        opts.Seed,
		TotalBricks: l.TotalBricks,
		Results:     make([]comparison, len(results)),
	}
	for i, c := range results {
		resp.Results[i] = comparison{
			Strategy:   c.Strategy,
			Status:     c.Plan.Status,
			Placed:     len(c.Plan.Placements),
			Strides:    c.Plan.Strides,
			DurationMS: float64(c.Duration.Microseconds()) / 1000,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// options builds request options from the server defaults and the query
// parameters pattern, width, height, and seed.
func (s *Server) options(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Logger = s.logger
	q := r.URL.Query()

	if v := q.Get("pattern"); v != "" {
		opts.Pattern = v
	}
	for _, f := range []struct {
		name string
		dst  *float64
	}{{"width", &opts.Width}, {"height", &opts.Height}} {
		v := q.Get(f.name)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, apperrors.New(apperrors.ErrCodeInvalidDimensions, "%s must be a number (got %q)", f.name, v)
		}
		*f.dst = n
	}
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, apperrors.New(apperrors.ErrCodeInvalidInput, "seed must be an unsigned integer (got %q)", v)
		}
		opts.Seed = n
	}
	return opts, nil
}

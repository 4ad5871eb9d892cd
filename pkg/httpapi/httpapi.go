// Package httpapi exposes the overlap pipeline over HTTP: submit a family,
// fetch a previously audited run, or render a cached run's sparse subgraph
// to SVG. The router follows the same chi-plus-middleware shape the rest of
// the ecosystem's chi-based services use (middleware.Logger and
// middleware.Recoverer wrapping every route).
package httpapi

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/LyteFM/overlap-components/pkg/audit"
	"github.com/LyteFM/overlap-components/pkg/cache"
	"github.com/LyteFM/overlap-components/pkg/core/overlap"
	apierrors "github.com/LyteFM/overlap-components/pkg/errors"
	"github.com/LyteFM/overlap-components/pkg/familyio"
	"github.com/LyteFM/overlap-components/pkg/render/overlapviz"
	"github.com/LyteFM/overlap-components/pkg/runner"
)

// API holds the dependencies the HTTP handlers need: a runner to execute
// pipeline runs, an audit store to look runs back up, and a cache to keep
// the result around long enough for a follow-up graph.svg request.
type API struct {
	Runner *runner.Runner
	Audit  audit.Store
	Cache  cache.Cache
	// Keyer builds the cache key a result is stored/looked up under. Nil
	// defaults to cache.NewDefaultKeyer().
	Keyer cache.Keyer
}

// New builds a chi router exposing the three family/run endpoints.
func New(a *API) http.Handler {
	if a.Keyer == nil {
		a.Keyer = cache.NewDefaultKeyer()
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/families", a.handleCreateFamily)
	r.Get("/runs/{id}", a.handleGetRun)
	r.Get("/runs/{id}/graph.svg", a.handleGraphSVG)

	return r
}

type createFamilyResponse struct {
	RunID      string `json:"run_id"`
	Components int    `json:"components"`
	NumSets    int    `json:"num_sets"`
	GroundSize int    `json:"ground_size"`
}

// handleCreateFamily parses the request body as the whitespace-integer
// family format, runs the pipeline, and returns the resulting run summary.
func (a *API) handleCreateFamily(w http.ResponseWriter, r *http.Request) {
	f, err := familyio.Parse(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := a.Runner.Run(r.Context(), f, "", runner.Options{})
	if err != nil {
		writeError(w, err)
		return
	}

	if a.Cache != nil {
		if raw, mErr := json.Marshal(result); mErr == nil {
			_ = a.Cache.Set(r.Context(), a.Keyer.RenderKey(result.RunID), raw, time.Hour)
		}
	}

	writeJSON(w, http.StatusCreated, createFamilyResponse{
		RunID:      result.RunID,
		Components: result.Dahlhaus.Components,
		NumSets:    result.NumSets,
		GroundSize: result.GroundSize,
	})
}

// handleGetRun fetches a previously audited run by ID.
func (a *API) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if a.Audit == nil {
		writeJSON(w, http.StatusNotImplemented, apierrors.New(apierrors.ErrCodeUnsupported, "audit log not configured"))
		return
	}

	rec, err := a.Audit.Get(r.Context(), id)
	if stderrors.Is(err, audit.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, apierrors.New(apierrors.ErrCodeNotFound, "run %s not found", id))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleGraphSVG renders the sparse subgraph for a cached run as SVG. The
// run's family must still be in the cache (handleCreateFamily puts it
// there); an audit record alone is not enough, since it does not retain
// the family itself.
func (a *API) handleGraphSVG(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if a.Cache == nil {
		writeJSON(w, http.StatusNotImplemented, apierrors.New(apierrors.ErrCodeUnsupported, "rendering requires a cache"))
		return
	}

	raw, ok, err := a.Cache.Get(r.Context(), a.Keyer.RenderKey(id))
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, apierrors.New(apierrors.ErrCodeNotFound, "run %s not found in cache", id))
		return
	}

	var result runner.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		writeError(w, err)
		return
	}

	svg, err := overlapviz.RenderLabels(result.Subgraph.Labels)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a pipeline error to a structured JSON error body and HTTP
// status: bad input is a 400, a builder disagreement is a server-side 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apierrors.ErrCodeInternal
	switch {
	case stderrors.Is(err, overlap.ErrInvalidMember):
		status, code = http.StatusBadRequest, apierrors.ErrCodeInvalidInput
	case stderrors.Is(err, overlap.ErrDuplicateMember):
		status, code = http.StatusBadRequest, apierrors.ErrCodeInvalidInput
	case stderrors.Is(err, overlap.ErrInputParse):
		status, code = http.StatusBadRequest, apierrors.ErrCodeInvalidInput
	case stderrors.Is(err, overlap.ErrConsistency):
		status, code = http.StatusInternalServerError, apierrors.ErrCodeInternal
	}
	writeJSON(w, status, apierrors.Wrap(code, err, "%s", err.Error()))
}

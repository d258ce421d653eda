package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/usecase"
	"github.com/reef-world/finsync/pkg/utils/async"
	"github.com/reef-world/finsync/pkg/utils/errutil"
)

// Server exposes the verification lookup, the cached location averages
// and the admin trigger for one-off ingestion runs.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	s := &Server{
		router: chi.NewRouter(),
		uc:     uc,
	}

	s.router.Use(middleware.Recoverer)
	s.router.Use(accessLogger)

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/verify", s.handleVerify)
		r.Get("/score-average", s.handleScoreAverage)
		r.Post("/admin/ingest/{source}", s.handleIngest)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

type verifyResponse struct {
	ExternalID      types.MemberID         `json:"external_id"`
	Name            string                 `json:"name"`
	MembershipType  types.MembershipType   `json:"membership_type"`
	MembershipLevel types.MembershipLevel  `json:"membership_level"`
	Status          types.MembershipStatus `json:"membership_status"`
	Country         string                 `json:"country"`
	Location        string                 `json:"location"`
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := types.MemberID(r.URL.Query().Get("member"))
	member, err := s.uc.Verify(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
		} else {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		}
		return
	}

	respondJSON(ctx, w, http.StatusOK, verifyResponse{
		ExternalID:      member.ExternalID,
		Name:            member.Name,
		MembershipType:  member.MembershipType,
		MembershipLevel: member.MembershipLevel,
		Status:          member.MembershipStatus,
		Country:         member.Location.Country,
		Location:        member.Location.Name,
	})
}

type scoreResponse struct {
	Country  string  `json:"country"`
	Location string  `json:"location"`
	Average  float64 `json:"average"`
}

func (s *Server) handleScoreAverage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	country := r.URL.Query().Get("country")
	location := r.URL.Query().Get("location")
	if country == "" || location == "" {
		err := goerr.New("country and location are required")
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	average, err := s.uc.ScoreAverage(ctx, country, location)
	if err != nil {
		if errors.Is(err, model.ErrScoreNotFound) {
			errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
		} else {
			errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
		}
		return
	}

	respondJSON(ctx, w, http.StatusOK, scoreResponse{
		Country:  country,
		Location: location,
		Average:  average,
	})
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, err := types.ParseSourceKind(chi.URLParam(r, "source"))
	if err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := s.uc.Ingest(ctx, kind)
		return err
	})

	respondJSON(ctx, w, http.StatusAccepted, map[string]string{
		"status": "accepted",
		"source": kind.String(),
	})
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to encode response"), http.StatusInternalServerError)
	}
}

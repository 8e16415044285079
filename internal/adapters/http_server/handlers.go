// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"travel_planner/internal/domain"
)

type Planner interface {
	Plan(ctx context.Context, req domain.PlanRequest) (domain.Plan, error)
}

type RegionLister interface {
	All() []domain.Region
}

type Renderer interface {
	Render(reports []string) ([]byte, error)
}

type Handlers struct {
	Planner Planner
	Regions RegionLister
	PDF     Renderer
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type destinationDTO struct {
	Name        string `json:"name"`
	Popularity  int    `json:"popularity"`
	FlightCode  string `json:"flight_code"`
	HotelMarket string `json:"hotel_market"`
}

type regionDTO struct {
	Name         string           `json:"name"`
	Destinations []destinationDTO `json:"destinations"`
}

type planRequestDTO struct {
	Region      string  `json:"region"`
	Preferences string  `json:"preferences"`
	Budget      *float64 `json:"budget"`
	Nights      *int     `json:"nights"`
	OriginCode  string   `json:"origin_code"`
	OriginName  string   `json:"origin_name"`
}

// toRequest substitutes the defaults for omitted numbers; an explicit 0 is kept.
func (in planRequestDTO) toRequest() domain.PlanRequest {
	req := domain.PlanRequest{
		Region:      in.Region,
		Preferences: in.Preferences,
		Budget:      domain.DefaultBudget,
		Nights:      domain.DefaultNights,
		OriginCode:  in.OriginCode,
		OriginName:  in.OriginName,
	}
	if in.Budget != nil {
		req.Budget = *in.Budget
	}
	if in.Nights != nil {
		req.Nights = *in.Nights
	}
	return req
}

type costDTO struct {
	HotelPerNight float64 `json:"hotel_per_night"`
	Flight        float64 `json:"flight"`
	DailyFood     float64 `json:"daily_food"`
	Nights        int     `json:"nights"`
	Total         float64 `json:"total"`
}

type planDTO struct {
	Region      string           `json:"region"`
	Candidates  []destinationDTO `json:"candidates"`
	Report      string           `json:"report"`
	RawText     string           `json:"raw_text"`
	Destination *string          `json:"destination"`
	Cost        *costDTO         `json:"cost"`
	Reviews     []string         `json:"reviews"`
}

const maxBody = 64 << 10

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/regions", h.listRegions)
	s.mux.Post("/v1/recommendations", h.recommend)
	s.mux.Post("/v1/recommendations/pdf", h.recommendPDF)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func toDestinationDTOs(ds []domain.Destination) []destinationDTO {
	out := make([]destinationDTO, len(ds))
	for i, d := range ds {
		out[i] = destinationDTO{Name: d.Name, Popularity: d.Popularity, FlightCode: d.FlightCode, HotelMarket: d.HotelMarket}
	}
	return out
}

func toPlanDTO(p domain.Plan) planDTO {
	out := planDTO{
		Region:      p.Request.Region,
		Candidates:  toDestinationDTOs(p.Candidates),
		Report:      p.Report.Text,
		RawText:     p.Report.RawText,
		Destination: p.Report.Destination,
		Reviews:     p.Report.Reviews,
	}
	if c := p.Report.Cost; c != nil {
		out.Cost = &costDTO{
			HotelPerNight: c.HotelPerNight,
			Flight:        c.Flight,
			DailyFood:     c.DailyFood,
			Nights:        c.Nights,
			Total:         c.Total(),
		}
	}
	return out
}

func (h *Handlers) listRegions(w http.ResponseWriter, r *http.Request) {
	regions := h.Regions.All()
	out := make([]regionDTO, len(regions))
	for i, rg := range regions {
		out[i] = regionDTO{Name: rg.Name, Destinations: toDestinationDTOs(rg.Destinations)}
	}

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listRegions body")
	}
}

// plan decodes the body and runs the planner, writing a problem response on failure.
func (h *Handlers) plan(w http.ResponseWriter, r *http.Request) (domain.Plan, bool) {
	var in planRequestDTO
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return domain.Plan{}, false
	}
	if strings.TrimSpace(in.Region) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid request", "region is required")
		return domain.Plan{}, false
	}
	p, err := h.Planner.Plan(r.Context(), in.toRequest())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			writeProblem(w, http.StatusBadRequest, "Invalid request", err.Error())
		} else {
			log.Error().Err(err).Msg("plan failed")
			writeProblem(w, http.StatusInternalServerError, "Internal error", "recommendation failed")
		}
		return domain.Plan{}, false
	}
	return p, true
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	p, ok := h.plan(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toPlanDTO(p)); err != nil {
		log.Error().Err(err).Msg("failed to write recommend body")
	}
}

func (h *Handlers) recommendPDF(w http.ResponseWriter, r *http.Request) {
	p, ok := h.plan(w, r)
	if !ok {
		return
	}
	b, err := h.PDF.Render([]string{p.Report.Text})
	if err != nil {
		log.Error().Err(err).Msg("pdf render failed")
		writeProblem(w, http.StatusInternalServerError, "Internal error", "could not render document")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="recommendation-%s.pdf"`, uuid.NewString()))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(b); err != nil {
		log.Error().Err(err).Msg("failed to write pdf body")
	}
}

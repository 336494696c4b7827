package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/lintang-b-s/triroute/pkg/geo"
	"github.com/lintang-b-s/triroute/pkg/guidance"
	"github.com/lintang-b-s/triroute/pkg/util"
)

type NavigationService interface {
	Routes(ctx context.Context, source, target string) ([]datastructure.Route, error)
	RoutesByPosition(ctx context.Context, fromX, fromY, toX, toY float64) (string, string,
		[]datastructure.Route, error)
	NodePositions(ids []string) []datastructure.Coordinate
	DrivingInstructions(route datastructure.Route) ([]guidance.DrivingInstruction, error)
	GetGraph() ([]datastructure.Node, []datastructure.Edge)
}

type NavigationHandler struct {
	svc      NavigationService
	metrics  *Metrics
	validate *validator.Validate
	trans    ut.Translator
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *Metrics) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &NavigationHandler{svc: svc, metrics: m, validate: validate, trans: trans}

	r.Group(func(r chi.Router) {
		r.Route("/api", func(r chi.Router) {
			r.Get("/graph", handler.Graph)
			r.Route("/navigations", func(r chi.Router) {
				r.Post("/routes", handler.Routes)
				r.Post("/routes-by-position", handler.RoutesByPosition)
			})
		})
	})
}

// RoutesRequest model info
//
//	@Description	request body for a three-metric route query between two node ids
type RoutesRequest struct {
	Source string `json:"source" validate:"required"`
	Target string `json:"target" validate:"required"`
}

func (s *RoutesRequest) Bind(r *http.Request) error {
	if s.Source == "" && s.Target == "" {
		return errors.New("invalid request")
	}
	return nil
}

// RoutesByPositionRequest model info
//
//	@Description	request body for a route query between two planar positions
type RoutesByPositionRequest struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// Position model info
//
//	@Description	planar position
type Position struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

func (s *RoutesByPositionRequest) Bind(r *http.Request) error {
	return nil
}

// RouteResponse model info
//
//	@Description	one labelled route. found is false when the target cannot be reached
type RouteResponse struct {
	Label       string                     `json:"label"`
	Metric      string                     `json:"metric"`
	Found       bool                       `json:"found"`
	Path        []string                   `json:"path,omitempty"`
	Coordinates []datastructure.Coordinate `json:"coordinates,omitempty"`
	Polyline    string                     `json:"polyline,omitempty"`
	Distance    float64                    `json:"distance"`
	TimeHours   float64                    `json:"time_hours"`
	Time        string                     `json:"time"`
	Consumption float64                    `json:"consumption"`
	Directions  []InstructionResponse      `json:"directions,omitempty"`
}

// InstructionResponse model info
//
//	@Description	one turn by turn step of a route
type InstructionResponse struct {
	Instruction string                   `json:"instruction"`
	Node        string                   `json:"node"`
	Point       datastructure.Coordinate `json:"point"`
	Category    string                   `json:"category,omitempty"`
	Distance    float64                  `json:"distance"`
	TimeHours   float64                  `json:"time_hours"`
}

// RoutesResponse model info
//
//	@Description	response body of a route query, routes ordered shortest, fastest, most efficient
type RoutesResponse struct {
	Source string          `json:"source"`
	Target string          `json:"target"`
	Routes []RouteResponse `json:"routes"`
}

func (h *NavigationHandler) RenderRoutesResponse(source, target string, routes []datastructure.Route) (*RoutesResponse, error) {
	resp := &RoutesResponse{
		Source: source,
		Target: target,
		Routes: make([]RouteResponse, 0, len(routes)),
	}
	for _, r := range routes {
		rr := RouteResponse{
			Label:  r.Label(),
			Metric: r.Metric.String(),
			Found:  r.Found,
			Time:   "n/a",
		}
		if r.Found {
			coords := h.svc.NodePositions(r.Path.Nodes)
			rr.Path = r.Path.Nodes
			rr.Coordinates = coords
			rr.Polyline = datastructure.CreatePolyline(geo.RamerDouglasPeucker(coords, geo.CollinearTolerance))
			rr.Distance = util.RoundFloat(r.Stats.Length, 2)
			rr.TimeHours = util.RoundFloat(r.Stats.Time, 2)
			rr.Time = util.FormatHours(r.Stats.Time)
			rr.Consumption = util.RoundFloat(r.Stats.Consumption, 2)

			directions, err := h.svc.DrivingInstructions(r)
			if err != nil {
				return nil, err
			}
			for _, d := range directions {
				rr.Directions = append(rr.Directions, InstructionResponse{
					Instruction: d.Instruction,
					Node:        d.NodeID,
					Point:       d.Point,
					Category:    d.Category,
					Distance:    d.Distance,
					TimeHours:   d.Time,
				})
			}
		}
		if h.metrics != nil {
			h.metrics.observeRoute(r.Metric.String(), r.Found)
		}
		resp.Routes = append(resp.Routes, rr)
	}
	return resp, nil
}

// Routes
//
//	@Summary		shortest, fastest and most efficient route between two node ids
//	@Description	runs one search per metric (length, time, consumption) and reports every route with its length, travel time and consumption
//	@Tags			navigations
//	@Param			body	body	RoutesRequest	true	"source and target node ids"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/routes [post]
//	@Success		200	{object}	RoutesResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) Routes(w http.ResponseWriter, r *http.Request) {
	data := &RoutesRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.validate.Struct(*data); err != nil {
		vv := translateError(err, h.trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	routes, err := h.svc.Routes(r.Context(), data.Source, data.Target)
	if err != nil {
		render.Render(w, r, RenderError(err))
		return
	}

	resp, err := h.RenderRoutesResponse(data.Source, data.Target, routes)
	if err != nil {
		render.Render(w, r, RenderError(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// RoutesByPosition
//
//	@Summary		three-metric route query between the nodes nearest to two positions
//	@Description	snaps from and to onto their nearest nodes, then answers like /navigations/routes
//	@Tags			navigations
//	@Param			body	body	RoutesByPositionRequest	true	"from and to positions"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/navigations/routes-by-position [post]
//	@Success		200	{object}	RoutesResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) RoutesByPosition(w http.ResponseWriter, r *http.Request) {
	data := &RoutesByPositionRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if err := h.validate.Struct(*data); err != nil {
		vv := translateError(err, h.trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	source, target, routes, err := h.svc.RoutesByPosition(r.Context(), *data.From.X, *data.From.Y,
		*data.To.X, *data.To.Y)
	if err != nil {
		render.Render(w, r, RenderError(err))
		return
	}

	resp, err := h.RenderRoutesResponse(source, target, routes)
	if err != nil {
		render.Render(w, r, RenderError(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// NodeResponse model info
//
//	@Description	node of the road network
type NodeResponse struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// EdgeResponse model info
//
//	@Description	edge of the road network
type EdgeResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	Category        string  `json:"category"`
	Length          float64 `json:"length"`
	Speed           float64 `json:"speed"`
	ConsumptionRate float64 `json:"consumption_rate"`
}

// GraphResponse model info
//
//	@Description	all nodes and edges, for drawing the network
type GraphResponse struct {
	Nodes []NodeResponse `json:"nodes"`
	Edges []EdgeResponse `json:"edges"`
}

// Graph
//
//	@Summary		road network nodes and edges
//	@Tags			navigations
//	@Produce		application/json
//	@Router			/graph [get]
//	@Success		200	{object}	GraphResponse
func (h *NavigationHandler) Graph(w http.ResponseWriter, r *http.Request) {
	nodes, edges := h.svc.GetGraph()
	resp := &GraphResponse{
		Nodes: make([]NodeResponse, 0, len(nodes)),
		Edges: make([]EdgeResponse, 0, len(edges)),
	}
	for _, n := range nodes {
		resp.Nodes = append(resp.Nodes, NodeResponse{ID: n.ID, X: n.Position.X, Y: n.Position.Y})
	}
	for _, e := range edges {
		resp.Edges = append(resp.Edges, EdgeResponse{
			From:            nodes[e.FromNodeID].ID,
			To:              nodes[e.ToNodeID].ID,
			Category:        e.Category,
			Length:          e.Length,
			Speed:           e.Speed,
			ConsumptionRate: e.ConsumptionRate,
		})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

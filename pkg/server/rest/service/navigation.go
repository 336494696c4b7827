package service

import (
	"context"
	"errors"

	"github.com/lintang-b-s/triroute/pkg/concurrent"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/lintang-b-s/triroute/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/triroute/pkg/guidance"
	"github.com/lintang-b-s/triroute/pkg/kv"
	"github.com/lintang-b-s/triroute/pkg/server"
	"go.uber.org/zap"
)

type NavigationService struct {
	g        Graph
	routing  RoutingAlgorithm
	guidance *guidance.InstructionsFromPath
	snapper  NodeSnapper
	cache    RouteCache
	parallel bool
	logger   *zap.Logger
}

// NewNavigationService wires the query side. cache and snapper may be nil.
func NewNavigationService(g Graph, routing RoutingAlgorithm, snapper NodeSnapper, cache RouteCache,
	parallel bool, logger *zap.Logger) *NavigationService {
	return &NavigationService{
		g:        g,
		routing:  routing,
		guidance: guidance.NewInstructionsFromPath(g),
		snapper:  snapper,
		cache:    cache,
		parallel: parallel,
		logger:   logger,
	}
}

// Routes answers one query with the shortest, fastest and most efficient route,
// in that order. A route that does not exist comes back with Found == false.
func (uc *NavigationService) Routes(ctx context.Context, source, target string) ([]datastructure.Route, error) {
	for _, id := range []string{source, target} {
		if _, ok := uc.g.GetNodeIDx(id); !ok {
			return nil, server.WrapErrorf(&routingalgorithm.NodeNotFoundError{ID: id}, server.ErrNotFound,
				"location %q is not on the map", id)
		}
	}

	key := kv.RouteKey(source, target)
	if uc.cache != nil {
		routes, ok, err := uc.cache.GetRoutes(ctx, key)
		if err != nil {
			uc.logger.Warn("route cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			return routes, nil
		}
	}

	routes := make([]datastructure.Route, len(datastructure.Metrics))
	errs := make([]error, len(datastructure.Metrics))

	if uc.parallel {
		workers := concurrent.NewWorkerPool[concurrent.RouteJob, routeResult](len(datastructure.Metrics),
			len(datastructure.Metrics))
		for i, m := range datastructure.Metrics {
			workers.AddJob(concurrent.NewRouteJob(i, source, target, m))
		}
		workers.Close()
		workers.Start(uc.routeJob)
		workers.Wait()

		for res := range workers.CollectResults() {
			routes[res.index], errs[res.index] = res.route, res.err
		}
	} else {
		for i, m := range datastructure.Metrics {
			routes[i], errs[i] = uc.route(source, target, m)
		}
	}

	if err := errors.Join(errs...); err != nil {
		if errors.Is(err, datastructure.ErrNodeNotFound) {
			return nil, server.WrapErrorf(err, server.ErrNotFound, "location is not on the map")
		}
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}

	for _, r := range routes {
		uc.logger.Debug("route computed",
			zap.String("source", source),
			zap.String("target", target),
			zap.Stringer("metric", r.Metric),
			zap.Bool("found", r.Found),
			zap.Float64("weight", r.Stats.Weight))
	}

	if uc.cache != nil {
		if err := uc.cache.SetRoutes(ctx, key, routes); err != nil {
			uc.logger.Warn("route cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return routes, nil
}

type routeResult struct {
	index int
	route datastructure.Route
	err   error
}

func (uc *NavigationService) routeJob(job concurrent.RouteJob) routeResult {
	route, err := uc.route(job.Source, job.Target, job.Metric)
	return routeResult{index: job.Index, route: route, err: err}
}

func (uc *NavigationService) route(source, target string, m datastructure.Metric) (datastructure.Route, error) {
	sp, err := uc.routing.ShortestPath(source, target, m)
	if err != nil {
		return datastructure.Route{}, err
	}

	route := datastructure.Route{Metric: m, Found: sp.Found}
	if !sp.Found {
		return route, nil
	}

	stats, err := routingalgorithm.PathStatistics(uc.g, sp.Path, m)
	if err != nil {
		return datastructure.Route{}, err
	}
	route.Path = sp.Path
	route.Stats = stats
	return route, nil
}

// RoutesByPosition snaps both positions to their nearest nodes and runs Routes.
func (uc *NavigationService) RoutesByPosition(ctx context.Context, fromX, fromY, toX, toY float64) (string, string,
	[]datastructure.Route, error) {
	if uc.snapper == nil {
		return "", "", nil, server.NewErrorf(server.ErrInternalServerError, "position snapping is not enabled")
	}

	from, err := uc.snapper.SnapToNode(fromX, fromY)
	if err != nil {
		return "", "", nil, server.WrapErrorf(err, server.ErrNotFound, "no node near (%v, %v)", fromX, fromY)
	}
	to, err := uc.snapper.SnapToNode(toX, toY)
	if err != nil {
		return "", "", nil, server.WrapErrorf(err, server.ErrNotFound, "no node near (%v, %v)", toX, toY)
	}

	routes, err := uc.Routes(ctx, from.ID, to.ID)
	if err != nil {
		return "", "", nil, err
	}
	return from.ID, to.ID, routes, nil
}

// NodePositions returns the positions of ids. Unknown ids are skipped.
func (uc *NavigationService) NodePositions(ids []string) []datastructure.Coordinate {
	coords := make([]datastructure.Coordinate, 0, len(ids))
	for _, id := range ids {
		idx, ok := uc.g.GetNodeIDx(id)
		if !ok {
			continue
		}
		coords = append(coords, uc.g.GetNode(idx).Position)
	}
	return coords
}

// DrivingInstructions describes a found route turn by turn.
func (uc *NavigationService) DrivingInstructions(route datastructure.Route) ([]guidance.DrivingInstruction, error) {
	if !route.Found {
		return nil, nil
	}
	ins, err := uc.guidance.GetDrivingInstructions(route.Path)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrInternalServerError, "internal server error")
	}
	return ins, nil
}

// GetGraph exposes nodes and edges for a renderer.
func (uc *NavigationService) GetGraph() ([]datastructure.Node, []datastructure.Edge) {
	return uc.g.Nodes(), uc.g.Edges()
}

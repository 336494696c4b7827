package concurrent

import (
	"github.com/lintang-b-s/triroute/pkg/datastructure"
)

// RouteJob is one metric search of a route query. Index is the position of
// the answer in the query result.
type RouteJob struct {
	Index  int
	Source string
	Target string
	Metric datastructure.Metric
}

func NewRouteJob(index int, source, target string, metric datastructure.Metric) RouteJob {
	return RouteJob{
		Index:  index,
		Source: source,
		Target: target,
		Metric: metric,
	}
}

type JobI interface {
	RouteJob
}

type JobFunc[T JobI, G any] func(job T) G

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lintang-b-s/triroute/docs"
	"github.com/lintang-b-s/triroute/pkg/config"
	"github.com/lintang-b-s/triroute/pkg/csvparser"
	"github.com/lintang-b-s/triroute/pkg/datastructure"
	"github.com/lintang-b-s/triroute/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/triroute/pkg/kv"
	"github.com/lintang-b-s/triroute/pkg/logger"
	mymiddleware "github.com/lintang-b-s/triroute/pkg/server/middleware"
	"github.com/lintang-b-s/triroute/pkg/server/rest"
	"github.com/lintang-b-s/triroute/pkg/server/rest/service"
	"github.com/lintang-b-s/triroute/pkg/snap"
	"github.com/lintang-b-s/triroute/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

//	@title			triroute API
//	@version		1.0
//	@description	shortest, fastest and most efficient routes over a csv road network

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "triroute",
		Short:         "Shortest, fastest and most efficient routes over a csv road network",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("nodes", "nodes.csv", "node table: id, x, y")
	rootCmd.PersistentFlags().String("edges", "edges.csv", "edge table: from, to, type, length, speed, consumption")
	rootCmd.PersistentFlags().String("log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("log-dev", false, "human readable console logs")
	rootCmd.PersistentFlags().Bool("parallel", false, "run the three searches of a query concurrently")
	_ = v.BindPFlag("graph.nodes_file", rootCmd.PersistentFlags().Lookup("nodes"))
	_ = v.BindPFlag("graph.edges_file", rootCmd.PersistentFlags().Lookup("edges"))
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.development", rootCmd.PersistentFlags().Lookup("log-dev"))
	_ = v.BindPFlag("query.parallel", rootCmd.PersistentFlags().Lookup("parallel"))

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the road network and serve route queries over http",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	serveCmd.Flags().String("listenaddr", ":5000", "server listen address")
	serveCmd.Flags().Bool("ratelimit", false, "use rate limit")
	serveCmd.Flags().String("cache", config.CacheNone, "route cache backend: none, badger or pebble")
	_ = v.BindPFlag("server.listen_addr", serveCmd.Flags().Lookup("listenaddr"))
	_ = v.BindPFlag("server.rate_limit", serveCmd.Flags().Lookup("ratelimit"))
	_ = v.BindPFlag("cache.backend", serveCmd.Flags().Lookup("cache"))

	var source, target string
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Print the shortest, fastest and most efficient route between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return query(cmd.Context(), cfg, source, target, cmd.OutOrStdout())
		},
	}
	queryCmd.Flags().StringVar(&source, "source", "", "start node id")
	queryCmd.Flags().StringVar(&target, "target", "", "destination node id")
	_ = queryCmd.MarkFlagRequired("source")
	_ = queryCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(serveCmd, queryCmd)
	return rootCmd
}

type app struct {
	g      *datastructure.Graph
	svc    *service.NavigationService
	cache  kv.RouteCache
	logger *zap.Logger
}

func newApp(cfg *config.Config) (*app, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	g, err := csvparser.NewCSVParser(log).ParseFiles(cfg.Graph.NodesFile, cfg.Graph.EdgesFile)
	if err != nil {
		return nil, err
	}

	cache, err := kv.NewRouteCache(cfg.Cache.Backend, log)
	if err != nil {
		return nil, err
	}

	routing := routingalgorithm.NewRouteAlgorithm(g)
	if routing.NumComponents() > 1 {
		log.Warn("road network is not connected, some queries have no route",
			zap.Int("components", routing.NumComponents()))
	}

	svc := service.NewNavigationService(g, routing, snap.NewNodeSnapper(g, log), cache, cfg.Query.Parallel, log)
	return &app{g: g, svc: svc, cache: cache, logger: log}, nil
}

func (a *app) close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("closing route cache", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

func serve(ctx context.Context, cfg *config.Config) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Server.RateLimit {
		r.Use(mymiddleware.Limit(cfg.Server.RPS, cfg.Server.Burst))
	}

	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	rest.NavigatorRouter(r, a.svc, m)

	srv := &http.Server{Addr: cfg.Server.ListenAddr, Handler: r}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", zap.String("addr", cfg.Server.ListenAddr),
			zap.Int("nodes", a.g.GetNumNodes()), zap.Int("edges", a.g.GetNumEdges()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func query(ctx context.Context, cfg *config.Config, source, target string, out io.Writer) error {
	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.close()

	routes, err := a.svc.Routes(ctx, source, target)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "routes from %s to %s\n", source, target)
	for _, route := range routes {
		fmt.Fprintf(out, "\n%s route:\n", route.Label())
		if !route.Found {
			fmt.Fprintf(out, "  no route found\n")
			continue
		}
		fmt.Fprintf(out, "  path: %v\n", route.Path.Nodes)
		fmt.Fprintf(out, "  distance: %.2f\n", route.Stats.Length)
		fmt.Fprintf(out, "  time: %s\n", util.FormatHours(route.Stats.Time))
		fmt.Fprintf(out, "  consumption: %.2f\n", route.Stats.Consumption)

		directions, err := a.svc.DrivingInstructions(route)
		if err != nil {
			return err
		}
		for _, d := range directions {
			fmt.Fprintf(out, "  - %s\n", d.Instruction)
		}
	}
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/atomic"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"

	"github.com/mgtv-tech/gosema/config"
	uerrors "github.com/mgtv-tech/gosema/pkg/errors"
	"github.com/mgtv-tech/gosema/pkg/log"
	"github.com/mgtv-tech/gosema/pkg/sema"
	"github.com/mgtv-tech/gosema/pkg/util"
)

// BenchCmd hammers one semaphore with configured numbers of signaling
// and waiting goroutines for a configured duration, then reports
// throughput and wait latencies. Metrics and pprof are served over HTTP
// while it runs.
type BenchCmd struct {
	logger  log.Logger
	httpSvr *http.Server
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewBenchCmd() *BenchCmd {
	ctx, cancel := context.WithCancel(context.Background())
	return &BenchCmd{
		logger: log.WithLogger("[bench] "),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (bc *BenchCmd) Name() string {
	return "gosema.bench"
}

func (bc *BenchCmd) Stop() error {
	bc.cancel()
	return nil
}

func (bc *BenchCmd) Run() error {
	bc.startHttpServer()
	defer bc.stopHttpServer()

	cfg := config.Get().Bench
	bc.logger.Infof("start : producers(%d), consumers(%d), duration(%s)",
		cfg.Producers, cfg.Consumers, cfg.Duration)

	s := sema.New()
	if s == nil {
		return uerrors.Errorf("failed to create semaphore")
	}

	ctx, cancel := context.WithTimeout(bc.ctx, cfg.Duration)
	defer cancel()

	var produced, consumed atomic.Int64
	lats := make([][]time.Duration, cfg.Consumers)

	var producers errgroup.Group
	for i := 0; i < cfg.Producers; i++ {
		producers.Go(func() error {
			for ctx.Err() == nil {
				if err := s.Signal(); err != nil {
					if errors.Is(err, sema.ErrCountOverflow) {
						// consumers are behind, back off
						time.Sleep(time.Millisecond)
						continue
					}
					return err
				}
				produced.Inc()
			}
			return nil
		})
	}

	var consumers errgroup.Group
	for i := 0; i < cfg.Consumers; i++ {
		i := i
		consumers.Go(func() error {
			for ctx.Err() == nil {
				start := time.Now()
				if err := s.Wait(); err != nil {
					return err
				}
				lats[i] = append(lats[i], time.Since(start))
				consumed.Inc()
			}
			return nil
		})
	}

	err := producers.Wait()

	// the wait has no timeout : release any consumer still blocked, the
	// context check after wake-up makes it exit
	for i := 0; i < cfg.Consumers; i++ {
		s.Signal()
	}
	if cerr := consumers.Wait(); err == nil {
		err = cerr
	}
	if cerr := s.Close(); err == nil {
		err = cerr
	}

	bc.report(produced.Load(), consumed.Load(), lats)
	return err
}

func (bc *BenchCmd) report(produced, consumed int64, lats [][]time.Duration) {
	all := []time.Duration{}
	for _, l := range lats {
		all = append(all, l...)
	}
	slices.Sort(all)

	bc.logger.Infof("done : produced(%d), consumed(%d), wait latency p50(%v), p99(%v), max(%v)",
		produced, consumed,
		percentile(all, 0.50), percentile(all, 0.99), percentile(all, 1.0))
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	i := int(p*float64(len(sorted))) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(sorted) {
		i = len(sorted) - 1
	}
	return sorted[i]
}

func (bc *BenchCmd) startHttpServer() {
	listen := fmt.Sprintf("%s:%d", config.Get().Server.HttpListen, config.Get().Server.HttpPort)
	router := httprouter.New()

	// prometheus
	router.Handler(http.MethodGet, "/prometheus", promhttp.Handler())
	router.HandlerFunc(http.MethodDelete, "/", func(w http.ResponseWriter, r *http.Request) {
		bc.Stop()
	})

	router.HandlerFunc(http.MethodGet, "/debug/pprof/", pprof.Index)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/cmdline", pprof.Cmdline)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/profile", pprof.Profile)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/symbol", pprof.Symbol)
	router.HandlerFunc(http.MethodGet, "/debug/pprof/trace", pprof.Trace)
	router.Handler(http.MethodGet, "/debug/pprof/goroutine", pprof.Handler("goroutine"))
	router.Handler(http.MethodGet, "/debug/pprof/heap", pprof.Handler("heap"))
	router.Handler(http.MethodGet, "/debug/pprof/block", pprof.Handler("block"))

	bc.httpSvr = &http.Server{
		Addr:    listen,
		Handler: router,
	}

	util.SafeGo(func() {
		if err := bc.httpSvr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			bc.logger.Errorf("http server : %v", err)
		}
	}, nil)
}

func (bc *BenchCmd) stopHttpServer() {
	if bc.httpSvr == nil {
		return
	}
	bc.logger.Infof("stop http server")

	ctx, cancel := context.WithTimeout(context.Background(), config.Get().Server.GracefullStopTimeout)
	defer cancel()
	if err := bc.httpSvr.Shutdown(ctx); err != nil {
		bc.logger.Errorf("stop http server error : %v", err)
	}
	bc.httpSvr = nil
}

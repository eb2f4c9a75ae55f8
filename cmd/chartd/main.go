// Command chartd is a headless demo host for the chart engine: it drives
// a synthetic price feed through engine.Tick at a fixed rate and streams
// each frame as JSON over a websocket, with Prometheus tick metrics.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlchart/config"
	"github.com/katalvlaran/lvlchart/engine"
	"github.com/katalvlaran/lvlchart/geom"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "path to a YAML tuning profile")
		listen   = flag.String("listen", "", "listen address override")
		logLevel = flag.String("log-level", "info", "zerolog level")
		candles  = flag.Bool("candles", false, "stream candle-mode frames")
	)
	flag.Parse()

	log := newLogger(*logLevel)

	prof, err := config.Load(*cfgPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *listen != "" {
		prof.Listen = *listen
	}

	eng := engine.New(engine.WithTuning(prof.Tuning), engine.WithSeed(prof.Seed))
	fd := newFeed(prof.Seed)
	h := newHub(log)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handle)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	srv := &http.Server{Addr: prof.Listen, Handler: mux}

	go func() {
		log.Info().Str("addr", prof.Listen).Msg("chartd listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, log, eng, fd, h, prof, *candles)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}
	h.close()
	log.Info().Msg("chartd stopped")
}

// run drives the engine until ctx is cancelled.
func run(ctx context.Context, log zerolog.Logger, eng *engine.Engine, fd *feed, h *hub, prof config.Profile, candleMode bool) {
	interval := time.Duration(prof.TickMs * float64(time.Millisecond))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	log.Info().Float64("tick_ms", prof.TickMs).Bool("candles", candleMode).Msg("frame loop started")

	start := time.Now()
	prev := start
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dtMs := float64(now.Sub(prev).Microseconds()) / 1000
			prev = now

			fd.advance(dtMs / 1000)

			in := engine.Input{
				Samples:      fd.samples,
				LiveValue:    fd.price,
				HaveLive:     true,
				Plot:         geom.Rect{X: 0, Y: 0, W: 800, H: 400},
				WindowSec:    prof.WindowSec,
				ShowGrid:     true,
				ShowBadge:    true,
				ShowFill:     true,
				ShowPulse:    true,
				ShowMomentum: true,
				Bids:         fd.bids,
				Asks:         fd.asks,
				FormatValue:  formatPrice,
				FormatTime:   formatClock,
			}
			if candleMode {
				in.Samples = nil
				in.Candles = fd.candles
				in.LiveCandle = &fd.live
				in.CandleWidthSec = feedBucketSec
			}

			tickStart := time.Now()
			frame := eng.Tick(now.Sub(start).Seconds(), dtMs, in)
			tickDuration.Observe(time.Since(tickStart).Seconds())
			ticksTotal.Inc()

			h.broadcast(encodeFrame(frame))
		}
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger().Level(lvl)
}

func formatPrice(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func formatClock(sec float64) string {
	d := time.Duration(sec * float64(time.Second))
	return d.Truncate(time.Second).String()
}

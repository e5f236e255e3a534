package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/navgrid/scenario"
	"github.com/katalvlaran/navgrid/world"
)

var (
	serveAddr     string
	serveInterval time.Duration
)

var upgrader = websocket.Upgrader{}

const writeWait = 1 * time.Second

// Prometheus surface of the serve loop.
var (
	tickSeconds = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "navsim_tick_duration_seconds",
		Help: "Wall time of the last world tick.",
	})
	agentGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "navsim_agents",
		Help: "Live agent count.",
	})
	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "navsim_ticks_total",
		Help: "World ticks executed since start.",
	})
)

func init() {
	prometheus.MustRegister(tickSeconds, agentGauge, ticksTotal)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", 33*time.Millisecond, "tick and publish interval")
}

// serveCmd runs a scenario in real time and streams world snapshots to a
// single websocket client, the way the simulation's external renderers
// consume them. Metrics are exposed on /metrics.
var serveCmd = &cobra.Command{
	Use:   "serve <scenario.yaml>",
	Short: "Run a scenario in real time and stream snapshots over a websocket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		s, err := scenario.NewParser(nil).ParseFile(args[0])
		if err != nil {
			return err
		}
		w, err := s.Build()
		if err != nil {
			return err
		}

		done := make(chan struct{})
		defer close(done)
		updates := make(chan world.Snapshot, 1)

		// Tick loop: fixed-step simulation clocked by wall time; the
		// freshest snapshot replaces a stale unconsumed one.
		go func() {
			ticker := time.NewTicker(serveInterval)
			defer ticker.Stop()
			dt := serveInterval.Seconds()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					began := time.Now()
					w.Tick(dt)
					tickSeconds.Set(time.Since(began).Seconds())
					agentGauge.Set(float64(w.AgentCount()))
					ticksTotal.Inc()

					snap := w.Snapshot()
					select {
					case updates <- snap:
					default:
						select {
						case <-updates:
						default:
						}
						updates <- snap
					}
				}
			}
		}()

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/ws", func(rw http.ResponseWriter, r *http.Request) {
			ws, err := upgrader.Upgrade(rw, r, nil)
			if err != nil {
				logger.Error().Err(err).Msg("websocket upgrade failed")

				return
			}
			defer ws.Close()

			logger.Info().Str("remote", r.RemoteAddr).Msg("renderer connected")
			for snap := range channerics.OrDone[world.Snapshot](done, updates) {
				_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
				if err := ws.WriteJSON(snap); err != nil {
					logger.Warn().Err(err).Msg("renderer dropped")

					return
				}
			}
		})

		logger.Info().
			Str("addr", serveAddr).
			Str("scenario", s.Name).
			Int("agents", w.AgentCount()).
			Msg("serving")

		return http.ListenAndServe(serveAddr, mux)
	},
}

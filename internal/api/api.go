// internal/api/api.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/tamzrod/washer-controller/internal/cycle"
)

// Snapshotter is the read side of the controller.
type Snapshotter interface {
	Snapshot() cycle.Snapshot
}

// StatusResponse is the JSON body of GET /status.
type StatusResponse struct {
	Phase      string `json:"phase"`
	Running    bool   `json:"running"`
	Finished   bool   `json:"finished"`
	ClockMs    uint32 `json:"clock_ms"`
	Rinses     uint8  `json:"rinses"`
	Duty       uint8  `json:"duty"`
	DrivePct   uint8  `json:"drive_percent"`
	LEDs       uint8  `json:"leds"`
	LeftDigit  uint8  `json:"left_digit"`
	RightDigit uint8  `json:"right_digit"`
	Mode       string `json:"mode"`
	Level      string `json:"water_level"`
	Cycles     uint32 `json:"cycles_completed"`
}

func newStatusResponse(s cycle.Snapshot) StatusResponse {
	return StatusResponse{
		Phase:      s.Phase.String(),
		Running:    s.Running(),
		Finished:   s.Finished(),
		ClockMs:    s.Clock,
		Rinses:     s.Rinses,
		Duty:       uint8(s.Duty),
		DrivePct:   s.Duty.Drive(),
		LEDs:       uint8(s.Pattern),
		LeftDigit:  uint8(s.Digits.Left),
		RightDigit: uint8(s.Digits.Right),
		Mode:       s.Live.Mode.String(),
		Level:      s.Live.Level.String(),
		Cycles:     s.Cycles,
	}
}

// NewRouter builds the read-only HTTP surface. There are no control routes.
func NewRouter(ctrl Snapshotter, gatherer prometheus.Gatherer, log *logrus.Entry) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/status", statusHandler(ctrl, log)).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return r
}

func statusHandler(ctrl Snapshotter, log *logrus.Entry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(newStatusResponse(ctrl.Snapshot())); err != nil {
			log.WithFields(logrus.Fields{
				"func": "statusHandler",
			}).Errorf("encode: %s", err)
		}
	}
}

package healthendpoint

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fleetscaler/models"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

// StatusSource produces the point-in-time fleet report served on
// GET /status.
type StatusSource interface {
	Status() *models.FleetStatus
}

func NewServer(logger lager.Logger, port int, gatherer prometheus.Gatherer, source StatusSource) ifrit.Runner {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/status", statusHandler(logger, source)).Methods(http.MethodGet)

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	logger.Info("new-health-server", lager.Data{"addr": addr})
	return http_server.New(addr, r)
}

func statusHandler(logger lager.Logger, source StatusSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(source.Status())
		if err != nil {
			logger.Error("failed-to-write-status-response", err)
		}
	}
}

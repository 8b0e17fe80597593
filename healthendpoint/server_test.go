package healthendpoint_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"fleetscaler/models"

	. "fleetscaler/healthendpoint"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubStatusSource struct {
	status *models.FleetStatus
}

func (s *stubStatusSource) Status() *models.FleetStatus {
	return s.status
}

var _ = Describe("Server", func() {
	const port = 18388

	var (
		process ifrit.Process
		source  *stubStatusSource
	)

	BeforeEach(func() {
		source = &stubStatusSource{
			status: &models.FleetStatus{
				InstanceCount: 2,
				Instances: []*models.Instance{
					{Id: 1, Endpoint: "127.0.0.1:9001", State: models.InstanceStateInService},
					{Id: 2, Endpoint: "127.0.0.1:9002", State: models.InstanceStateInService},
				},
			},
		}

		registry := prometheus.NewRegistry()
		counters := NewCounterCollector()
		counters.AddCounters(prometheus.CounterOpts{
			Namespace: "fleetscaler", Subsystem: "test", Name: "ticks_total", Help: "test counter",
		})
		RegisterCollectors(registry, []prometheus.Collector{counters}, false, lagertest.NewTestLogger("healthendpoint-test"))

		server := NewServer(lagertest.NewTestLogger("healthendpoint-test"), port, registry, source)
		process = ifrit.Invoke(server)
	})

	AfterEach(func() {
		process.Signal(os.Interrupt)
		Eventually(process.Wait()).Should(Receive())
	})

	It("serves the fleet status as json", func() {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/status", port))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Header.Get("Content-Type")).To(Equal("application/json"))

		var status models.FleetStatus
		Expect(json.NewDecoder(resp.Body).Decode(&status)).To(Succeed())
		Expect(status.InstanceCount).To(Equal(2))
		Expect(status.Instances).To(HaveLen(2))
	})

	It("serves prometheus metrics", func() {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/metrics", port))
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring("fleetscaler_test_ticks_total"))
	})

	It("rejects other methods on the status route", func() {
		resp, err := http.Post(fmt.Sprintf("http://127.0.0.1:%d/status", port), "application/json", nil)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()

		Expect(resp.StatusCode).To(Equal(http.StatusMethodNotAllowed))
	})
})

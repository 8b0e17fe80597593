package healthmonitor_test

import (
	"errors"
	"time"

	"fleetscaler/fakes"
	"fleetscaler/loadbalancer"
	"fleetscaler/models"

	. "fleetscaler/healthmonitor"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Monitor", func() {
	var (
		monitor          *Monitor
		containerRuntime *fakes.FakeContainerRuntime
		fleet            *fakes.FakeMonitorFleet
		prober           *fakes.FakeProber
		events           *fakes.FakeEventLog
		fclock           *fakeclock.FakeClock
		instance         *models.Instance
	)

	BeforeEach(func() {
		containerRuntime = &fakes.FakeContainerRuntime{}
		fleet = &fakes.FakeMonitorFleet{}
		prober = &fakes.FakeProber{}
		events = &fakes.FakeEventLog{}
		fclock = fakeclock.NewFakeClock(time.Now())

		instance = &models.Instance{
			Id:          1,
			ContainerId: "container-1",
			Endpoint:    "127.0.0.1:9001",
			State:       models.InstanceStateInService,
		}
		fleet.InstancesReturns([]*models.Instance{instance})

		logger := lagertest.NewTestLogger("healthmonitor-test")
		monitor = NewMonitor(logger, fclock, containerRuntime, fleet, prober, events, 0)
	})

	Context("when every instance responds", func() {
		It("reports them healthy and touches nothing", func() {
			results, err := monitor.Sweep()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(ConsistOf(ProbeResult{Instance: instance, Healthy: true}))
			Expect(containerRuntime.RestartCallCount()).To(BeZero())
			Expect(fleet.EvictCallCount()).To(BeZero())
		})
	})

	Context("when an instance fails its probe but recovers after a restart", func() {
		BeforeEach(func() {
			prober.ProbeReturnsOnCall(0, errors.New("connection refused"))
		})

		It("restarts it in place and reports it healthy", func() {
			results, err := monitor.Sweep()
			Expect(err).NotTo(HaveOccurred())
			Expect(containerRuntime.RestartArgsForCall(0)).To(Equal("container-1"))
			Expect(results).To(ConsistOf(ProbeResult{Instance: instance, Healthy: true}))
			Expect(fleet.EvictCallCount()).To(BeZero())
		})
	})

	Context("with a non-zero restart grace period", func() {
		BeforeEach(func() {
			monitor = NewMonitor(lagertest.NewTestLogger("healthmonitor-test"), fclock,
				containerRuntime, fleet, prober, events, 5*time.Second)
			prober.ProbeReturnsOnCall(0, errors.New("connection refused"))
		})

		It("waits out the grace period between restart and re-probe", func() {
			done := make(chan []ProbeResult, 1)
			go func() {
				results, _ := monitor.Sweep()
				done <- results
			}()

			Eventually(containerRuntime.RestartCallCount).Should(Equal(1))
			Consistently(prober.ProbeCallCount).Should(Equal(1))

			fclock.WaitForWatcherAndIncrement(5 * time.Second)

			var results []ProbeResult
			Eventually(done).Should(Receive(&results))
			Expect(prober.ProbeCallCount()).To(Equal(2))
			Expect(results).To(ConsistOf(ProbeResult{Instance: instance, Healthy: true}))
		})
	})

	Context("when an instance stays unhealthy after the restart", func() {
		BeforeEach(func() {
			prober.ProbeReturns(errors.New("connection refused"))
		})

		It("evicts it", func() {
			results, err := monitor.Sweep()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(ConsistOf(ProbeResult{Instance: instance, Healthy: false}))
			Expect(fleet.EvictArgsForCall(0)).To(Equal(1))
		})

		Context("and the eviction fails with an ordinary error", func() {
			BeforeEach(func() {
				fleet.EvictReturns(errors.New("deregistration failed"))
			})

			It("logs and carries on", func() {
				_, err := monitor.Sweep()
				Expect(err).NotTo(HaveOccurred())
			})
		})

		Context("and the eviction fails with a fatal config error", func() {
			BeforeEach(func() {
				fleet.EvictReturns(&loadbalancer.FatalConfigError{Err: errors.New("backup missing")})
			})

			It("propagates the error to halt the loop", func() {
				_, err := monitor.Sweep()
				Expect(err).To(BeAssignableToTypeOf(&loadbalancer.FatalConfigError{}))
			})
		})
	})

	Context("when the restart itself fails", func() {
		BeforeEach(func() {
			prober.ProbeReturnsOnCall(0, errors.New("connection refused"))
			containerRuntime.RestartReturns(errors.New("no such container"))
		})

		It("evicts without re-probing", func() {
			results, err := monitor.Sweep()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(ConsistOf(ProbeResult{Instance: instance, Healthy: false}))
			Expect(prober.ProbeCallCount()).To(Equal(1))
			Expect(fleet.EvictCallCount()).To(Equal(1))
		})
	})

	Context("when an instance is not in service", func() {
		BeforeEach(func() {
			instance.State = models.InstanceStateDraining
		})

		It("is skipped", func() {
			results, err := monitor.Sweep()
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(BeEmpty())
			Expect(prober.ProbeCallCount()).To(BeZero())
		})
	})
})

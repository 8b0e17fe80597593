package metricscollector_test

import (
	"errors"
	"time"

	"fleetscaler/fakes"
	"fleetscaler/models"
	"fleetscaler/runtime"

	. "fleetscaler/metricscollector"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Collector", func() {
	var (
		collector        *Collector
		containerRuntime *fakes.FakeContainerRuntime
		source           *fakes.FakeAccessMetricsSource
		fclock           *fakeclock.FakeClock

		snapshot *models.MetricsSnapshot
		err      error
	)

	BeforeEach(func() {
		containerRuntime = &fakes.FakeContainerRuntime{}
		source = &fakes.FakeAccessMetricsSource{}
		fclock = fakeclock.NewFakeClock(time.Now())

		containerRuntime.ListReturns([]runtime.WorkerInfo{
			{ContainerId: "container-1", InstanceId: 1, Endpoint: "127.0.0.1:9001"},
			{ContainerId: "container-2", InstanceId: 2, Endpoint: "127.0.0.1:9002"},
		}, nil)
		containerRuntime.StatsReturnsOnCall(0, 0.40, nil)
		containerRuntime.StatsReturnsOnCall(1, 0.60, nil)

		source.RecentReturns([]models.AccessRecord{
			{Timestamp: fclock.Now(), Latency: 100 * time.Millisecond},
			{Timestamp: fclock.Now(), Latency: 300 * time.Millisecond},
		}, nil)

		logger := lagertest.NewTestLogger("collector-test")
		collector = NewCollector(logger, fclock, containerRuntime, source, time.Minute)
	})

	JustBeforeEach(func() {
		snapshot, err = collector.Sample()
	})

	It("averages CPU across workers and latency across records", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(snapshot.InstanceCount).To(Equal(2))
		Expect(snapshot.AvgCPU).To(BeNumerically("~", 0.50, 0.001))
		Expect(snapshot.AvgLatency).To(Equal(200 * time.Millisecond))
		Expect(snapshot.TotalRate).To(BeNumerically("~", 2.0, 0.001))
		Expect(snapshot.RatePerInstance).To(BeNumerically("~", 1.0, 0.001))
		Expect(snapshot.Timestamp).To(Equal(fclock.Now().UnixNano()))
	})

	It("asks the source for the configured window", func() {
		Expect(source.RecentArgsForCall(0)).To(Equal(time.Minute))
	})

	Context("when one worker's stats are unavailable", func() {
		BeforeEach(func() {
			containerRuntime.StatsReturnsOnCall(0, 0, errors.New("container gone"))
		})

		It("excludes the reading from the average instead of counting zero", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.AvgCPU).To(BeNumerically("~", 0.60, 0.001))
		})
	})

	Context("when no worker stats are available", func() {
		BeforeEach(func() {
			containerRuntime.StatsReturnsOnCall(0, 0, errors.New("container gone"))
			containerRuntime.StatsReturnsOnCall(1, 0, errors.New("container gone"))
		})

		It("marks the CPU aggregate unknown", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.AvgCPU).To(Equal(models.MetricUnknown))
			Expect(snapshot.HasCPUEvidence()).To(BeFalse())
		})
	})

	Context("when no requests were served in the window", func() {
		BeforeEach(func() {
			source.RecentReturns([]models.AccessRecord{}, nil)
		})

		It("reports zero rate but unknown latency", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.TotalRate).To(BeZero())
			Expect(snapshot.RatePerInstance).To(BeZero())
			Expect(snapshot.AvgLatency).To(Equal(models.LatencyUnknown))
			Expect(snapshot.HasLatencyEvidence()).To(BeFalse())
		})
	})

	Context("when access records cannot be read", func() {
		BeforeEach(func() {
			source.RecentReturns(nil, errors.New("log rotated away"))
		})

		It("returns the snapshot with the rate and latency unknown", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.AvgCPU).To(BeNumerically("~", 0.50, 0.001))
			Expect(snapshot.HasRateEvidence()).To(BeFalse())
			Expect(snapshot.HasLatencyEvidence()).To(BeFalse())
		})
	})

	Context("when the runtime cannot be listed", func() {
		BeforeEach(func() {
			containerRuntime.ListReturns(nil, errors.New("daemon unreachable"))
		})

		It("fails the sample", func() {
			Expect(err).To(MatchError("daemon unreachable"))
			Expect(snapshot).To(BeNil())
		})
	})

	Context("with no workers running", func() {
		BeforeEach(func() {
			containerRuntime.ListReturns([]runtime.WorkerInfo{}, nil)
			source.RecentReturns([]models.AccessRecord{}, nil)
		})

		It("reports an empty fleet without dividing by zero", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot.InstanceCount).To(BeZero())
			Expect(snapshot.AvgCPU).To(Equal(models.MetricUnknown))
			Expect(snapshot.RatePerInstance).To(Equal(models.MetricUnknown))
		})
	})
})

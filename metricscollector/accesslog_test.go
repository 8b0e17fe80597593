package metricscollector_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fleetscaler/config"
	"fleetscaler/models"

	. "fleetscaler/metricscollector"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AccessLogReader", func() {
	var (
		reader  *AccessLogReader
		fclock  *fakeclock.FakeClock
		logPath string
	)

	logLine := func(age time.Duration, latency string) string {
		ts := fclock.Now().Add(-age)
		return fmt.Sprintf("%d.%03d %s\n", ts.Unix(), ts.Nanosecond()/int(time.Millisecond), latency)
	}

	appendLog := func(lines ...string) {
		file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		Expect(err).NotTo(HaveOccurred())
		defer file.Close()
		for _, line := range lines {
			_, err = file.WriteString(line)
			Expect(err).NotTo(HaveOccurred())
		}
	}

	BeforeEach(func() {
		fclock = fakeclock.NewFakeClock(time.Now())
		logPath = filepath.Join(GinkgoT().TempDir(), "access.log")

		logger := lagertest.NewTestLogger("accesslog-test")
		reader = NewAccessLogReader(logger, fclock, &config.CollectorConfig{
			AccessLogPath:      logPath,
			AccessRecordWindow: time.Minute,
		})
	})

	It("parses timestamp and upstream response time from each line", func() {
		appendLog(logLine(10*time.Second, "0.045"))

		records, err := reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
		Expect(records[0].Latency).To(Equal(45 * time.Millisecond))
	})

	It("skips requests that never reached an upstream", func() {
		appendLog(
			logLine(10*time.Second, "-"),
			logLine(5*time.Second, "0.100"),
		)

		records, err := reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
	})

	It("skips malformed lines", func() {
		appendLog(
			"garbage\n",
			"not-a-number 0.1\n",
			logLine(5*time.Second, "0.100"),
		)

		records, err := reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))
	})

	It("drops records older than the requested window", func() {
		appendLog(
			logLine(90*time.Second, "0.040"),
			logLine(10*time.Second, "0.050"),
		)

		records, err := reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(ConsistOf(WithTransform(func(r models.AccessRecord) time.Duration {
			return r.Latency
		}, Equal(50*time.Millisecond))))
	})

	It("reads each line once across successive calls", func() {
		appendLog(logLine(20*time.Second, "0.040"))

		records, err := reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))

		appendLog(logLine(10*time.Second, "0.050"))

		records, err = reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
	})

	It("leaves a line torn mid-write for the next call", func() {
		complete := logLine(20*time.Second, "0.040")
		torn := logLine(10*time.Second, "0.050")
		appendLog(complete, torn[:len(torn)-4])

		records, err := reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(1))

		appendLog(torn[len(torn)-4:])

		records, err = reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(2))
		Expect(records).To(ContainElement(WithTransform(func(r models.AccessRecord) time.Duration {
			return r.Latency
		}, Equal(50*time.Millisecond))))
	})

	It("starts over when the log is rotated", func() {
		appendLog(
			logLine(30*time.Second, "0.040"),
			logLine(25*time.Second, "0.041"),
			logLine(20*time.Second, "0.042"),
		)

		records, err := reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(3))

		Expect(os.Truncate(logPath, 0)).To(Succeed())
		appendLog(logLine(5*time.Second, "0.050"))

		records, err = reader.Recent(time.Minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(records).To(HaveLen(4))
	})

	It("fails when the log does not exist", func() {
		_, err := reader.Recent(time.Minute)
		Expect(err).To(HaveOccurred())
	})
})

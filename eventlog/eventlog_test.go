package eventlog_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fleetscaler/models"

	. "fleetscaler/eventlog"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("FileEventLog", func() {
	var (
		log     EventLog
		fclock  *fakeclock.FakeClock
		logPath string
	)

	BeforeEach(func() {
		fclock = fakeclock.NewFakeClock(time.Now())
		logPath = filepath.Join(GinkgoT().TempDir(), "events.log")

		var err error
		log, err = NewFileEventLog(lagertest.NewTestLogger("eventlog-test"), fclock, logPath)
		Expect(err).NotTo(HaveOccurred())
	})

	It("creates the log directory if it is missing", func() {
		nested := filepath.Join(GinkgoT().TempDir(), "a", "b", "events.log")
		_, err := NewFileEventLog(lagertest.NewTestLogger("eventlog-test"), fclock, nested)
		Expect(err).NotTo(HaveOccurred())
		Expect(filepath.Dir(nested)).To(BeADirectory())
	})

	It("round-trips appended events through Tail", func() {
		log.Append(models.EventTypeDecision, "scale up: CPU above threshold", nil, map[string]interface{}{"instances": 3.0})
		log.Append(models.EventTypeError, "instance worker-2 failed to start", errors.New("image not found"), nil)

		events, err := log.Tail(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(HaveLen(2))

		Expect(events[0].Type).To(Equal(models.EventTypeDecision))
		Expect(events[0].Message).To(Equal("scale up: CPU above threshold"))
		Expect(events[0].Timestamp).To(Equal(fclock.Now().UnixNano()))
		Expect(events[0].Guid).NotTo(BeEmpty())
		Expect(events[0].Data).To(HaveKeyWithValue("instances", 3.0))

		Expect(events[1].Type).To(Equal(models.EventTypeError))
		Expect(events[1].Error).To(Equal("image not found"))
	})

	It("returns only the last n events", func() {
		for i := 0; i < 5; i++ {
			log.Append(models.EventTypeLifecycle, fmt.Sprintf("event %d", i), nil, nil)
		}

		events, err := log.Tail(2)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(HaveLen(2))
		Expect(events[0].Message).To(Equal("event 3"))
		Expect(events[1].Message).To(Equal("event 4"))
	})

	It("returns no events before anything was appended", func() {
		events, err := log.Tail(10)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(BeEmpty())
	})

	It("skips malformed entries", func() {
		log.Append(models.EventTypeLifecycle, "good entry", nil, nil)

		file, err := os.OpenFile(logPath, os.O_APPEND|os.O_WRONLY, 0644)
		Expect(err).NotTo(HaveOccurred())
		_, err = file.WriteString("this is not json\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(file.Close()).To(Succeed())

		log.Append(models.EventTypeLifecycle, "another good entry", nil, nil)

		events, err := log.Tail(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(events).To(HaveLen(2))
	})
})

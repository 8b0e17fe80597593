package loadbalancer_test

import (
	"errors"
	"time"

	"fleetscaler/fakes"
	"fleetscaler/models"

	. "fleetscaler/loadbalancer"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manager", func() {
	var (
		manager    *Manager
		controller *fakes.FakeProxyController
		target     models.UpstreamTarget
		err        error
	)

	BeforeEach(func() {
		controller = &fakes.FakeProxyController{}
		controller.ReadActiveReturns([]byte("upstream fleet_workers {\n}\n"), nil)

		logger := lagertest.NewTestLogger("loadbalancer-test")
		manager = NewManager(logger, controller, "fleet_workers")

		target = models.UpstreamTarget{
			InstanceId:  1,
			Endpoint:    "127.0.0.1:9001",
			Weight:      1,
			MaxFails:    3,
			FailTimeout: 10 * time.Second,
		}
	})

	Describe("Register", func() {
		JustBeforeEach(func() {
			err = manager.Register(target)
		})

		It("snapshots a backup, stages, validates and applies the new config", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(controller.ReadActiveCallCount()).To(Equal(1))
			Expect(controller.WriteBackupArgsForCall(0)).To(Equal([]byte("upstream fleet_workers {\n}\n")))
			Expect(string(controller.StageArgsForCall(0))).To(ContainSubstring("server 127.0.0.1:9001 weight=1 max_fails=3 fail_timeout=10s;"))
			Expect(controller.ValidateCallCount()).To(Equal(1))
			Expect(controller.ApplyCallCount()).To(Equal(1))
			Expect(controller.RollbackCallCount()).To(BeZero())

			Expect(manager.Active().HasTarget("127.0.0.1:9001")).To(BeTrue())
		})

		Context("when the target is already registered", func() {
			BeforeEach(func() {
				Expect(manager.Register(target)).To(Succeed())
			})

			It("fails without touching the proxy again", func() {
				Expect(err).To(BeAssignableToTypeOf(&DuplicateTargetError{}))
				Expect(controller.StageCallCount()).To(Equal(1))
			})
		})

		Context("when validation fails", func() {
			BeforeEach(func() {
				controller.ValidateReturns(errors.New("nginx: [emerg] invalid host"))
			})

			It("rolls back to the byte-identical backup", func() {
				Expect(err).To(BeAssignableToTypeOf(&ConfigValidationError{}))
				Expect(controller.RollbackCallCount()).To(Equal(1))
				Expect(controller.RollbackArgsForCall(0)).To(Equal([]byte("upstream fleet_workers {\n}\n")))
				Expect(controller.ApplyCallCount()).To(BeZero())
			})

			It("keeps the target out of the active config", func() {
				Expect(manager.Active().HasTarget("127.0.0.1:9001")).To(BeFalse())
			})

			Context("and the rollback fails too", func() {
				BeforeEach(func() {
					controller.RollbackReturns(errors.New("disk full"))
				})

				It("reports a fatal config error", func() {
					Expect(err).To(BeAssignableToTypeOf(&FatalConfigError{}))
				})
			})
		})

		Context("when the reload fails", func() {
			BeforeEach(func() {
				controller.ApplyReturns(errors.New("reload signal failed"))
			})

			It("rolls back and reports a reload error", func() {
				Expect(err).To(BeAssignableToTypeOf(&ConfigReloadError{}))
				Expect(controller.RollbackCallCount()).To(Equal(1))
				Expect(manager.Active().HasTarget("127.0.0.1:9001")).To(BeFalse())
			})
		})

		Context("when the active config cannot be snapshotted", func() {
			BeforeEach(func() {
				controller.ReadActiveReturns(nil, errors.New("permission denied"))
			})

			It("fails before staging anything", func() {
				Expect(err).To(HaveOccurred())
				Expect(controller.StageCallCount()).To(BeZero())
			})
		})
	})

	Describe("Deregister", func() {
		BeforeEach(func() {
			Expect(manager.Register(target)).To(Succeed())
		})

		JustBeforeEach(func() {
			err = manager.Deregister(target.Endpoint)
		})

		It("commits a config without the target", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(string(controller.StageArgsForCall(1))).NotTo(ContainSubstring("127.0.0.1:9001"))
			Expect(manager.Active().HasTarget("127.0.0.1:9001")).To(BeFalse())
		})

		Context("when the endpoint is not registered", func() {
			BeforeEach(func() {
				Expect(manager.Deregister(target.Endpoint)).To(Succeed())
			})

			It("fails with a not-found error", func() {
				Expect(err).To(BeAssignableToTypeOf(&TargetNotFoundError{}))
			})
		})

		Context("when validation fails", func() {
			BeforeEach(func() {
				controller.ValidateReturnsOnCall(1, errors.New("nginx: [emerg] broken"))
			})

			It("rolls back and keeps the target active", func() {
				Expect(err).To(BeAssignableToTypeOf(&ConfigValidationError{}))
				Expect(manager.Active().HasTarget("127.0.0.1:9001")).To(BeTrue())
			})
		})
	})

	Describe("Sync", func() {
		var targets []models.UpstreamTarget

		BeforeEach(func() {
			targets = []models.UpstreamTarget{
				{InstanceId: 1, Endpoint: "127.0.0.1:9001", Weight: 1, MaxFails: 3, FailTimeout: 10 * time.Second},
				{InstanceId: 2, Endpoint: "127.0.0.1:9002", Weight: 1, MaxFails: 3, FailTimeout: 10 * time.Second},
			}
		})

		JustBeforeEach(func() {
			err = manager.Sync(targets)
		})

		It("replaces the whole target list in one commit", func() {
			Expect(err).NotTo(HaveOccurred())
			staged := string(controller.StageArgsForCall(0))
			Expect(staged).To(ContainSubstring("127.0.0.1:9001"))
			Expect(staged).To(ContainSubstring("127.0.0.1:9002"))
			Expect(manager.Active().Targets).To(HaveLen(2))
		})

		Context("with an empty target list", func() {
			BeforeEach(func() {
				targets = nil
			})

			It("commits an empty upstream block", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(manager.Active().Targets).To(BeEmpty())
			})
		})
	})
})

package lifecycle_test

import (
	"errors"
	"fmt"
	"time"

	"fleetscaler/config"
	"fleetscaler/fakes"
	"fleetscaler/models"
	"fleetscaler/runtime"

	. "fleetscaler/lifecycle"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manager", func() {
	var (
		manager          *Manager
		containerRuntime *fakes.FakeContainerRuntime
		registry         *fakes.FakeRegistry
		prober           *fakes.FakeProber
		events           *fakes.FakeEventLog
		fclock           *fakeclock.FakeClock
		conf             *config.Config
	)

	BeforeEach(func() {
		containerRuntime = &fakes.FakeContainerRuntime{}
		registry = &fakes.FakeRegistry{}
		prober = &fakes.FakeProber{}
		events = &fakes.FakeEventLog{}
		fclock = fakeclock.NewFakeClock(time.Now())

		containerRuntime.StartCalls(func(instanceId int, port int) (string, error) {
			return fmt.Sprintf("container-%d", instanceId), nil
		})

		conf = &config.Config{
			Scaling: config.ScalingConfig{
				MinInstances: 1,
				MaxInstances: 3,
			},
			Runtime: config.RuntimeConfig{
				WorkerHost:     "127.0.0.1",
				WorkerBasePort: 9001,
			},
			Health: config.HealthConfig{
				CheckPath:     "/health",
				CheckInterval: 1 * time.Second,
				CheckTimeout:  10 * time.Second,
				DrainInterval: 0,
			},
			LoadBalancer: config.LoadBalancerConfig{
				TargetWeight:      1,
				TargetMaxFails:    3,
				TargetFailTimeout: 10 * time.Second,
			},
		}

		logger := lagertest.NewTestLogger("lifecycle-test")
		manager = NewManager(logger, fclock, containerRuntime, registry, prober, events, conf)
	})

	Describe("Add", func() {
		var (
			instance *models.Instance
			err      error
		)

		JustBeforeEach(func() {
			instance, err = manager.Add()
		})

		It("starts a container on the next port slot and registers it", func() {
			Expect(err).NotTo(HaveOccurred())

			id, port := containerRuntime.StartArgsForCall(0)
			Expect(id).To(Equal(1))
			Expect(port).To(Equal(9001))

			Expect(prober.ProbeArgsForCall(0)).To(Equal("127.0.0.1:9001"))
			Expect(registry.RegisterArgsForCall(0)).To(Equal(models.UpstreamTarget{
				InstanceId:  1,
				Endpoint:    "127.0.0.1:9001",
				Weight:      1,
				MaxFails:    3,
				FailTimeout: 10 * time.Second,
			}))

			Expect(instance.State).To(Equal(models.InstanceStateInService))
			Expect(manager.Count()).To(Equal(1))
		})

		Context("when the fleet is at its maximum size", func() {
			BeforeEach(func() {
				for i := 0; i < 3; i++ {
					_, addErr := manager.Add()
					Expect(addErr).NotTo(HaveOccurred())
				}
			})

			It("refuses without starting anything", func() {
				Expect(err).To(BeAssignableToTypeOf(&AtCapacityError{}))
				Expect(containerRuntime.StartCallCount()).To(Equal(3))
				Expect(manager.Count()).To(Equal(3))
			})
		})

		Context("when the container fails to start", func() {
			BeforeEach(func() {
				containerRuntime.StartCalls(nil)
				containerRuntime.StartReturns("", errors.New("image not found"))
			})

			It("fails and registers nothing", func() {
				Expect(err).To(MatchError("image not found"))
				Expect(registry.RegisterCallCount()).To(BeZero())
				Expect(manager.Count()).To(BeZero())
			})
		})

		Context("when the health check never passes before the timeout", func() {
			BeforeEach(func() {
				conf.Health.CheckTimeout = 0
				prober.ProbeReturns(errors.New("connection refused"))
			})

			It("destroys the instance and never registers it", func() {
				Expect(err).To(BeAssignableToTypeOf(&HealthCheckTimeoutError{}))
				Expect(containerRuntime.StopArgsForCall(0)).To(Equal("container-1"))
				Expect(registry.RegisterCallCount()).To(BeZero())
				Expect(manager.Count()).To(BeZero())
			})
		})

		Context("when registration fails", func() {
			BeforeEach(func() {
				registry.RegisterReturns(errors.New("validation failed"))
			})

			It("destroys the instance", func() {
				Expect(err).To(MatchError("validation failed"))
				Expect(containerRuntime.StopArgsForCall(0)).To(Equal("container-1"))
				Expect(manager.Count()).To(BeZero())
			})
		})
	})

	Context("when the health check needs a few attempts", func() {
		BeforeEach(func() {
			prober.ProbeReturnsOnCall(0, errors.New("connection refused"))
			prober.ProbeReturnsOnCall(1, errors.New("connection refused"))
		})

		It("retries on the check interval until the instance responds", func() {
			done := make(chan error, 1)
			go func() {
				_, addErr := manager.Add()
				done <- addErr
			}()

			Eventually(prober.ProbeCallCount).Should(Equal(1))
			fclock.WaitForWatcherAndIncrement(1 * time.Second)
			Eventually(prober.ProbeCallCount).Should(Equal(2))
			fclock.WaitForWatcherAndIncrement(1 * time.Second)

			Eventually(done).Should(Receive(BeNil()))
			Expect(prober.ProbeCallCount()).To(Equal(3))
			Expect(registry.RegisterCallCount()).To(Equal(1))
		})
	})

	Describe("Remove", func() {
		BeforeEach(func() {
			conf.Scaling.MinInstances = 1
			_, err := manager.Add()
			Expect(err).NotTo(HaveOccurred())
			_, err = manager.Add()
			Expect(err).NotTo(HaveOccurred())
		})

		It("deregisters, drains and stops the instance", func() {
			Expect(manager.Remove(2)).To(Succeed())

			Expect(registry.DeregisterArgsForCall(0)).To(Equal("127.0.0.1:9002"))
			Expect(containerRuntime.StopArgsForCall(0)).To(Equal("container-2"))
			Expect(manager.Count()).To(Equal(1))
		})

		It("fails for an unknown instance without mutating the fleet", func() {
			err := manager.Remove(42)
			Expect(err).To(BeAssignableToTypeOf(&InstanceNotFoundError{}))
			Expect(registry.DeregisterCallCount()).To(BeZero())
			Expect(manager.Count()).To(Equal(2))
		})

		Context("when the fleet is at its minimum size", func() {
			BeforeEach(func() {
				Expect(manager.Remove(2)).To(Succeed())
			})

			It("refuses", func() {
				err := manager.Remove(1)
				Expect(err).To(BeAssignableToTypeOf(&AtMinimumError{}))
				Expect(manager.Count()).To(Equal(1))
			})
		})

		Context("when deregistration fails", func() {
			BeforeEach(func() {
				registry.DeregisterReturns(errors.New("validation failed"))
			})

			It("keeps the instance in service and does not stop it", func() {
				err := manager.Remove(2)
				Expect(err).To(MatchError("validation failed"))
				Expect(containerRuntime.StopCallCount()).To(BeZero())
				Expect(manager.Count()).To(Equal(2))
				Expect(manager.Instances()[1].State).To(Equal(models.InstanceStateInService))
			})
		})

		Context("with a non-zero drain interval", func() {
			BeforeEach(func() {
				conf.Health.DrainInterval = 5 * time.Second
			})

			It("waits out the drain after deregistering and before stopping", func() {
				done := make(chan error, 1)
				go func() {
					done <- manager.Remove(2)
				}()

				Eventually(registry.DeregisterCallCount).Should(Equal(1))
				Consistently(containerRuntime.StopCallCount).Should(BeZero())

				fclock.WaitForWatcherAndIncrement(5 * time.Second)

				Eventually(done).Should(Receive(BeNil()))
				Expect(containerRuntime.StopCallCount()).To(Equal(1))
			})
		})

		Context("when the container fails to stop", func() {
			BeforeEach(func() {
				containerRuntime.StopReturns(errors.New("kill failed"))
			})

			It("still removes the instance from the fleet and reports the error", func() {
				err := manager.Remove(2)
				Expect(err).To(MatchError("kill failed"))
				Expect(manager.Count()).To(Equal(1))
			})
		})
	})

	Describe("Evict", func() {
		BeforeEach(func() {
			_, err := manager.Add()
			Expect(err).NotTo(HaveOccurred())
		})

		It("removes the instance even below the minimum size", func() {
			Expect(manager.Evict(1)).To(Succeed())
			Expect(manager.Count()).To(BeZero())
		})

		It("fails for an unknown instance", func() {
			Expect(manager.Evict(42)).To(BeAssignableToTypeOf(&InstanceNotFoundError{}))
		})
	})

	Describe("RemoveNewest", func() {
		BeforeEach(func() {
			for i := 0; i < 3; i++ {
				_, err := manager.Add()
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("removes the most recently added instance", func() {
			Expect(manager.RemoveNewest()).To(Succeed())

			Expect(registry.DeregisterArgsForCall(0)).To(Equal("127.0.0.1:9003"))
			ids := []int{}
			for _, instance := range manager.Instances() {
				ids = append(ids, instance.Id)
			}
			Expect(ids).To(Equal([]int{1, 2}))
		})
	})

	Describe("ScaleTo", func() {
		It("adds instances up to the target", func() {
			Expect(manager.ScaleTo(3)).To(Succeed())
			Expect(manager.Count()).To(Equal(3))
			Expect(containerRuntime.StartCallCount()).To(Equal(3))
		})

		It("removes instances down to the target", func() {
			Expect(manager.ScaleTo(3)).To(Succeed())
			Expect(manager.ScaleTo(1)).To(Succeed())
			Expect(manager.Count()).To(Equal(1))
			Expect(manager.Instances()[0].Id).To(Equal(1))
		})

		It("rejects targets outside the configured bounds", func() {
			Expect(manager.ScaleTo(0)).To(HaveOccurred())
			Expect(manager.ScaleTo(4)).To(HaveOccurred())
			Expect(manager.Count()).To(BeZero())
		})
	})

	Describe("Reconcile", func() {
		BeforeEach(func() {
			containerRuntime.ListReturns([]runtime.WorkerInfo{
				{ContainerId: "container-7", InstanceId: 7, Endpoint: "127.0.0.1:9007", CreatedAt: fclock.Now()},
				{ContainerId: "container-3", InstanceId: 3, Endpoint: "127.0.0.1:9003", CreatedAt: fclock.Now()},
			}, nil)
		})

		It("adopts running workers and syncs the load balancer", func() {
			Expect(manager.Reconcile()).To(Succeed())

			Expect(manager.Count()).To(Equal(2))
			targets := registry.SyncArgsForCall(0)
			Expect(targets).To(HaveLen(2))
			Expect(targets[0].Endpoint).To(Equal("127.0.0.1:9003"))
			Expect(targets[1].Endpoint).To(Equal("127.0.0.1:9007"))
		})

		It("continues instance ids and port slots above the adopted ones", func() {
			Expect(manager.Reconcile()).To(Succeed())

			_, err := manager.Add()
			Expect(err).NotTo(HaveOccurred())
			id, port := containerRuntime.StartArgsForCall(0)
			Expect(id).To(Equal(8))
			Expect(port).To(Equal(9008))
		})

		Context("when the runtime cannot be listed", func() {
			BeforeEach(func() {
				containerRuntime.ListReturns(nil, errors.New("daemon unreachable"))
			})

			It("fails without touching the load balancer", func() {
				Expect(manager.Reconcile()).To(MatchError("daemon unreachable"))
				Expect(registry.SyncCallCount()).To(BeZero())
			})
		})
	})
})

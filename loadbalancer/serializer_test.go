package loadbalancer_test

import (
	"time"

	"fleetscaler/models"

	. "fleetscaler/loadbalancer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SerializeUpstream", func() {
	It("renders targets in order inside the upstream block", func() {
		conf := &models.LoadBalancerConfig{
			UpstreamName: "fleet_workers",
			Targets: []models.UpstreamTarget{
				{InstanceId: 1, Endpoint: "127.0.0.1:9001", Weight: 1, MaxFails: 3, FailTimeout: 10 * time.Second},
				{InstanceId: 2, Endpoint: "127.0.0.1:9002", Weight: 2, MaxFails: 5, FailTimeout: 30 * time.Second},
			},
		}

		Expect(string(SerializeUpstream(conf))).To(Equal(
			"# Managed by fleetscaler. Do not edit; changes are overwritten.\n" +
				"upstream fleet_workers {\n" +
				"    server 127.0.0.1:9001 weight=1 max_fails=3 fail_timeout=10s;\n" +
				"    server 127.0.0.1:9002 weight=2 max_fails=5 fail_timeout=30s;\n" +
				"}\n"))
	})

	It("renders an empty upstream block when there are no targets", func() {
		conf := &models.LoadBalancerConfig{UpstreamName: "fleet_workers"}

		Expect(string(SerializeUpstream(conf))).To(Equal(
			"# Managed by fleetscaler. Do not edit; changes are overwritten.\n" +
				"upstream fleet_workers {\n" +
				"}\n"))
	})
})

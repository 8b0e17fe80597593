package models

import (
	"fmt"
	"time"
)

type UpstreamTarget struct {
	InstanceId  int
	Endpoint    string
	Weight      int
	MaxFails    int
	FailTimeout time.Duration
}

// LoadBalancerConfig is the structured model of the proxy's upstream
// block. Mutations operate on this structure; the serialized form is
// produced only when handing the config to the proxy.
type LoadBalancerConfig struct {
	UpstreamName string
	Targets      []UpstreamTarget
}

func (c *LoadBalancerConfig) Clone() *LoadBalancerConfig {
	targets := make([]UpstreamTarget, len(c.Targets))
	copy(targets, c.Targets)
	return &LoadBalancerConfig{
		UpstreamName: c.UpstreamName,
		Targets:      targets,
	}
}

func (c *LoadBalancerConfig) HasTarget(endpoint string) bool {
	for _, t := range c.Targets {
		if t.Endpoint == endpoint {
			return true
		}
	}
	return false
}

func (c *LoadBalancerConfig) AddTarget(target UpstreamTarget) error {
	if c.HasTarget(target.Endpoint) {
		return fmt.Errorf("upstream target %s already present", target.Endpoint)
	}
	c.Targets = append(c.Targets, target)
	return nil
}

func (c *LoadBalancerConfig) RemoveTarget(endpoint string) error {
	for i, t := range c.Targets {
		if t.Endpoint == endpoint {
			c.Targets = append(c.Targets[:i], c.Targets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("upstream target %s not present", endpoint)
}

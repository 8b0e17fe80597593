package fakes

//go:generate counterfeiter -o ./fake_container_runtime.go ../runtime ContainerRuntime
//go:generate counterfeiter -o ./fake_proxy_controller.go ../loadbalancer ProxyController
//go:generate counterfeiter -o ./fake_registry.go ../loadbalancer Registry
//go:generate counterfeiter -o ./fake_prober.go ../lifecycle Prober
//go:generate counterfeiter -o ./fake_access_metrics_source.go ../metricscollector AccessMetricsSource
//go:generate counterfeiter -o ./fake_event_log.go ../eventlog EventLog
//go:generate counterfeiter -o ./fake_sweeper.go ../controller Sweeper
//go:generate counterfeiter -o ./fake_sampler.go ../controller Sampler
//go:generate counterfeiter -o ./fake_decider.go ../controller Decider
//go:generate counterfeiter -o ./fake_fleet.go ../controller Fleet
//go:generate counterfeiter -o ./fake_monitor_fleet.go -fake-name FakeMonitorFleet ../healthmonitor Fleet

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"fleetscaler/config"
	"fleetscaler/controller"
	"fleetscaler/eventlog"
	"fleetscaler/healthendpoint"
	"fleetscaler/healthmonitor"
	"fleetscaler/helpers"
	"fleetscaler/lifecycle"
	"fleetscaler/loadbalancer"
	"fleetscaler/metricscollector"
	"fleetscaler/models"
	"fleetscaler/runtime"
	"fleetscaler/scalingengine"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "fleetscaler",
		Usage: "autoscaling controller for a docker worker fleet behind nginx",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file",
				Value:   "/etc/fleetscaler/fleetscaler.yml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "run the control loop in the foreground",
				Action: cmdStart,
			},
			{
				Name:   "status",
				Usage:  "show fleet status from the running controller",
				Action: cmdStatus,
			},
			{
				Name:      "scale",
				Usage:     "scale the fleet to an exact instance count",
				ArgsUsage: "<count>",
				Action:    cmdScale,
			},
			{
				Name:   "add",
				Usage:  "add one instance to the fleet",
				Action: cmdAdd,
			},
			{
				Name:      "remove",
				Usage:     "remove the instance with the given id",
				ArgsUsage: "<id>",
				Action:    cmdRemove,
			},
			{
				Name:   "test",
				Usage:  "sample metrics and print the scaling decision without acting",
				Action: cmdTest,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	configFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file '%s' : %s", path, err.Error())
	}
	defer configFile.Close()

	conf, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s' : %s", path, err.Error())
	}

	err = conf.Validate()
	if err != nil {
		return nil, fmt.Errorf("failed to validate configuration : %s", err.Error())
	}
	return conf, nil
}

type fleetDeps struct {
	logger    lager.Logger
	clock     clock.Clock
	runtime   runtime.ContainerRuntime
	events    eventlog.EventLog
	collector *metricscollector.Collector
	fleet     *lifecycle.Manager
}

func buildFleet(conf *config.Config) (*fleetDeps, error) {
	logger := helpers.InitLoggerFromConfig(&conf.Logging, "fleetscaler")
	fsClock := clock.NewClock()

	events, err := eventlog.NewFileEventLog(logger.Session("eventlog"), fsClock, conf.EventLogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open event log : %s", err.Error())
	}

	dockerRuntime, err := runtime.NewDockerRuntime(logger.Session("docker"), &conf.Runtime)
	if err != nil {
		return nil, fmt.Errorf("failed to connect docker daemon : %s", err.Error())
	}

	nginx := loadbalancer.NewNginxController(logger.Session("nginx"), &conf.LoadBalancer)
	registry := loadbalancer.NewManager(logger.Session("loadbalancer"), nginx, conf.LoadBalancer.UpstreamName)

	prober := lifecycle.NewHTTPProber(logger.Session("prober"), conf.Health.CheckPath, conf.Health.CheckInterval)
	fleet := lifecycle.NewManager(logger.Session("lifecycle"), fsClock, dockerRuntime, registry, prober, events, conf)

	accessLog := metricscollector.NewAccessLogReader(logger.Session("accesslog"), fsClock, &conf.Collector)
	collector := metricscollector.NewCollector(logger.Session("metricscollector"), fsClock, dockerRuntime, accessLog, conf.Collector.AccessRecordWindow)

	return &fleetDeps{
		logger:    logger,
		clock:     fsClock,
		runtime:   dockerRuntime,
		events:    events,
		collector: collector,
		fleet:     fleet,
	}, nil
}

func cmdStart(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	deps, err := buildFleet(conf)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	logger := deps.logger

	engine := scalingengine.NewEngine(logger.Session("scalingengine"), deps.clock, conf.Scaling)
	prober := lifecycle.NewHTTPProber(logger.Session("prober"), conf.Health.CheckPath, conf.Health.CheckInterval)
	monitor := healthmonitor.NewMonitor(logger.Session("healthmonitor"), deps.clock, deps.runtime, deps.fleet,
		prober, deps.events, conf.Health.RestartGracePeriod)

	counters := healthendpoint.NewCounterCollector()
	ctrl := controller.New(logger.Session("controller"), deps.clock, monitor, deps.collector, engine,
		deps.fleet, deps.events, counters, conf.Scaling)

	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{counters}, true, logger.Session("prometheus"))
	healthServer := healthendpoint.NewServer(logger.Session("health-server"), conf.Server.Port, promRegistry, ctrl)

	err = deps.fleet.Reconcile()
	if err != nil {
		logger.Error("failed-to-reconcile-fleet", err)
		return cli.Exit(fmt.Sprintf("failed to reconcile fleet : %s", err.Error()), 1)
	}

	members := grouper.Members{
		{Name: "health_server", Runner: healthServer},
		{Name: "controller", Runner: ctrl},
	}
	proc := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))
	logger.Info("started")

	err = <-proc.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		return cli.Exit("", 1)
	}
	logger.Info("exited")
	return nil
}

func cmdStatus(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/status", conf.Server.Port))
	if err != nil {
		fmt.Printf("controller is not reachable on port %d, showing the event log\n", conf.Server.Port)
		return printEventLogTail(conf)
	}
	defer resp.Body.Close()

	var status models.FleetStatus
	err = json.NewDecoder(resp.Body).Decode(&status)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to decode status response : %s", err.Error()), 1)
	}

	printStatus(&status)
	return nil
}

func printEventLogTail(conf *config.Config) error {
	logger := helpers.InitLoggerFromConfig(&conf.Logging, "fleetscaler")
	events, err := eventlog.NewFileEventLog(logger.Session("eventlog"), clock.NewClock(), conf.EventLogPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open event log : %s", err.Error()), 1)
	}
	recent, err := events.Tail(20)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to read event log : %s", err.Error()), 1)
	}
	for _, event := range recent {
		fmt.Printf("  %s [%s] %s\n", time.Unix(0, event.Timestamp).Format(time.RFC3339), event.Type, event.Message)
	}
	return nil
}

func printStatus(status *models.FleetStatus) {
	fmt.Printf("instances: %d\n", status.InstanceCount)
	for _, instance := range status.Instances {
		fmt.Printf("  %-12s %-16s %-20s %s\n", instance.Name(), instance.State, instance.Endpoint, instance.ContainerId)
	}
	if status.LastSnapshot != nil {
		s := status.LastSnapshot
		fmt.Printf("last sample (%s):\n", time.Unix(0, s.Timestamp).Format(time.RFC3339))
		if s.HasCPUEvidence() {
			fmt.Printf("  cpu: %.1f%%\n", s.AvgCPU*100)
		} else {
			fmt.Printf("  cpu: unknown\n")
		}
		if s.HasLatencyEvidence() {
			fmt.Printf("  latency: %s\n", s.AvgLatency)
		} else {
			fmt.Printf("  latency: unknown\n")
		}
		if s.HasRateEvidence() {
			fmt.Printf("  rate: %.1f req/min (%.1f per instance)\n", s.TotalRate, s.RatePerInstance)
		} else {
			fmt.Printf("  rate: unknown\n")
		}
	}
	if len(status.RecentEvents) > 0 {
		fmt.Println("recent events:")
		for _, event := range status.RecentEvents {
			fmt.Printf("  %s [%s] %s\n", time.Unix(0, event.Timestamp).Format(time.RFC3339), event.Type, event.Message)
		}
	}
}

func cmdScale(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: fleetscaler scale <count>", 1)
	}
	target, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid instance count '%s'", c.Args().First()), 1)
	}

	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	deps, err := buildFleet(conf)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	err = deps.fleet.Reconcile()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to reconcile fleet : %s", err.Error()), 1)
	}
	err = deps.fleet.ScaleTo(target)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to scale fleet : %s", err.Error()), 1)
	}
	fmt.Printf("fleet scaled to %d instances\n", deps.fleet.Count())
	return nil
}

func cmdAdd(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	deps, err := buildFleet(conf)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	err = deps.fleet.Reconcile()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to reconcile fleet : %s", err.Error()), 1)
	}
	instance, err := deps.fleet.Add()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to add instance : %s", err.Error()), 1)
	}
	fmt.Printf("added %s on %s\n", instance.Name(), instance.Endpoint)
	return nil
}

func cmdRemove(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: fleetscaler remove <id>", 1)
	}
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid instance id '%s'", c.Args().First()), 1)
	}

	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	deps, err := buildFleet(conf)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	err = deps.fleet.Reconcile()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to reconcile fleet : %s", err.Error()), 1)
	}
	err = deps.fleet.Remove(id)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to remove instance %d : %s", id, err.Error()), 1)
	}
	fmt.Printf("removed worker-%d\n", id)
	return nil
}

func cmdTest(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	deps, err := buildFleet(conf)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	snapshot, err := deps.collector.Sample()
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to sample metrics : %s", err.Error()), 1)
	}

	engine := scalingengine.NewEngine(deps.logger.Session("scalingengine"), deps.clock, conf.Scaling)
	decision := engine.Decide(snapshot, &models.CooldownState{})

	printStatus(&models.FleetStatus{
		InstanceCount: snapshot.InstanceCount,
		LastSnapshot:  snapshot,
	})
	fmt.Printf("decision: %s\n", decision.Action)
	for _, reason := range decision.Reasons {
		fmt.Printf("  %s\n", reason)
	}
	return nil
}

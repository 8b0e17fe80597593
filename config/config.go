package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"

	"fleetscaler/helpers"

	"gopkg.in/yaml.v2"
)

const (
	DefaultLoggingLevel = "info"

	DefaultServerPort = 8388

	DefaultCpuUpThreshold    = 0.70
	DefaultCpuDownThreshold  = 0.30
	DefaultLatencyThreshold  = 1 * time.Second
	DefaultRateThreshold     = 50.0
	DefaultScaleUpCooldown   = 180 * time.Second
	DefaultScaleDownCooldown = 300 * time.Second
	DefaultMinInstances      = 1
	DefaultMaxInstances      = 10
	DefaultPollInterval      = 30 * time.Second
	DefaultSettleDelay       = 3 * time.Second

	DefaultDockerEndpoint      = "unix:///var/run/docker.sock"
	DefaultWorkerImage         = "fleet-worker"
	DefaultWorkerHost          = "127.0.0.1"
	DefaultWorkerBasePort      = 9001
	DefaultHealthCheckPath     = "/health"
	DefaultHealthCheckInterval = 2 * time.Second
	DefaultHealthCheckTimeout  = 60 * time.Second
	DefaultRestartGracePeriod  = 5 * time.Second
	DefaultDrainInterval       = 5 * time.Second

	DefaultUpstreamName       = "fleet_workers"
	DefaultTargetWeight       = 1
	DefaultTargetMaxFails     = 3
	DefaultTargetFailTimeout  = 10 * time.Second
	DefaultAccessRecordWindow = 60 * time.Second
)

type ServerConfig struct {
	Port int `yaml:"port"`
}

type ScalingConfig struct {
	CpuUpThreshold    float64       `yaml:"cpu_up_threshold"`
	CpuDownThreshold  float64       `yaml:"cpu_down_threshold"`
	LatencyThreshold  time.Duration `yaml:"latency_threshold"`
	RateThreshold     float64       `yaml:"rate_threshold"`
	ScaleUpCooldown   time.Duration `yaml:"scale_up_cooldown"`
	ScaleDownCooldown time.Duration `yaml:"scale_down_cooldown"`
	MinInstances      int           `yaml:"min_instances"`
	MaxInstances      int           `yaml:"max_instances"`
	PollInterval      time.Duration `yaml:"poll_interval"`
	SettleDelay       time.Duration `yaml:"settle_delay"`
}

type RuntimeConfig struct {
	DockerEndpoint string `yaml:"docker_endpoint"`
	WorkerImage    string `yaml:"worker_image"`
	WorkerHost     string `yaml:"worker_host"`
	WorkerBasePort int    `yaml:"worker_base_port"`
}

type HealthConfig struct {
	CheckPath          string        `yaml:"check_path"`
	CheckInterval      time.Duration `yaml:"check_interval"`
	CheckTimeout       time.Duration `yaml:"check_timeout"`
	RestartGracePeriod time.Duration `yaml:"restart_grace_period"`
	DrainInterval      time.Duration `yaml:"drain_interval"`
}

type LoadBalancerConfig struct {
	UpstreamName      string        `yaml:"upstream_name"`
	ConfigPath        string        `yaml:"config_path"`
	StagedConfigPath  string        `yaml:"staged_config_path"`
	BackupConfigPath  string        `yaml:"backup_config_path"`
	ValidateCommand   []string      `yaml:"validate_command"`
	ReloadCommand     []string      `yaml:"reload_command"`
	TargetWeight      int           `yaml:"target_weight"`
	TargetMaxFails    int           `yaml:"target_max_fails"`
	TargetFailTimeout time.Duration `yaml:"target_fail_timeout"`
}

type CollectorConfig struct {
	AccessLogPath      string        `yaml:"access_log_path"`
	AccessRecordWindow time.Duration `yaml:"access_record_window"`
}

type Config struct {
	Logging      helpers.LoggingConfig `yaml:"logging"`
	Server       ServerConfig          `yaml:"server"`
	Scaling      ScalingConfig         `yaml:"scaling"`
	Runtime      RuntimeConfig         `yaml:"runtime"`
	Health       HealthConfig          `yaml:"health"`
	LoadBalancer LoadBalancerConfig    `yaml:"load_balancer"`
	Collector    CollectorConfig       `yaml:"collector"`
	EventLogPath string                `yaml:"event_log_path"`
}

var defaultConfig = Config{
	Logging: helpers.LoggingConfig{Level: DefaultLoggingLevel},
	Server:  ServerConfig{Port: DefaultServerPort},
	Scaling: ScalingConfig{
		CpuUpThreshold:    DefaultCpuUpThreshold,
		CpuDownThreshold:  DefaultCpuDownThreshold,
		LatencyThreshold:  DefaultLatencyThreshold,
		RateThreshold:     DefaultRateThreshold,
		ScaleUpCooldown:   DefaultScaleUpCooldown,
		ScaleDownCooldown: DefaultScaleDownCooldown,
		MinInstances:      DefaultMinInstances,
		MaxInstances:      DefaultMaxInstances,
		PollInterval:      DefaultPollInterval,
		SettleDelay:       DefaultSettleDelay,
	},
	Runtime: RuntimeConfig{
		DockerEndpoint: DefaultDockerEndpoint,
		WorkerImage:    DefaultWorkerImage,
		WorkerHost:     DefaultWorkerHost,
		WorkerBasePort: DefaultWorkerBasePort,
	},
	Health: HealthConfig{
		CheckPath:          DefaultHealthCheckPath,
		CheckInterval:      DefaultHealthCheckInterval,
		CheckTimeout:       DefaultHealthCheckTimeout,
		RestartGracePeriod: DefaultRestartGracePeriod,
		DrainInterval:      DefaultDrainInterval,
	},
	LoadBalancer: LoadBalancerConfig{
		UpstreamName:      DefaultUpstreamName,
		ConfigPath:        "/etc/nginx/conf.d/fleet_upstream.conf",
		StagedConfigPath:  "/etc/nginx/conf.d/fleet_upstream.conf.staged",
		BackupConfigPath:  "/etc/nginx/conf.d/fleet_upstream.conf.bak",
		ValidateCommand:   []string{"nginx", "-t"},
		ReloadCommand:     []string{"nginx", "-s", "reload"},
		TargetWeight:      DefaultTargetWeight,
		TargetMaxFails:    DefaultTargetMaxFails,
		TargetFailTimeout: DefaultTargetFailTimeout,
	},
	Collector: CollectorConfig{
		AccessLogPath:      "/var/log/nginx/fleet_access.log",
		AccessRecordWindow: DefaultAccessRecordWindow,
	},
	EventLogPath: "/var/log/fleetscaler/events.log",
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig

	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(bytes, &conf)
	if err != nil {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return &conf, nil
}

func (c *Config) Validate() error {
	if c.Scaling.CpuUpThreshold <= 0 || c.Scaling.CpuUpThreshold > 1 {
		return fmt.Errorf("Configuration error: cpu_up_threshold must be in (0, 1]")
	}
	if c.Scaling.CpuDownThreshold <= 0 || c.Scaling.CpuDownThreshold >= c.Scaling.CpuUpThreshold {
		return fmt.Errorf("Configuration error: cpu_down_threshold must be positive and less than cpu_up_threshold")
	}
	if c.Scaling.LatencyThreshold <= 0 {
		return fmt.Errorf("Configuration error: latency_threshold is less than or equal to 0")
	}
	if c.Scaling.RateThreshold <= 0 {
		return fmt.Errorf("Configuration error: rate_threshold is less than or equal to 0")
	}
	if c.Scaling.ScaleUpCooldown <= 0 || c.Scaling.ScaleDownCooldown <= 0 {
		return fmt.Errorf("Configuration error: scaling cooldowns must be greater than 0")
	}
	if c.Scaling.MinInstances < 1 {
		return fmt.Errorf("Configuration error: min_instances is less than 1")
	}
	if c.Scaling.MaxInstances < c.Scaling.MinInstances {
		return fmt.Errorf("Configuration error: max_instances is less than min_instances")
	}
	if c.Scaling.PollInterval <= 0 {
		return fmt.Errorf("Configuration error: poll_interval is less than or equal to 0")
	}
	if c.Runtime.WorkerImage == "" {
		return fmt.Errorf("Configuration error: worker_image is empty")
	}
	if c.Runtime.WorkerBasePort <= 0 || c.Runtime.WorkerBasePort > 65535 {
		return fmt.Errorf("Configuration error: worker_base_port is out of range")
	}
	if c.Health.CheckInterval <= 0 || c.Health.CheckTimeout <= 0 {
		return fmt.Errorf("Configuration error: health check interval and timeout must be greater than 0")
	}
	if c.Health.DrainInterval < 0 {
		return fmt.Errorf("Configuration error: drain_interval is less than 0")
	}
	if c.LoadBalancer.ConfigPath == "" {
		return fmt.Errorf("Configuration error: load balancer config_path is empty")
	}
	if c.LoadBalancer.UpstreamName == "" {
		return fmt.Errorf("Configuration error: load balancer upstream_name is empty")
	}
	if c.EventLogPath == "" {
		return fmt.Errorf("Configuration error: event_log_path is empty")
	}
	return nil
}

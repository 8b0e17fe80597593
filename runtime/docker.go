package runtime

import (
	"fmt"
	"strconv"
	"time"

	"fleetscaler/config"

	"code.cloudfoundry.org/lager"
	"github.com/cenkalti/backoff/v4"
	docker "github.com/fsouza/go-dockerclient"
)

const (
	labelManaged    = "fleetscaler.managed"
	labelInstanceId = "fleetscaler.instance_id"
	labelEndpoint   = "fleetscaler.endpoint"

	workerContainerPort = "8080/tcp"
)

type DockerRuntime struct {
	logger lager.Logger
	client *docker.Client
	image  string
	host   string
}

func NewDockerRuntime(logger lager.Logger, conf *config.RuntimeConfig) (*DockerRuntime, error) {
	client, err := docker.NewClient(conf.DockerEndpoint)
	if err != nil {
		return nil, err
	}

	// The docker daemon may still be coming up when the controller
	// starts; give it a few attempts before failing.
	err = backoff.Retry(client.Ping, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
	if err != nil {
		return nil, fmt.Errorf("failed to reach docker daemon at %s: %w", conf.DockerEndpoint, err)
	}

	return &DockerRuntime{
		logger: logger.Session("docker-runtime"),
		client: client,
		image:  conf.WorkerImage,
		host:   conf.WorkerHost,
	}, nil
}

func (r *DockerRuntime) Start(instanceId int, port int) (string, error) {
	endpoint := fmt.Sprintf("%s:%d", r.host, port)
	opts := docker.CreateContainerOptions{
		Name: fmt.Sprintf("fleet-worker-%d", instanceId),
		Config: &docker.Config{
			Image: r.image,
			Labels: map[string]string{
				labelManaged:    "true",
				labelInstanceId: strconv.Itoa(instanceId),
				labelEndpoint:   endpoint,
			},
			ExposedPorts: map[docker.Port]struct{}{
				workerContainerPort: {},
			},
		},
		HostConfig: &docker.HostConfig{
			PortBindings: map[docker.Port][]docker.PortBinding{
				workerContainerPort: {{HostIP: r.host, HostPort: strconv.Itoa(port)}},
			},
		},
	}

	container, err := r.client.CreateContainer(opts)
	if err != nil {
		r.logger.Error("failed-to-create-container", err, lager.Data{"instanceId": instanceId, "port": port})
		return "", err
	}

	err = r.client.StartContainer(container.ID, nil)
	if err != nil {
		r.logger.Error("failed-to-start-container", err, lager.Data{"containerId": container.ID})
		removeErr := r.client.RemoveContainer(docker.RemoveContainerOptions{ID: container.ID, Force: true})
		if removeErr != nil {
			r.logger.Error("failed-to-remove-unstarted-container", removeErr, lager.Data{"containerId": container.ID})
		}
		return "", err
	}

	return container.ID, nil
}

// Stop kills and removes the container. A paused container is unpaused
// first so the kill is not refused by the daemon.
func (r *DockerRuntime) Stop(containerId string) error {
	inspect, err := r.client.InspectContainer(containerId)
	if err != nil {
		return fmt.Errorf("failed to inspect container %s: %w", containerId, err)
	}

	if inspect.State.Paused {
		if err := r.client.UnpauseContainer(containerId); err != nil {
			return fmt.Errorf("failed to unpause container %s: %w", containerId, err)
		}
	}

	if inspect.State.Running {
		err = r.client.KillContainer(docker.KillContainerOptions{ID: containerId})
		if err != nil {
			return fmt.Errorf("failed to kill container %s: %w", containerId, err)
		}
	}

	err = r.client.RemoveContainer(docker.RemoveContainerOptions{ID: containerId, Force: true})
	if err != nil {
		return fmt.Errorf("failed to remove container %s: %w", containerId, err)
	}
	return nil
}

func (r *DockerRuntime) Restart(containerId string) error {
	return r.client.RestartContainer(containerId, 10)
}

func (r *DockerRuntime) List() ([]WorkerInfo, error) {
	containers, err := r.client.ListContainers(docker.ListContainersOptions{
		Filters: map[string][]string{
			"label": {labelManaged + "=true"},
		},
	})
	if err != nil {
		return nil, err
	}

	workers := make([]WorkerInfo, 0, len(containers))
	for _, c := range containers {
		id, err := strconv.Atoi(c.Labels[labelInstanceId])
		if err != nil {
			r.logger.Error("skipping-container-with-bad-instance-label", err, lager.Data{"containerId": c.ID})
			continue
		}
		workers = append(workers, WorkerInfo{
			ContainerId: c.ID,
			InstanceId:  id,
			Endpoint:    c.Labels[labelEndpoint],
			CreatedAt:   timeFromUnix(c.Created),
		})
	}
	return workers, nil
}

func timeFromUnix(sec int64) time.Time {
	return time.Unix(sec, 0)
}

// Stats reads a single stats sample and derives CPU utilization from the
// usage deltas the daemon reports against the previous sample.
func (r *DockerRuntime) Stats(containerId string) (float64, error) {
	statsCh := make(chan *docker.Stats)
	errCh := make(chan error, 1)

	go func() {
		errCh <- r.client.Stats(docker.StatsOptions{
			ID:     containerId,
			Stats:  statsCh,
			Stream: false,
		})
	}()

	var sample *docker.Stats
	for s := range statsCh {
		sample = s
	}
	if err := <-errCh; err != nil {
		return 0, err
	}
	if sample == nil {
		return 0, fmt.Errorf("no stats sample returned for container %s", containerId)
	}

	cpuDelta := float64(sample.CPUStats.CPUUsage.TotalUsage) - float64(sample.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(sample.CPUStats.SystemCPUUsage) - float64(sample.PreCPUStats.SystemCPUUsage)
	if cpuDelta < 0 || systemDelta <= 0 {
		return 0, fmt.Errorf("cpu accounting not yet available for container %s", containerId)
	}

	cpus := float64(sample.CPUStats.OnlineCPUs)
	if cpus == 0 {
		cpus = float64(len(sample.CPUStats.CPUUsage.PercpuUsage))
	}
	if cpus == 0 {
		cpus = 1
	}

	return cpuDelta / systemDelta * cpus, nil
}

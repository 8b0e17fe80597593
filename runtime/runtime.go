package runtime

import "time"

type WorkerInfo struct {
	ContainerId string
	InstanceId  int
	Endpoint    string
	CreatedAt   time.Time
}

// ContainerRuntime abstracts the container engine hosting worker
// instances. Stats reports CPU utilization as a fraction of the host
// CPUs available to the container.
type ContainerRuntime interface {
	Start(instanceId int, port int) (string, error)
	Stop(containerId string) error
	Restart(containerId string) error
	List() ([]WorkerInfo, error)
	Stats(containerId string) (float64, error)
}

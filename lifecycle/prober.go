package lifecycle

import (
	"fmt"
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"
)

// Prober checks one instance's local health endpoint.
type Prober interface {
	Probe(endpoint string) error
}

type HTTPProber struct {
	logger lager.Logger
	client *http.Client
	path   string
}

func NewHTTPProber(logger lager.Logger, checkPath string, timeout time.Duration) *HTTPProber {
	return &HTTPProber{
		logger: logger.Session("http-prober"),
		client: &http.Client{Timeout: timeout},
		path:   checkPath,
	}
}

func (p *HTTPProber) Probe(endpoint string) error {
	resp, err := p.client.Get("http://" + endpoint + p.path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status %d from %s", resp.StatusCode, endpoint)
	}
	return nil
}

package healthendpoint

import (
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

func RegisterCollectors(registrar prometheus.Registerer, collectors []prometheus.Collector, includeDefault bool, logger lager.Logger) {
	if includeDefault {
		err := registrar.Register(prometheus.NewGoCollector())
		if err != nil {
			logger.Error("failed-to-register-go-collector", err)
		}
	}

	for _, c := range collectors {
		err := registrar.Register(c)
		if err != nil {
			logger.Error("failed-to-register-collector", err)
		}
	}
}

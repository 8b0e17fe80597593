package loadbalancer

import (
	"bytes"
	"fmt"

	"fleetscaler/models"
)

// SerializeUpstream renders the structured target list into the upstream
// block the proxy loads. Output is deterministic: targets appear in
// registration order.
func SerializeUpstream(conf *models.LoadBalancerConfig) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Managed by fleetscaler. Do not edit; changes are overwritten.\n")
	fmt.Fprintf(&buf, "upstream %s {\n", conf.UpstreamName)
	for _, t := range conf.Targets {
		fmt.Fprintf(&buf, "    server %s weight=%d max_fails=%d fail_timeout=%ds;\n",
			t.Endpoint, t.Weight, t.MaxFails, int(t.FailTimeout.Seconds()))
	}
	buf.WriteString("}\n")

	return buf.Bytes()
}

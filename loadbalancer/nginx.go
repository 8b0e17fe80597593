package loadbalancer

import (
	"fmt"
	"os"
	"os/exec"

	"fleetscaler/config"

	"code.cloudfoundry.org/lager"
	"github.com/cenkalti/backoff/v4"
)

// NginxController drives an nginx proxy whose main config includes the
// managed upstream file. Validate installs the staged file with an atomic
// rename and runs the configured validation command (nginx -t); Apply
// signals a hot reload; Rollback puts the backup bytes back and reloads.
type NginxController struct {
	logger      lager.Logger
	configPath  string
	stagedPath  string
	backupPath  string
	validateCmd []string
	reloadCmd   []string
}

func NewNginxController(logger lager.Logger, conf *config.LoadBalancerConfig) *NginxController {
	return &NginxController{
		logger:      logger.Session("nginx-controller"),
		configPath:  conf.ConfigPath,
		stagedPath:  conf.StagedConfigPath,
		backupPath:  conf.BackupConfigPath,
		validateCmd: conf.ValidateCommand,
		reloadCmd:   conf.ReloadCommand,
	}
}

func (n *NginxController) ReadActive() ([]byte, error) {
	contents, err := os.ReadFile(n.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []byte{}, nil
		}
		return nil, err
	}
	return contents, nil
}

func (n *NginxController) WriteBackup(contents []byte) error {
	return os.WriteFile(n.backupPath, contents, 0644)
}

func (n *NginxController) Stage(contents []byte) error {
	return os.WriteFile(n.stagedPath, contents, 0644)
}

func (n *NginxController) Validate() error {
	if err := os.Rename(n.stagedPath, n.configPath); err != nil {
		return fmt.Errorf("failed to install staged config: %w", err)
	}

	out, err := n.runCommand(n.validateCmd)
	if err != nil {
		return fmt.Errorf("%w: %s", err, out)
	}
	n.logger.Debug("config-validated", lager.Data{"path": n.configPath})
	return nil
}

func (n *NginxController) Apply() error {
	return n.reload()
}

func (n *NginxController) Rollback(backup []byte) error {
	if err := os.WriteFile(n.configPath, backup, 0644); err != nil {
		return fmt.Errorf("failed to restore backup config: %w", err)
	}
	return n.reload()
}

// reload signals the running proxy. The signal is cheap and idempotent,
// so a transient failure is retried a few times before giving up.
func (n *NginxController) reload() error {
	attempt := func() error {
		out, err := n.runCommand(n.reloadCmd)
		if err != nil {
			n.logger.Error("reload-attempt-failed", err, lager.Data{"output": string(out)})
			return fmt.Errorf("%w: %s", err, out)
		}
		return nil
	}
	return backoff.Retry(attempt, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3))
}

func (n *NginxController) runCommand(argv []string) ([]byte, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("no command configured")
	}
	return exec.Command(argv[0], argv[1:]...).CombinedOutput()
}

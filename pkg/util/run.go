package util

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/rolespec/rolespec/pkg/telemetry"
)

// RunCommand executes an external tool in dir, streaming its output to the
// calling process. The command line is logged at debug level before the
// tool runs.
func RunCommand(ctx context.Context, name string, args []string, dir string) error {
	log := telemetry.FromContext(ctx).WithComponent("exec")
	log.Debugf("running %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

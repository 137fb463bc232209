package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rolespec/rolespec/pkg/driver"
	"github.com/rolespec/rolespec/pkg/provisioner"
	"github.com/rolespec/rolespec/pkg/state"
	"github.com/rolespec/rolespec/pkg/telemetry"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List platform instances across all scenarios",
		Long: `List the platform instances of every scenario, with the driver and
provisioner resolved from each scenario's effective configuration and the
recorded run state of the scenario.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := telemetry.FromContext(cmd.Context()).WithComponent("list")

			configs, err := loadConfigs(map[string]any{"debug": debug}, nil)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "Instance Name\tDriver\tProvisioner\tScenario\tState")

			for _, c := range configs {
				log.Debugf("listing scenario %s", c.ScenarioName())

				d := driver.From(c)
				if d == nil {
					return fmt.Errorf("scenario %s: unknown driver %q",
						c.ScenarioName(), c.ProviderName("driver"))
				}
				p := provisioner.From(c)
				if p == nil {
					return fmt.Errorf("scenario %s: unknown provisioner %q",
						c.ScenarioName(), c.ProviderName("provisioner"))
				}

				st, err := state.New(c)
				if err != nil {
					return err
				}

				for _, instance := range d.Instances() {
					fmt.Fprintf(w, "%v\t%s\t%s\t%s\t%s\n",
						instance["name"], d.Name(), p.Name(), c.ScenarioName(),
						stateLabel(st))
				}
			}

			return w.Flush()
		},
	}
}

func stateLabel(st *state.State) string {
	switch {
	case st.Converged():
		return color.GreenString("converged")
	case st.Created():
		return color.YellowString("created")
	default:
		return color.RedString("not created")
	}
}

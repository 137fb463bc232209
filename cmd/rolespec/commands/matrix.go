package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rolespec/rolespec/pkg/scenario"
)

func newMatrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show the step sequences of every scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := loadConfigs(map[string]any{"debug": debug}, nil)
			if err != nil {
				return err
			}

			for _, c := range configs {
				s := scenario.New(c)
				fmt.Printf("scenario: %s\n", s.Name())
				fmt.Printf("  check:    %s\n", strings.Join(s.CheckSequence(), " -> "))
				fmt.Printf("  converge: %s\n", strings.Join(s.ConvergeSequence(), " -> "))
				fmt.Printf("  test:     %s\n", strings.Join(s.TestSequence(), " -> "))
			}

			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current career data as JSON",
		Run:   runShow,
	}
	RootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	cs, err := s.Load()
	if err != nil {
		exitErr("load", err)
	}
	printJSON(cs)
}

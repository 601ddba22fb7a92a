package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "skip <skill>",
		Short: "Mark a skill so discovery stops proposing it",
		Args:  cobra.ExactArgs(1),
		Run:   runSkip,
	}
	RootCmd.AddCommand(cmd)
}

func runSkip(cmd *cobra.Command, args []string) {
	name := args[0]

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	cs, err := s.Load()
	if err != nil {
		exitErr("load", err)
	}
	if cs.HasSkipped(name) {
		fmt.Printf("%q is already skipped\n", name)
		return
	}
	cs.SkippedSkills = append(cs.SkippedSkills, name)
	if err := s.Save(cs); err != nil {
		exitErr("save", err)
	}
	fmt.Printf("%q will no longer be proposed\n", name)
}

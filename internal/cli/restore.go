package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore career data from the backup file",
		Long: "Copy the single-generation backup over the canonical file and " +
			"reload it. This is the recovery path when the canonical file fails " +
			"to parse or validate.",
		Run: runRestore,
	}
	RootCmd.AddCommand(cmd)
}

func runRestore(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	cs, err := s.RestoreFromBackup()
	if err != nil {
		exitErr("restore", err)
	}
	fmt.Printf("restored %s from %s (last updated %s)\n",
		s.Path(), s.BackupPath(), cs.LastUpdated.Format("2006-01-02 15:04"))
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the career data to a file or stdout",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}
	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	cs, err := s.Load()
	if err != nil {
		exitErr("load", err)
	}

	b, err := json.MarshalIndent(cs, "", "  ")
	if err != nil {
		exitErr("serialize", err)
	}

	if len(args) == 0 {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(args[0], append(b, '\n'), 0o644); err != nil {
		exitErr("write export", err)
	}
	fmt.Printf("exported to %s\n", args[0])
}

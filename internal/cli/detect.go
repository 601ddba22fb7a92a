package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/career-vault/internal/detect"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Detect skills in a job description that are missing from your data",
		Long: "Scan a job description (file argument or stdin) for technology " +
			"keywords not yet in your skill list and not previously skipped.",
		Args: cobra.MaximumNArgs(1),
		Run:  runDetect,
	}
	cmd.Flags().IntP("max", "m", 5, "Maximum skills to report")
	RootCmd.AddCommand(cmd)
}

func runDetect(cmd *cobra.Command, args []string) {
	max, _ := cmd.Flags().GetInt("max")

	var text []byte
	var err error
	if len(args) > 0 {
		text, err = os.ReadFile(args[0])
	} else {
		text, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		exitErr("read job description", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	cs, err := s.Load()
	if err != nil {
		exitErr("load", err)
	}

	missing := detect.MissingSkills(string(text), cs, max)
	if len(missing) == 0 {
		fmt.Println("no missing skills detected")
		return
	}
	for _, name := range missing {
		fmt.Println(name)
	}
}

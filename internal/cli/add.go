package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/career-vault/internal/admit"
	"github.com/rcliao/career-vault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a skill candidate for review",
		Long: "Run a skill/achievement candidate through the admission pipeline: " +
			"schema validation, consistency checks and an authenticity scan, then " +
			"an interactive accept/discard decision.",
		Run: runAdd,
	}

	cmd.Flags().StringP("skill", "s", "", "Skill name (required)")
	cmd.Flags().StringP("company", "c", "", "Company where the skill was used (required)")
	cmd.Flags().StringP("timeframe", "t", "", `Timeframe, e.g. "2021-05" or "2020-01 to 2022-06" (required)`)
	cmd.Flags().StringP("example", "e", "", "Concrete achievement example, 20-500 characters (required)")
	cmd.Flags().String("result", "", "Optional outcome, at most 200 characters")
	cmd.Flags().String("category", "", "Skill category: technical, soft, domain")
	cmd.Flags().String("source", "", "Job description file, enables copy-paste detection")
	cmd.Flags().BoolP("yes", "y", false, "Approve without prompting when there are no errors")

	cmd.MarkFlagRequired("skill")
	cmd.MarkFlagRequired("company")
	cmd.MarkFlagRequired("timeframe")
	cmd.MarkFlagRequired("example")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("skill")
	company, _ := cmd.Flags().GetString("company")
	timeframe, _ := cmd.Flags().GetString("timeframe")
	example, _ := cmd.Flags().GetString("example")
	result, _ := cmd.Flags().GetString("result")
	category, _ := cmd.Flags().GetString("category")
	sourceFile, _ := cmd.Flags().GetString("source")
	autoYes, _ := cmd.Flags().GetBool("yes")

	var sourceText string
	if sourceFile != "" {
		b, err := os.ReadFile(sourceFile)
		if err != nil {
			exitErr("read source", err)
		}
		sourceText = string(b)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	pipeline := newPipeline(s)

	run, err := pipeline.Submit(cmd.Context(), model.DiscoveredEntry{
		Name:      name,
		Company:   company,
		Timeframe: model.Timeframe(timeframe),
		Example:   example,
		Result:    result,
		Category:  category,
	}, sourceText)
	if err != nil {
		exitErr("submit", err)
	}

	if run.State == admit.StateDrafting {
		fmt.Fprintln(os.Stderr, "candidate rejected:")
		for _, fe := range run.FieldErrors {
			fmt.Fprintf(os.Stderr, "  %s\n", fe)
		}
		os.Exit(1)
	}

	printFindings(run)

	if len(run.Errors) > 0 {
		fmt.Fprintln(os.Stderr, "fix the errors above and resubmit")
		os.Exit(1)
	}

	if !autoYes && !confirm(run) {
		if err := pipeline.Discard(cmd.Context(), run, false); err != nil {
			exitErr("discard", err)
		}
		fmt.Println("discarded, nothing saved")
		return
	}

	if err := pipeline.Approve(cmd.Context(), run); err != nil {
		exitErr("approve", err)
	}
	if run.ExistingSkill != "" {
		fmt.Printf("added example to existing skill %q\n", run.ExistingSkill)
	} else {
		fmt.Printf("added new skill %q\n", name)
	}
}

func printFindings(run *admit.Run) {
	for _, f := range run.Errors {
		fmt.Printf("error   [%s] %s\n", f.Class, f.Suggestion)
	}
	for _, f := range run.Warnings {
		fmt.Printf("warning [%s] %s\n", f.Class, f.Suggestion)
	}
	if len(run.Errors) == 0 && len(run.Warnings) == 0 {
		fmt.Println("no concerns found")
	}
}

func confirm(run *admit.Run) bool {
	if run.ExistingSkill != "" {
		fmt.Printf("append example to existing skill %q? [y/N] ", run.ExistingSkill)
	} else {
		fmt.Printf("add new skill %q? [y/N] ", run.Candidate.Name)
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

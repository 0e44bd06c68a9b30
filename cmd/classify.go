package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mentiongate/internal/dispatch"
	"mentiongate/internal/models"
)

var (
	classifyCommand string
	classifyTweet   string
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a command without dispatching it",
	Long: `Runs the classifier against a command and tweet and prints the label
plus the route it would resolve to. Useful for tuning the prompt template.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		label, err := appInstance.Classifier.Classify(cmd.Context(), classifyCommand, classifyTweet)
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}

		category, recognized := models.ParseCategory(label)
		endpoint, _ := dispatch.Endpoint(category)

		fmt.Printf("Label:    %s\n", color.GreenString(label))
		if !recognized {
			fmt.Printf("          %s\n", color.YellowString("(unrecognized label, falls back to %s)", models.CategoryGeneric))
		}
		fmt.Printf("Route:    %s\n", endpoint)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().StringVar(&classifyCommand, "command", "", "User command to classify")
	classifyCmd.Flags().StringVar(&classifyTweet, "tweet", "", "Tweet the command was issued on")
	classifyCmd.MarkFlagRequired("command")
	classifyCmd.MarkFlagRequired("tweet")
}

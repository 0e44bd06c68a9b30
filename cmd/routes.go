package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"mentiongate/internal/dispatch"
	"mentiongate/internal/models"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the category to endpoint routing table",
	Run: func(cmd *cobra.Command, args []string) {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Endpoint", "Transport"})

		for _, category := range models.Categories {
			endpoint, _ := dispatch.Endpoint(category)
			transport := "json"
			if category == models.CategoryScreenshot {
				transport = "multipart"
			}
			table.Append([]string{string(category), endpoint, transport})
		}

		table.Render()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

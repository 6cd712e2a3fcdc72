package commands

import (
	"io"
	"time"

	"wa-gateway/api"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func eventsCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List the latest session lifecycle events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			events, err := a.client.Events(ctx, limit)
			if err != nil {
				return err
			}
			renderEvents(cmd.OutOrStdout(), events)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of events, newest first")
	return cmd
}

func renderEvents(w io.Writer, events []api.EventView) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"At", "Kind", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	for _, e := range events {
		table.Append([]string{e.At.Local().Format(time.DateTime), e.Kind, e.Detail})
	}
	table.Render()
}

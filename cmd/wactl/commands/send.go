package commands

import (
	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

// send <phone> <message>
func sendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send <phone> <message>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			resp, err := a.client.Send(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			color.Fprintf(cmd.OutOrStdout(), "<green>sent</> %s at %d\n", resp.MessageID, resp.Timestamp)
			return nil
		},
	}
}

// send-media <phone> <path> [--caption text] [--type image|video|audio|document]
func sendMediaCmd(a *app) *cobra.Command {
	var caption, mediaType string
	cmd := &cobra.Command{
		Use:   "send-media <phone> <path>",
		Short: "Send a file, optionally with a caption",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			resp, err := a.client.SendMedia(ctx, args[0], caption, args[1], mediaType)
			if err != nil {
				return err
			}
			color.Fprintf(cmd.OutOrStdout(), "<green>sent</> %s at %d\n", resp.MessageID, resp.Timestamp)
			return nil
		},
	}
	cmd.Flags().StringVarP(&caption, "caption", "c", "", "caption sent with the file")
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "image, video, audio or document (sniffed when empty)")
	return cmd
}

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <phone>",
		Short: "Check whether a number is registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			resp, err := a.client.CheckNumber(ctx, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !resp.Exists || resp.NumberID == nil {
				color.Fprintf(w, "<red>not registered</> %s\n", args[0])
				return nil
			}
			color.Fprintf(w, "<green>registered</> as %s\n", *resp.NumberID)
			return nil
		},
	}
}


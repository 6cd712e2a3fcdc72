package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

const pngDataURIPrefix = "data:image/png;base64,"

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.timeout)
}

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the session is ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			status, err := a.client.Status(ctx)
			if err != nil {
				color.Fprintf(cmd.ErrOrStderr(), "<red>gateway unreachable</>: %v\n", err)
				return err
			}
			out := cmd.OutOrStdout()
			if status.Connected {
				color.Fprintf(out, "<green>ready</> (%s)\n", status.Timestamp)
				return nil
			}
			color.Fprintf(out, "<yellow>%s</> (%s)\n", status.Status, status.Timestamp)
			if status.QR != "" {
				fmt.Fprintln(out, "a QR code is waiting, run `wactl qr --out qr.png` to save it")
			}
			return nil
		},
	}
}

func qrCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Fetch the pending login QR code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			qr, err := a.client.QR(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if qr.QR == "" {
				color.Fprintf(w, "<yellow>%s</>: %s\n", qr.Status, qr.Message)
				return nil
			}
			if out == "" || !strings.HasPrefix(qr.QR, pngDataURIPrefix) {
				fmt.Fprintln(w, qr.QR)
				return nil
			}
			png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr.QR, pngDataURIPrefix))
			if err != nil {
				return fmt.Errorf("decoding qr image: %w", err)
			}
			if err := os.WriteFile(out, png, 0o600); err != nil {
				return err
			}
			color.Fprintf(w, "<green>QR code saved</> to %s, scan it from WhatsApp > Linked devices\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the QR code to this PNG file")
	return cmd
}

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the account linked to the gateway",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			info, err := a.client.Info(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "wid:      %s\n", info.WID)
			fmt.Fprintf(w, "phone:    %s\n", info.Phone)
			fmt.Fprintf(w, "platform: %s\n", info.Platform)
			return nil
		},
	}
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Unlink the device, a new QR code will be issued",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()
			msg, err := a.client.Logout(ctx)
			if err != nil {
				return err
			}
			color.Fprintf(cmd.OutOrStdout(), "<green>%s</>\n", msg)
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func initCmd(info models.AppBuildInfo) *cobra.Command {
	var offline bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Authenticate with the service and cache the access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, info)
			if err != nil {
				return err
			}
			defer sess.Close()

			if err := sess.Init(cmd.Context(), !offline); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case offline:
				fmt.Fprintln(out, "Session initialized without the server.")
			case sess.UserEmail() != "":
				fmt.Fprintf(out, "Logged in as %s.\n", sess.UserEmail())
			default:
				fmt.Fprintln(out, "Logged in.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "initialize without contacting the service")
	return cmd
}

func resetCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the cached token, uploads and the cache directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, info)
			if err != nil {
				return err
			}
			if err := sess.Reset(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", sess.CacheDir())
			return nil
		},
	}
}

func tokenCmd(info models.AppBuildInfo) *cobra.Command {
	var copyToken bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print the access token of the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := serverSession(cmd, info)
			if err != nil {
				return err
			}
			defer sess.Close()

			token := sess.AccessToken()
			if !copyToken {
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			}

			if err := clipboard.WriteAll(token); err != nil {
				return fmt.Errorf("error copying token to clipboard: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Access token copied to the clipboard.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyToken, "copy", false, "copy the token to the clipboard instead of printing it")
	return cmd
}

func versionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
}

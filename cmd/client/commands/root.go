package commands

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-tabpfn-client/internal/config"
	"github.com/MKhiriev/go-tabpfn-client/internal/utils"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/MKhiriev/go-tabpfn-client/tabpfn"
	"github.com/spf13/cobra"
)

// Execute runs the CLI until it finishes or the process is interrupted.
func Execute(info models.AppBuildInfo) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return NewRootCommand(info).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Configuration flags are persistent
// so every subcommand accepts them.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:          "tabpfn",
		Short:        "Client for the hosted TabPFN inference service",
		SilenceUsage: true,
		// all requests of one invocation share a trace id
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(utils.WithTraceID(cmd.Context(), utils.NewUUIDGenerator().Generate()))
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		initCmd(info),
		resetCmd(info),
		tokenCmd(info),
		classifyCmd(info),
		regressCmd(info),
		versionCmd(info),
	)
	return root
}

// newSession builds a session configured from the flags of cmd.
func newSession(cmd *cobra.Command, info models.AppBuildInfo) (*tabpfn.Session, error) {
	return tabpfn.NewSession(
		tabpfn.WithFlagSet(cmd.Flags()),
		tabpfn.WithBuildInfo(info),
		tabpfn.WithPromptOutput(promptOutput(cmd)),
	)
}

// promptOutput is where banners and greetings go. stdout carries only
// command results so they can be redirected to a file.
func promptOutput(cmd *cobra.Command) io.Writer {
	return cmd.ErrOrStderr()
}

// serverSession builds a session and initializes it against the service.
// The caller closes it.
func serverSession(cmd *cobra.Command, info models.AppBuildInfo) (*tabpfn.Session, error) {
	sess, err := newSession(cmd, info)
	if err != nil {
		return nil, err
	}
	if err := sess.Init(cmd.Context(), true); err != nil {
		sess.Close()
		return nil, err
	}
	return sess, nil
}

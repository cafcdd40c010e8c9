package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/config"
	"github.com/katalvlaran/socialgraph/logging"
	"github.com/katalvlaran/socialgraph/social"
)

// newRootCmd assembles the command tree. Each invocation builds a fresh
// network, so tests can run several commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "socialnet",
		Short:        "A small in-memory social network",
		Long:         "socialnet manages profiles and friendships and suggests friends-of-friends.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			log := logging.New(cmd.ErrOrStderr(), logging.Options{
				Level: cfg.SlogLevel(),
				JSON:  cfg.Log.JSON,
			})
			a.cfg = cfg
			a.log = log
			a.net = social.New(social.WithLogger(log))
			a.out = cmd.OutOrStdout()
			log.Debug("configuration loaded", "file", cfg.File, "level", cfg.Log.Level, "suggest_limit", cfg.Suggest.Limit)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runMenu(cmd.Context(), cmd.InOrStdin())
		},
	}
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Run the interactive text menu",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runMenu(cmd.Context(), cmd.InOrStdin())
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Run the scripted demonstration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runDemo(cmd.Context())
			},
		},
	)

	return root
}

package cmd

import (
	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics of the latest WWDC event",
	Args:  cobra.NoArgs,
	RunE:  topicsRun,
}

func topicsRun(cmd *cobra.Command, args []string) error {
	cat, err := newProvider().Catalog(cmd.Context())
	if err != nil {
		return err
	}

	r := newRenderer(cmd.OutOrStdout())
	if flagJSON {
		return r.json(topicsDict(cat.Event(), cat.Topics()))
	}
	r.topics(cat.Event(), cat.Topics())
	return nil
}

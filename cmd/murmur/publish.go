package main

import (
	"github.com/spf13/cobra"
)

func publishCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish-check <session-id> [card-id...]",
		Short: "Evaluate the publish gate for a session and its cards",
		Long: `publish-check runs the read-only publish gate: the session must be public,
every supplied card must be public, and the vault must be unlocked if a
password is set (otherwise private status cannot be verified). Nothing is
mutated; run it as often as you like.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			privacyStore, _ := newPrivacyStore(store)

			readiness, err := privacyStore.CheckPublishReady(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}

			if readiness.Ready {
				cmd.Println("READY: no blockers")
				return nil
			}

			cmd.Println("BLOCKED:")
			for _, blocker := range readiness.Blockers {
				cmd.Printf("  - %s\n", blocker)
			}
			return nil
		},
	}
}

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/murmurapp/murmur/internal/review"
	"github.com/murmurapp/murmur/internal/tui"
)

func reviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <session-id> [file]",
		Short: "Review a transcript sentence-by-sentence and commit decisions",
		Long: `Review splits a transcript into sentences, shows detected sensitive spans
for each, and records your public/private decisions. On commit, decided
sentences become content cards; sentences left pending are dropped —
unreviewed content is never assumed safe to keep.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTextArg(args, 1)
			if err != nil {
				return err
			}

			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			privacyStore, _ := newPrivacyStore(store)
			detector := newDetector()
			sessionID := args[0]

			session, aborted, err := tui.Run(func() *review.Session {
				return review.NewSession(sessionID, text, detector, slog.Default())
			})
			if err != nil {
				return err
			}
			if aborted {
				cmd.Println("Review aborted, nothing committed")
				return nil
			}

			materializer := review.NewCardMaterializer(store, privacyStore)
			result, err := session.Commit(cmd.Context(), materializer)

			cmd.Printf("Committed %d public, %d private; %d pending dropped\n",
				result.Public, result.Private, result.Skipped)
			if err != nil {
				// Partial progress is preserved; the failure count must
				// still reach the user.
				cmd.Printf("WARNING: %d decisions failed to commit\n", result.Failed)
				return err
			}
			return nil
		},
	}
}

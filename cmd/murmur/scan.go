package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func scanCmd() *cobra.Command {
	var scanAll bool

	cmd := &cobra.Command{
		Use:   "scan [session-id] [file]",
		Short: "Detect sensitive spans in a session transcript",
		Long: `Scan classifies a transcript into privacy tags using the fixed pattern
table, the topic dictionaries, and (when configured) the external
classifier. Scanning is idempotent: a session that already has tags is
never re-scanned, so review decisions survive.

With --all, every stored document is scanned instead.`,
		Args: cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			privacyStore, _ := newPrivacyStore(store)
			ctx := cmd.Context()

			if scanAll {
				ids, err := store.ListDocumentIDs(ctx)
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					cmd.Println("No documents stored")
					return nil
				}

				bar := progressbar.NewOptions(len(ids),
					progressbar.OptionSetWriter(cmd.OutOrStderr()),
					progressbar.OptionShowCount(),
					progressbar.OptionSetWidth(40),
					progressbar.OptionSetDescription("Scanning documents..."),
				)

				var tagged int
				for _, id := range ids {
					content, err := store.GetDocument(ctx, id)
					if err != nil {
						return err
					}
					tags, err := privacyStore.ScanSession(ctx, id, content)
					if err != nil {
						return err
					}
					tagged += len(tags)
					_ = bar.Add(1)
				}
				cmd.Printf("\nScanned %d documents, %d tags total\n", len(ids), tagged)
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("session-id required unless --all is set")
			}

			text, err := readTextArg(args, 1)
			if err != nil {
				return err
			}

			tags, err := privacyStore.ScanSession(ctx, args[0], text)
			if err != nil {
				return err
			}

			if len(tags) == 0 {
				cmd.Println("No sensitive content detected")
				return nil
			}
			for _, tag := range tags {
				cmd.Printf("%-12s %-20s [%d:%d] %s\n",
					tag.ID[:8], tag.TagType, tag.Start, tag.End, tag.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&scanAll, "all", false, "scan every stored document")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/murmurapp/murmur/internal/common"
	"github.com/murmurapp/murmur/internal/model"
)

func saveCmd() *cobra.Command {
	var versionType string

	cmd := &cobra.Command{
		Use:   "save <document-id> [file]",
		Short: "Append an edit to a document's version ledger",
		Long: `Save the full text of a document as a new immutable version. With no file
argument the text is read from stdin. History is never overwritten; a failed
save is always reported because edits must not be lost silently.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readTextArg(args, 1)
			if err != nil {
				return err
			}

			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			number, err := store.SaveVersion(cmd.Context(), args[0], content, model.VersionType(versionType))
			if err != nil {
				return common.NewUserError("failed to save version (your edit was NOT stored)", err)
			}

			cmd.Printf("Saved %s version %d\n", args[0], number)
			return nil
		},
	}

	cmd.Flags().StringVar(&versionType, "type", string(model.VersionEdited), "version type (raw, edited)")
	return cmd
}

package main

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/murmurapp/murmur/internal/common"
)

func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <document-id>",
		Short: "List every stored version of a document, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			versions, err := store.GetVersions(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(versions) == 0 {
				cmd.Printf("No versions stored for %s\n", args[0])
				return nil
			}

			for _, v := range versions {
				cmd.Printf("v%-4d %-9s %s  (%d bytes)\n",
					v.Number, v.Type, v.CreatedAt.Format("2006-01-02 15:04:05"), len(v.Content))
			}
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <document-id> <version-number>",
		Short: "Restore an old version by appending it as a new one",
		Long: `Restore brings back the content of an earlier version. History is never
rewritten: the restore appends a new version of type "restored" and updates
the document's current content.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[1])
			if err != nil {
				return common.NewUserError("version number must be an integer", err)
			}

			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			restored, err := store.RestoreVersion(cmd.Context(), args[0], number)
			if err != nil {
				if errors.Is(err, common.ErrVersionNotFound) {
					return common.NewUserError("version not found", err)
				}
				return err
			}

			cmd.Printf("Restored %s v%d as v%d\n", args[0], number, restored.Number)
			return nil
		},
	}
}

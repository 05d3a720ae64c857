package main

import (
	"github.com/spf13/cobra"

	"github.com/murmurapp/murmur/internal/model"
)

func tagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect and review privacy tags",
	}
	cmd.AddCommand(tagsListCmd())
	cmd.AddCommand(tagsReviewCmd())
	return cmd
}

func tagsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <session-id>",
		Short: "List privacy tags for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			tags, err := store.GetTagsBySession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(tags) == 0 {
				cmd.Println("No tags for this session")
				return nil
			}

			for _, tag := range tags {
				cmd.Printf("%s  %-20s [%d:%d] %s\n",
					tag.ID, tag.TagType, tag.Start, tag.End, tag.Status)
			}
			return nil
		},
	}
}

func tagsReviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "review <tag-id> <accepted|dismissed>",
		Short: "Record a review decision for one tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			privacyStore, _ := newPrivacyStore(store)
			if err := privacyStore.ReviewTag(cmd.Context(), args[0], model.TagStatus(args[1])); err != nil {
				return err
			}

			cmd.Printf("Tag %s marked %s\n", args[0], args[1])
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage the privacy vault password and lock state",
	}
	cmd.AddCommand(vaultSetPasswordCmd())
	cmd.AddCommand(vaultUnlockCmd())
	cmd.AddCommand(vaultLockCmd())
	cmd.AddCommand(vaultStatusCmd())
	return cmd
}

// promptPassword reads a password without echoing it.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func vaultSetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-password",
		Short: "Set or replace the vault password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := promptPassword("New vault password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password: ")
			if err != nil {
				return err
			}
			if password != confirm {
				return fmt.Errorf("passwords do not match")
			}

			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, v := newPrivacyStore(store)
			if err := v.SetPassword(cmd.Context(), password); err != nil {
				return err
			}

			cmd.Println("Vault password set; vault is unlocked")
			return nil
		},
	}
}

func vaultUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Unlock the vault for this process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, v := newPrivacyStore(store)

			hasPassword, err := v.HasPassword(cmd.Context())
			if err != nil {
				return err
			}
			if !hasPassword {
				cmd.Println("No vault password set; vault is always unlocked")
				return nil
			}

			password, err := promptPassword("Vault password: ")
			if err != nil {
				return err
			}

			ok, err := v.Unlock(cmd.Context(), password)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("incorrect password")
			}

			cmd.Println("Vault unlocked")
			return nil
		},
	}
}

func vaultLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock",
		Short: "Lock the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, v := newPrivacyStore(store)
			v.Lock()
			cmd.Println("Vault locked")
			return nil
		},
	}
}

func vaultStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show vault state and private entity count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			_, v := newPrivacyStore(store)
			ctx := cmd.Context()

			hasPassword, err := v.HasPassword(ctx)
			if err != nil {
				return err
			}
			unlocked, err := v.IsUnlocked(ctx)
			if err != nil {
				return err
			}
			private, err := store.ListPrivateEntities(ctx)
			if err != nil {
				return err
			}

			cmd.Printf("Password set:     %v\n", hasPassword)
			cmd.Printf("Unlocked:         %v\n", unlocked)
			cmd.Printf("Private entities: %d\n", len(private))
			return nil
		},
	}
}

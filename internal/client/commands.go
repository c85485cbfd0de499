// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/legacy-vault/internal/service"
	"github.com/MKhiriev/legacy-vault/models"
)

// versionTimeout bounds the validator version lookup.
const versionTimeout = 5 * time.Second

var (
	ErrResetNotConfirmed = errors.New("reset not confirmed, pass --yes")
	ErrInvalidIndex      = errors.New("invalid asset number")
)

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "vault",
		Short: "Digital legacy vault",
		Long: `Keeps up to 10 encrypted asset records (crypto wallets, domains, other
accounts) on this device. Every command validates the session string with the
validator and asks for a biometric confirmation before the vault is opened.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&a.opts.ConfigPath, "config", "c", "", "path to the JSON configuration file")
	root.PersistentFlags().StringVar(&a.opts.InitData, "init-data", "", "host session string (default $INIT_DATA)")

	root.AddCommand(
		a.newStatusCommand(),
		a.newListCommand(),
		a.newAddCommand(),
		a.newEditCommand(),
		a.newDeleteCommand(),
		a.newResetCommand(),
		a.newVersionCommand(),
	)

	return root
}

// unlock opens the session gate and loads the vault.
func (a *App) unlock(cmd *cobra.Command) (service.ClientVaultService, error) {
	ctx := cmd.Context()

	rt, err := a.loadRuntime(ctx)
	if err != nil {
		return nil, err
	}

	if err = rt.Vault.Unlock(ctx); err != nil {
		rt.Logger.Err(err).Str("func", "App.unlock").Msg("vault not unlocked")
		return nil, err
	}

	if loadErr := rt.Vault.State().LoadErr; loadErr != nil {
		fmt.Fprintln(cmd.OutOrStdout(), warningText.Sprint("Stored assets could not be read, the vault was opened empty."))
	}

	return rt.Vault, nil
}

func (a *App) newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the vault status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vault, err := a.unlock(cmd)
			if err != nil {
				return err
			}

			state := vault.State()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vault:   %s\n", successText.Sprint("unlocked"))
			fmt.Fprintf(out, "Assets:  %d/%d\n", len(state.Assets), models.MaxAssets)
			fmt.Fprintf(out, "Storage: %s\n", a.runtime.StorageMode)
			return nil
		},
	}
}

func (a *App) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the stored assets",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vault, err := a.unlock(cmd)
			if err != nil {
				return err
			}

			printAssets(cmd, vault.Assets())
			return nil
		},
	}
}

func printAssets(cmd *cobra.Command, assets models.AssetList) {
	out := cmd.OutOrStdout()
	if len(assets) == 0 {
		fmt.Fprintln(out, mutedText.Sprint("No assets yet."))
		return
	}

	for i, asset := range assets {
		fmt.Fprintf(out, "%2d. %s %s\n", i+1, infoText.Sprintf("[%s]", typeLabel(asset.Type)), asset.Details)
		if asset.Notes != "" {
			fmt.Fprintf(out, "    %s\n", mutedText.Sprint(asset.Notes))
		}
	}
}

func typeLabel(t models.AssetType) string {
	if t == models.AssetTypeNone {
		return "unspecified"
	}
	return string(t)
}

// recordFlags are the asset fields shared by add and edit.
type recordFlags struct {
	assetType string
	details   string
	notes     string
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.assetType, "type", "t", "", "asset type: crypto, domain or other")
	cmd.Flags().StringVarP(&f.details, "details", "d", "", "identifying details, e.g. a wallet address")
	cmd.Flags().StringVarP(&f.notes, "notes", "n", "", "free-form notes")
}

// apply overrides base with the flags the user actually set.
func (f *recordFlags) apply(cmd *cobra.Command, base models.AssetRecord) models.AssetRecord {
	if cmd.Flags().Changed("type") {
		base.Type = models.AssetType(f.assetType)
	}
	if cmd.Flags().Changed("details") {
		base.Details = f.details
	}
	if cmd.Flags().Changed("notes") {
		base.Notes = f.notes
	}
	return base
}

func (a *App) newAddCommand() *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an asset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vault, err := a.unlock(cmd)
			if err != nil {
				return err
			}

			m, err := vault.Add(cmd.Context(), flags.apply(cmd, models.AssetRecord{}))
			if err != nil {
				return err
			}
			return m.Wait(cmd.Context())
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) newEditCommand() *cobra.Command {
	var flags recordFlags

	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Edit an asset; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vault, err := a.unlock(cmd)
			if err != nil {
				return err
			}

			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			if err = vault.BeginEdit(index); err != nil {
				return err
			}

			m, err := vault.SaveEdit(cmd.Context(), flags.apply(cmd, vault.Assets()[index]))
			if err != nil {
				vault.CancelEdit()
				return err
			}
			return m.Wait(cmd.Context())
		},
	}
	flags.register(cmd)

	return cmd
}

func (a *App) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <number>",
		Aliases: []string{"rm"},
		Short:   "Delete an asset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vault, err := a.unlock(cmd)
			if err != nil {
				return err
			}

			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			m, err := vault.Delete(cmd.Context(), index)
			if err != nil {
				return err
			}
			return m.Wait(cmd.Context())
		},
	}
}

// parseIndex converts a 1-based asset number into a list index.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, arg)
	}
	return n - 1, nil
}

func (a *App) newResetCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every stored asset and the device key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return ErrResetNotConfirmed
			}

			vault, err := a.unlock(cmd)
			if err != nil {
				return err
			}
			return vault.Reset(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm the reset")

	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information and the validator version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, line := range a.build.Lines() {
				fmt.Fprintln(out, line)
			}

			rt, err := a.loadRuntime(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "App version: %s\n", rt.AppVersion)

			ctx, cancel := context.WithTimeout(cmd.Context(), versionTimeout)
			defer cancel()

			version, err := rt.Adapter.Version(ctx)
			if err != nil {
				rt.Logger.Err(err).Str("func", "versionCommand").Msg("validator version unavailable")
				fmt.Fprintf(out, "Validator version: %s\n", warningText.Sprint("unreachable"))
				return nil
			}
			fmt.Fprintf(out, "Validator version: %s\n", version)
			return nil
		},
	}
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/frota/internal/screens"
	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

type removeOptions struct {
	force bool
}

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <vehicle-id>",
		Short: "Remove a vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, flags *rootFlags, rawID string, opts *removeOptions) error {
	id, err := parseVehicleID("remove", rawID)
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "command.remove")
	record, outcome := app.Edit.Load(ctx, id)
	if !outcome.OK() {
		return apiCommandError("remove", fmt.Sprintf("looking up vehicle %q", rawID), outcome.Err)
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, record)
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	outcome = app.Edit.Delete(ctx, id)
	if !outcome.OK() {
		log.Error(ctx, "remove command failed", "id", rawID, "error", outcome.Err)
		return apiCommandError("remove", screens.MsgDeleteFailed, outcome.Err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%s)\n", outcome.Message, record.Placa)
	return nil
}

func confirmRemoval(cmd *cobra.Command, v vehicle.Vehicle) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s (%s) [y/N]: ", screens.MsgConfirmDelete, v.Marca, v.Modelo, v.Placa)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "sim", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
	"github.com/alexisbeaulieu97/frota/pkg/diff"
)

func newEditCmd(flags *rootFlags) *cobra.Command {
	opts := &vehicleFlags{}

	cmd := &cobra.Command{
		Use:   "edit <vehicle-id>",
		Short: "Change the fields of a vehicle",
		Long:  "Change the fields of a vehicle. Fields without a flag keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, flags, args[0], opts)
		},
	}

	opts.register(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, flags *rootFlags, rawID string, opts *vehicleFlags) error {
	id, err := parseVehicleID("edit", rawID)
	if err != nil {
		return err
	}
	if !opts.changed(cmd) {
		return newCommandError("edit", fmt.Sprintf("updating vehicle %q", rawID), errors.New("no field to change"), "Pass at least one of --placa, --marca, --modelo, --ano or --cor.")
	}

	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "command.edit")
	current, outcome := app.Edit.Load(ctx, id)
	if !outcome.OK() {
		return apiCommandError("edit", fmt.Sprintf("loading vehicle %q", rawID), outcome.Err)
	}

	updated, outcome := app.Edit.Save(ctx, id, opts.apply(cmd, current.Fields()))
	if !outcome.OK() {
		log.Error(ctx, "edit command failed", "id", rawID, "error", outcome.Err)
		return apiCommandError("edit", fmt.Sprintf("updating vehicle %q", rawID), outcome.Err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", outcome.Message)

	label := "vehicle " + id.String()
	changes := diff.Unified(formatVehicle(current), formatVehicle(updated), label, label+" (updated)")
	if changes == "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No field changed.")
		return nil
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s", changes)
	return nil
}

func formatVehicle(v vehicle.Vehicle) string {
	return fmt.Sprintf("placa: %s\nmarca: %s\nmodelo: %s\nano: %s\ncor: %s\n", v.Placa, v.Marca, v.Modelo, v.Ano, v.Cor)
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

type showOptions struct {
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <vehicle-id>",
		Short: "Show one vehicle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output vehicle details as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, rawID string, opts *showOptions) error {
	id, err := parseVehicleID("show", rawID)
	if err != nil {
		return err
	}

	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, _ := app.CommandContext(cmd, "command.show")
	record, outcome := app.Edit.Load(ctx, id)
	if !outcome.OK() {
		return apiCommandError("show", fmt.Sprintf("loading vehicle %q", rawID), outcome.Err)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(record)
	}
	return renderVehicle(cmd, record)
}

func renderVehicle(cmd *cobra.Command, v vehicle.Vehicle) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vehicle: %s\n", valueOrFallback(v.ID.String(), "-"))
	fmt.Fprintf(out, "Placa:   %s\n", v.Placa)
	fmt.Fprintf(out, "Marca:   %s\n", v.Marca)
	fmt.Fprintf(out, "Modelo:  %s\n", v.Modelo)
	fmt.Fprintf(out, "Ano:     %s\n", v.Ano)
	fmt.Fprintf(out, "Cor:     %s\n", v.Cor)
	return nil
}

func parseVehicleID(operation, raw string) (vehicle.ID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", newCommandError(operation, "validating vehicle ID", errors.New("vehicle ID cannot be empty"), "Run 'frota list' to find the vehicle ID.")
	}
	return vehicle.ID(trimmed), nil
}

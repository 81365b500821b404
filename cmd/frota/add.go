package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

type vehicleFlags struct {
	placa  string
	marca  string
	modelo string
	ano    string
	cor    string
}

func (f *vehicleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.placa, "placa", "", "Plate (ABC1D23, ABC1234 or ABC-1234)")
	cmd.Flags().StringVar(&f.marca, "marca", "", "Brand")
	cmd.Flags().StringVar(&f.modelo, "modelo", "", "Model")
	cmd.Flags().StringVar(&f.ano, "ano", "", "Four-digit year")
	cmd.Flags().StringVar(&f.cor, "cor", "", "Colour")
}

var vehicleFlagNames = []string{"placa", "marca", "modelo", "ano", "cor"}

func (f *vehicleFlags) changed(cmd *cobra.Command) bool {
	for _, name := range vehicleFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply copies every flag the user set onto v.
func (f *vehicleFlags) apply(cmd *cobra.Command, v vehicle.Vehicle) vehicle.Vehicle {
	set := func(name string, dst *string, value string) {
		if cmd.Flags().Changed(name) {
			*dst = value
		}
	}
	set("placa", &v.Placa, f.placa)
	set("marca", &v.Marca, vehicle.CanonicalBrand(f.marca))
	set("modelo", &v.Modelo, f.modelo)
	set("ano", &v.Ano, f.ano)
	set("cor", &v.Cor, f.cor)
	return v
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	opts := &vehicleFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new vehicle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, flags, opts)
		},
	}

	opts.register(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, flags *rootFlags, opts *vehicleFlags) error {
	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "command.add")
	draft := opts.apply(cmd, vehicle.Vehicle{})

	created, outcome := app.Create.Submit(ctx, draft)
	if !outcome.OK() {
		log.Error(ctx, "add command failed", "error", outcome.Err)
		return apiCommandError("add", "registering vehicle", outcome.Err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", outcome.Message)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  ID:    %s\n", created.ID)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Placa: %s\n", created.Placa)
	return nil
}

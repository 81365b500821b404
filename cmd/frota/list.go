package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/frota/internal/vehicle"
)

type listOptions struct {
	search     string
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered vehicles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Only show vehicles whose brand, model, plate, colour or year contains this text")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, log := app.CommandContext(cmd, "command.list")
	if err := app.List.Focus(ctx); err != nil {
		return apiCommandError("list", "loading vehicles from "+app.Client.BaseURL(), err)
	}

	vehicles := app.List.Visible(opts.search)
	log.Debug(ctx, "vehicles listed", "count", len(vehicles), "search", opts.search)

	if opts.jsonOutput {
		return renderListJSON(cmd, vehicles)
	}
	if len(vehicles) == 0 {
		return renderEmptyList(cmd, opts.search)
	}
	return renderListTable(cmd, vehicles)
}

func renderEmptyList(cmd *cobra.Command, search string) error {
	if search != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "No vehicles match %q.\n", search)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "No vehicles registered yet.")
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'frota add --placa ... --marca ... --modelo ... --ano ... --cor ...' to add your first vehicle.")
	return nil
}

func renderListTable(cmd *cobra.Command, vehicles []vehicle.Vehicle) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tPLACA\tMARCA\tMODELO\tANO\tCOR")
	for _, v := range vehicles {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
			valueOrFallback(v.ID.String(), "-"),
			v.Placa,
			v.Marca,
			v.Modelo,
			v.Ano,
			v.Cor,
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Version  string            `json:"version"`
	Count    int               `json:"count"`
	Vehicles []vehicle.Vehicle `json:"vehicles"`
}

func renderListJSON(cmd *cobra.Command, vehicles []vehicle.Vehicle) error {
	payload := listJSONPayload{
		Version:  "1.0",
		Count:    len(vehicles),
		Vehicles: vehicles,
	}
	if payload.Vehicles == nil {
		payload.Vehicles = []vehicle.Vehicle{}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

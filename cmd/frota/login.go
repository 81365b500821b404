package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/frota/internal/validation"
)

type loginOptions struct {
	email string
	senha string
}

func newLoginCmd(flags *rootFlags) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Check login credentials",
		Long:  "Check that an e-mail and password are well formed. No request is sent to the API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "E-mail address")
	cmd.Flags().StringVar(&opts.senha, "senha", "", "Password")

	return cmd
}

func runLogin(cmd *cobra.Command, flags *rootFlags, opts *loginOptions) error {
	app, err := newAppContext(cmd, flags, appOptions{})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, _ := app.CommandContext(cmd, "command.login")
	outcome := app.Login.Submit(ctx, validation.Credentials{Email: opts.email, Senha: opts.senha})
	if !outcome.OK() {
		return newCommandError("login", "checking credentials", errors.New(outcome.Message), "Provide both --email and --senha with a valid e-mail address.")
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Logged in as %s\n", opts.email)
	return nil
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jrsteele09/go-blog-client/auth"
	"github.com/jrsteele09/go-blog-client/users"
	"github.com/spf13/cobra"
)

// readSecret returns value, or reads one line from the command's stdin when value is empty.
func readSecret(cmd *cobra.Command, prompt, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(prompt, ": "), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (a *app) loginCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and store the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd, "Password: ", password)
			if err != nil {
				return err
			}
			return a.renderResult(cmd.OutOrStdout(), a.client.Auth().Login(cmd.Context(), args[0], pw))
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (read from stdin when omitted)")
	return cmd
}

func (a *app) signupCmd() *cobra.Command {
	var password, confirm string
	cmd := &cobra.Command{
		Use:   "signup <username> <email>",
		Short: "Create an account. A verification link is emailed; signing up does not log you in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" || confirm == "" {
				return errors.New("--password and --confirm are required")
			}
			if err := auth.ValidatePasswordConfirmation(password, confirm); err != nil {
				return err
			}
			return a.renderResult(cmd.OutOrStdout(), a.client.Auth().Signup(cmd.Context(), args[0], args[1], password))
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Password again")
	return cmd
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.client.Auth().Logout()
			return a.renderResult(cmd.OutOrStdout(), auth.Result{Success: true, Message: "Logged out"})
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Confirm an email address with the emailed token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderResult(cmd.OutOrStdout(), a.client.Auth().VerifyEmail(cmd.Context(), args[0]))
		},
	}
}

func (a *app) resetRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-request <email>",
		Short: "Email a password reset link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderResult(cmd.OutOrStdout(), a.client.Auth().ResetPasswordRequest(cmd.Context(), args[0]))
		},
	}
}

func (a *app) resetCmd() *cobra.Command {
	var password, confirm string
	cmd := &cobra.Command{
		Use:   "reset <token>",
		Short: "Set a new password with the emailed reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" || confirm == "" {
				return errors.New("--password and --confirm are required")
			}
			if err := auth.ValidatePasswordConfirmation(password, confirm); err != nil {
				return err
			}
			return a.renderResult(cmd.OutOrStdout(), a.client.Auth().ResetPassword(cmd.Context(), args[0], password))
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "New password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "New password again")
	return cmd
}

func (a *app) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ready(cmd); err != nil {
				return err
			}
			user := a.client.Auth().CurrentUser()
			if user == nil {
				return errors.New("not logged in")
			}
			return a.render(cmd.OutOrStdout(), user, func(w io.Writer) { printUser(w, user) })
		},
	}
}

func printUser(w io.Writer, u *users.User) {
	verified := "unverified"
	if u.Verified {
		verified = "verified"
	}
	fmt.Fprintf(w, "%s (#%d) %s, %s\n", u.Username, u.ID, u.Email, verified)
}

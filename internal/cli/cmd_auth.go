package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) loginCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.cfg.RequireIdentity(); err != nil {
				return err
			}

			addr, password, err := c.credentials(email, false)
			if err != nil {
				return err
			}

			s, err := c.rt.Sessions.Login(cmd.Context(), addr, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", s.Identity().Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")

	return cmd
}

func (c *CLI) registerCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a vault account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.cfg.RequireIdentity(); err != nil {
				return err
			}

			addr, password, err := c.credentials(email, true)
			if err != nil {
				return err
			}

			s, err := c.rt.Sessions.Register(cmd.Context(), addr, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account created, signed in as %s\n", s.Identity().Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")

	return cmd
}

func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget cached items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.rt.Sessions.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func (c *CLI) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "whoami",
		Short:       "Show the signed-in account",
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.rt.Sessions.Current()
			if err != nil {
				return err
			}
			identity := s.Identity()

			w := cmd.OutOrStdout()
			printField(w, "Email", orDash(identity.Email))
			printField(w, "Name", orDash(identity.DisplayName))
			printField(w, "UID", orDash(identity.UID))

			expires := "-"
			if !identity.ExpiresAt.IsZero() {
				expires = identity.ExpiresAt.Local().Format(time.DateTime)
			}
			printField(w, "Token until", expires)
			return nil
		},
	}
}

// credentials reads email (unless given) and password. With confirm the
// password is asked twice.
func (c *CLI) credentials(email string, confirmPassword bool) (string, string, error) {
	var err error
	if strings.TrimSpace(email) == "" {
		if email, err = c.prompt.Line("Email: "); err != nil {
			return "", "", err
		}
	}

	password, err := c.prompt.Secret("Password: ")
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", ErrEmptySecret
	}

	if confirmPassword {
		again, err := c.prompt.Secret("Repeat password: ")
		if err != nil {
			return "", "", err
		}
		if again != password {
			return "", "", errors.New("passwords do not match")
		}
	}

	return strings.TrimSpace(email), password, nil
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/amnplus-client/models"
)

func (c *CLI) passwordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "passwords",
		Aliases: []string{"password", "pw"},
		Short:   "Manage stored passwords",
	}

	cmd.AddCommand(
		c.passwordsListCommand(),
		c.passwordsShowCommand(),
		c.passwordsAddCommand(),
		c.passwordsEditCommand(),
		c.passwordsDeleteCommand(),
		c.passwordsCopyCommand(),
	)
	return cmd
}

func (c *CLI) passwordsListCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "List passwords",
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.rt.Passwords.List(cmd.Context())
			if err != nil {
				return err
			}
			items := c.rt.Passwords.Search(result.Items, search)

			printListNotes(cmd.ErrOrStderr(), result.Stale, result.Failed)

			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("no passwords"))
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, p := range items {
				rows = append(rows, []string{p.ID, p.Title, p.Username, orDash(p.URL), formatTime(p.CreatedAt)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Title", "Username", "URL", "Created"}, rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title or username")

	return cmd
}

func (c *CLI) passwordsShowCommand() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:         "show ID",
		Short:       "Show one password",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.rt.Passwords.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			secret := maskedSecret
			if reveal {
				secret = p.Password
			}

			w := cmd.OutOrStdout()
			printField(w, "ID", p.ID)
			printField(w, "Title", p.Title)
			printField(w, "Username", p.Username)
			printField(w, "Password", secret)
			printField(w, "URL", orDash(p.URL))
			printField(w, "Created", formatTime(p.CreatedAt))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "print the password in clear text")

	return cmd
}

type passwordFlags struct {
	title    string
	username string
	url      string
}

func (f *passwordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "title")
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "username")
	cmd.Flags().StringVar(&f.url, "url", "", "site URL")
}

func (c *CLI) passwordsAddCommand() *cobra.Command {
	var flags passwordFlags

	cmd := &cobra.Command{
		Use:         "add",
		Short:       "Store a new password",
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				plain = models.PlainPassword{Title: flags.title, Username: flags.username, URL: flags.url}
				err   error
			)

			if plain.Title == "" {
				if plain.Title, err = c.prompt.Line("Title: "); err != nil {
					return err
				}
			}
			if plain.Username == "" {
				if plain.Username, err = c.prompt.Line("Username: "); err != nil {
					return err
				}
			}
			if plain.Password, err = c.prompt.Secret("Password: "); err != nil {
				return err
			}

			if err = c.rt.Passwords.Add(cmd.Context(), plain); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved password %q\n", plain.Title)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) passwordsEditCommand() *cobra.Command {
	var flags passwordFlags

	cmd := &cobra.Command{
		Use:         "edit ID",
		Short:       "Change a stored password",
		Long:        "Change a stored password. Fields not given as flags keep their value; an empty password answer keeps the current password.",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.rt.Passwords.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			plain := models.PlainPassword{
				Title:    current.Title,
				Username: current.Username,
				Password: current.Password,
				URL:      current.URL,
			}
			if cmd.Flags().Changed("title") {
				plain.Title = flags.title
			}
			if cmd.Flags().Changed("username") {
				plain.Username = flags.username
			}
			if cmd.Flags().Changed("url") {
				plain.URL = flags.url
			}

			secret, err := c.prompt.Secret("New password (empty keeps current): ")
			if err != nil {
				return err
			}
			if secret != "" {
				plain.Password = secret
			}

			if err = c.rt.Passwords.Edit(cmd.Context(), current.ID, plain); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated password %q\n", plain.Title)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) passwordsDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:         "delete ID",
		Aliases:     []string{"rm"},
		Short:       "Delete a stored password",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !yes {
				ok, err := confirm(c.prompt, fmt.Sprintf("Delete password %s?", id))
				if err != nil {
					return err
				}
				if !ok {
					return ErrAborted
				}
			}

			if err := c.rt.Passwords.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted password %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func (c *CLI) passwordsCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "copy ID",
		Aliases:     []string{"cp"},
		Short:       "Copy a password to the clipboard",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.rt.Passwords.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err = c.clipboard(p.Password); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Copied password of %q to the clipboard\n", p.Title)
			return nil
		},
	}
}

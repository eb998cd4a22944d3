package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/amnplus-client/models"
)

func (c *CLI) apiKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apikeys",
		Aliases: []string{"apikey", "keys"},
		Short:   "Manage stored API keys",
	}

	cmd.AddCommand(
		c.apiKeysListCommand(),
		c.apiKeysShowCommand(),
		c.apiKeysAddCommand(),
		c.apiKeysEditCommand(),
		c.apiKeysDeleteCommand(),
		c.apiKeysCopyCommand(),
	)
	return cmd
}

func (c *CLI) apiKeysListCommand() *cobra.Command {
	var (
		search string
		probe  bool
	)

	cmd := &cobra.Command{
		Use:         "list",
		Aliases:     []string{"ls"},
		Short:       "List API keys",
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.rt.APIKeys.List(cmd.Context(), probe)
			if err != nil {
				return err
			}
			items := c.rt.APIKeys.Search(result.Items, search)

			printListNotes(cmd.ErrOrStderr(), result.Stale, result.Failed)

			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), helpStyle.Render("no api keys"))
				return nil
			}

			var active int
			rows := make([][]string, 0, len(items))
			for _, k := range items {
				if k.Status == models.APIKeyStatusActive {
					active++
				}
				rows = append(rows, []string{k.ID, k.Title, orDash(k.Description), orDash(k.URL), renderStatus(k.Status), formatTime(k.CreatedAt)})
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, renderTable([]string{"ID", "Title", "Description", "URL", "Status", "Created"}, rows))
			if probe {
				fmt.Fprintf(w, "%d of %d active\n", active, len(items))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by title or description")
	cmd.Flags().BoolVarP(&probe, "probe", "p", false, "check every key against its URL")

	return cmd
}

func (c *CLI) apiKeysShowCommand() *cobra.Command {
	var (
		reveal bool
		probe  bool
	)

	cmd := &cobra.Command{
		Use:         "show ID",
		Short:       "Show one API key",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := c.rt.APIKeys.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if probe {
				k.Status = c.rt.APIKeys.Probe(cmd.Context(), k)
			}

			secret := maskedSecret
			if reveal {
				secret = k.Key
			}

			w := cmd.OutOrStdout()
			printField(w, "ID", k.ID)
			printField(w, "Title", k.Title)
			printField(w, "Key", secret)
			printField(w, "Description", orDash(k.Description))
			printField(w, "URL", orDash(k.URL))
			printField(w, "Status", renderStatus(k.Status))
			printField(w, "Created", formatTime(k.CreatedAt))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "print the key in clear text")
	cmd.Flags().BoolVarP(&probe, "probe", "p", false, "check the key against its URL")

	return cmd
}

type apiKeyFlags struct {
	title       string
	description string
	url         string
}

func (f *apiKeyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "title")
	cmd.Flags().StringVarP(&f.description, "description", "D", "", "description")
	cmd.Flags().StringVar(&f.url, "url", "", "endpoint used to probe the key")
}

func (c *CLI) apiKeysAddCommand() *cobra.Command {
	var flags apiKeyFlags

	cmd := &cobra.Command{
		Use:         "add",
		Short:       "Store a new API key",
		Args:        cobra.NoArgs,
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				plain = models.PlainAPIKey{Title: flags.title, Description: flags.description, URL: flags.url}
				err   error
			)

			if plain.Title == "" {
				if plain.Title, err = c.prompt.Line("Title: "); err != nil {
					return err
				}
			}
			if plain.Key, err = c.prompt.Secret("Key: "); err != nil {
				return err
			}

			if err = c.rt.APIKeys.Add(cmd.Context(), plain); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved api key %q\n", plain.Title)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) apiKeysEditCommand() *cobra.Command {
	var flags apiKeyFlags

	cmd := &cobra.Command{
		Use:         "edit ID",
		Short:       "Change a stored API key",
		Long:        "Change a stored API key. Fields not given as flags keep their value; an empty key answer keeps the current key.",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := c.rt.APIKeys.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			plain := models.PlainAPIKey{
				Title:       current.Title,
				Key:         current.Key,
				Description: current.Description,
				URL:         current.URL,
			}
			if cmd.Flags().Changed("title") {
				plain.Title = flags.title
			}
			if cmd.Flags().Changed("description") {
				plain.Description = flags.description
			}
			if cmd.Flags().Changed("url") {
				plain.URL = flags.url
			}

			secret, err := c.prompt.Secret("New key (empty keeps current): ")
			if err != nil {
				return err
			}
			if secret != "" {
				plain.Key = secret
			}

			if err = c.rt.APIKeys.Edit(cmd.Context(), current.ID, plain); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated api key %q\n", plain.Title)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) apiKeysDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:         "delete ID",
		Aliases:     []string{"rm"},
		Short:       "Delete a stored API key",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if !yes {
				ok, err := confirm(c.prompt, fmt.Sprintf("Delete api key %s?", id))
				if err != nil {
					return err
				}
				if !ok {
					return ErrAborted
				}
			}

			if err := c.rt.APIKeys.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted api key %s\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func (c *CLI) apiKeysCopyCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "copy ID",
		Aliases:     []string{"cp"},
		Short:       "Copy an API key to the clipboard",
		Args:        cobra.ExactArgs(1),
		Annotations: needsSession(),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := c.rt.APIKeys.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if err = c.clipboard(k.Key); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Copied api key %q to the clipboard\n", k.Title)
			return nil
		},
	}
}

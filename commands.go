package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solware/solware-id/internal/directory"
	"github.com/solware/solware-id/internal/domain"
	"github.com/solware/solware-id/internal/service"
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Show which card a host and path resolve to",
		Long: `Show which card a host and path resolve to, without recording analytics.

Examples:
  solware-id resolve --host luis.solware.agency
  solware-id resolve --host localhost --slug luis-mejia`,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _ := cmd.Flags().GetString("host")
			slug, _ := cmd.Flags().GetString("slug")

			resolver, err := newCLIResolver()
			if err != nil {
				return err
			}

			out := resolver.Lookup(domain.RequestContext{PathParam: slug, HostName: host})
			switch out.Kind {
			case domain.Found:
				fmt.Fprintf(cmd.OutOrStdout(), "found %s (%s)\n", out.Profile.Slug, out.Profile.Name)
			case domain.NotFoundDefault:
				fmt.Fprintf(cmd.OutOrStdout(), "not found %q, falls back to %s\n", out.AttemptedKey, out.Profile.Slug)
			case domain.NotFoundSubdomain:
				fmt.Fprintf(cmd.OutOrStdout(), "unknown subdomain %q\n", out.AttemptedKey)
			}
			return nil
		},
	}
	cmd.Flags().String("host", "localhost", "request host name")
	cmd.Flags().String("slug", "", "path slug from /id/{slug}")
	return cmd
}

func newVCardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vcard <slug>",
		Short: "Write the contact file of a profile to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("lang")

			dir, err := cliDirectory()
			if err != nil {
				return err
			}
			p, ok := dir.Store.FindBySlug(args[0])
			if !ok {
				return fmt.Errorf("%w: profile %q", domain.ErrNotFound, args[0])
			}
			return service.WriteVCard(cmd.OutOrStdout(), p, domain.ParseLanguage(lang))
		},
	}
	cmd.Flags().String("lang", string(domain.DefaultLanguage), "language of title and company (es, en)")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the profiles in the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cliDirectory()
			if err != nil {
				return err
			}
			for _, slug := range dir.Store.Slugs() {
				p, _ := dir.Store.FindBySlug(slug)
				label := dir.Store.Label(slug)
				if label == "" {
					label = "-"
				}
				marker := ""
				if slug == dir.DefaultSlug {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s%s\n", slug, label, p.Name, marker)
			}
			return nil
		},
	}
}

func cliDirectory() (*directory.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return loadDirectory(cfg)
}

func newCLIResolver() (*service.Resolver, error) {
	dir, err := cliDirectory()
	if err != nil {
		return nil, err
	}
	return service.NewResolver(dir.Store, dir.DefaultSlug, nil, nil)
}

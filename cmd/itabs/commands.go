package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sant0-9/itabs/internal/config"
	"github.com/sant0-9/itabs/internal/content"
	"github.com/sant0-9/itabs/internal/document"
)

// --- classify ---

type classification struct {
	Type      content.Type         `json:"type"`
	Label     string               `json:"label,omitempty"`
	Structure []string             `json:"suggestedStructure,omitempty"`
	Scores    map[content.Type]int `json:"scores"`
}

func classify(text string) classification {
	lower := strings.ToLower(text)
	c := classification{
		Type:   content.Classify(text),
		Scores: map[content.Type]int{},
	}
	for _, t := range content.Types() {
		p, _ := content.Lookup(t)
		c.Scores[t] = content.Score(lower, p)
	}
	if p, ok := content.Lookup(c.Type); ok {
		c.Label = p.Label
		c.Structure = p.SuggestedStructure
	}
	return c
}

func readInput(ctx context.Context, cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	doc, err := document.Import(ctx, args[0])
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}

func newClassifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify [file|-]",
		Short: "Detect the content type of a text, markdown or PDF file",
		Long: `Detect the content type of pasted content.

Examples:
  itabs classify notes.md
  pbpaste | itabs classify
  itabs classify --json report.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.Context(), cmd, args)
			if err != nil {
				return err
			}
			c := classify(text)
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(c)
			}

			if c.Type == content.None {
				printWarning(out, "No specific content type detected")
				return nil
			}
			printSuccess(out, "%s %s", c.Type.Icon(), c.Label)
			fmt.Fprintln(out, "Suggested structure:")
			for i, s := range c.Structure {
				fmt.Fprintf(out, "  %d. %s\n", i+1, s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// --- profile ---

func newProfileCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Inspect or clear what the assistant has learned",
	}
	cmd.AddCommand(newProfileShowCmd(configPath))
	cmd.AddCommand(newProfileResetCmd(configPath))
	return cmd
}

func newProfileShowCmd(configPath *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the learned profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			p := e.store.Profile()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}

			sum := p.Summarize()
			tabs := "Learning..."
			if n := sum.PreferredTabCount; n != nil && *n > 0 {
				tabs = fmt.Sprint(*n)
			}
			fmt.Fprintln(out, "Usage Stats")
			printStatus(out, "Guides Created", "%d", sum.GuidesCreated)
			printStatus(out, "Sessions", "%d", sum.Sessions)
			printStatus(out, "Preferred Tab Count", "%s", tabs)

			if len(sum.ContentTypes) > 0 {
				fmt.Fprintln(out, "Content Types")
				for _, c := range sum.ContentTypes {
					line := fmt.Sprintf("  %s %s (%d)", c.Icon, c.Label, c.Count)
					if c.Frequent {
						line += "  frequent"
					}
					fmt.Fprintln(out, line)
				}
			}
			if len(sum.StructureNames) > 0 {
				fmt.Fprintln(out, "Saved Structures")
				for _, name := range sum.StructureNames {
					fmt.Fprintf(out, "  • %s\n", name)
				}
			}
			if len(sum.TabNames) > 0 {
				fmt.Fprintln(out, "Your Tab Names")
				fmt.Fprintf(out, "  %s\n", strings.Join(sum.TabNames, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the stored profile as JSON")
	return cmd
}

func newProfileResetCmd(configPath *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all learning data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprint(out, "Clear your learning profile? This cannot be undone. [y/N] ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					printWarning(out, "Profile kept")
					return nil
				}
			}

			e, err := openEnv(cmd.Context(), *configPath, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.store.Reset(cmd.Context()); err != nil {
				printError(cmd.ErrOrStderr(), "Could not clear profile")
				return err
			}
			printSuccess(out, "Profile cleared: your learning data has been reset")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// --- config ---

func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(*configPath)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			path := *configPath
			if path == "" {
				if config.Exists() {
					printWarning(out, "Config already exists")
					return nil
				}
				p, err := config.ConfigPath()
				if err != nil {
					return err
				}
				if err := config.DefaultConfig().Save(); err != nil {
					return err
				}
				printSuccess(out, "Wrote %s", p)
				return nil
			}

			if _, err := os.Stat(path); err == nil {
				printWarning(out, "Config already exists")
				return nil
			}
			if err := config.DefaultConfig().SaveTo(path); err != nil {
				return err
			}
			printSuccess(out, "Wrote %s", path)
			return nil
		},
	})
	return cmd
}

// --- version ---

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "itabs %s\n", version)
		},
	}
}

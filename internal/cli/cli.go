// Package cli implements zpass's command-line interface.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zpass/internal/clipboard"
	"github.com/zarlcorp/zpass/internal/config"
	"github.com/zarlcorp/zpass/internal/generator"
	"github.com/zarlcorp/zpass/internal/strength"
	"golang.org/x/term"
)

// TUIFunc launches the interactive checker.
type TUIFunc func(cfg config.Config) error

// copyFn is swapped out in tests.
var copyFn = clipboard.Copy

// NewRootCommand builds the zpass command tree. Running the root command
// without a subcommand calls runTUI.
func NewRootCommand(version string, runTUI TUIFunc) *cobra.Command {
	root := &cobra.Command{
		Use:           "zpass",
		Short:         "Check password strength and generate passwords",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return runTUI(cfg)
		},
	}

	root.PersistentFlags().Int(config.KeyLength, generator.DefaultLength, "length of generated passwords")
	root.PersistentFlags().Bool(config.KeyReveal, false, "start with the password visible")

	root.AddCommand(
		newCheckCommand(),
		newGenerateCommand(),
		newVersionCommand(version),
	)

	return root
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "zpass %s\n", version)
		},
	}
}

func newCheckCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password",
		Long: "Score a password by the character classes it uses.\n" +
			"Without an argument the password is read from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pass string
			if len(args) == 1 {
				pass = args[0]
			} else {
				p, err := readInput(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				pass = p
			}

			res := strength.Evaluate(pass)
			slog.Debug("evaluated password", "score", res.Score)

			if asJSON {
				return printJSON(cmd.OutOrStdout(), res)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

// generated is the JSON shape of one generated password.
type generated struct {
	Password string `json:"password"`
	Score    int    `json:"score"`
	Percent  int    `json:"percent"`
}

func newGenerateCommand() *cobra.Command {
	var (
		count  int
		copyPw bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			g := generator.New()
			out := make([]generated, 0, count)
			for range count {
				pw, err := g.Password(cfg.Length)
				if err != nil {
					return fmt.Errorf("generate: %w", err)
				}
				res := strength.Evaluate(pw)
				out = append(out, generated{Password: pw, Score: res.Score, Percent: res.Percent()})
			}

			if asJSON {
				if err := printJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			} else {
				for _, o := range out {
					fmt.Fprintln(cmd.OutOrStdout(), o.Password)
				}
			}

			if copyPw {
				if err := copyFn(out[len(out)-1].Password); err != nil {
					return fmt.Errorf("copy: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of passwords to generate")
	cmd.Flags().BoolVarP(&copyPw, "copy", "c", false, "copy the last password to the clipboard")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print passwords as JSON")
	return cmd
}

// readInput reads a password from r. A terminal is read without echo;
// anything else yields its first line with only the line ending removed.
func readInput(r io.Reader, prompt io.Writer) (string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return readPassword(f, "password: ", prompt)
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readPassword prompts on w and reads a password from the terminal f
// without echo.
func readPassword(f *os.File, prompt string, w io.Writer) (string, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func printResult(w io.Writer, res strength.Result) {
	if !res.TooShort() {
		c := res.Counts
		fmt.Fprintf(w, "  %-12s %d\n", "lowercase", c.Lower)
		fmt.Fprintf(w, "  %-12s %d\n", "uppercase", c.Upper)
		fmt.Fprintf(w, "  %-12s %d\n", "digits", c.Digit)
		fmt.Fprintf(w, "  %-12s %d\n", "whitespace", c.Whitespace)
		fmt.Fprintf(w, "  %-12s %d\n", "special", c.Special)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  %-12s %d/5 (%d%%)\n", "score", res.Score, res.Percent())
	fmt.Fprintf(w, "  %-12s %s\n", "remarks", res.Remark)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

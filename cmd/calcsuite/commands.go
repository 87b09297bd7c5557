package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Starties/calculators/internal/catalog"
	"github.com/Starties/calculators/internal/programmer"
	"github.com/Starties/calculators/internal/scientific"
	"github.com/Starties/calculators/internal/tui"
)

var (
	evalRadians  bool
	evalFraction bool

	convertBase string
	convertNot  bool
	convertShl  int
	convertShr  int
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate an expression and print the result",
	Long: `Evaluate an expression the way the scientific calculator would.

ASCII operators are accepted (* / - ^ or **), as are pi, e, sqrt(, sin(,
cos(, tan(, asin(, acos(, atan(, log( (base 10) and ln(. Arguments are
joined with spaces. Trigonometry uses degrees unless --rad is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		angle := cfg.Angle()
		if evalRadians {
			angle = scientific.Radians
		}
		return evalExpression(cmd.OutOrStdout(), strings.Join(args, " "), angle, evalFraction)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert VALUE",
	Short: "Show an integer in every base, optionally after bitwise operations",
	Long: `Parse VALUE in the given base and print its HEX, DEC, OCT and BIN
renderings and the 32-bit memory map. --not, --shl and --shr are applied in
that order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := cfg.Base()
		if convertBase != "" {
			b, err := programmer.ParseBase(convertBase)
			if err != nil {
				return err
			}
			base = b
		}
		if convertShl < 0 || convertShr < 0 {
			return fmt.Errorf("shift counts must not be negative")
		}
		return convert(cmd.OutOrStdout(), args[0], base, convertNot, convertShl, convertShr)
	},
}

var modelsCmd = &cobra.Command{
	Use:   "models [QUERY]",
	Short: "List the calculator models, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		return listModels(cmd.OutOrStdout(), query)
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the keyboard reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		width := 80
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
		out, err := tui.RenderKeyReference(width)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	evalCmd.Flags().BoolVar(&evalRadians, "rad", false, "Interpret trigonometric arguments in radians")
	evalCmd.Flags().BoolVar(&evalFraction, "fraction", false, "Print the result as a fraction when one exists")

	convertCmd.Flags().StringVar(&convertBase, "base", "", "Base of VALUE: BIN, OCT, DEC or HEX (default from config)")
	convertCmd.Flags().BoolVar(&convertNot, "not", false, "Complement the value")
	convertCmd.Flags().IntVar(&convertShl, "shl", 0, "Shift left by N bits")
	convertCmd.Flags().IntVar(&convertShr, "shr", 0, "Shift right by N bits")
}

func evalExpression(w io.Writer, expr string, angle scientific.AngleMode, fraction bool) error {
	calc := scientific.New(nil, cfg.FormatOptions())
	s := calc.EvaluateText(scientific.NewState(angle), expr)
	if s.Error {
		fmt.Fprintln(w, color.RedString("%s", s.Result))
		return errSyntax
	}
	if fraction {
		s = calc.ToggleFraction(s)
	}
	_, err := fmt.Fprintln(w, s.Result)
	return err
}

func convert(w io.Writer, value string, base programmer.Base, not bool, shl, shr int) error {
	v, err := programmer.Parse(strings.ToUpper(strings.TrimSpace(value)), base)
	if err != nil {
		return err
	}
	reg := programmer.Register{Value: v, Base: base}
	if not {
		reg = reg.Complement()
	}
	for i := 0; i < shl; i++ {
		reg = reg.ShiftLeft()
	}
	for i := 0; i < shr; i++ {
		reg = reg.ShiftRight()
	}

	for _, row := range reg.Rows() {
		label := row.Base.String()
		if row.Base == base {
			label = color.New(color.FgYellow, color.Bold).Sprint(label)
		}
		fmt.Fprintf(w, "%s  %s\n", label, row.Text)
	}

	bits := reg.Bitmap()
	groups := make([]string, 0, len(bits)/8)
	for i := 0; i < len(bits); i += 8 {
		groups = append(groups, bits[i:i+8])
	}
	_, err = fmt.Fprintf(w, "MEM  %s\n", strings.Join(groups, " "))
	return err
}

func listModels(w io.Writer, query string) error {
	models := catalog.Search(query)
	if len(models) == 0 {
		_, err := fmt.Fprintf(w, "No models match %q\n", query)
		return err
	}
	for _, m := range models {
		status := color.GreenString("%s", m.Status())
		if !m.Active {
			status = color.HiBlackString("%s", m.Status())
		}
		fmt.Fprintf(w, "%s  %s [%s]\n", color.CyanString("%-10s", m.ID), m.Name, status)
		fmt.Fprintf(w, "            %s\n", m.Description)
		fmt.Fprintf(w, "            #%s\n", strings.Join(m.Tags, " #"))
	}
	return nil
}

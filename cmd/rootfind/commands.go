package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/btracey/rootfind/expr"
	"github.com/btracey/rootfind/univariate"
	"github.com/btracey/rootfind/write"
)

const envPrefix = "ROOTFIND"

// The objective solved when none is given, and its derivative.
const (
	defaultObjective  = "x**2 - 3"
	defaultDerivative = "2*x"
)

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "rootfind",
		Short: "Find a root of a scalar function",
		Long: `Find a root of a scalar function of x with Newton-Raphson or the secant method.

Expressions use the variable x, the operators + - * / ** and the functions
sin, cos, tan, exp, log, sqrt, abs and pow. Every flag can also be set in a
config file (--config) or through a ROOTFIND_ environment variable, for
example ROOTFIND_MAX_ITER=20.

Without a subcommand, rootfind solves the objective with Newton-Raphson from
x0 = 1, which by default finds the square root of 3.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runNewton(v, c)
		},
	}
	addSolveFlags(cmd.PersistentFlags())
	v.SetDefault("x0", 1)

	cmd.AddCommand(newNewtonCommand(v))
	cmd.AddCommand(newSecantCommand(v))
	return cmd
}

func addSolveFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Config file (yaml, json or toml) holding flag values")
	fs.String("f", defaultObjective, "Objective function of x")
	fs.Float64("tol", 1e-15, "Stop when successive approximations differ by at most this much")
	fs.Int("max-iter", 100, "Maximum number of iterations; at most max-iter+1 passes are made")
	fs.Int("max-evals", -1, "Maximum number of objective evaluations, negative for no limit")
	fs.Float64("min-slope", univariate.DefaultMinSlope, "Slopes smaller than this in magnitude end the search")
	fs.Float64("obj-tol", 0, "Stop when |f| is at most this much, 0 to disable")
	fs.Bool("trace", false, "Write every iteration to stderr as csv")
	fs.String("log-level", "info", "Log level: debug, info, warn or error")
	fs.Bool("no-color", false, "Disable colored log output")
}

func newNewtonCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newton",
		Short: "Newton-Raphson iteration with an analytic or numeric derivative",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runNewton(v, c)
		},
	}
	cmd.Flags().String("df", "", "Derivative of the objective; a central difference is used when empty, 2*x for the default objective")
	cmd.Flags().Float64("x0", 1, "Initial guess")
	return cmd
}

func newSecantCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secant",
		Short: "Secant iteration from two starting points, no derivative needed",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if err := loadConfig(v, c); err != nil {
				return err
			}
			f, err := expr.Parse(v.GetString("f"))
			if err != nil {
				return err
			}

			settings, logger, err := solveSettings(v, c.ErrOrStderr())
			if err != nil {
				return err
			}
			x0, x1 := v.GetFloat64("x0"), v.GetFloat64("x1")
			logger.Debug("starting secant", "f", f.String(), "x0", x0, "x1", x1)
			if x0 == x1 {
				logger.Warn("starting points coincide, the search cannot move", "x0", x0)
			}

			minSlope := v.GetFloat64("min-slope")
			solver := &univariate.Secant{MinSlope: minSlope, MinSpacing: minSlope}
			result, err := univariate.SolveDerivFree(f.Func(), x0, x1, settings, solver)
			if err != nil {
				return err
			}
			if err := f.Err(); err != nil {
				return err
			}
			return printResult(c.OutOrStdout(), result)
		},
	}
	cmd.Flags().Float64("x0", 1, "First starting point")
	cmd.Flags().Float64("x1", 2, "Second starting point")
	return cmd
}

func runNewton(v *viper.Viper, c *cobra.Command) error {
	if err := loadConfig(v, c); err != nil {
		return err
	}
	f, err := expr.Parse(v.GetString("f"))
	if err != nil {
		return err
	}
	fun := f.Func()

	dfSrc := v.GetString("df")
	if dfSrc == "" && strings.TrimSpace(v.GetString("f")) == defaultObjective {
		dfSrc = defaultDerivative
	}
	var deriv univariate.Func
	var df *expr.Expr
	if dfSrc != "" {
		df, err = expr.Parse(dfSrc)
		if err != nil {
			return err
		}
		deriv = df.Func()
	} else {
		deriv = univariate.NumericDerivative(fun, 0)
	}

	settings, logger, err := solveSettings(v, c.ErrOrStderr())
	if err != nil {
		return err
	}
	logger.Debug("starting newton", "f", f.String(), "df", dfSrc, "x0", v.GetFloat64("x0"))

	solver := &univariate.Newton{MinSlope: v.GetFloat64("min-slope")}
	result, err := univariate.SolveDeriv(fun, deriv, v.GetFloat64("x0"), settings, solver)
	if err != nil {
		return err
	}
	if err := f.Err(); err != nil {
		return err
	}
	if df != nil && df.Err() != nil {
		return df.Err()
	}
	return printResult(c.OutOrStdout(), result)
}

// loadConfig binds the flags of the running command, the environment and
// the optional config file into v. Flags set on the command line win.
func loadConfig(v *viper.Viper, c *cobra.Command) error {
	if err := v.BindPFlags(c.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func solveSettings(v *viper.Viper, stderr io.Writer) (*univariate.Settings, *slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    v.GetBool("no-color"),
	}))

	settings := univariate.DefaultSettings()
	settings.LocTol = v.GetFloat64("tol")
	settings.MaximumIterations = v.GetInt("max-iter")
	settings.MaximumFunctionEvaluations = v.GetInt("max-evals")
	settings.ObjAbsTol = math.NaN()
	if objTol := v.GetFloat64("obj-tol"); objTol != 0 {
		settings.ObjAbsTol = objTol
	}

	ws := &write.WriteSettings{Logger: logger}
	if v.GetBool("trace") {
		ws.DisplayWriters = []write.Writer{{Writer: stderr, T: write.Logger}}
	}
	settings.WriteSettings = ws
	return settings, logger, nil
}

func printResult(w io.Writer, result *univariate.Result) error {
	_, err := fmt.Fprintf(w, "Result is: %.15e\nStatus: %v\nIterations: %d\nFunction evaluations: %d\n",
		result.Loc, result.Status, result.Iterations, result.FunctionEvaluations)
	return err
}

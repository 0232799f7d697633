package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vrail/vrail/pkg/outcome"
	"github.com/vrail/vrail/pkg/validate"
)

var (
	rulesPath string
	modeName  string
)

var validateCmd = &cobra.Command{
	Use:   "validate [field=value ...]",
	Short: "Validate named fields",
	Long: `Validates field=value pairs. Without --rules the built-in account
profile is checked (email, password, age). With --rules the fields are
checked against a YAML rule set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rule set file")
	validateCmd.Flags().StringVar(&modeName, "mode", "collect-all", "failure mode: fail-fast or collect-all")
}

func runValidate(cmd *cobra.Command, args []string) error {
	fields, err := parseFieldArgs(args)
	if err != nil {
		return err
	}

	mode, err := validate.ParseMode(modeName)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var res outcome.Result[validate.Fields]
	if rulesPath != "" {
		rs, err := validate.LoadRules(rulesPath)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("mode") {
			mode = rs.DefaultMode()
		}
		logger.Debug("loaded rule set",
			zap.String("path", rulesPath),
			zap.Int("fields", len(rs.Fields)),
			zap.String("mode", mode.String()))
		res = rs.Validate(ctx, fields, mode)
	} else {
		logger.Debug("validating account profile", zap.String("mode", mode.String()))
		profile := validate.ValidateProfile(ctx, fields, mode)
		if profile.IsFailure() {
			res = outcome.FailureFrom[validate.Profile, validate.Fields](profile)
		} else {
			p := profile.Value()
			res = outcome.Success(validate.Fields{
				"email":    p.Email,
				"password": p.Password,
				"age":      strconv.Itoa(p.Age),
			})
		}
	}

	if res.IsSuccess() {
		logger.Info("validation succeeded", zap.Int("fields", len(res.Value())))
		printFields(cmd, res.Value())
		return nil
	}

	failures := validate.All(res.Err())
	logger.Warn("validation failed", zap.Int("failures", len(failures)))
	for _, f := range failures {
		cmd.Printf("invalid %s\n", f.Error())
	}
	if len(failures) == 0 {
		return res.Err()
	}
	return fmt.Errorf("validation failed with %d error(s)", len(failures))
}

func parseFieldArgs(args []string) (validate.Fields, error) {
	fields := make(validate.Fields, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		fields[name] = value
	}
	return fields, nil
}

func printFields(cmd *cobra.Command, fields validate.Fields) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("%s=%s\n", name, fields[name])
	}
}

package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/koddi/healthcheck/pkg/check"
	"github.com/koddi/healthcheck/pkg/healthcheck"
	"github.com/koddi/healthcheck/pkg/output"
)

var (
	flagEmail          string
	flagPassword       string
	flagMemberGroupID  int
	flagAdvertiserID   int
	flagClientName     string
	flagSiteID         string
	flagExperienceName string
	flagBaseURL        string
	flagTimeout        int
	flagJSONOutput     bool
)

// envFallbacks maps flag names to the environment variables consulted
// when the flag was not set on the command line. Flags win.
var envFallbacks = map[string]string{
	"email":           "KODDI_EMAIL",
	"password":        "KODDI_PASSWORD",
	"member-group-id": "KODDI_MEMBER_GROUP_ID",
	"advertiser-id":   "KODDI_ADVERTISER_ID",
	"client-name":     "KODDI_CLIENT_NAME",
}

var rootCmd = &cobra.Command{
	Use:          "koddi-healthcheck",
	Short:        "End-to-end health check for a Koddi Ads implementation",
	Long:         "Runs an ordered series of read-only checks against the Koddi Console API and auction engine, reporting pass/warn/fail per check. Exits 1 when any check fails.",
	Version:      Version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runHealthcheck,
}

func init() {
	rootCmd.Flags().StringVar(&flagEmail, "email", "", "Koddi account email (env KODDI_EMAIL)")
	rootCmd.Flags().StringVar(&flagPassword, "password", "", "Koddi account password (env KODDI_PASSWORD)")
	rootCmd.Flags().IntVar(&flagMemberGroupID, "member-group-id", 0, "member group ID (env KODDI_MEMBER_GROUP_ID)")
	rootCmd.Flags().IntVar(&flagAdvertiserID, "advertiser-id", 0, "advertiser ID (env KODDI_ADVERTISER_ID)")
	rootCmd.Flags().StringVar(&flagClientName, "client-name", "", "client name for the auction engine, e.g. myretailer (env KODDI_CLIENT_NAME)")
	rootCmd.Flags().StringVar(&flagSiteID, "site-id", "homepage", "site ID for the test auction")
	rootCmd.Flags().StringVar(&flagExperienceName, "experience-name", "", "experience name for the test auction (optional)")
	rootCmd.Flags().StringVar(&flagBaseURL, "base-url", "https://koddi.io/console/v1", "base URL for the Koddi Console API")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 30, "request timeout in seconds")
	rootCmd.Flags().BoolVar(&flagJSONOutput, "json-output", false, "output results as a single JSON document")
}

func runHealthcheck(cmd *cobra.Command, _ []string) error {
	if err := applyEnvFallbacks(cmd.Flags()); err != nil {
		return err
	}
	if err := requireAll(
		flagValue{"--email", flagEmail},
		flagValue{"--password", flagPassword},
		flagValue{"--member-group-id", intValue(flagMemberGroupID)},
		flagValue{"--advertiser-id", intValue(flagAdvertiserID)},
		flagValue{"--client-name", flagClientName},
	); err != nil {
		return err
	}

	cfg := &healthcheck.RunConfig{
		BaseURL:        flagBaseURL,
		Timeout:        time.Duration(flagTimeout) * time.Second,
		Email:          flagEmail,
		Password:       flagPassword,
		MemberGroupID:  flagMemberGroupID,
		AdvertiserID:   flagAdvertiserID,
		ClientName:     flagClientName,
		SiteID:         flagSiteID,
		ExperienceName: flagExperienceName,
	}

	out := cmd.OutOrStdout()

	var onResult func(check.Result)
	if !flagJSONOutput {
		output.PrintHeader(out, cfg.MemberGroupID, cfg.AdvertiserID, cfg.ClientName)
		onResult = func(r check.Result) { output.PrintResult(out, r) }
	}

	results := healthcheck.Run(cfg, onResult)

	if flagJSONOutput {
		if err := output.WriteJSON(out, results); err != nil {
			return err
		}
	} else {
		output.PrintSummary(out, results)
	}

	if code := healthcheck.ExitCode(results); code != 0 {
		os.Exit(code)
	}
	return nil
}

// applyEnvFallbacks fills unset flags from their environment variables.
// Values that fail flag parsing (e.g. a non-numeric ID) are reported
// against the variable they came from.
func applyEnvFallbacks(flags *pflag.FlagSet) error {
	for flag, env := range envFallbacks {
		if flags.Changed(flag) {
			continue
		}
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := flags.Set(flag, value); err != nil {
			return fmt.Errorf("invalid value in %s: %w", env, err)
		}
	}
	return nil
}

// intValue renders an ID flag for requireAll: zero means unset.
func intValue(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pratiks183/Trust-Signal-Based-Resume-Verification-System/internal/model"
)

var verifyOutJSON string

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <claims-file>",
	Short: "Verify a batch of claimed internships from a file",
	Long: `Verify reads claimed internships from a YAML or JSON file, checks each
against the search backend, and writes per-claim trust scores.

Claims file format:
  internships:
    - company: Google
      role: Software Engineer Intern
    - company: Acme Robotics
      role: Designer

Example:
  trustsignal verify claims.yaml --json results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyOutJSON, "json", "results.json", "output JSON path (empty disables)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if err := resolveAPIKey(cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	claims, err := readClaims(args[0])
	if err != nil {
		return err
	}
	if len(claims) == 0 {
		return fmt.Errorf("no claims found in %s", args[0])
	}

	ctx := context.Background()
	service, err := buildService(ctx, cfg, log)
	if err != nil {
		return err
	}

	results, err := service.VerifyInternships(ctx, claims)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	if verifyOutJSON != "" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal results: %w", err)
		}
		if err := os.WriteFile(verifyOutJSON, data, 0o644); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		if cfg.Output.Verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", verifyOutJSON)
		}
	}

	printSummary(results)
	return nil
}

// readClaims loads claims from a YAML or JSON file. Both a wrapped document
// ({internships: [...]}) and a bare list are accepted.
func readClaims(path string) ([]model.ClaimedInternship, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claims file: %w", err)
	}

	var wrapped struct {
		Internships []model.ClaimedInternship `yaml:"internships" json:"internships"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err == nil && wrapped.Internships != nil {
		return wrapped.Internships, nil
	}

	var bare []model.ClaimedInternship
	if err := yaml.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parse claims file: %w", err)
	}
	return bare, nil
}

func printSummary(results map[string]model.VerificationResult) {
	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		r := results[k]
		fmt.Printf("%-50s score=%.2f verdict=%-6s maturity=%-11s %s\n",
			k, r.TrustScore, r.Verdict, r.MaturityLevel, r.RoleReason)
	}
}

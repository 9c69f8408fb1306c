package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// client calls the ohadacore HTTP API.
type client struct {
	baseURL string
	timeout time.Duration
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *client) do(method, path string, query url.Values, body any, headers map[string]string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := (&http.Client{Timeout: c.timeout}).Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e apiError
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			if e.Message != "" {
				return nil, fmt.Errorf("%s (status %d): %s", e.Error, resp.StatusCode, e.Message)
			}
			return nil, fmt.Errorf("%s (status %d)", e.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(raw), 200))
	}
	return raw, nil
}

func (c *client) get(cmd *cobra.Command, path string, query url.Values) error {
	raw, err := c.do(http.MethodGet, path, query, nil, nil)
	if err != nil {
		return err
	}
	return printRaw(cmd.OutOrStdout(), raw)
}

func newRootCmd() *cobra.Command {
	c := &client{}

	rootCmd := &cobra.Command{
		Use:           "ohada-cli",
		Short:         "ohadacore CLI tool",
		Long:          `A command line interface for the ohadacore accounting checks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&c.baseURL, "url", "http://localhost:8080", "Base URL of the ohadacore API")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(
		taxCmd(c),
		agingCmd(c),
		provisionsCmd(c),
		depreciationCmd(c),
		reportsCmd(c),
		fiscalCmd(c),
	)
	return rootCmd
}

// errInvalidVAT makes the process exit non-zero when a validation fails.
var errInvalidVAT = errors.New("VAT validation failed")

func taxCmd(c *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "VAT validation",
	}

	var file string
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the VAT lines of a JSON file",
		Long:  "Validate a JSON file holding either {\"lines\": [...]} or a bare array of lines.",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(file)
			if err != nil {
				return err
			}

			raw, err := c.do(http.MethodPost, "/api/v1/tax/validate", nil, map[string]any{"lines": lines}, nil)
			if err != nil {
				return err
			}
			if err := printRaw(cmd.OutOrStdout(), raw); err != nil {
				return err
			}

			var report struct {
				IsValid bool `json:"is_valid"`
			}
			if err := json.Unmarshal(raw, &report); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			if !report.IsValid {
				return errInvalidVAT
			}
			return nil
		},
	}
	validateCmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with the lines to validate")
	validateCmd.MarkFlagRequired("file")

	entryCmd := &cobra.Command{
		Use:   "entry <id>",
		Short: "Validate the VAT lines of a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.get(cmd, "/api/v1/entries/"+url.PathEscape(args[0])+"/tax", nil)
		},
	}

	cmd.AddCommand(validateCmd, entryCmd)
	return cmd
}

// readLines accepts {"lines": [...]} or a bare array.
func readLines(path string) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var wrapped struct {
		Lines json.RawMessage `json:"lines"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Lines) > 0 {
		return wrapped.Lines, nil
	}

	var bare []json.RawMessage
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("%s holds neither a line array nor {\"lines\": [...]}", path)
	}
	return json.RawMessage(raw), nil
}

func agingCmd(c *client) *cobra.Command {
	var role, asOf, party string

	cmd := &cobra.Command{
		Use:   "aging",
		Short: "Age customer or supplier balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("role", role)
			setIf(q, "as_of", asOf)
			setIf(q, "third_party", party)
			return c.get(cmd, "/api/v1/aging", q)
		},
	}
	cmd.Flags().StringVar(&role, "role", "customer", "customer or supplier")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Reference date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&party, "third-party", "", "Only age this third party")
	return cmd
}

func provisionsCmd(c *client) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "provisions",
		Short: "Calculate doubtful-debt provisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIf(q, "as_of", asOf)
			return c.get(cmd, "/api/v1/provisions", q)
		},
	}
	cmd.PersistentFlags().StringVar(&asOf, "as-of", "", "Reference date (YYYY-MM-DD, default today)")

	var session string
	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare calculated provisions with a closure session",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("session", session)
			setIf(q, "as_of", asOf)
			return c.get(cmd, "/api/v1/provisions/compare", q)
		},
	}
	compareCmd.Flags().StringVar(&session, "session", "", "Closure session ID")
	compareCmd.MarkFlagRequired("session")

	var recordSession, idempotencyKey string
	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "Store calculated provisions in a closure session",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := map[string]string{}
			if idempotencyKey != "" {
				headers["Idempotency-Key"] = idempotencyKey
			}
			raw, err := c.do(http.MethodPost, "/api/v1/provisions/record", nil, map[string]string{
				"session_id": recordSession,
				"as_of":      asOf,
			}, headers)
			if err != nil {
				return err
			}
			return printRaw(cmd.OutOrStdout(), raw)
		},
	}
	recordCmd.Flags().StringVar(&recordSession, "session", "", "Closure session ID")
	recordCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Replay protection key")
	recordCmd.MarkFlagRequired("session")

	var recordsSession string
	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "List stored provisions, optionally for one closure session",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			setIf(q, "session", recordsSession)
			return c.get(cmd, "/api/v1/provisions/records", q)
		},
	}
	recordsCmd.Flags().StringVar(&recordsSession, "session", "", "Closure session ID")

	cmd.AddCommand(compareCmd, recordCmd, recordsCmd)
	return cmd
}

func fiscalCmd(c *client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fiscal",
		Short: "List fiscal years and periods",
	}

	yearsCmd := &cobra.Command{
		Use:   "years",
		Short: "List fiscal years",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.get(cmd, "/api/v1/fiscal-years", nil)
		},
	}

	periodsCmd := &cobra.Command{
		Use:   "periods <fiscal-year-id>",
		Short: "List the periods of a fiscal year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.get(cmd, "/api/v1/fiscal-years/"+url.PathEscape(args[0])+"/periods", nil)
		},
	}

	cmd.AddCommand(yearsCmd, periodsCmd)
	return cmd
}

// periodFlags binds the period selectors shared by depreciation and reports.
type periodFlags struct {
	fiscalYear string
	from       string
	to         string
}

func (p *periodFlags) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&p.fiscalYear, "fiscal-year", "", "Fiscal year ID")
	cmd.PersistentFlags().StringVar(&p.from, "from", "", "Period start (YYYY-MM-DD)")
	cmd.PersistentFlags().StringVar(&p.to, "to", "", "Period end (YYYY-MM-DD)")
}

func (p *periodFlags) query() url.Values {
	q := url.Values{}
	setIf(q, "fiscal_year", p.fiscalYear)
	setIf(q, "from", p.from)
	setIf(q, "to", p.to)
	return q
}

func depreciationCmd(c *client) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "depreciation",
		Short: "Reconcile depreciation with the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.get(cmd, "/api/v1/depreciation", period.query())
		},
	}
	period.bind(cmd)
	return cmd
}

func reportsCmd(c *client) *cobra.Command {
	var (
		period periodFlags
		prior  string
	)

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Balance-based reports",
	}
	period.bind(cmd)

	report := func(use, short, path string) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.get(cmd, path, period.query())
			},
		}
	}

	sigCmd := &cobra.Command{
		Use:   "sig",
		Short: "Soldes intermédiaires de gestion",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := period.query()
			setIf(q, "prior", prior)
			return c.get(cmd, "/api/v1/reports/sig", q)
		},
	}
	sigCmd.Flags().StringVar(&prior, "prior", "", "Prior fiscal year ID to compare with")

	cmd.AddCommand(
		sigCmd,
		report("ratios", "Financial ratios", "/api/v1/reports/ratios"),
		report("treasury", "Treasury position", "/api/v1/reports/treasury"),
		report("trial-balance", "Trial balance", "/api/v1/reports/trial-balance"),
	)
	return cmd
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// printRaw pretty-prints a JSON document.
func printRaw(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, err = w.Write(raw)
		return err
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

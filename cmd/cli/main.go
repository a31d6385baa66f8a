package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fintrack-cli",
		Short: "FinTrack CLI tool",
		Long:  `A command line interface for interacting with the FinTrack API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinTrack API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		accountsCmd(),
		txCmd(),
		debtsCmd(),
		goalsCmd(),
		reportCmd(),
		analysisCmd(),
		rateCmd(),
		ledgerCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	var kind string
	var rate string

	openCmd := &cobra.Command{
		Use:   "open NAME",
		Short: "Open a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"name": args[0], "kind": kind}
			if rate != "" {
				body["interest_rate"] = rate
			}
			return doPost("/api/v1/accounts", body)
		},
	}
	openCmd.Flags().StringVar(&kind, "kind", "standard", "Account kind (standard or savings)")
	openCmd.Flags().StringVar(&rate, "rate", "", "Interest rate for savings accounts, e.g. 0.05")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/accounts")
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance ID",
		Short: "Show the current balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/accounts/" + args[0] + "/balance")
		},
	}

	var month string

	historyCmd := &cobra.Command{
		Use:   "history ID",
		Short: "Show the transaction history of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/accounts/" + args[0] + "/history"
			if month != "" {
				path += "?month=" + month
			}
			return doGet(path)
		},
	}
	historyCmd.Flags().StringVar(&month, "month", "", "Restrict to a month, e.g. 2026-09")

	interestCmd := &cobra.Command{
		Use:   "interest ID",
		Short: "Apply interest to a savings account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/v1/accounts/"+args[0]+"/interest", nil)
		},
	}

	cmd.AddCommand(openCmd, listCmd, balanceCmd, historyCmd, interestCmd)

	return cmd
}

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}

	var (
		description string
		category    string
		recurrence  int
	)

	addCmd := &cobra.Command{
		Use:   "add ACCOUNT KIND AMOUNT",
		Short: "Record a transaction (kind is income or expense)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"account_id":  args[0],
				"kind":        args[1],
				"amount":      args[2],
				"description": description,
				"category":    category,
			}
			if recurrence > 0 {
				body["recurrence_days"] = recurrence
			}
			return doPost("/api/v1/transactions", body)
		},
	}
	addCmd.Flags().StringVar(&description, "description", "", "Transaction description")
	addCmd.Flags().StringVar(&category, "category", "", "Spending category")
	addCmd.Flags().IntVar(&recurrence, "every", 0, "Recurrence interval in days")

	deleteCmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDelete("/api/v1/transactions/" + args[0])
		},
	}

	cmd.AddCommand(addCmd, deleteCmd)

	return cmd
}

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Debt operations",
	}

	var (
		direction string
		due       string
	)

	addCmd := &cobra.Command{
		Use:   "add COUNTERPARTY AMOUNT",
		Short: "Log a new debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"counterparty": args[0],
				"amount":       args[1],
				"direction":    direction,
			}
			if due != "" {
				body["due_date"] = due
			}
			return doPost("/api/v1/debts", body)
		},
	}
	addCmd.Flags().StringVar(&direction, "direction", "owed_by_me", "owed_by_me or owed_to_me")
	addCmd.Flags().StringVar(&due, "due", "", "Due date, RFC 3339")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all debts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/debts")
		},
	}

	payCmd := &cobra.Command{
		Use:   "pay ID",
		Short: "Mark a debt as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/v1/debts/"+args[0]+"/pay", nil)
		},
	}

	totalsCmd := &cobra.Command{
		Use:   "totals",
		Short: "Show outstanding debt totals per direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/debts/totals")
		},
	}

	cmd.AddCommand(addCmd, listCmd, payCmd, totalsCmd)

	return cmd
}

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Savings goal operations",
	}

	addCmd := &cobra.Command{
		Use:   "add NAME TARGET",
		Short: "Create a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/v1/goals", map[string]any{"name": args[0], "target": args[1]})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all savings goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/goals")
		},
	}

	contributeCmd := &cobra.Command{
		Use:   "contribute GOAL ACCOUNT AMOUNT",
		Short: "Contribute to a goal from an account",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPost("/api/v1/goals/"+args[0]+"/contributions", map[string]any{
				"account_id": args[1],
				"amount":     args[2],
			})
		},
	}

	progressCmd := &cobra.Command{
		Use:   "progress ID",
		Short: "Show goal progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/goals/" + args[0] + "/progress")
		},
	}

	cmd.AddCommand(addCmd, listCmd, contributeCmd, progressCmd)

	return cmd
}

func reportCmd() *cobra.Command {
	var (
		account string
		month   string
	)

	cmd := &cobra.Command{
		Use:   "report KIND",
		Short: "Generate a report (spending or income)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/reports/" + args[0] + "?account_id=" + account
			if month != "" {
				path += "&month=" + month
			}
			return doGet(path)
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "Account to report on")
	cmd.Flags().StringVar(&month, "month", "", "Restrict to a month, e.g. 2026-09")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func analysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Spending analysis operations",
	}

	var (
		account string
		month   string
	)

	topCmd := &cobra.Command{
		Use:   "top",
		Short: "Show the top spending categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/analysis/spending?account_id=" + account
			if month != "" {
				path += "&month=" + month
			}
			return doGet(path)
		},
	}

	budgetsCmd := &cobra.Command{
		Use:   "budgets",
		Short: "Show spending against configured budgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/analysis/budgets?account_id=" + account
			if month != "" {
				path += "&month=" + month
			}
			return doGet(path)
		},
	}

	for _, c := range []*cobra.Command{topCmd, budgetsCmd} {
		c.Flags().StringVar(&account, "account", "", "Account to analyze")
		c.Flags().StringVar(&month, "month", "", "Restrict to a month, e.g. 2026-09")
		_ = c.MarkFlagRequired("account")
	}

	cmd.AddCommand(topCmd, budgetsCmd)

	return cmd
}

func rateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Currency rate operations",
	}

	getCmd := &cobra.Command{
		Use:   "get BASE QUOTE",
		Short: "Look up an exchange rate",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/rates?base=" + args[0] + "&quote=" + args[1])
		},
	}

	convertCmd := &cobra.Command{
		Use:   "convert AMOUNT FROM TO",
		Short: "Convert an amount between currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/rates/convert?amount=" + args[0] + "&from=" + args[1] + "&to=" + args[2])
		},
	}

	cmd.AddCommand(getCmd, convertCmd)

	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check that cached balances match the stored transaction log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doGet("/api/v1/ledger/consistency")
		},
	}

	cmd.AddCommand(consistencyCmd)

	return cmd
}

func doGet(path string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func doPost(path string, body any) error {
	client := &http.Client{Timeout: timeout}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	resp, err := client.Post(baseURL+path, "application/json", payload)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func doDelete(path string) error {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodDelete, baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(data), 200))
	}

	if len(data) == 0 {
		fmt.Println("OK")
		return nil
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		fmt.Println(string(data))
		return nil
	}

	printJSON(parsed)

	return nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}

	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}

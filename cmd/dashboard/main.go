package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/mr-fahad-03/grace-tailor/internal/api"
	"github.com/mr-fahad-03/grace-tailor/internal/config"
	"github.com/mr-fahad-03/grace-tailor/internal/domain"
	"github.com/mr-fahad-03/grace-tailor/internal/export"
	"github.com/mr-fahad-03/grace-tailor/internal/format"
	"github.com/mr-fahad-03/grace-tailor/internal/listview"
	"github.com/mr-fahad-03/grace-tailor/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	exportPath := flag.String("export", "", "write the transaction report to this .csv or .xlsx file")
	search := flag.String("search", "", "filter the printed lists by this text")
	txType := flag.String("type", "", "limit printed transactions to one type: income or expense")
	flag.Parse()

	switch domain.TransactionType(*txType) {
	case "", domain.TransactionIncome, domain.TransactionExpense:
	default:
		logger.Error("invalid -type, use income or expense", "type", *txType)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := session.New(cfg.TokenFile, logger)
	client := api.New(cfg.BaseURL, store, logger)
	store.Auth = api.AuthClient{Client: client}
	store.OnSessionExpired = func() {
		logger.Warn("session expired, log in again")
	}

	if !store.Verify(ctx) {
		if cfg.Email == "" || cfg.Password == "" {
			logger.Error("no valid session; set LOGIN_EMAIL and LOGIN_PASSWORD")
			os.Exit(1)
		}
		if err := store.Login(ctx, cfg.Email, cfg.Password); err != nil {
			logger.Error("login failed", "reason", api.ErrorMessage(err, "Login failed. Please check your credentials."))
			os.Exit(1)
		}
	}
	logger.Info("logged in", "user", store.CurrentUser().Email)

	customersAPI := api.CustomersClient{Client: client}
	ordersAPI := api.OrdersClient{Client: client}
	transactionsAPI := api.TransactionsClient{Client: client}

	confirm := promptConfirm(os.Stdin, os.Stdout)
	customers := listview.Customers(customersAPI, confirm, logger)
	orders := listview.Orders(ordersAPI, confirm, logger)
	transactions := listview.Transactions(transactionsAPI, confirm, logger)

	for name, refresh := range map[string]func(context.Context) error{
		"customers":    customers.Refresh,
		"orders":       orders.Refresh,
		"transactions": transactions.Refresh,
	} {
		if err := refresh(ctx); err != nil {
			logger.Error("refresh failed", "resource", name, "err", err)
		}
	}
	customers.SetFilter(*search)
	orders.SetFilter(*search)
	transactions.SetFilter(*search)

	// The dashboard trusts the server's summary over local recomputation.
	summary, err := transactionsAPI.Summary(ctx)
	if err != nil {
		logger.Error("failed to fetch financial summary", "err", err)
		os.Exit(1)
	}
	recent, err := ordersAPI.Recent(ctx)
	if err != nil {
		logger.Error("failed to fetch recent orders", "err", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Customers\tOrders\tIncome\tExpenses\tNet")
	fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
		len(customers.Items()),
		len(orders.Items()),
		format.Currency(summary.TotalIncome),
		format.Currency(summary.TotalExpense),
		format.Currency(summary.NetIncome),
	)
	w.Flush()

	if len(summary.MonthlyData) > 0 {
		fmt.Println("\nMonthly income vs expense")
		for _, b := range summary.MonthlyData {
			fmt.Printf("  %s  income %s  expense %s\n", b.Month, format.Currency(b.Income), format.Currency(b.Expense))
		}
	}

	if len(recent) > 0 {
		fmt.Println("\nRecent orders")
		for _, o := range recent {
			fmt.Printf("  %s  %s  %s  %s\n", format.Date(o.CreatedAt), o.CustomerName, o.Status, format.Currency(o.Price))
		}
	}

	filtered := listview.ByType(transactions.Filtered(), domain.TransactionType(*txType))
	if len(filtered) > 0 {
		fmt.Println("\nTransactions")
		for _, t := range filtered {
			fmt.Printf("  %s  %-30s  %s\n", format.Date(t.Date), t.Description, format.TransactionAmount(t))
		}
	}

	if *exportPath != "" {
		if err := writeReport(*exportPath, transactions.Items()); err != nil {
			logger.Error("export failed", "path", *exportPath, "err", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", *exportPath)
	}
}

func writeReport(path string, transactions []domain.Transaction) error {
	var data []byte
	var err error
	switch filepath.Ext(path) {
	case ".xlsx":
		data, err = export.FinanceXLSX(transactions)
	case ".csv":
		data, err = export.FinanceCSV(transactions)
	default:
		return fmt.Errorf("unsupported report format %q (use .csv or .xlsx)", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// promptConfirm asks a yes/no question on the terminal, the CLI stand-in for
// the browser confirm dialog that gates every delete.
func promptConfirm(in *os.File, out *os.File) func(string) bool {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}

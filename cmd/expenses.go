package cmd

import (
	"fmt"
	"time"

	"tripkit/internal/cli"
	"tripkit/internal/config"
	"tripkit/internal/model"
	"tripkit/internal/store"

	"github.com/spf13/cobra"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses [trip-id]",
	Short: "List a trip's expenses",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExpenses,
}

var (
	expensesCategory string
	expensesSort     string

	expenseTrip     string
	expenseName     string
	expenseCategoryF string
	expenseAmount   float64
	expenseDate     string
)

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an expense against a trip",
	RunE:  runExpensesAdd,
}

var expensesEditCmd = &cobra.Command{
	Use:   "edit <expense-id>",
	Short: "Edit an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesEdit,
}

var expensesDeleteCmd = &cobra.Command{
	Use:   "delete <expense-id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesDelete,
}

func init() {
	expensesCmd.Flags().StringVarP(&expensesCategory, "category", "c", store.CategoryAll, "Filter to one category, or \"all\"")
	expensesCmd.Flags().StringVarP(&expensesSort, "sort", "s", "", "Sort by expense date: newest or oldest")

	for _, c := range []*cobra.Command{expensesAddCmd, expensesEditCmd, expensesDeleteCmd} {
		c.Flags().StringVarP(&expenseTrip, "trip", "t", "", "Trip ID (default: selected trip)")
	}
	for _, c := range []*cobra.Command{expensesAddCmd, expensesEditCmd} {
		c.Flags().StringVar(&expenseName, "name", "", "Expense name")
		c.Flags().StringVar(&expenseCategoryF, "category", "", "Category (accommodation, food, transportation, activities, shopping, other)")
		c.Flags().Float64Var(&expenseAmount, "amount", 0, "Amount in the trip's currency")
		c.Flags().StringVar(&expenseDate, "date", "", "Expense date (YYYY-MM-DD, default today)")
	}
	_ = expensesAddCmd.MarkFlagRequired("name")
	_ = expensesAddCmd.MarkFlagRequired("amount")

	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesEditCmd)
	expensesCmd.AddCommand(expensesDeleteCmd)
	rootCmd.AddCommand(expensesCmd)
}

// expenseTripArgs turns the --trip flag into resolveTrip-style args.
func expenseTripArgs() []string {
	if expenseTrip == "" {
		return nil
	}
	return []string{expenseTrip}
}

func runExpenses(_ *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := resolveTrip(l, args)
	if err != nil {
		return err
	}

	expenses, err := l.ListExpenses(trip.ID, expensesCategory)
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		if expensesCategory != store.CategoryAll {
			fmt.Printf("\n  No %s expenses on %s.\n", expensesCategory, trip.Name)
		} else {
			fmt.Printf("\n  No expenses on %s yet. Log one with `tripkit expenses add`.\n", trip.Name)
		}
		return nil
	}

	cfg, _ := config.Load()
	order := store.SortOrder(cfg.General.ExpenseSort)
	if expensesSort != "" {
		order, err = parseSortOrder(expensesSort)
		if err != nil {
			return err
		}
	}
	expenses = store.SortExpensesByDate(expenses, order)

	var total float64
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		total += e.Amount
		rows = append(rows, []string{
			e.Date,
			cli.Truncate(e.Name, 24),
			shortID(e.ID),
			e.Category,
			cli.FormatAmount(e.Amount, trip.Currency),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", "", "", cli.FormatAmount(total, trip.Currency)})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("EXPENSES  %s", trip.Name)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Name", "ID", "Category", "Amount"},
		Rows:    rows,
	}))

	return nil
}

func runExpensesAdd(_ *cobra.Command, _ []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := resolveTrip(l, expenseTripArgs())
	if err != nil {
		return err
	}

	category := expenseCategoryF
	if category == "" {
		category = string(model.CategoryOther)
	}
	date := expenseDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	expense := model.Expense{
		ID:        l.NewID(),
		Name:      expenseName,
		Category:  category,
		Amount:    expenseAmount,
		Date:      date,
		CreatedAt: time.Now(),
	}

	ok, err := l.AddExpense(trip.ID, expense)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("trip %q not found", trip.ID)
	}

	fmt.Printf("  Logged %s (%s) on %s\n",
		expense.Name, cli.FormatAmount(expense.Amount, trip.Currency), trip.Name)
	return nil
}

func runExpensesEdit(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := resolveTrip(l, expenseTripArgs())
	if err != nil {
		return err
	}

	existing, ok := findExpense(trip, args[0])
	if !ok {
		return fmt.Errorf("expense %q not found on %s", args[0], trip.Name)
	}

	// Only flags the caller actually set overwrite fields.
	updated := existing
	if cmd.Flags().Changed("name") {
		updated.Name = expenseName
	}
	if cmd.Flags().Changed("category") {
		updated.Category = expenseCategoryF
	}
	if cmd.Flags().Changed("amount") {
		updated.Amount = expenseAmount
	}
	if cmd.Flags().Changed("date") {
		updated.Date = expenseDate
	}

	ok, err = l.UpdateExpense(trip.ID, existing.ID, updated)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("expense %q not found on %s", args[0], trip.Name)
	}

	fmt.Printf("  Updated %s\n", updated.Name)
	return nil
}

func runExpensesDelete(_ *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	trip, err := resolveTrip(l, expenseTripArgs())
	if err != nil {
		return err
	}

	existing, ok := findExpense(trip, args[0])
	if !ok {
		return fmt.Errorf("expense %q not found on %s", args[0], trip.Name)
	}

	ok, err = l.DeleteExpense(trip.ID, existing.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("expense %q not found on %s", args[0], trip.Name)
	}

	fmt.Printf("  Deleted %s\n", existing.Name)
	return nil
}

// findExpense matches an expense by exact ID, then by unique ID prefix.
func findExpense(trip model.Trip, id string) (model.Expense, bool) {
	var matches []model.Expense
	for _, e := range trip.Expenses {
		if e.ID == id {
			return e, true
		}
		if len(id) > 0 && len(e.ID) > len(id) && e.ID[:len(id)] == id {
			matches = append(matches, e)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	return model.Expense{}, false
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"tripkit/internal/config"
	"tripkit/internal/model"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to tripkit!")
	fmt.Println()

	// 1. Default currency for new trips
	fmt.Println("  1. Default currency for new trips")
	for i, code := range model.CurrencyCodes {
		marker := ""
		if code == cfg.General.DefaultCurrency {
			marker = " [current]"
		}
		fmt.Printf("     (%d) %s %s%s\n", i+1, code, model.CurrencySymbol(code), marker)
	}
	fmt.Println("     Or type any other currency code.")
	fmt.Print("     > ")
	currencyChoice, _ := reader.ReadString('\n')
	currencyChoice = strings.TrimSpace(currencyChoice)
	switch {
	case currencyChoice == "":
		// keep current
	case len(currencyChoice) == 1 && currencyChoice[0] >= '1' && currencyChoice[0] <= byte('0'+len(model.CurrencyCodes)):
		cfg.General.DefaultCurrency = model.CurrencyCodes[currencyChoice[0]-'1']
	default:
		cfg.General.DefaultCurrency = strings.ToUpper(currencyChoice)
	}
	fmt.Println()

	// 2. Trip list order
	fmt.Println("  2. Trip list order")
	fmt.Println("     (1) Newest first [default]")
	fmt.Println("     (2) Oldest first")
	fmt.Print("     > ")
	sortChoice, _ := reader.ReadString('\n')
	if strings.TrimSpace(sortChoice) == "2" {
		cfg.General.TripSort = "oldest"
	} else {
		cfg.General.TripSort = "newest"
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	if strings.TrimSpace(themeChoice) == "2" {
		cfg.Appearance.Theme = "catppuccin-mocha"
	} else {
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `tripkit setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

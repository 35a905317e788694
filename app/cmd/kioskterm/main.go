// Command kioskterm is an interactive in-store terminal built on the
// storefront client. A shopper identifies with a loyalty card, confirms a
// one-time passcode, scans products into a local basket and checks out,
// which merges the basket into the server cart as an in-store pickup order.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"freshmart-client/app/config"
	"freshmart-client/app/di"
	"freshmart-client/app/domain"
	"freshmart-client/app/utils/logger"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Starting kiosk terminal",
		"version", getVersion(),
		"api", cfg.APIBaseURL,
		"log_level", cfg.LogLevel)

	// Initialize dependency injection container
	container, err := di.NewContainer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to initialize dependency container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Restore any basket left over from a previous run
	if err := container.KioskUsecase.Resume(ctx); err != nil {
		appLogger.Warn("Could not resume kiosk state", "error", err)
	}
	if session := container.KioskUsecase.Session(); session != nil {
		fmt.Printf("Welcome back, %s\n", greetingName(session.Customer))
	}

	if err := run(ctx, container); err != nil && ctx.Err() == nil {
		appLogger.Error("Terminal stopped", "error", err)
		os.Exit(1)
	}

	appLogger.Info("Terminal exited")
}

func run(ctx context.Context, c *di.Container) error {
	scanner := bufio.NewScanner(os.Stdin)
	printHelp()

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "help":
			printHelp()
		case "otp":
			cmdRequestOTP(ctx, c, fields[1:])
		case "verify":
			cmdVerifyOTP(ctx, c, fields[1:])
		case "scan":
			cmdScan(ctx, c, fields[1:])
		case "qty":
			cmdQuantity(ctx, c, fields[1:])
		case "rm":
			cmdRemove(ctx, c, fields[1:])
		case "cart":
			printCart(c.KioskUsecase.Cart())
		case "checkout":
			cmdCheckout(ctx, c, fields[1:])
		case "logout":
			c.KioskUsecase.Logout(ctx)
			fmt.Println("Session closed.")
		case "quit", "exit":
			return nil
		default:
			fmt.Printf("Unknown command: %s (try 'help')\n", fields[0])
		}
	}
}

func cmdRequestOTP(ctx context.Context, c *di.Container, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: otp <loyalty-card>")
		return
	}

	challenge, err := c.KioskUsecase.RequestOTP(ctx, args[0])
	if err != nil {
		fmt.Printf("Could not request passcode: %v\n", err)
		return
	}
	fmt.Printf("Hello %s. %s (valid for %d minutes)\n",
		challenge.CustomerName, challenge.Message, challenge.ExpiresInMinutes)
}

func cmdVerifyOTP(ctx context.Context, c *di.Container, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: verify <loyalty-card> <code>")
		return
	}

	session, err := c.KioskUsecase.VerifyOTP(ctx, args[0], args[1])
	if err != nil {
		fmt.Printf("Verification failed: %v\n", err)
		return
	}
	fmt.Printf("Signed in as %s\n", greetingName(session.Customer))
}

func cmdScan(ctx context.Context, c *di.Container, args []string) {
	if len(args) < 3 {
		fmt.Println("Usage: scan <product-id> <price> <name...>")
		return
	}

	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Printf("Invalid product id: %s\n", args[0])
		return
	}
	price, err := decimal.NewFromString(args[1])
	if err != nil {
		fmt.Printf("Invalid price: %s\n", args[1])
		return
	}

	product := domain.ProductSnapshot{
		ID:    productID,
		Name:  strings.Join(args[2:], " "),
		Price: price,
	}
	if err := c.KioskUsecase.AddOrIncrement(ctx, product); err != nil {
		fmt.Printf("Could not add item: %v\n", err)
		return
	}
	printCart(c.KioskUsecase.Cart())
}

func cmdQuantity(ctx context.Context, c *di.Container, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: qty <item-id> <delta>")
		return
	}

	delta, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Printf("Invalid delta: %s\n", args[1])
		return
	}
	if err := c.KioskUsecase.UpdateQuantity(ctx, args[0], delta); err != nil {
		fmt.Printf("Could not change quantity: %v\n", err)
		return
	}
	printCart(c.KioskUsecase.Cart())
}

func cmdRemove(ctx context.Context, c *di.Container, args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: rm <item-id>")
		return
	}

	if err := c.KioskUsecase.RemoveItem(ctx, args[0]); err != nil {
		fmt.Printf("Could not remove item: %v\n", err)
		return
	}
	printCart(c.KioskUsecase.Cart())
}

func cmdCheckout(ctx context.Context, c *di.Container, args []string) {
	paymentMethod := "cash"
	if len(args) == 1 {
		paymentMethod = args[0]
	}

	confirmation, err := c.KioskUsecase.Checkout(ctx, paymentMethod)
	if err != nil {
		var partial *domain.PartialMergeError
		if errors.As(err, &partial) {
			fmt.Printf("Checkout incomplete: %d of %d items were pushed to the server. %v\n",
				partial.Pushed, partial.Total, partial.Cause)
			fmt.Println("Your basket is unchanged; please ask a clerk for help.")
			return
		}
		fmt.Printf("Checkout failed: %v\n", err)
		return
	}

	fmt.Printf("Purchase #%d confirmed: %s total %s\n",
		confirmation.PurchaseID, confirmation.Message, confirmation.TotalAmount.StringFixed(2))
	if confirmation.Rewards != nil {
		fmt.Printf("Loyalty points earned: %d\n", confirmation.Rewards.PointsEarned)
	}
}

// greetingName prefers the first name; older accounts may only carry a
// username.
func greetingName(c domain.CustomerSummary) string {
	if c.FirstName != "" {
		return c.FirstName
	}
	return c.Username
}

func printCart(cart *domain.LocalCart) {
	if cart == nil || cart.IsEmpty() {
		fmt.Println("Basket is empty.")
		return
	}

	for _, item := range cart.Items {
		fmt.Printf("  [%s] %dx %-30s %s\n",
			item.ID, item.Quantity, item.Product.Name,
			item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2))
	}
	fmt.Printf("  Total: %s\n", cart.TotalAmount.StringFixed(2))
}

func printHelp() {
	fmt.Println(`Commands:
  otp <loyalty-card>               request a one-time passcode
  verify <loyalty-card> <code>     confirm the passcode and sign in
  scan <product-id> <price> <name> add a product to the basket
  qty <item-id> <delta>            change an item quantity
  rm <item-id>                     remove an item
  cart                             show the basket
  checkout [payment-method]        merge the basket and pay (default cash)
  logout                           close the session
  quit                             exit`)
}

// getVersion returns the application version
func getVersion() string {
	if version := os.Getenv("VERSION"); version != "" {
		return version
	}
	return "dev"
}

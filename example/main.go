// An example pizza-ordering CLI showing most of the commander features:
// declarative options with coercion and choices, negatable flags,
// positional argument specifications, subcommands, tag validation and
// shell completions.
package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/reeflective/commander"
	"github.com/reeflective/commander/gen/completions"
	"github.com/reeflective/commander/gen/flags"
)

func main() {
	root := commander.New("pizza")
	root.Description("An example pizza ordering CLI")
	root.SetVersion("0.1.0")

	order := root.Command("order <flavor> [extras...]")
	order.Description("Order one or more pizzas")
	order.Alias("o")

	order.Option("-s, --size <size>", "size of the pizza",
		[]string{"small", "medium", "large"}, "medium")
	order.Option("-c, --count <n>", "number of pizzas", commander.Int, 1)
	order.Option("--no-sauce", "hold the tomato sauce")
	order.Option("--drink [drink]", "add a drink to the order")
	order.Option("-i, --ingredient <name>", "extra ingredients",
		commander.CoerceFunc(commander.Collect))
	order.Option("-t, --table <n>", "table number",
		regexp.MustCompile(`\d+`))

	order.Action(func(args []string) error {
		fmt.Printf("ordering %d %s %s pizza(s), extras %v\n",
			order.GetInt("count", 1),
			order.GetString("size", "medium"),
			args[0], args[1:])

		if !order.GetBool("sauce") {
			fmt.Println("  without sauce")
		}

		if drink := order.Value("drink"); drink != nil {
			fmt.Printf("  with a drink: %v\n", drink)
		}

		for key, val := range order.Values() {
			fmt.Printf("  %s = %v\n", key, val)
		}

		return nil
	})

	deliver := root.Command("deliver <address>")
	deliver.Description("Deliver an order")
	deliver.Option("-p, --phone <number>", "contact phone number",
		commander.Validate("e164"))

	deliver.Action(func(args []string) error {
		fmt.Printf("delivering to %s\n", args[0])

		return nil
	})

	cmd, err := flags.Generate(root, flags.WithValidation())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if _, err := completions.Generate(cmd, root, nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

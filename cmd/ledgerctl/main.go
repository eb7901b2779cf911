// Command ledgerctl imports, exports and lists department ledgers through the API.
//
//	ledgerctl [flags] import  -department "Infant Ministry" -family accounting -file ledger.csv
//	ledgerctl [flags] export  -department "Infant Ministry" -family ministry > ministry.csv
//	ledgerctl [flags] list    -department "Infant Ministry" -sort amount -direction desc
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/UnimationKorea/finance-church-personal/internal/client"
	"github.com/UnimationKorea/finance-church-personal/internal/models"
	"github.com/joho/godotenv"
)

var exitFunc = os.Exit

func main() {
	// Settings can be kept in a .env file next to the ledger exports
	_ = godotenv.Load()

	code := cli(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	exitFunc(code)
}

type options struct {
	api        string
	password   string
	department models.Department
	family     models.Family
	file       string
	sort       string
	direction  string
}

func cli(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: ledgerctl import|export|list [flags]")
		return 2
	}

	command := args[0]
	fs := flag.NewFlagSet("ledgerctl "+command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	var department, family string
	fs.StringVar(&o.api, "api", env("LEDGER_API_URL", "http://localhost:8080"), "API root URL")
	fs.StringVar(&o.password, "password", os.Getenv("LEDGER_PASSWORD"), "department password, needed when the API requires login")
	fs.StringVar(&department, "department", "", "department name")
	fs.StringVar(&family, "family", "accounting", "accounting or ministry")
	fs.StringVar(&o.file, "file", "-", "CSV file to import, - reads stdin")
	fs.StringVar(&o.sort, "sort", "", "list: field to sort by")
	fs.StringVar(&o.direction, "direction", "", "list: asc or desc")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	var err error
	if o.department, err = models.ParseDepartment(department); err != nil {
		fmt.Fprintf(stderr, "ledgerctl: %v\n", err)
		return 2
	}

	switch family {
	case "accounting":
		o.family = models.FamilyTransaction
	case "ministry":
		o.family = models.FamilyMinistry
	default:
		fmt.Fprintf(stderr, "ledgerctl: family must be accounting or ministry, not '%s'\n", family)
		return 2
	}

	c := client.New(o.api)
	if o.password != "" {
		if err := c.Login(ctx, o.department, o.password); err != nil {
			fmt.Fprintf(stderr, "ledgerctl: login failed: %v\n", err)
			return 1
		}
	}

	switch command {
	case "import":
		err = runImport(ctx, c, o, stdin, stdout)
	case "export":
		err = c.Export(ctx, o.department, o.family, stdout)
	case "list":
		err = runList(ctx, c, o, stdout)
	default:
		fmt.Fprintf(stderr, "ledgerctl: unknown command '%s'\n", command)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "ledgerctl: %s failed: %v\n", command, err)
		return 1
	}
	return 0
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func runImport(ctx context.Context, c *client.Client, o options, stdin io.Reader, stdout io.Writer) error {
	r := stdin
	if o.file != "-" {
		f, err := os.Open(o.file)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	result, err := c.ImportCSV(ctx, o.department, o.family, r)
	if err != nil {
		return err
	}

	for _, e := range result.Errors {
		fmt.Fprintf(stdout, "line %d: %s\n", e.Line, e.Error)
	}
	fmt.Fprintf(stdout, "%d imported, %d failed\n", result.Imported, result.Failed)

	if result.Imported == 0 && result.Failed > 0 {
		return errors.New("no line could be imported")
	}
	return nil
}

func runList(ctx context.Context, c *client.Client, o options, stdout io.Writer) error {
	spec, err := models.ParseSortSpec(o.sort, o.direction)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	if o.family == models.FamilyMinistry {
		list, err := c.ListMinistryItems(ctx, o.department, spec)
		if err != nil {
			return err
		}

		fmt.Fprintln(w, "ID\tDATE\tKIND\tCATEGORY\tCONTENT")
		for _, m := range list.Records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.ID, m.Date, m.Kind, m.Category, m.Content)
		}
		return nil
	}

	list, err := c.ListTransactions(ctx, o.department, spec)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "ID\tDATE\tKIND\tCATEGORY\tDESCRIPTION\tMANAGER\tAMOUNT")
	for _, t := range list.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", t.ID, t.Date, t.Kind, t.Category, t.Description, t.Manager, t.Amount)
	}
	fmt.Fprintf(w, "\t\t\t\tINCOME %s\tEXPENSE %s\tBALANCE %s\n", list.Summary.Income, list.Summary.Expense, list.Summary.Balance)
	return nil
}

// journal_inspect dumps the lifecycle journal of a gateway, running or not.
//
//	go run ./tools -db ./data/journal -n 100
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"wa-gateway/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/journal", "Path to the badger journal")
	limit := flag.Int("n", 50, "Number of records, newest first, counted after the kind filter")
	kind := flag.String("kind", "", "Only show this event kind")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repo := repositories.NewLifecycleRepository(db, slog.Default(), *limit)
	records, err := repo.GetRecentByKind(*kind, *limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Kind", "At", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, r := range records {
		// First 8 characters are enough to tell records apart
		table.Append([]string{
			r.ID.String()[:8],
			r.Kind,
			r.At.Local().Format("2006-01-02 15:04:05.000"),
			r.Detail,
		})
	}
	table.Render()
}

// openDB opens the journal read-only, next to a gateway that may hold the lock.
func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Log truncate required") {
			// A crashed gateway leaves a value log to truncate, which needs write access once
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)
			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}

// hotelcleanctl drives the cleaning-record store from the command line:
// list, create, update, and delete records, and build printable or export
// files from them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/msantanna/hotelclean/internal/client"
	"github.com/msantanna/hotelclean/internal/config"
	"github.com/msantanna/hotelclean/internal/domain"
	"github.com/msantanna/hotelclean/internal/logging"
	"github.com/msantanna/hotelclean/internal/reportsink/local"
	"github.com/msantanna/hotelclean/internal/view"
)

const usage = `usage: hotelcleanctl <command> [flags]

commands:
  list                             show all records
  create -maids a,b [-excluded r]  register a new day
  update -id n -maids a,b [-excluded r]
  delete -id n
  print -id n                      write a printable HTML report
  export-csv                       write todos_registros.csv
  export-xlsx                      write todos_registros.xlsx
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	sink, err := local.NewLocalSink(cfg.ExportPath)
	if err != nil {
		logger.Error("failed to initialize export directory", "error", err)
		os.Exit(1)
	}

	controller := view.NewController(client.New(cfg.ServerURL, logger), sink, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := run(ctx, controller, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, controller *view.Controller, command string, args []string) error {
	fs := flag.NewFlagSet(command, flag.ExitOnError)
	id := fs.Int64("id", 0, "record id")
	maids := fs.String("maids", "", "comma-separated maid names")
	excluded := fs.String("excluded", "", "comma-separated excluded rooms")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch command {
	case "list":
		if err := controller.Refresh(ctx); err != nil {
			return err
		}
		printRecords(controller.Records())
		return nil

	case "create":
		input, err := inputFromFlags(*maids, *excluded)
		if err != nil {
			return err
		}
		if err := controller.CreateThenRefresh(ctx, input); err != nil {
			return err
		}
		printRecords(controller.Records())
		return nil

	case "update":
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		input, err := inputFromFlags(*maids, *excluded)
		if err != nil {
			return err
		}
		if err := controller.UpdateThenRefresh(ctx, *id, input); err != nil {
			return err
		}
		printRecords(controller.Records())
		return nil

	case "delete":
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		if err := controller.RemoveThenRefresh(ctx, *id); err != nil {
			return err
		}
		printRecords(controller.Records())
		return nil

	case "print":
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		location, err := controller.BuildPrintable(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Println(location)
		return nil

	case "export-csv":
		location, err := controller.BuildCSVExport(ctx)
		if err != nil {
			return err
		}
		fmt.Println(location)
		return nil

	case "export-xlsx":
		location, err := controller.BuildExcelExport(ctx)
		if err != nil {
			return err
		}
		fmt.Println(location)
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func inputFromFlags(maids, excluded string) (domain.NewRecordInput, error) {
	var names []string
	for _, name := range strings.Split(maids, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return domain.NewRecordInput{}, fmt.Errorf("-maids is required")
	}
	return domain.NewRecordInput{
		NumMaids:      len(names),
		MaidNames:     names,
		ExcludedRooms: excluded,
	}, nil
}

func printRecords(records []domain.AssignmentRecord) {
	if len(records) == 0 {
		fmt.Println("no records")
		return
	}
	for _, rec := range records {
		fmt.Printf("#%d  %s  camareiras: %s  quartos: %d\n",
			rec.ID, rec.RegistrationTime, strings.Join(rec.Maids, ", "), len(rec.RoomsToClean))
		for _, a := range rec.Assignments {
			fmt.Printf("    %s\n", a)
		}
	}
}

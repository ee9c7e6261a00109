package main

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avtomaster/workshop/internal/config"
	"github.com/avtomaster/workshop/internal/service"
	"github.com/avtomaster/workshop/internal/store"
	"github.com/avtomaster/workshop/internal/testdata"
	"github.com/avtomaster/workshop/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		log.Printf("warn: using local timezone due to load failure: %v", err)
		loc = time.Local
	}

	st := store.New(loc)
	if cfg.Seed.Demo {
		if err := testdata.Seed(st); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	search := &service.ClientSearch{Store: st}
	ledger := &service.LedgerCSV{Store: st}

	p := tea.NewProgram(tui.New(cfg, st, search, ledger, loc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

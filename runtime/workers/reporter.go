package workers

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"peerchat/contract"
	"peerchat/domain"
)

// ReporterWorker renders a periodic operator view of the registry and
// the group rooms.
type ReporterWorker struct {
	out      io.Writer
	registry contract.IRegistry
	rooms    contract.IRoomManager
	interval time.Duration
}

func NewReporterWorker(out io.Writer, registry contract.IRegistry,
	rooms contract.IRoomManager, interval time.Duration) *ReporterWorker {
	return &ReporterWorker{out: out, registry: registry, rooms: rooms, interval: interval}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.print()
			return nil
		case <-ticker.C:
			w.print()
		}
	}
}

func (w *ReporterWorker) print() {
	clients := w.registry.Snapshot()
	sort.Slice(clients, func(i, j int) bool { return clients[i].Username < clients[j].Username })

	table := tablewriter.NewWriter(w.out)
	table.SetHeader([]string{"User", "Endpoint", "State", "Budget"})
	for _, row := range lo.Map(clients, func(c domain.Client, _ int) []string {
		return []string{
			c.Username,
			c.Endpoint(),
			c.State.Kind.String(),
			c.Budget.Round(time.Second).String(),
		}
	}) {
		table.Append(row)
	}
	table.Render()

	occupancy := w.rooms.Occupancy()
	if len(occupancy) == 0 {
		return
	}
	groups := tablewriter.NewWriter(w.out)
	groups.SetHeader([]string{"Group", "Members"})
	for id, count := range occupancy {
		groups.Append([]string{fmt.Sprintf("%d", id), strconv.Itoa(count)})
	}
	groups.Render()
}

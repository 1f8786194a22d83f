package console

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hrms-lite/hrms-go/internal/console/notify"
)

// Card is one dashboard tile.
type Card struct {
	Title       string
	Description string
	Stat        string
}

// DashboardPage shows the employee total and today's present count.
type DashboardPage struct {
	api      API
	notifier notify.Notifier
	logger   *slog.Logger

	mu           sync.Mutex
	totalUsers   *int64
	presentToday *int
}

func NewDashboardPage(api API, n notify.Notifier, opts ...Option) *DashboardPage {
	o := newOptions(opts)
	return &DashboardPage{api: api, notifier: n, logger: o.logger}
}

// Load runs both fetches concurrently. Either may fail without affecting
// the other; a failed count keeps its previous value.
func (p *DashboardPage) Load(ctx context.Context) {
	var g errgroup.Group

	g.Go(func() error {
		counts, err := p.api.CountEmployees(ctx)
		if err != nil {
			p.logger.ErrorContext(ctx, "Failed to fetch employee count", "error", err)
			p.notifier.Notify(notify.Info("Error", "Failed to fetch employee count"))
			return nil
		}
		total := counts.TotalUsers
		p.mu.Lock()
		p.totalUsers = &total
		p.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		records, err := p.api.TodayPresent(ctx)
		if err != nil {
			p.logger.ErrorContext(ctx, "Failed to fetch attendance counts", "error", err)
			p.notifier.Notify(notify.Info("Error", "Failed to fetch attendance counts"))
			return nil
		}
		present := len(records)
		p.mu.Lock()
		p.presentToday = &present
		p.mu.Unlock()
		return nil
	})

	_ = g.Wait()
}

// TotalUsers is nil until a count has been fetched.
func (p *DashboardPage) TotalUsers() *int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalUsers
}

// PresentToday is nil until today's attendance has been fetched.
func (p *DashboardPage) PresentToday() *int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.presentToday
}

// Cards omits the stat line of a count that is still unknown.
func (p *DashboardPage) Cards() []Card {
	employees := Card{Title: "Employees", Description: "Manage employee records and information"}
	if v := p.TotalUsers(); v != nil {
		employees.Stat = fmt.Sprintf("Total employees: %d", *v)
	}
	attendance := Card{Title: "Attendance", Description: "Track attendance and manage records"}
	if v := p.PresentToday(); v != nil {
		attendance.Stat = fmt.Sprintf("Present today: %d", *v)
	}
	return []Card{employees, attendance}
}

func (p *DashboardPage) Render(w io.Writer) error {
	return RenderCards(w, p.Cards())
}

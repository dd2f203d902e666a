package dashboard

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cryptodash/market-gateway/config"
	"github.com/cryptodash/market-gateway/events"
	"github.com/cryptodash/market-gateway/interfaces"
	"github.com/cryptodash/market-gateway/scheduler"
)

// Status is the load state of the active view
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// View selects which data set the controller keeps current
type View string

const (
	ViewMarkets   View = "markets"
	ViewWatchlist View = "watchlist"
)

// SortKey selects the column the coin rows are ordered by
type SortKey string

const (
	SortByRank      SortKey = "rank"
	SortByName      SortKey = "name"
	SortByPrice     SortKey = "price"
	SortByChange    SortKey = "change"
	SortByMarketCap SortKey = "market_cap"
)

// State is a consistent snapshot of the controller
type State struct {
	Status      Status
	View        View
	Page        int
	Currency    string
	Query       string
	Coins       []interfaces.Coin
	HasNextPage bool
	Err         string
	// Notice is a short-lived user-facing message (watchlist changes,
	// refresh failures); the next successful refresh clears it
	Notice      string
	SortKey     SortKey
	SortAsc     bool
	Watchlist   []string
	UpdatedAt   time.Time
}

// Controller keeps the dashboard's view of the market current. It owns
// the watchlist id set, refetches on every parameter change, polls the
// active view in the background and notifies subscribers after each
// state transition.
//
// A failed refresh keeps the previously loaded rows on screen; only the
// first load of a view surfaces an empty failed state.
type Controller struct {
	config     *config.DashboardConfig
	marketData interfaces.MarketDataAPI
	store      WatchlistStore
	events     *events.SubscriptionManager
	scheduler  *scheduler.Scheduler

	mu        sync.RWMutex
	ctx       context.Context
	view      View
	page      int
	currency  string
	query     string
	sortKey   SortKey
	sortAsc   bool
	watchlist []string
	coins     []interfaces.Coin
	hasNext   bool
	status    Status
	errText   string
	notice    string
	updatedAt time.Time
}

func NewController(cfg *config.DashboardConfig, marketData interfaces.MarketDataAPI, store WatchlistStore) *Controller {
	return &Controller{
		config:     cfg,
		marketData: marketData,
		store:      store,
		events:     events.NewSubscriptionManager(),
		view:       ViewMarkets,
		page:       1,
		currency:   "usd",
		sortKey:    SortByRank,
		sortAsc:    true,
		watchlist:  []string{},
		status:     StatusIdle,
	}
}

// Start implements core.Interface: it restores the watchlist, performs
// the initial load and begins background polling of the active view
func (c *Controller) Start(ctx context.Context) error {
	ids, err := c.store.Load()
	if err != nil {
		// A corrupt store should not keep the dashboard down
		log.Printf("Dashboard: could not restore watchlist: %v", err)
		ids = []string{}
	}

	c.mu.Lock()
	c.ctx = ctx
	c.watchlist = ids
	c.mu.Unlock()

	c.refresh(ctx)

	c.scheduler = scheduler.New(c.config.GetRefreshInterval(), c.refresh)
	c.scheduler.Start(ctx, false)
	return nil
}

// Stop implements core.Interface
func (c *Controller) Stop() {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
}

// Subscribe registers an observer notified after every state transition
func (c *Controller) Subscribe() events.ISubscription {
	return c.events.Subscribe()
}

// State returns a snapshot of the current controller state
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return State{
		Status:      c.status,
		View:        c.view,
		Page:        c.page,
		Currency:    c.currency,
		Query:       c.query,
		Coins:       append([]interfaces.Coin(nil), c.coins...),
		HasNextPage: c.hasNext,
		Err:         c.errText,
		Notice:      c.notice,
		SortKey:     c.sortKey,
		SortAsc:     c.sortAsc,
		Watchlist:   append([]string(nil), c.watchlist...),
		UpdatedAt:   c.updatedAt,
	}
}

// SetView switches the active view and refetches it
func (c *Controller) SetView(view View) {
	c.mu.Lock()
	if c.view == view {
		c.mu.Unlock()
		return
	}
	c.view = view
	ctx := c.ctx
	c.mu.Unlock()

	c.refresh(ctx)
}

// SetPage moves the markets list to another page and refetches
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.page = page
	ctx := c.ctx
	c.mu.Unlock()

	c.refresh(ctx)
}

// SetCurrency changes the quote currency and refetches the active view
func (c *Controller) SetCurrency(currency string) {
	c.mu.Lock()
	c.currency = strings.ToLower(currency)
	ctx := c.ctx
	c.mu.Unlock()

	c.refresh(ctx)
}

// SetQuery changes the free-text filter, resets pagination and refetches
func (c *Controller) SetQuery(query string) {
	c.mu.Lock()
	c.query = strings.TrimSpace(query)
	c.page = 1
	ctx := c.ctx
	c.mu.Unlock()

	c.refresh(ctx)
}

// ToggleSort orders the loaded rows by key. Selecting the active key
// flips the direction; selecting another key starts descending. Sorting
// is local, never refetches, and lasts only until the next fetch
// replaces the rows in provider order.
func (c *Controller) ToggleSort(key SortKey) {
	c.mu.Lock()
	if c.sortKey == key {
		c.sortAsc = !c.sortAsc
	} else {
		c.sortKey = key
		c.sortAsc = false
	}
	sortCoins(c.coins, c.sortKey, c.sortAsc)
	ctx := c.ctx
	c.mu.Unlock()

	c.notify(ctx)
}

// ToggleWatchlist adds id to the watchlist, or removes it when already
// present. The change is persisted synchronously, observers are
// notified and a transient notice is raised; the watchlist view
// refetches when it is active.
func (c *Controller) ToggleWatchlist(id string) {
	c.mu.Lock()
	found := -1
	for i, existing := range c.watchlist {
		if existing == id {
			found = i
			break
		}
	}
	notice := id + " added to watchlist"
	if found >= 0 {
		c.watchlist = append(c.watchlist[:found], c.watchlist[found+1:]...)
		notice = id + " removed from watchlist"
	} else {
		c.watchlist = append(c.watchlist, id)
	}
	ids := append([]string(nil), c.watchlist...)
	view := c.view
	ctx := c.ctx
	c.mu.Unlock()

	if err := c.store.Save(ids); err != nil {
		log.Printf("Dashboard: could not persist watchlist: %v", err)
	}

	if view == ViewWatchlist {
		c.refresh(ctx)
	}

	// Raised after the refresh so it survives until the next one
	c.mu.Lock()
	c.notice = notice
	c.mu.Unlock()

	c.notify(ctx)
}

// IsWatched reports whether id is on the watchlist
func (c *Controller) IsWatched(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, existing := range c.watchlist {
		if existing == id {
			return true
		}
	}
	return false
}

// refresh loads the active view. On failure the previously loaded rows
// stay in place and only the status and error text change.
func (c *Controller) refresh(ctx context.Context) {
	c.mu.Lock()
	c.status = StatusLoading
	view := c.view
	query := interfaces.CoinsQuery{
		Page:     c.page,
		PerPage:  c.config.GetPerPage(),
		Currency: c.currency,
		Query:    c.query,
	}
	ids := append([]string(nil), c.watchlist...)
	c.mu.Unlock()

	var coins []interfaces.Coin
	var hasNext bool
	var err error

	switch view {
	case ViewWatchlist:
		if len(ids) > 0 {
			coins, _, err = c.marketData.Watchlist(ctx, ids, query.Currency)
		} else {
			coins = []interfaces.Coin{}
		}
	default:
		var response *interfaces.CoinsResponse
		response, _, err = c.marketData.Coins(ctx, query)
		if err == nil {
			coins = response.Coins
			hasNext = response.HasNextPage
		}
	}

	c.mu.Lock()
	if err != nil {
		log.Printf("Dashboard: refresh of %s view failed: %v", view, err)
		c.status = StatusFailed
		c.errText = err.Error()
		c.notice = "Could not refresh the " + string(view) + " view"
	} else {
		// Fresh rows arrive in provider order; any active sort lasts
		// only until the next fetch
		c.coins = coins
		c.hasNext = hasNext
		c.status = StatusLoaded
		c.errText = ""
		c.notice = ""
		c.updatedAt = time.Now()
	}
	c.mu.Unlock()

	c.notify(ctx)
}

func (c *Controller) notify(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	c.events.Emit(ctx)
}

// sortCoins orders rows in place. Ties keep their previous relative
// order.
func sortCoins(coins []interfaces.Coin, key SortKey, asc bool) {
	sort.SliceStable(coins, func(i, j int) bool {
		a, b := coins[i], coins[j]
		if !asc {
			a, b = b, a
		}
		switch key {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByPrice:
			return a.CurrentPrice < b.CurrentPrice
		case SortByChange:
			return a.PriceChangePercentage24h < b.PriceChangePercentage24h
		case SortByMarketCap:
			return a.MarketCap < b.MarketCap
		default:
			return a.MarketCapRank < b.MarketCapRank
		}
	})
}

package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sundrymarket/storefront/pkg/enums"
	"github.com/sundrymarket/storefront/pkg/logger"
	"github.com/sundrymarket/storefront/pkg/metrics"
	"github.com/sundrymarket/storefront/pkg/storage"
	"github.com/sundrymarket/storefront/pkg/types"
)

// Line is one cart entry. Prices are snapshots taken at add-time and are not
// re-fetched; StockCeiling caps the quantity for the life of the line.
type Line struct {
	ProductID         string `json:"product_id"`
	Title             string `json:"title"`
	UnitPrice         int64  `json:"unit_price"`
	OriginalUnitPrice *int64 `json:"original_unit_price,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`
	Quantity          int    `json:"quantity"`
	StockCeiling      int    `json:"stock_ceiling"`
}

// AddItemInput carries the product snapshot for an add intent.
type AddItemInput struct {
	ProductID         string
	Title             string
	UnitPrice         int64
	OriginalUnitPrice *int64
	ImageURL          string
	StockCeiling      int
}

// SignalSink receives user-facing notifications as they are emitted. The
// toast/snackbar layer subscribes here.
type SignalSink func(types.Signal)

// Cart owns a productID to line mapping with write-through persistence.
// Business-rule violations (stock ceiling) never surface as errors: the
// mutation is dropped and an error-kind signal is returned instead.
type Cart struct {
	mu      sync.Mutex
	key     string
	store   storage.Store
	logg    *logger.Logger
	metrics *metrics.StorefrontMetrics
	sink    SignalSink
	lines   map[string]*Line
	order   []string
}

// Options wires the optional cart collaborators.
type Options struct {
	Logger  *logger.Logger
	Metrics *metrics.StorefrontMetrics
	Sink    SignalSink
}

// New hydrates a cart from durable storage under the given key. Missing or
// unparsable stored state degrades to an empty cart.
func New(ctx context.Context, key string, store storage.Store, opts Options) (*Cart, error) {
	if key == "" {
		return nil, fmt.Errorf("cart storage key required")
	}
	if store == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	c := &Cart{
		key:     key,
		store:   store,
		logg:    opts.Logger,
		metrics: opts.Metrics,
		sink:    opts.Sink,
		lines:   map[string]*Line{},
	}
	c.hydrate(ctx)
	return c, nil
}

func (c *Cart) hydrate(ctx context.Context) {
	data, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		c.warn(ctx, "cart.hydrate.load_failed", err)
		return
	}
	if !ok {
		return
	}
	var stored []Line
	if err := json.Unmarshal(data, &stored); err != nil {
		c.warn(ctx, "cart.hydrate.parse_failed", err)
		return
	}
	for _, line := range stored {
		if line.ProductID == "" || line.Quantity < 1 {
			continue
		}
		copied := line
		c.lines[line.ProductID] = &copied
		c.order = append(c.order, line.ProductID)
	}
}

// Add creates a line with quantity 1 or increments an existing one. An
// increment beyond the stock ceiling is rejected.
func (c *Cart) Add(ctx context.Context, input AddItemInput) types.Signal {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, exists := c.lines[input.ProductID]
	if !exists {
		c.lines[input.ProductID] = &Line{
			ProductID:         input.ProductID,
			Title:             input.Title,
			UnitPrice:         input.UnitPrice,
			OriginalUnitPrice: input.OriginalUnitPrice,
			ImageURL:          input.ImageURL,
			Quantity:          1,
			StockCeiling:      input.StockCeiling,
		}
		c.order = append(c.order, input.ProductID)
		c.persist(ctx)
		return c.emit(ctx, "add", types.Success(fmt.Sprintf("added %q to cart", input.Title)))
	}

	if line.Quantity+1 > line.StockCeiling {
		return c.emit(ctx, "add", types.Error(fmt.Sprintf("insufficient stock for %q", line.Title)))
	}
	line.Quantity++
	c.persist(ctx)
	return c.emit(ctx, "add", types.Success(fmt.Sprintf("increased %q quantity to %d", line.Title, line.Quantity)))
}

// Remove deletes the line when present; removing an absent line is a no-op.
func (c *Cart) Remove(ctx context.Context, productID string) types.Signal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(ctx, productID)
}

func (c *Cart) removeLocked(ctx context.Context, productID string) types.Signal {
	line, exists := c.lines[productID]
	if !exists {
		return c.emit(ctx, "remove", types.Info("item is not in the cart"))
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.persist(ctx)
	return c.emit(ctx, "remove", types.Info(fmt.Sprintf("removed %q from cart", line.Title)))
}

// UpdateQuantity sets the line quantity. Anything below one removes the line;
// anything above the stock ceiling is rejected.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) types.Signal {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		return c.removeLocked(ctx, productID)
	}
	line, exists := c.lines[productID]
	if !exists {
		return c.emit(ctx, "update", types.Info("item is not in the cart"))
	}
	if quantity > line.StockCeiling {
		return c.emit(ctx, "update", types.Error(fmt.Sprintf("insufficient stock for %q", line.Title)))
	}
	line.Quantity = quantity
	c.persist(ctx)
	return c.emit(ctx, "update", types.Success(fmt.Sprintf("set %q quantity to %d", line.Title, quantity)))
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) types.Signal {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = map[string]*Line{}
	c.order = nil
	c.persist(ctx)
	return c.emit(ctx, "clear", types.Success("cart cleared"))
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.linesLocked()
}

func (c *Cart) linesLocked() []Line {
	lines := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		if line, ok := c.lines[id]; ok {
			lines = append(lines, *line)
		}
	}
	return lines
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across lines, in the
// smallest currency unit.
func (c *Cart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total int64
	for _, line := range c.lines {
		total += line.UnitPrice * int64(line.Quantity)
	}
	return total
}

// persist serializes the whole line collection after every mutation. A write
// failure leaves the in-memory state authoritative for the session.
func (c *Cart) persist(ctx context.Context) {
	data, err := json.Marshal(c.linesLocked())
	if err != nil {
		c.warn(ctx, "cart.persist.encode_failed", err)
		return
	}
	if err := c.store.Save(ctx, c.key, data); err != nil {
		c.warn(ctx, "cart.persist.write_failed", err)
	}
}

func (c *Cart) emit(ctx context.Context, op string, signal types.Signal) types.Signal {
	outcome := "applied"
	if signal.Kind == enums.SignalKindError {
		outcome = "rejected"
	}
	c.metrics.IncCartMutation(op, outcome)
	if c.sink != nil {
		c.sink(signal)
	}
	if c.logg != nil {
		fields := map[string]any{"op": op, "outcome": outcome, "signal": signal.Message}
		c.logg.Info(c.logg.WithFields(ctx, fields), "cart.mutation")
	}
	return signal
}

func (c *Cart) warn(ctx context.Context, msg string, err error) {
	if c.logg == nil {
		return
	}
	c.logg.Warn(c.logg.WithField(ctx, "error", err.Error()), msg)
}

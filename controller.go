package datepicker

import (
	"fmt"
	"log/slog"
)

// Outcome reports what a command did.
type Outcome int

const (
	// Applied means state changed and the view was rendered.
	Applied Outcome = iota
	// Vetoed means a hook aborted the command.
	Vetoed
	// Suppressed means the command would have crossed the bounds.
	Suppressed
	// Ignored means the command does not apply in the current state.
	Ignored
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Vetoed:
		return "vetoed"
	case Suppressed:
		return "suppressed"
	case Ignored:
		return "ignored"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Controller is the navigation and selection state of one picker. It has a
// single owner and is not safe for concurrent use.
type Controller struct {
	cfg       *Config
	listener  Listener
	hooks     []Hook
	initial   string
	reference DateValue
	view      ViewLevel
	active    DateValue
	selection *SelectionSet
	open      bool
}

// ControllerOption configures a Controller in New.
type ControllerOption func(*Controller)

func WithListener(listener Listener) ControllerOption {
	return func(c *Controller) {
		if listener != nil {
			c.listener = listener
		}
	}
}

func WithHooks(hooks ...Hook) ControllerOption {
	return func(c *Controller) {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.hooks = append(c.hooks, hook)
		}
	}
}

// WithInitialText seeds the selection from an existing input value.
func WithInitialText(text string) ControllerOption {
	return func(c *Controller) {
		c.initial = text
	}
}

// New builds a controller. The selection comes from the initial text when
// given, otherwise from cfg.DefaultDate, otherwise it starts empty. A nil cfg
// uses the defaults.
func New(cfg *Config, opts ...ControllerOption) (*Controller, error) {
	if cfg == nil {
		var err error
		if cfg, err = NewConfig(); err != nil {
			return nil, err
		}
	}

	c := &Controller{
		cfg:      cfg,
		listener: nopListener{},
		view:     ViewMonth,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	var dates []DateValue
	if c.initial != "" {
		parsed, err := cfg.ParseValue(c.initial)
		if err != nil {
			cfg.Logger.Warn("datepicker: dropping unparsable initial value",
				slog.String("text", c.initial),
				slog.Any("error", err))
		}
		dates = parsed
	} else if d := cfg.ResolveDefault(); !d.IsZero() {
		dates = []DateValue{d}
	}

	c.selection = NewSelectionSet(cfg.Mode, dates...)
	c.reference = c.firstOrToday()
	return c, nil
}

// Show opens the picker on the month of the first selected date, or today.
func (c *Controller) Show() Outcome {
	if !c.before(&CommandContext{Kind: CommandShow, View: ViewMonth}) {
		return Vetoed
	}
	c.reference = c.firstOrToday()
	c.view = ViewMonth
	c.active = DateValue{}
	c.open = true
	c.render()
	c.listener.OnOpen()
	return Applied
}

// Pick selects d at the month view and drills down at the year and decade
// views. A complete selection then asks to close the picker.
func (c *Controller) Pick(d DateValue) Outcome {
	if d.IsZero() {
		return Ignored
	}
	bounds := c.cfg.Bounds()

	switch c.view {
	case ViewYear:
		if !bounds.ContainsMonth(d) {
			return c.suppressed(CommandPick, d)
		}
		if !c.before(&CommandContext{Kind: CommandPick, Date: d, View: c.view}) {
			return Vetoed
		}
		c.reference = d.StartOfMonth()
		c.view = ViewMonth
		c.render()
		return Applied

	case ViewDecade:
		if !bounds.ContainsYear(d) {
			return c.suppressed(CommandPick, d)
		}
		if !c.before(&CommandContext{Kind: CommandPick, Date: d, View: c.view}) {
			return Vetoed
		}
		c.reference = Date(d.Year(), c.reference.Month(), 1)
		c.view = ViewYear
		c.render()
		return Applied
	}

	if !bounds.Contains(d) {
		return c.suppressed(CommandPick, d)
	}
	if !c.cfg.SelectOtherMonths && !d.SameMonth(c.reference) {
		return c.suppressed(CommandPick, d)
	}
	if !c.before(&CommandContext{Kind: CommandPick, Date: d, View: c.view}) {
		return Vetoed
	}

	c.selection.Push(d)
	c.active = d
	c.reference = d
	c.render()
	c.emitValueChange()

	if c.selection.Complete() {
		c.Hide()
	}
	return Applied
}

// ChangePeriod moves the reference within the current view.
func (c *Controller) ChangePeriod(d DateValue) Outcome {
	if d.IsZero() {
		return Ignored
	}
	if !c.cfg.Bounds().ContainsPeriod(d, c.view) {
		return c.suppressed(CommandChangePeriod, d)
	}
	if !c.before(&CommandContext{Kind: CommandChangePeriod, Date: d, View: c.view}) {
		return Vetoed
	}
	c.reference = d
	c.render()
	return Applied
}

// Prev follows the header's previous link.
func (c *Controller) Prev() Outcome {
	link := c.Payload().Prev
	if !link.Enabled {
		return c.suppressed(CommandChangePeriod, link.Date)
	}
	return c.ChangePeriod(link.Date)
}

// Next follows the header's next link.
func (c *Controller) Next() Outcome {
	link := c.Payload().Next
	if !link.Enabled {
		return c.suppressed(CommandChangePeriod, link.Date)
	}
	return c.ChangePeriod(link.Date)
}

func (c *Controller) ChangeView(level ViewLevel) Outcome {
	if !level.valid() {
		return Ignored
	}
	if !c.before(&CommandContext{Kind: CommandChangeView, View: level}) {
		return Vetoed
	}
	c.view = level
	c.render()
	return Applied
}

// KeyboardMove shifts the keyboard cursor by a day (±1) or a week (±7). A
// move that would leave the bounds keeps the cursor in place and reports
// Suppressed, though the view is still rendered.
func (c *Controller) KeyboardMove(delta int) Outcome {
	if !c.cfg.Keyboard || c.view != ViewMonth {
		return Ignored
	}
	switch delta {
	case -7, -1, 1, 7:
	default:
		return Ignored
	}
	if !c.before(&CommandContext{Kind: CommandKeyboardMove, View: c.view, Delta: delta}) {
		return Vetoed
	}

	active := c.active
	if active.IsZero() {
		if first, ok := c.selection.Get(0); ok {
			active = first
		} else {
			active = c.reference
		}
	}

	outcome := Applied
	candidate := active.AddDays(delta)
	if !c.cfg.Bounds().Contains(candidate) {
		c.logSuppressed(CommandKeyboardMove, candidate)
		candidate = active
		outcome = Suppressed
	}

	c.active = candidate
	c.reference = candidate
	c.render()
	return outcome
}

// KeyboardCommit picks the keyboard cursor.
func (c *Controller) KeyboardCommit() Outcome {
	if !c.cfg.Keyboard || c.active.IsZero() {
		return Ignored
	}
	return c.Pick(c.active)
}

// Hide closes the picker and drops the keyboard cursor.
func (c *Controller) Hide() Outcome {
	if !c.before(&CommandContext{Kind: CommandHide, View: c.view}) {
		return Vetoed
	}
	c.open = false
	c.active = DateValue{}
	c.listener.OnClose()
	return Applied
}

// KeyboardClose handles Tab and Escape.
func (c *Controller) KeyboardClose() Outcome {
	if !c.cfg.Keyboard {
		return Ignored
	}
	return c.Hide()
}

// SetDates replaces the selection without closing the picker.
func (c *Controller) SetDates(dates ...DateValue) Outcome {
	if !c.before(&CommandContext{Kind: CommandSetDates, View: c.view, Dates: dates}) {
		return Vetoed
	}
	c.selection.Set(dates...)
	c.active = DateValue{}
	c.reference = c.firstOrToday()
	c.render()
	c.emitValueChange()
	return Applied
}

// ReplaceConfig swaps the configuration and re-normalizes the selection for
// the new mode.
func (c *Controller) ReplaceConfig(cfg *Config) Outcome {
	if cfg == nil {
		return Ignored
	}
	if !c.before(&CommandContext{Kind: CommandReplaceConfig, View: c.view}) {
		return Vetoed
	}
	c.cfg = cfg
	c.selection = c.selection.WithMode(cfg.Mode)
	c.render()
	return Applied
}

func (c *Controller) Config() *Config      { return c.cfg }
func (c *Controller) Dates() []DateValue   { return c.selection.All() }
func (c *Controller) View() ViewLevel      { return c.view }
func (c *Controller) Reference() DateValue { return c.reference }
func (c *Controller) IsOpen() bool         { return c.open }

// Active returns the keyboard cursor, if any.
func (c *Controller) Active() (DateValue, bool) {
	return c.active, !c.active.IsZero()
}

// Value is the selection rendered with DateFormat.
func (c *Controller) Value() string {
	return c.cfg.FormatDates(c.cfg.Tokens(), c.selection.All())
}

// AltValue is the selection rendered with AltFormat.
func (c *Controller) AltValue() string {
	return c.cfg.FormatDates(c.cfg.AltTokens(), c.selection.All())
}

// Payload builds the current view.
func (c *Controller) Payload() Payload {
	cfg := c.cfg
	switch c.view {
	case ViewYear:
		return BuildYear(YearRequest{
			Year:       c.reference.Year(),
			Month:      c.reference.Month(),
			Bounds:     cfg.Bounds(),
			Selection:  c.selection,
			Today:      cfg.Today(),
			Locale:     cfg.locale,
			MonthLabel: cfg.MonthFormat,
		})
	case ViewDecade:
		return BuildDecade(DecadeRequest{
			Year:      c.reference.Year(),
			Bounds:    cfg.Bounds(),
			Selection: c.selection,
			Today:     cfg.Today(),
		})
	default:
		return BuildMonth(MonthRequest{
			Year:              c.reference.Year(),
			Month:             c.reference.Month(),
			FirstDay:          cfg.FirstDay,
			Bounds:            cfg.Bounds(),
			Selection:         c.selection,
			Active:            c.active,
			Today:             cfg.Today(),
			Rows:              cfg.RowPolicy,
			SelectOtherMonths: cfg.SelectOtherMonths,
			Locale:            cfg.locale,
			DayLabel:          cfg.DayFormat,
			TitlePattern:      cfg.TitleFormat,
		})
	}
}

func (c *Controller) before(ctx *CommandContext) bool {
	if runHooks(c.hooks, ctx) == Abort {
		c.cfg.Logger.Debug("datepicker: command vetoed",
			slog.String("command", string(ctx.Kind)),
			slog.String("view", ctx.View.String()))
		return false
	}
	return true
}

func (c *Controller) suppressed(kind CommandKind, d DateValue) Outcome {
	c.logSuppressed(kind, d)
	return Suppressed
}

func (c *Controller) logSuppressed(kind CommandKind, d DateValue) {
	c.cfg.Logger.Debug("datepicker: command suppressed",
		slog.String("command", string(kind)),
		slog.String("date", d.String()),
		slog.String("view", c.view.String()))
}

func (c *Controller) render() {
	c.listener.OnRender(c.Payload())
}

func (c *Controller) emitValueChange() {
	c.listener.OnValueChange(ValueChange{
		Dates:   c.selection.All(),
		Text:    c.Value(),
		AltText: c.AltValue(),
	})
}

// firstOrToday is the first selected date, or today moved inside the bounds.
func (c *Controller) firstOrToday() DateValue {
	if first, ok := c.selection.Get(0); ok {
		return first
	}
	return c.cfg.Bounds().Clamp(c.cfg.Today())
}

package datepicker

// CommandKind names a controller command as seen by hooks.
type CommandKind string

const (
	CommandShow          CommandKind = "show"
	CommandPick          CommandKind = "pick"
	CommandChangePeriod  CommandKind = "change-period"
	CommandChangeView    CommandKind = "change-view"
	CommandKeyboardMove  CommandKind = "keyboard-move"
	CommandHide          CommandKind = "hide"
	CommandSetDates      CommandKind = "set-dates"
	CommandReplaceConfig CommandKind = "replace-config"
)

// CommandContext describes a pending command. Only the fields relevant to
// Kind are set.
type CommandContext struct {
	Kind     CommandKind
	Date     DateValue
	View     ViewLevel
	Delta    int
	Dates    []DateValue
	Metadata map[string]any
}

func (ctx *CommandContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *CommandContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *CommandContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// Decision is a hook's verdict on a pending command.
type Decision int

const (
	Continue Decision = iota
	Abort
)

// Hook runs before every mutating command. Returning Abort vetoes the
// command: no state changes and nothing is rendered.
type Hook interface {
	BeforeCommand(ctx *CommandContext) Decision
}

type HookFunc func(ctx *CommandContext) Decision

func (fn HookFunc) BeforeCommand(ctx *CommandContext) Decision {
	return fn(ctx)
}

// runHooks stops at the first Abort. Later hooks see metadata set by earlier ones.
func runHooks(hooks []Hook, ctx *CommandContext) Decision {
	for _, hook := range hooks {
		if hook.BeforeCommand(ctx) == Abort {
			return Abort
		}
	}
	return Continue
}

// ValueChange carries the selection after a pick or SetDates.
type ValueChange struct {
	Dates   []DateValue
	Text    string
	AltText string
}

// Listener receives the controller's notifications.
type Listener interface {
	OnRender(payload Payload)
	OnValueChange(change ValueChange)
	OnOpen()
	OnClose()
}

// ListenerFuncs adapts optional callbacks to Listener.
type ListenerFuncs struct {
	Render      func(payload Payload)
	ValueChange func(change ValueChange)
	Open        func()
	Close       func()
}

func (l ListenerFuncs) OnRender(payload Payload) {
	if l.Render != nil {
		l.Render(payload)
	}
}

func (l ListenerFuncs) OnValueChange(change ValueChange) {
	if l.ValueChange != nil {
		l.ValueChange(change)
	}
}

func (l ListenerFuncs) OnOpen() {
	if l.Open != nil {
		l.Open()
	}
}

func (l ListenerFuncs) OnClose() {
	if l.Close != nil {
		l.Close()
	}
}

type nopListener struct{}

func (nopListener) OnRender(Payload)          {}
func (nopListener) OnValueChange(ValueChange) {}
func (nopListener) OnOpen()                   {}
func (nopListener) OnClose()                  {}

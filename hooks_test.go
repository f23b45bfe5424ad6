package datepicker

import "testing"

type recordingHook struct {
	calls    int
	lastKind CommandKind
	decision Decision
}

func (h *recordingHook) BeforeCommand(ctx *CommandContext) Decision {
	h.calls++
	h.lastKind = ctx.Kind
	return h.decision
}

func TestRunHooksStopsAtAbort(t *testing.T) {
	first := &recordingHook{decision: Continue}
	veto := &recordingHook{decision: Abort}
	never := &recordingHook{decision: Continue}

	ctx := &CommandContext{Kind: CommandPick}
	if got := runHooks([]Hook{first, veto, never}, ctx); got != Abort {
		t.Fatalf("runHooks() = %d; want Abort", got)
	}
	if first.calls != 1 || veto.calls != 1 || never.calls != 0 {
		t.Fatalf("calls first=%d veto=%d never=%d", first.calls, veto.calls, never.calls)
	}
	if first.lastKind != CommandPick {
		t.Fatalf("lastKind = %q", first.lastKind)
	}

	if got := runHooks(nil, ctx); got != Continue {
		t.Fatalf("runHooks(nil) = %d; want Continue", got)
	}
}

func TestHookMetadataIsShared(t *testing.T) {
	tagger := HookFunc(func(ctx *CommandContext) Decision {
		ctx.SetMetadata("source", "keyboard")
		return Continue
	})

	var seen any
	reader := HookFunc(func(ctx *CommandContext) Decision {
		seen, _ = ctx.MetadataValue("source")
		return Continue
	})

	ctrl, _ := newTestController(t, nil, WithHooks(tagger, nil, reader))
	ctrl.Show()
	ctrl.KeyboardMove(1)

	if seen != "keyboard" {
		t.Fatalf("metadata seen = %v; want keyboard", seen)
	}
}

func TestCommandContextMetadata(t *testing.T) {
	var nilCtx *CommandContext
	nilCtx.SetMetadata("k", 1)
	if _, ok := nilCtx.MetadataValue("k"); ok {
		t.Fatal("nil context has no metadata")
	}

	ctx := &CommandContext{}
	ctx.SetMetadata("", 1)
	if ctx.Metadata != nil {
		t.Fatal("empty keys are ignored")
	}
	ctx.SetMetadata("k", 2)
	if v, ok := ctx.MetadataValue("k"); !ok || v != 2 {
		t.Fatalf("MetadataValue(k) = %v, %v", v, ok)
	}
}

func TestListenerFuncsPartial(t *testing.T) {
	opened := false
	listener := ListenerFuncs{Open: func() { opened = true }}

	ctrl, err := New(testConfig(t), WithListener(listener))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctrl.Show()
	ctrl.Pick(march(20))

	if !opened {
		t.Fatal("Open callback not invoked")
	}
}

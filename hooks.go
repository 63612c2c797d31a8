package phoneinput

// InputEvent names the state transition an InputHook observes.
type InputEvent string

const (
	EventChange        InputEvent = "change"
	EventSelectCountry InputEvent = "select_country"
)

// InputHook observes Input state transitions. Hooks run after the state
// has been updated and may call the Input getters.
type InputHook interface {
	OnChange(ctx *InputHookContext)
	OnSelectCountry(ctx *InputHookContext)
}

// InputHookContext carries the state an event produced.
type InputHookContext struct {
	Event       InputEvent
	Code        CountryCode
	CallingCode string
	Value       string
	Display     string
	// FullNumber is CallingCode+Value without a leading plus sign.
	FullNumber string
}

// InputHookFuncs adapts plain functions to InputHook. Nil fields are skipped.
type InputHookFuncs struct {
	Change        func(ctx *InputHookContext)
	SelectCountry func(ctx *InputHookContext)
}

func (h InputHookFuncs) OnChange(ctx *InputHookContext) {
	if h.Change != nil {
		h.Change(ctx)
	}
}

func (h InputHookFuncs) OnSelectCountry(ctx *InputHookContext) {
	if h.SelectCountry != nil {
		h.SelectCountry(ctx)
	}
}

func filterHooks(hooks []InputHook) []InputHook {
	if len(hooks) == 0 {
		return nil
	}
	filtered := make([]InputHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	if len(filtered) == 0 {
		return nil
	}
	return filtered
}

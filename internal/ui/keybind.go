package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps single keys to commands.
// Keys use tea.KeyMsg.String() notation: "7", "+", "enter", "backspace", "ctrl+c".
// Several keys may share a description; help shows them as one entry.
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // first-bound order, for stable help output
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
// Use BindWithDesc for human-readable hints in the help view.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	k = normalizeKey(k)
	if _, ok := r.bindings[k]; !ok {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[normalizeKey(k)]
}

// Hints returns bound keys grouped by description, in bind order.
// Keys without a description are omitted.
func (r *KeybindRegistry) Hints() []Hint {
	var out []Hint
	index := make(map[string]int)
	for _, k := range r.order {
		desc, ok := r.descriptions[k]
		if !ok || r.bindings[k] == nil {
			continue
		}
		if i, seen := index[desc]; seen {
			out[i].Keys = append(out[i].Keys, k)
			continue
		}
		index[desc] = len(out)
		out = append(out, Hint{Keys: []string{k}, Desc: desc})
	}
	return out
}

// Hint is one help entry.
type Hint struct {
	Keys []string
	Desc string
}

// normalizeKey converts tea key strings to our canonical format.
// "space" -> " ".
func normalizeKey(k string) string {
	if k == "space" {
		return " "
	}
	return k
}

// KeyHandler dispatches key presses to the registry.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap for rendering keybind help with bubbles/help.Model.
type KeyMap struct {
	registry *KeybindRegistry
	short    map[string]bool // descriptions shown in the short help
}

// NewKeyMap creates a KeyMap for the registry. shortDescs selects the
// entries shown in the one-line help; the full help shows everything.
func NewKeyMap(registry *KeybindRegistry, shortDescs ...string) help.KeyMap {
	short := make(map[string]bool, len(shortDescs))
	for _, d := range shortDescs {
		short[d] = true
	}
	return &KeyMap{registry: registry, short: short}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, b := range km.bindings() {
		if km.short[b.Help().Desc] {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp returns bindings in columns of at most six.
func (km *KeyMap) FullHelp() [][]key.Binding {
	all := km.bindings()
	var cols [][]key.Binding
	for len(all) > 0 {
		n := min(6, len(all))
		cols = append(cols, all[:n])
		all = all[n:]
	}
	return cols
}

func (km *KeyMap) bindings() []key.Binding {
	if km.registry == nil {
		return nil
	}
	hints := km.registry.Hints()
	out := make([]key.Binding, 0, len(hints))
	for _, h := range hints {
		out = append(out, key.NewBinding(
			key.WithKeys(h.Keys...),
			key.WithHelp(helpKeyLabel(h.Keys), h.Desc),
		))
	}
	return out
}

// helpKeyLabel joins keys for display: ["0", "1", ... "9"] -> "0-9".
func helpKeyLabel(keys []string) string {
	if len(keys) == 10 && keys[0] == "0" && keys[9] == "9" {
		return "0-9"
	}
	label := ""
	for i, k := range keys {
		if i > 0 {
			label += "/"
		}
		label += k
	}
	return label
}

package ui

import (
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"apptemplate/internal/route"
)

// leaderSeq is the canonical name of the leader key in a sequence.
const leaderSeq = "SPC"

// binding is one registered key sequence.
type binding struct {
	cmd     tea.Cmd
	desc    string
	screens []route.Name // empty means every screen
}

func (b binding) on(screen route.Name) bool {
	return len(b.screens) == 0 || slices.Contains(b.screens, screen)
}

// KeybindRegistry maps app-wide key sequences to commands. Sequences are
// space separated, with "SPC" for the leader: "q", "SPC h", "SPC g 2".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq with a help description. With no screens the binding
// is live everywhere; otherwise it fires and is hinted only on those
// screens. Binding a sequence twice replaces the first.
func (r *KeybindRegistry) Bind(seq, desc string, cmd tea.Cmd, screens ...route.Name) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, screens: screens}
}

// Lookup returns the command bound to seq on screen, or nil.
func (r *KeybindRegistry) Lookup(seq string, screen route.Name) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.on(screen) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether a longer binding live on screen continues seq.
func (r *KeybindRegistry) HasPrefix(seq string, screen route.Name) bool {
	prefix := normalizeSeq(seq) + " "
	for k, b := range r.bindings {
		if strings.HasPrefix(k, prefix) && b.on(screen) {
			return true
		}
	}
	return false
}

// submenuLabel names leader keys that open a submenu.
var submenuLabel = map[string]string{
	"g": "Go to",
}

// LeaderHints returns the keys that may follow seq on screen, each with
// its description. A key that opens a submenu is labelled as such rather
// than with one of its children.
func (r *KeybindRegistry) LeaderHints(seq string, screen route.Name) map[string]string {
	if seq == "" {
		seq = leaderSeq
	}
	prefix := normalizeSeq(seq) + " "
	out := make(map[string]string)
	for k, b := range r.bindings {
		if b.cmd == nil || !b.on(screen) || !strings.HasPrefix(k, prefix) {
			continue
		}
		next, _, more := strings.Cut(strings.TrimPrefix(k, prefix), " ")
		switch {
		case more:
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = k
		}
	}
	return out
}

// normalizeSeq converts tea key strings to the registry's notation.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts one tea key string to a sequence part. Bubble Tea
// reports the space bar as " ".
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks the leader sequence being typed and dispatches
// completed sequences through the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string     // tea.KeyMsg.String() of the leader
	LeaderWaiting bool       // a leader sequence is in progress
	Buffer        []string   // sequence typed so far, starting with SPC
	Screen        route.Name // visible screen
}

// NewKeyHandler creates a handler with the space bar as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg, LeaderKey: " "}
}

// Handle processes a key. consumed reports whether the key belonged to the
// keybind system and must not reach the view; cmd is the bound command.
// Inside a leader sequence every key is consumed, and a key that neither
// completes nor extends a binding ends the sequence.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	s := msg.String()
	switch {
	case s == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil
	case s == h.LeaderKey:
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq, h.Screen); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq, h.Screen) {
			h.reset()
		}
		return true, nil
	}
	if c := h.Registry.Lookup(s, h.Screen); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// KeyMap adapts the leader hints for the current sequence to help.KeyMap.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	screen     route.Name
}

// NewKeyMap creates a KeyMap for the given registry, handler, and screen.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, screen route.Name) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, screen: screen}
}

// ShortHelp returns the next keys of the sequence in key order, then esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	seq := ""
	if km.keyHandler != nil {
		seq = strings.Join(km.keyHandler.Buffer, " ")
	}
	hints := km.registry.LeaderHints(seq, km.screen)
	if len(hints) == 0 {
		return nil
	}
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns ShortHelp as a single column.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

package platform

// MenuShortcut is a platform-independent keyboard shortcut description
// (e.g. "Cmd+S" on macOS, "Ctrl+S" elsewhere) — the driver loop leaves
// translating it to the native accelerator syntax to the EventLoopDriver.
type MenuShortcut struct {
	Control, Shift, Alt, Logo bool
	KeyCode                   string
}

// MenuNodeKind discriminates the three shapes a Menu tree node can take.
type MenuNodeKind int

const (
	MenuSubMenu MenuNodeKind = iota
	MenuItem
	MenuSeparator
)

// MenuNode is one entry in an application menu tree, mirroring the
// original's update_menu description: a hierarchical tree of sub-menus,
// command items (with an opaque CommandID the platform reports back via a
// SystemEvent when chosen, an optional shortcut, and a disabled flag), and
// separators.
type MenuNode struct {
	Kind      MenuNodeKind
	Label     string
	CommandID string
	Shortcut  MenuShortcut
	Disabled  bool
	Children  []MenuNode
}

// Menu is the root of an application menu description, passed whole to
// EventLoopDriver.UpdateMenu each time it changes.
type Menu struct {
	Roots []MenuNode
}

// SubMenu builds a MenuSubMenu node with the given children.
func SubMenu(label string, children ...MenuNode) MenuNode {
	return MenuNode{Kind: MenuSubMenu, Label: label, Children: children}
}

// Item builds a MenuItem node.
func Item(label, commandID string) MenuNode {
	return MenuNode{Kind: MenuItem, Label: label, CommandID: commandID}
}

// WithShortcut returns n with its keyboard shortcut set.
func (n MenuNode) WithShortcut(s MenuShortcut) MenuNode {
	n.Shortcut = s
	return n
}

// WithDisabled returns n with its disabled flag set.
func (n MenuNode) WithDisabled(disabled bool) MenuNode {
	n.Disabled = disabled
	return n
}

// Separator builds a MenuSeparator node.
func Separator() MenuNode {
	return MenuNode{Kind: MenuSeparator}
}

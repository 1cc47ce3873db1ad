package memdom

// Op identifies a host tree mutation kind.
type Op string

const (
	OpCreateElement Op = "create-element"
	OpCreateText    Op = "create-text"
	OpInsert        Op = "insert" // append when RefID is empty
	OpReplace       Op = "replace"
	OpRemove        Op = "remove"
	OpSetAttr       Op = "set-attr"
	OpRemoveAttr    Op = "remove-attr"
	OpSetStyle      Op = "set-style"
	OpRemoveStyle   Op = "remove-style"
	OpSetText       Op = "set-text"
	OpListen        Op = "listen"
	OpUnlisten      Op = "unlisten"
)

// Mutation describes one applied host tree mutation. Observers receive
// mutations synchronously, in application order.
type Mutation struct {
	Kind     Op
	NodeID   string
	ParentID string
	RefID    string // insert-before reference, or replaced node
	Tag      string
	Name     string // attribute, style property, or event name
	Value    string
	Text     string
}

package types

// OwnerKind identifies one of the three audiences of a Unix permission.
type OwnerKind uint8

const (
	User OwnerKind = iota
	Group
	Other
)

// OwnerKinds lists the owner categories in rendering order.
var OwnerKinds = [...]OwnerKind{User, Group, Other}

func (k OwnerKind) String() string {
	switch k {
	case User:
		return "user"
	case Group:
		return "group"
	case Other:
		return "other"
	}
	return "unknown"
}

// Owner tags a Triad with the category it belongs to. The tag is fixed at
// construction and only decides where the triad is rendered.
type Owner struct {
	kind  OwnerKind
	triad Triad
}

func NewOwner(kind OwnerKind, t Triad) Owner {
	return Owner{kind: kind, triad: t}
}

func (o *Owner) Kind() OwnerKind { return o.kind }
func (o *Owner) Triad() Triad    { return o.triad }

// SetTriad replaces the whole triad, keeping the owner tag.
func (o *Owner) SetTriad(t Triad) { o.triad = t }

func (o *Owner) Read() byte    { return o.triad.Read() }
func (o *Owner) Write() byte   { return o.triad.Write() }
func (o *Owner) Execute() byte { return o.triad.Execute() }

func (o *Owner) SetRead(c byte)    { o.triad.SetRead(c) }
func (o *Owner) SetWrite(c byte)   { o.triad.SetWrite(c) }
func (o *Owner) SetExecute(c byte) { o.triad.SetExecute(c) }

func (o *Owner) Digit() uint32 { return o.triad.Digit() }

func (o *Owner) String() string { return o.triad.String() }

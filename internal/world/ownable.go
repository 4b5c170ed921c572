package world

// Ownable is the owner-set capability shared by rooms, exits and items.
// Permission checks and ownership grants operate only against this
// interface rather than one function per entity kind.
type Ownable interface {
	OwnerSet() []string
	SetOwnerSet([]string)
}

func (r *Room) OwnerSet() []string      { return r.Owners }
func (r *Room) SetOwnerSet(o []string)  { r.Owners = o }
func (e *Exit) OwnerSet() []string      { return e.Owners }
func (e *Exit) SetOwnerSet(o []string)  { e.Owners = o }
func (i *Item) OwnerSet() []string      { return i.Owners }
func (i *Item) SetOwnerSet(o []string)  { i.Owners = o }

// OwnedBy reports whether name is a member of the entity's owner set.
func OwnedBy(ent Ownable, name string) bool {
	for _, o := range ent.OwnerSet() {
		if o == name {
			return true
		}
	}
	return false
}

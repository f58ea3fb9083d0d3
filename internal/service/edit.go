package service

// EditSession holds the draft of one entity being edited. The draft is
// applied with Commit or thrown away with Discard; nothing touches the
// dataset before Commit.
type EditSession[T any] struct {
	id     string
	draft  T
	active bool
}

// Begin starts editing id with the given draft, replacing any edit in progress.
func (e *EditSession[T]) Begin(id string, draft T) {
	e.id, e.draft, e.active = id, draft, true
}

// Active returns the edited ID and whether an edit is in progress.
func (e *EditSession[T]) Active() (string, bool) {
	return e.id, e.active
}

// Draft returns the current draft.
func (e *EditSession[T]) Draft() T {
	return e.draft
}

// Update replaces the draft.
func (e *EditSession[T]) Update(draft T) error {
	if !e.active {
		return ErrNoEdit
	}
	e.draft = draft
	return nil
}

// Commit applies the draft. The session ends only when apply succeeds.
func (e *EditSession[T]) Commit(apply func(id string, draft T) error) error {
	if !e.active {
		return ErrNoEdit
	}
	if err := apply(e.id, e.draft); err != nil {
		return err
	}
	e.Discard()
	return nil
}

// Discard ends the edit without applying it.
func (e *EditSession[T]) Discard() {
	var zero T
	e.id, e.draft, e.active = "", zero, false
}

// SellerDraft is the editable part of a seller.
type SellerDraft struct {
	Name string `json:"name"`
}

// ItemDraft is the editable part of a quick item or sold item.
// Amount is kept as entered.
type ItemDraft struct {
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	SellerID string `json:"sellerId"`
}
